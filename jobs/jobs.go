// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package jobs contains the closed set of background jobs. Every job is a
// typed payload bound to exactly one lane.
package jobs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depwatch/database/models"
	"github.com/l3montree-dev/depwatch/dtos"
)

const (
	LaneDependency      = "dependency"
	LaneVulnerabilities = "vulnerabilities"
)

const (
	NameGetDependencyInfo    = "get-dependency-info"
	NameGetVulnerabilityInfo = "get-vulnerability-info"
	NameGetCVEInfo           = "get-cve-info"
)

type Job interface {
	JobName() string
	Lane() string
}

type GetDependencyInfo struct {
	DependencyID   uuid.UUID `json:"dependencyId"`
	DependencyName string    `json:"dependencyName"`
}

func (GetDependencyInfo) JobName() string { return NameGetDependencyInfo }
func (GetDependencyInfo) Lane() string    { return LaneDependency }

type GetVulnerabilityInfo struct {
	DependencyName string `json:"dependencyName"`
	Ecosystem      string `json:"ecosystem"`
}

func (GetVulnerabilityInfo) JobName() string { return NameGetVulnerabilityInfo }
func (GetVulnerabilityInfo) Lane() string    { return LaneVulnerabilities }

type GetCVEInfo struct {
	DependencyID uuid.UUID              `json:"dependencyId"`
	CveID        string                 `json:"cveId"`
	Vuln         dtos.NormalizedOSVVuln `json:"vuln"`
}

func (GetCVEInfo) JobName() string { return NameGetCVEInfo }
func (GetCVEInfo) Lane() string    { return LaneVulnerabilities }

// Decode restores the typed job from its persisted name and payload
func Decode(name string, payload []byte) (Job, error) {
	switch name {
	case NameGetDependencyInfo:
		var j GetDependencyInfo
		if err := json.Unmarshal(payload, &j); err != nil {
			return nil, fmt.Errorf("could not decode %s payload: %w", name, err)
		}
		return j, nil
	case NameGetVulnerabilityInfo:
		var j GetVulnerabilityInfo
		if err := json.Unmarshal(payload, &j); err != nil {
			return nil, fmt.Errorf("could not decode %s payload: %w", name, err)
		}
		return j, nil
	case NameGetCVEInfo:
		var j GetCVEInfo
		if err := json.Unmarshal(payload, &j); err != nil {
			return nil, fmt.Errorf("could not decode %s payload: %w", name, err)
		}
		return j, nil
	}
	return nil, fmt.Errorf("unknown job %q", name)
}

type Backoff struct {
	Type  models.BackoffType
	Delay time.Duration
}

type EnqueueOptions struct {
	Delay            time.Duration
	Attempts         int
	Backoff          Backoff
	RemoveOnComplete bool
}

func DependencyInfoOptions() EnqueueOptions {
	return EnqueueOptions{
		Delay:            time.Second,
		Attempts:         2,
		Backoff:          Backoff{Type: models.BackoffFixed, Delay: time.Second},
		RemoveOnComplete: true,
	}
}

func VulnerabilityInfoOptions() EnqueueOptions {
	return EnqueueOptions{
		Attempts:         2,
		Backoff:          Backoff{Type: models.BackoffFixed, Delay: time.Second},
		RemoveOnComplete: true,
	}
}

// CVEInfoOptions keeps a distance to the OSV lookup, NVD rate limits
// unauthenticated clients aggressively.
func CVEInfoOptions() EnqueueOptions {
	return EnqueueOptions{
		Delay:    20 * time.Second,
		Attempts: 2,
		Backoff:  Backoff{Type: models.BackoffExponential, Delay: 5 * time.Second},
	}
}
