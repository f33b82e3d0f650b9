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

package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depwatch/database/models"
	"github.com/l3montree-dev/depwatch/dtos"
	"github.com/l3montree-dev/depwatch/jobs"
	"github.com/l3montree-dev/depwatch/normalize"
	"github.com/l3montree-dev/depwatch/shared"
	"github.com/pkg/errors"
)

const defaultEcosystem = "npm"

type vulnerabilityService struct {
	vulnerabilityRepository        shared.VulnerabilityRepository
	vulnerabilityVersionRepository shared.VulnerabilityVersionRepository
	osvClient                      shared.OSVClient
	jobEnqueuer                    shared.JobEnqueuer
}

func NewVulnerabilityService(
	vulnerabilityRepository shared.VulnerabilityRepository,
	vulnerabilityVersionRepository shared.VulnerabilityVersionRepository,
	osvClient shared.OSVClient,
	jobEnqueuer shared.JobEnqueuer,
) *vulnerabilityService {
	return &vulnerabilityService{
		vulnerabilityRepository:        vulnerabilityRepository,
		vulnerabilityVersionRepository: vulnerabilityVersionRepository,
		osvClient:                      osvClient,
		jobEnqueuer:                    jobEnqueuer,
	}
}

// CreateVulnerabilityRequest schedules the vulnerability lookup of a
// dependency. It does not wait for the lookup.
func (s *vulnerabilityService) CreateVulnerabilityRequest(ctx context.Context, req dtos.VulnerabilityRequest) error {
	ecosystem := req.Ecosystem
	if ecosystem == "" {
		ecosystem = defaultEcosystem
	}

	if _, err := s.jobEnqueuer.Enqueue(ctx, jobs.GetVulnerabilityInfo{
		DependencyName: req.DependencyName,
		Ecosystem:      ecosystem,
	}, jobs.VulnerabilityInfoOptions()); err != nil {
		return errors.Wrap(err, "could not enqueue vulnerability lookup")
	}
	slog.Debug("vulnerability lookup requested", "name", req.DependencyName, "ecosystem", ecosystem)
	return nil
}

// QueryVersionVulnerabilities asks OSV directly for the vulnerabilities of a
// single version. Nothing is stored.
func (s *vulnerabilityService) QueryVersionVulnerabilities(ctx context.Context, name, ecosystem, version string) ([]dtos.NormalizedOSVVuln, error) {
	if ecosystem == "" {
		ecosystem = defaultEcosystem
	}
	res, err := s.osvClient.QueryPackageVersion(ctx, name, ecosystem, version)
	if err != nil {
		return nil, errors.Wrapf(err, "could not query osv for %s@%s", name, version)
	}
	return normalize.OsvQueryResult(res), nil
}

func (s *vulnerabilityService) ListByDependency(ctx context.Context, dependencyID uuid.UUID) ([]models.Vulnerability, error) {
	return s.vulnerabilityRepository.ListByDependency(ctx, dependencyID)
}

func (s *vulnerabilityService) ReadByExternalID(ctx context.Context, externalID string) (models.Vulnerability, error) {
	return s.vulnerabilityRepository.ReadByExternalID(ctx, externalID)
}

func (s *vulnerabilityService) ListAffectedVersions(ctx context.Context, externalID string) ([]models.VulnerabilityVersion, error) {
	vuln, err := s.vulnerabilityRepository.ReadByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	return s.vulnerabilityVersionRepository.ListByVulnerability(ctx, vuln.ID)
}
