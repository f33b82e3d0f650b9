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

package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CvssEntry struct {
	Version      string   `json:"version"`
	VectorString string   `json:"vectorString"`
	BaseScore    *float64 `json:"baseScore,omitempty"`
}

// CvssSeverity holds at most one entry per CVSS version.
type CvssSeverity struct {
	CvssMetricV2  *CvssEntry `json:"cvssMetricV2,omitempty"`
	CvssMetricV30 *CvssEntry `json:"cvssMetricV30,omitempty"`
	CvssMetricV31 *CvssEntry `json:"cvssMetricV31,omitempty"`
	CvssMetricV40 *CvssEntry `json:"cvssMetricV40,omitempty"`
}

func (s CvssSeverity) IsEmpty() bool {
	return s.CvssMetricV2 == nil && s.CvssMetricV30 == nil && s.CvssMetricV31 == nil && s.CvssMetricV40 == nil
}

type Reference struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type Vulnerability struct {
	Model
	ExternalID     string                           `json:"externalId" gorm:"type:text;not null;uniqueIndex:idx_vulnerabilities_external_id"`
	DependencyID   uuid.UUID                        `json:"dependencyId" gorm:"type:uuid;not null;index"`
	Summary        string                           `json:"summary" gorm:"type:text"`
	Details        string                           `json:"details" gorm:"type:text"`
	CveID          string                           `json:"cveId" gorm:"type:text;index"`
	Published      string                           `json:"published" gorm:"type:text"`
	CweIDs         datatypes.JSONSlice[string]      `json:"cweIds" gorm:"type:jsonb"`
	NvdPublishedAt string                           `json:"nvdPublishedAt" gorm:"type:text"`
	Intensity      string                           `json:"intensity" gorm:"type:text"`
	Severity       datatypes.JSONType[CvssSeverity] `json:"severity" gorm:"type:jsonb"`
	NvdVulnStatus  string                           `json:"nvdVulnStatus" gorm:"type:text"`
	NvdDescription string                           `json:"nvdDescription" gorm:"type:text"`
	Weaknesses     datatypes.JSONSlice[string]      `json:"weaknesses" gorm:"type:jsonb"`
	References     datatypes.JSONSlice[Reference]   `json:"references" gorm:"type:jsonb"`
}

func (Vulnerability) TableName() string {
	return "vulnerabilities"
}

type VulnerabilityVersionStatus string

const (
	VulnerabilityVersionStatusIntroduced VulnerabilityVersionStatus = "introduced"
	VulnerabilityVersionStatusFixed      VulnerabilityVersionStatus = "fixed"
	VulnerabilityVersionStatusNotFixed   VulnerabilityVersionStatus = "not-fixed"
)

type VulnerabilityVersion struct {
	Model
	DependencyID        uuid.UUID                  `json:"dependencyId" gorm:"type:uuid;not null;uniqueIndex:idx_vulnerability_versions_natural_key"`
	VulnerabilityID     uuid.UUID                  `json:"vulnerabilityId" gorm:"type:uuid;not null;uniqueIndex:idx_vulnerability_versions_natural_key"`
	DependencyVersionID uuid.UUID                  `json:"dependencyVersionId" gorm:"type:uuid;not null;uniqueIndex:idx_vulnerability_versions_natural_key"`
	Status              VulnerabilityVersionStatus `json:"status" gorm:"type:text;not null;uniqueIndex:idx_vulnerability_versions_natural_key"`
	Source              string                     `json:"source" gorm:"type:text"`

	DependencyVersion DependencyVersion `json:"dependencyVersion" gorm:"foreignKey:DependencyVersionID"`
}

func (VulnerabilityVersion) TableName() string {
	return "vulnerability_versions"
}
