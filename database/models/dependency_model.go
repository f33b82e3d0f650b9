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

type Maintainer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type QualityEvaluation struct {
	Carefulness float64 `json:"carefulness"`
	Tests       float64 `json:"tests"`
	Health      float64 `json:"health"`
	Branding    float64 `json:"branding"`
}

type PopularityEvaluation struct {
	CommunityInterest     float64 `json:"communityInterest"`
	DownloadsCount        float64 `json:"downloadsCount"`
	DownloadsAcceleration float64 `json:"downloadsAcceleration"`
	DependentsCount       float64 `json:"dependentsCount"`
}

type MaintenanceEvaluation struct {
	ReleasesFrequency  float64 `json:"releasesFrequency"`
	CommitsFrequency   float64 `json:"commitsFrequency"`
	OpenIssues         float64 `json:"openIssues"`
	IssuesDistribution float64 `json:"issuesDistribution"`
}

type Evaluation struct {
	Quality     QualityEvaluation     `json:"quality"`
	Popularity  PopularityEvaluation  `json:"popularity"`
	Maintenance MaintenanceEvaluation `json:"maintenance"`
}

type ScoreDetail struct {
	Quality     float64 `json:"quality"`
	Popularity  float64 `json:"popularity"`
	Maintenance float64 `json:"maintenance"`
}

type Score struct {
	Final  float64     `json:"final"`
	Detail ScoreDetail `json:"detail"`
}

// Dependency is a package tracked by name. Rows are never hard deleted,
// a delete only flips IsDeleted.
type Dependency struct {
	Model
	Name            string                          `json:"name" gorm:"type:text;not null;uniqueIndex:idx_dependencies_name"`
	Description     string                          `json:"description" gorm:"type:text"`
	License         string                          `json:"license" gorm:"type:text"`
	Homepage        string                          `json:"homepage" gorm:"type:text"`
	Repository      string                          `json:"repository" gorm:"type:text"`
	Npm             string                          `json:"npm" gorm:"type:text"`
	Maintainers     datatypes.JSONSlice[Maintainer] `json:"maintainers" gorm:"type:jsonb"`
	CurrentVersion  string                          `json:"currentVersion" gorm:"type:text"`
	LastPublishDate string                          `json:"lastPublishDate" gorm:"type:text"`
	Evaluation      datatypes.JSONType[Evaluation]  `json:"evaluation" gorm:"type:jsonb"`
	Score           datatypes.JSONType[Score]       `json:"score" gorm:"type:jsonb"`
	IsDeleted       bool                            `json:"isDeleted" gorm:"not null;default:false"`
}

func (Dependency) TableName() string {
	return "dependencies"
}

type DependencyVersion struct {
	Model
	DependencyID uuid.UUID `json:"dependencyId" gorm:"type:uuid;not null;uniqueIndex:idx_dependency_versions_natural_key"`
	Version      string    `json:"version" gorm:"type:text;not null"`
	VersionID    string    `json:"versionId" gorm:"type:text;not null;uniqueIndex:idx_dependency_versions_natural_key"`
	PublishDate  string    `json:"publishDate" gorm:"type:text"`
	Purl         string    `json:"purl" gorm:"type:text"`
}

func (DependencyVersion) TableName() string {
	return "dependency_versions"
}
