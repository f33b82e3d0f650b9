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
	"time"

	"github.com/google/uuid"
)

type GithubAppInstallation struct {
	InstallationID int64     `json:"installationId" gorm:"primarykey"`
	AccountLogin   string    `json:"accountLogin" gorm:"type:text"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (GithubAppInstallation) TableName() string {
	return "github_app_installations"
}

// Repo is a GitHub repository visible to an app installation.
type Repo struct {
	Model
	GithubID       int64  `json:"githubId" gorm:"not null;uniqueIndex:idx_repos_github_id"`
	InstallationID int64  `json:"installationId" gorm:"not null;index"`
	FullName       string `json:"fullName" gorm:"type:text;not null"`
	Owner          string `json:"owner" gorm:"type:text;not null"`
	Name           string `json:"name" gorm:"type:text;not null"`
	DefaultBranch  string `json:"defaultBranch" gorm:"type:text"`
}

func (Repo) TableName() string {
	return "repos"
}

type RepoDependency struct {
	RepoID       uuid.UUID `json:"repoId" gorm:"primarykey;type:uuid"`
	DependencyID uuid.UUID `json:"dependencyId" gorm:"primarykey;type:uuid"`
	VersionRange string    `json:"versionRange" gorm:"type:text"`
	IsDev        bool      `json:"isDev" gorm:"not null;default:false"`

	Dependency Dependency `json:"dependency" gorm:"foreignKey:DependencyID"`
}

func (RepoDependency) TableName() string {
	return "repo_dependencies"
}
