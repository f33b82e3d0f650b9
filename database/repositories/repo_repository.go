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

package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depwatch/database/models"
	"github.com/l3montree-dev/depwatch/shared"
	"gorm.io/gorm/clause"
)

type repoRepository struct {
	db shared.DB
	*GormRepository[uuid.UUID, models.Repo]
}

func NewRepoRepository(db shared.DB) *repoRepository {
	return &repoRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Repo](db),
	}
}

func (r *repoRepository) UpsertByGithubID(ctx context.Context, repo *models.Repo) (models.Repo, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "github_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"installation_id", "full_name", "owner", "name", "default_branch", "updated_at"}),
	}).Create(repo).Error
	if err != nil {
		return models.Repo{}, err
	}

	var stored models.Repo
	err = r.db.WithContext(ctx).Where("github_id = ?", repo.GithubID).First(&stored).Error
	return stored, err
}

func (r *repoRepository) ListPaged(ctx context.Context, pageInfo shared.PageInfo) (shared.Paged[models.Repo], error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Repo{}).Count(&total).Error; err != nil {
		return shared.Paged[models.Repo]{}, err
	}

	var repos []models.Repo
	if err := pageInfo.ApplyOnDB(r.db.WithContext(ctx)).Order("full_name ASC").Find(&repos).Error; err != nil {
		return shared.Paged[models.Repo]{}, err
	}
	return shared.NewPaged(pageInfo, total, repos), nil
}

func (r *repoRepository) ListByInstallation(ctx context.Context, installationID int64) ([]models.Repo, error) {
	var repos []models.Repo
	err := r.db.WithContext(ctx).Where("installation_id = ?", installationID).Order("full_name ASC").Find(&repos).Error
	return repos, err
}

type repoDependencyRepository struct {
	db shared.DB
}

func NewRepoDependencyRepository(db shared.DB) *repoDependencyRepository {
	return &repoDependencyRepository{db: db}
}

func (r *repoDependencyRepository) Upsert(ctx context.Context, repoDependency *models.RepoDependency) error {
	return r.db.WithContext(ctx).Omit("Dependency").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "repo_id"}, {Name: "dependency_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"version_range", "is_dev"}),
	}).Create(repoDependency).Error
}

func (r *repoDependencyRepository) ListByRepo(ctx context.Context, repoID uuid.UUID) ([]models.RepoDependency, error) {
	var deps []models.RepoDependency
	err := r.db.WithContext(ctx).Preload("Dependency").Where("repo_id = ?", repoID).Find(&deps).Error
	return deps, err
}

type githubAppInstallationRepository struct {
	db shared.DB
}

func NewGithubAppInstallationRepository(db shared.DB) *githubAppInstallationRepository {
	return &githubAppInstallationRepository{db: db}
}

func (r *githubAppInstallationRepository) Save(ctx context.Context, installation *models.GithubAppInstallation) error {
	return r.db.WithContext(ctx).Save(installation).Error
}

func (r *githubAppInstallationRepository) Read(ctx context.Context, installationID int64) (models.GithubAppInstallation, error) {
	var installation models.GithubAppInstallation
	err := r.db.WithContext(ctx).First(&installation, "installation_id = ?", installationID).Error
	return installation, err
}
