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

type dependencyVersionRepository struct {
	db shared.DB
}

func NewDependencyVersionRepository(db shared.DB) *dependencyVersionRepository {
	return &dependencyVersionRepository{db: db}
}

// Upsert is keyed by (dependency_id, version_id)
func (r *dependencyVersionRepository) Upsert(ctx context.Context, version *models.DependencyVersion) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "dependency_id"}, {Name: "version_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"version", "publish_date", "purl", "updated_at"}),
	}).Create(version).Error
}

// FindByVersion matches the exact version string, there is no range or
// prefix matching.
func (r *dependencyVersionRepository) FindByVersion(ctx context.Context, dependencyID uuid.UUID, version string) (models.DependencyVersion, error) {
	var v models.DependencyVersion
	err := r.db.WithContext(ctx).Where("dependency_id = ? AND version = ?", dependencyID, version).First(&v).Error
	return v, err
}

func (r *dependencyVersionRepository) ListByDependency(ctx context.Context, dependencyID uuid.UUID) ([]models.DependencyVersion, error) {
	var versions []models.DependencyVersion
	err := r.db.WithContext(ctx).Where("dependency_id = ?", dependencyID).Find(&versions).Error
	return versions, err
}
