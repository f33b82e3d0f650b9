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

type dependencyRepository struct {
	db shared.DB
	*GormRepository[uuid.UUID, models.Dependency]
}

func NewDependencyRepository(db shared.DB) *dependencyRepository {
	return &dependencyRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Dependency](db),
	}
}

// InsertIfNotExists creates the dependency unless a row with the same name
// already exists and returns the stored row in both cases.
func (r *dependencyRepository) InsertIfNotExists(ctx context.Context, name string) (models.Dependency, error) {
	dependency := models.Dependency{Name: name}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&dependency).Error
	if err != nil && !isUniqueViolation(err) {
		return models.Dependency{}, err
	}
	return r.ReadByName(ctx, name)
}

func (r *dependencyRepository) ReadByName(ctx context.Context, name string) (models.Dependency, error) {
	var dependency models.Dependency
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&dependency).Error
	return dependency, err
}

func (r *dependencyRepository) UpdateByName(ctx context.Context, name string, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Dependency{}).Where("name = ?", name).Updates(updates).Error
}

func (r *dependencyRepository) ListPaged(ctx context.Context, pageInfo shared.PageInfo, search string) (shared.Paged[models.Dependency], error) {
	q := r.db.WithContext(ctx).Model(&models.Dependency{}).Where("is_deleted = ?", false)
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return shared.Paged[models.Dependency]{}, err
	}

	var dependencies []models.Dependency
	if err := pageInfo.ApplyOnDB(q).Order("name ASC").Find(&dependencies).Error; err != nil {
		return shared.Paged[models.Dependency]{}, err
	}
	return shared.NewPaged(pageInfo, total, dependencies), nil
}

func (r *dependencyRepository) ListActive(ctx context.Context) ([]models.Dependency, error) {
	var dependencies []models.Dependency
	err := r.db.WithContext(ctx).Where("is_deleted = ?", false).Order("name ASC").Find(&dependencies).Error
	return dependencies, err
}

func (r *dependencyRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.Dependency{}).Where("id = ?", id).Update("is_deleted", true).Error
}
