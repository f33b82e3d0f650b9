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

type vulnerabilityRepository struct {
	db shared.DB
}

func NewVulnerabilityRepository(db shared.DB) *vulnerabilityRepository {
	return &vulnerabilityRepository{db: db}
}

// UpsertByExternalID inserts the vulnerability or, if the external id is
// already known, only overwrites updateColumns. Returns the stored row.
func (r *vulnerabilityRepository) UpsertByExternalID(ctx context.Context, vuln *models.Vulnerability, updateColumns []string) (models.Vulnerability, error) {
	columns := append([]string{"updated_at"}, updateColumns...)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(vuln).Error
	if err != nil {
		return models.Vulnerability{}, err
	}
	return r.ReadByExternalID(ctx, vuln.ExternalID)
}

func (r *vulnerabilityRepository) ReadByExternalID(ctx context.Context, externalID string) (models.Vulnerability, error) {
	var vuln models.Vulnerability
	err := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&vuln).Error
	return vuln, err
}

func (r *vulnerabilityRepository) ListByDependency(ctx context.Context, dependencyID uuid.UUID) ([]models.Vulnerability, error) {
	var vulns []models.Vulnerability
	err := r.db.WithContext(ctx).Where("dependency_id = ?", dependencyID).Order("external_id ASC").Find(&vulns).Error
	return vulns, err
}

type vulnerabilityVersionRepository struct {
	db shared.DB
}

func NewVulnerabilityVersionRepository(db shared.DB) *vulnerabilityVersionRepository {
	return &vulnerabilityVersionRepository{db: db}
}

// Upsert is keyed by (dependency_id, vulnerability_id, dependency_version_id, status)
func (r *vulnerabilityVersionRepository) Upsert(ctx context.Context, vulnerabilityVersion *models.VulnerabilityVersion) error {
	return r.db.WithContext(ctx).Omit("DependencyVersion").Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "dependency_id"},
			{Name: "vulnerability_id"},
			{Name: "dependency_version_id"},
			{Name: "status"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"source", "updated_at"}),
	}).Create(vulnerabilityVersion).Error
}

func (r *vulnerabilityVersionRepository) ListByVulnerability(ctx context.Context, vulnerabilityID uuid.UUID) ([]models.VulnerabilityVersion, error) {
	var versions []models.VulnerabilityVersion
	err := r.db.WithContext(ctx).Preload("DependencyVersion").Where("vulnerability_id = ?", vulnerabilityID).Order("status ASC").Find(&versions).Error
	return versions, err
}
