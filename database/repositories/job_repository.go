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
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depwatch/database/models"
	"github.com/l3montree-dev/depwatch/shared"
	"gorm.io/gorm"
)

type jobRepository struct {
	db shared.DB
}

func NewJobRepository(db shared.DB) *jobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) Update(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Job{}).Error
}

func (r *jobRepository) Read(ctx context.Context, id uuid.UUID) (models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error
	return job, err
}

// ClaimNext moves the oldest due job of the lane to active. The state
// condition in the update makes concurrent claims of the same row lose.
func (r *jobRepository) ClaimNext(ctx context.Context, lane string, now time.Time) (models.Job, bool, error) {
	db := r.db.WithContext(ctx)
	for range 3 {
		var job models.Job
		err := db.Where("lane = ? AND state = ? AND run_at <= ?", lane, models.JobStateQueued, now).
			Order("run_at ASC").
			First(&job).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Job{}, false, nil
		}
		if err != nil {
			return models.Job{}, false, err
		}

		res := db.Model(&models.Job{}).
			Where("id = ? AND state = ?", job.ID, models.JobStateQueued).
			Updates(map[string]any{"state": models.JobStateActive, "locked_at": now})
		if res.Error != nil {
			return models.Job{}, false, res.Error
		}
		if res.RowsAffected == 1 {
			job.State = models.JobStateActive
			job.LockedAt = &now
			return job, true, nil
		}
	}
	return models.Job{}, false, nil
}

func (r *jobRepository) RequeueStale(ctx context.Context, lockedBefore time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("state = ? AND locked_at < ?", models.JobStateActive, lockedBefore).
		Updates(map[string]any{"state": models.JobStateQueued, "locked_at": nil})
	return res.RowsAffected, res.Error
}

func (r *jobRepository) CountByState(ctx context.Context, lane string, state models.JobState) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Job{}).Where("lane = ? AND state = ?", lane, state).Count(&count).Error
	return count, err
}
