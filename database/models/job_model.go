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
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JobState string

const (
	JobStateQueued    JobState = "queued"
	JobStateActive    JobState = "active"
	JobStateCompleted JobState = "completed"
	JobStateFailed    JobState = "failed"
)

type BackoffType string

const (
	BackoffFixed       BackoffType = "fixed"
	BackoffExponential BackoffType = "exponential"
)

// Job is a persisted unit of background work. The queue claims jobs by
// moving them from queued to active, so a crashed worker leaves an active
// row behind that is requeued once it is considered stale.
type Job struct {
	ID               uuid.UUID      `gorm:"primarykey;type:uuid" json:"id"`
	Lane             string         `gorm:"type:text;not null;index:idx_jobs_lane_state_run_at" json:"lane"`
	Name             string         `gorm:"type:text;not null" json:"name"`
	Payload          datatypes.JSON `gorm:"type:jsonb;not null" json:"payload"`
	State            JobState       `gorm:"type:text;not null;index:idx_jobs_lane_state_run_at" json:"state"`
	Attempts         int            `gorm:"not null;default:0" json:"attempts"`
	MaxAttempts      int            `gorm:"not null;default:1" json:"maxAttempts"`
	BackoffType      BackoffType    `gorm:"type:text;not null" json:"backoffType"`
	BackoffDelay     time.Duration  `gorm:"type:bigint;not null;default:0" json:"backoffDelay"`
	RemoveOnComplete bool           `gorm:"not null;default:false" json:"removeOnComplete"`
	RunAt            time.Time      `gorm:"not null;index:idx_jobs_lane_state_run_at" json:"runAt"`
	LockedAt         *time.Time     `json:"lockedAt"`
	LastError        string         `gorm:"type:text" json:"lastError"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

func (Job) TableName() string {
	return "jobs"
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
