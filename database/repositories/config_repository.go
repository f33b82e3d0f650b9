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
	"encoding/json"

	"github.com/l3montree-dev/depwatch/database/models"
	"github.com/l3montree-dev/depwatch/shared"
)

type configRepository struct {
	db shared.DB
}

func NewConfigRepository(db shared.DB) *configRepository {
	return &configRepository{db: db}
}

func (r *configRepository) GetJSON(ctx context.Context, key string, v any) error {
	var config models.Config
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&config).Error; err != nil {
		return err
	}
	return json.Unmarshal([]byte(config.Val), v)
}

func (r *configRepository) SetJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(&models.Config{Key: key, Val: string(b)}).Error
}
