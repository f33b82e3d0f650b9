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

package daemons

import (
	"context"
	"log/slog"
	"time"

	"github.com/l3montree-dev/depwatch/shared"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type lastMirror struct {
	Time time.Time `json:"time"`
}

func getLastMirrorTime(ctx context.Context, configRepository shared.ConfigRepository, key string) (time.Time, error) {
	var last lastMirror
	err := configRepository.GetJSON(ctx, key, &last)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		slog.Info("no last mirror time found. Setting to 0", "key", key)
		return time.Time{}, nil
	}
	if err != nil {
		slog.Error("could not get last mirror time", "err", err, "key", key)
		return time.Time{}, err
	}
	return last.Time, nil
}

func shouldMirror(ctx context.Context, configRepository shared.ConfigRepository, key string, interval time.Duration, now time.Time) bool {
	lastTime, err := getLastMirrorTime(ctx, configRepository, key)
	if err != nil {
		return false
	}
	return now.Sub(lastTime) > interval
}

func markMirrored(ctx context.Context, configRepository shared.ConfigRepository, key string, now time.Time) error {
	return configRepository.SetJSON(ctx, key, lastMirror{Time: now})
}
