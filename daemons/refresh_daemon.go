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

	"github.com/l3montree-dev/depwatch/monitoring"
)

const refreshKey = "dependencies.refresh"

// RefreshDependencies schedules a new enrichment of every dependency which
// is not deleted.
func (runner *DaemonRunner) RefreshDependencies(ctx context.Context) error {
	begin := time.Now()
	defer func() {
		monitoring.DependencyRefreshDuration.Observe(time.Since(begin).Seconds())
	}()

	count, err := runner.dependencyService.RefreshAll(ctx)
	if err != nil {
		return err
	}
	slog.Info("dependency refresh scheduled", "dependencies", count, "duration", time.Since(begin))
	return nil
}
