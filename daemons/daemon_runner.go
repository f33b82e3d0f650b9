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
	"github.com/l3montree-dev/depwatch/queue"
	"github.com/l3montree-dev/depwatch/shared"
	"github.com/pkg/errors"
)

type jobProcessor interface {
	handlerRegistry
	Start(ctx context.Context) error
	Wait()
}

// DaemonRunner owns the background work of a process: the queue lanes and
// the periodic refresh, which only the leader runs.
type DaemonRunner struct {
	queue              jobProcessor
	enrichmentConsumer *EnrichmentConsumer
	configRepository   shared.ConfigRepository
	dependencyService  shared.DependencyService
	leaderElector      shared.LeaderElector

	refreshInterval time.Duration
	tickInterval    time.Duration
	now             func() time.Time
}

func NewDaemonRunner(
	q *queue.Queue,
	enrichmentConsumer *EnrichmentConsumer,
	configRepository shared.ConfigRepository,
	dependencyService shared.DependencyService,
	leaderElector shared.LeaderElector,
) *DaemonRunner {
	return newDaemonRunner(q, enrichmentConsumer, configRepository, dependencyService, leaderElector)
}

func newDaemonRunner(
	q jobProcessor,
	enrichmentConsumer *EnrichmentConsumer,
	configRepository shared.ConfigRepository,
	dependencyService shared.DependencyService,
	leaderElector shared.LeaderElector,
) *DaemonRunner {
	return &DaemonRunner{
		queue:              q,
		enrichmentConsumer: enrichmentConsumer,
		configRepository:   configRepository,
		dependencyService:  dependencyService,
		leaderElector:      leaderElector,
		refreshInterval:    time.Duration(shared.GetEnvIntOrDefault("DEPENDENCY_REFRESH_INTERVAL_HOURS", 12)) * time.Hour,
		tickInterval:       5 * time.Minute,
		now:                time.Now,
	}
}

// Start registers the workers, starts the queue lanes and the refresh loop.
// Everything stops once ctx is done.
func (runner *DaemonRunner) Start(ctx context.Context) error {
	if err := runner.enrichmentConsumer.Register(runner.queue); err != nil {
		return errors.Wrap(err, "could not register enrichment workers")
	}
	if err := runner.queue.Start(ctx); err != nil {
		return err
	}

	runner.leaderElector.Start(ctx)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				monitoring.RecoverAndAlert("daemon runner panicked", r)
			}
		}()
		runner.tick(ctx)
		ticker := time.NewTicker(runner.tickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runner.tick(ctx)
			}
		}
	}()
	return nil
}

// Wait blocks until the running jobs returned
func (runner *DaemonRunner) Wait() {
	runner.queue.Wait()
}

func (runner *DaemonRunner) tick(ctx context.Context) {
	if !runner.leaderElector.IsLeader() {
		slog.Debug("not the leader - skipping background jobs")
		return
	}

	if !shouldMirror(ctx, runner.configRepository, refreshKey, runner.refreshInterval, runner.now()) {
		return
	}
	if err := runner.RefreshDependencies(ctx); err != nil {
		slog.Error("could not refresh dependencies", "err", err)
		return
	}
	if err := markMirrored(ctx, runner.configRepository, refreshKey, runner.now()); err != nil {
		slog.Error("could not mark dependency refresh as done", "err", err)
	}
}
