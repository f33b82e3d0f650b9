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

package services

import (
	"context"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depwatch/shared"
)

const leaderElectionKey = "leaderElection"

type leaderElectionConfig struct {
	LeaderID string `json:"leaderId"`
	LastPing int64  `json:"lastPing"`
}

// databaseLeaderElector elects a single worker process through the configs
// table. Only the leader runs the periodic refresh, every process consumes
// jobs.
type databaseLeaderElector struct {
	leaderElectorID  string
	configRepository shared.ConfigRepository
	isLeader         atomic.Bool
	leaseDuration    time.Duration
	now              func() time.Time
}

func NewDatabaseLeaderElector(configRepository shared.ConfigRepository) *databaseLeaderElector {
	return &databaseLeaderElector{
		configRepository: configRepository,
		leaderElectorID:  uuid.New().String(),
		leaseDuration:    6 * time.Minute,
		now:              time.Now,
	}
}

func randomDurationBetween(minSeconds, maxSeconds int) time.Duration {
	return time.Duration(rand.Intn(maxSeconds-minSeconds)+minSeconds) * time.Second // #nosec
}

// Start checks the leadership right away and then periodically until ctx is
// done.
func (e *databaseLeaderElector) Start(ctx context.Context) {
	e.refresh(ctx)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(randomDurationBetween(60, 300)):
				e.refresh(ctx)
			}
		}
	}()
}

func (e *databaseLeaderElector) refresh(ctx context.Context) {
	isLeader, err := e.checkIfLeader(ctx)
	if err != nil {
		slog.Error("could not check if leader", "err", err)
	}
	e.isLeader.Store(isLeader)
}

func (e *databaseLeaderElector) IsLeader() bool {
	return e.isLeader.Load()
}

func (e *databaseLeaderElector) makeLeader(ctx context.Context) error {
	return e.configRepository.SetJSON(ctx, leaderElectionKey, leaderElectionConfig{
		LeaderID: e.leaderElectorID,
		LastPing: e.now().Unix(),
	})
}

func (e *databaseLeaderElector) checkIfLeader(ctx context.Context) (bool, error) {
	var config leaderElectionConfig
	if err := e.configRepository.GetJSON(ctx, leaderElectionKey, &config); err != nil {
		// nobody claimed the lead yet
		return true, e.makeLeader(ctx)
	}

	if config.LeaderID == e.leaderElectorID {
		// renew the lease
		return true, e.makeLeader(ctx)
	}

	if e.now().Unix()-config.LastPing > int64(e.leaseDuration.Seconds()) {
		// the leader stopped pinging
		return true, e.makeLeader(ctx)
	}
	return false, nil
}
