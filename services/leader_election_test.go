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
	"testing"
	"time"

	"github.com/l3montree-dev/depwatch/database/repositories"
	"github.com/l3montree-dev/depwatch/integrationtestutil"
	"github.com/stretchr/testify/assert"
)

func TestLeaderElection(t *testing.T) {
	t.Run("only one of two electors should become leader", func(t *testing.T) {
		configRepository := repositories.NewConfigRepository(integrationtestutil.InitSqliteDatabase(t))
		first := NewDatabaseLeaderElector(configRepository)
		second := NewDatabaseLeaderElector(configRepository)

		first.refresh(context.Background())
		second.refresh(context.Background())

		assert.True(t, first.IsLeader())
		assert.False(t, second.IsLeader())

		// renewing does not lose the lead
		first.refresh(context.Background())
		assert.True(t, first.IsLeader())
	})

	t.Run("should take over once the lease of the leader expired", func(t *testing.T) {
		configRepository := repositories.NewConfigRepository(integrationtestutil.InitSqliteDatabase(t))
		first := NewDatabaseLeaderElector(configRepository)
		second := NewDatabaseLeaderElector(configRepository)

		now := time.Now()
		first.now = func() time.Time { return now }
		second.now = func() time.Time { return now.Add(7 * time.Minute) }

		first.refresh(context.Background())
		second.refresh(context.Background())

		assert.True(t, second.IsLeader())

		first.refresh(context.Background())
		assert.False(t, first.IsLeader())
	})
}
