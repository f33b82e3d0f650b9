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

package commands

import (
	"fmt"
	"log/slog"

	"github.com/l3montree-dev/depwatch/database"
	"github.com/l3montree-dev/depwatch/database/repositories"
	"github.com/l3montree-dev/depwatch/pubsub"
	"github.com/l3montree-dev/depwatch/queue"
	"github.com/l3montree-dev/depwatch/services"
	"github.com/spf13/cobra"
)

func NewRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Schedules a metadata refresh of every dependency",
		Long:  "Schedules the jobs only. A running depwatch server picks them up.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, db, err := openDatabase(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			// notifies the server workers, they fall back to polling without it
			var broker pubsub.Broker
			if b, err := pubsub.BrokerFactory(database.GetPoolConfigFromEnv()); err != nil {
				slog.Warn("could not connect broker", "err", err)
			} else {
				broker = b
			}
			q := queue.NewQueue(repositories.NewJobRepository(db), broker, queue.DefaultLanes())
			dependencyService := services.NewDependencyService(
				repositories.NewDependencyRepository(db),
				repositories.NewDependencyVersionRepository(db),
				q,
			)

			n, err := dependencyService.RefreshAll(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scheduled %d dependencies\n", n)
			return nil
		},
	}
}
