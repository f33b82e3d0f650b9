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

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/l3montree-dev/depwatch/cmd/depwatch/api"
	"github.com/l3montree-dev/depwatch/controllers"
	"github.com/l3montree-dev/depwatch/daemons"
	"github.com/l3montree-dev/depwatch/database"
	"github.com/l3montree-dev/depwatch/database/repositories"
	"github.com/l3montree-dev/depwatch/integrations/githubint"
	"github.com/l3montree-dev/depwatch/monitoring"
	"github.com/l3montree-dev/depwatch/pubsub"
	"github.com/l3montree-dev/depwatch/queue"
	"github.com/l3montree-dev/depwatch/router"
	"github.com/l3montree-dev/depwatch/services"
	"github.com/l3montree-dev/depwatch/shared"
	"github.com/l3montree-dev/depwatch/vulndb"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var release string // Will be filled at build time

//	@title			depwatch API
//	@version		v1
//	@description	npm dependency and vulnerability enrichment

//	@license.name	AGPL-3
//	@license.url	https://github.com/l3montree-dev/depwatch/blob/main/LICENSE.txt

// @host		localhost:8080
// @BasePath	/api/v1
func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	shutdownTracing, err := monitoring.InitTracing(context.Background())
	if err != nil {
		slog.Error("could not init tracing", "err", err)
		panic(err)
	}
	defer shutdownTracing(context.Background()) // nolint: errcheck

	poolConfig := database.GetPoolConfigFromEnv()
	pool, db, err := database.NewConnection(context.Background(), poolConfig)
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("Failed to setup database connection"))
	}
	defer pool.Close()

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("Failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db),
		fx.Provide(func() (pubsub.Broker, error) {
			return pubsub.BrokerFactory(poolConfig)
		}),
		fx.Provide(api.NewServer),
		repositories.Module,
		vulndb.Module,
		queue.Module,
		githubint.Module,
		services.Module,
		daemons.Module,
		controllers.ControllerModule,
		router.RouterModule,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(DependencyRouter router.DependencyRouter) {}),
		fx.Invoke(func(VulnerabilityRouter router.VulnerabilityRouter) {}),
		fx.Invoke(func(RepositoryRouter router.RepositoryRouter) {}),
		fx.Invoke(daemons.RunDaemons),
		fx.Invoke(func(server *echo.Echo) {}),
	).Run()
}

func initSentry() {
	environment := shared.GetEnvOrDefault("ENVIRONMENT", "dev")

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              os.Getenv("ERROR_TRACKING_DSN"),
		Environment:      environment,
		Release:          release,
		Debug:            environment == "dev",
		AttachStacktrace: true,
		SendDefaultPII:   false,
	})
	if err != nil {
		slog.Error("Failed to init logger", "err", err)
	}
}
