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

package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/l3montree-dev/depwatch/middlewares"
	"github.com/l3montree-dev/depwatch/shared"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NewServer creates the echo instance and binds its listener to the fx
// lifecycle.
func NewServer(lc fx.Lifecycle) *echo.Echo {
	server := middlewares.Server()
	addr := ":" + shared.GetEnvOrDefault("PORT", "8080")

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				slog.Info("starting server", "addr", addr)
				if err := server.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("server stopped", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(ctx)
		},
	})

	return server
}
