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

package middlewares

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/l3montree-dev/depwatch/shared"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

func registerMiddlewares(e *echo.Echo) {
	e.Pre(middleware.AddTrailingSlash())
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     strings.Split(shared.GetEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), ","),
			AllowHeaders:     append(middleware.DefaultCORSConfig.AllowHeaders, echo.HeaderAuthorization),
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
		},
	))

	e.Use(otelecho.Middleware("depwatch"))
	e.Use(logger())

	e.Use(recovermiddleware())

	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		// do the logging straight inside the error handler
		// this keeps controller methods clean
		slog.Error(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)

		if ctx.Response().Committed {
			return
		}

		if he, ok := err.(*echo.HTTPError); ok {
			message := he.Message
			if m, ok := he.Message.(string); ok {
				message = echo.Map{"message": m}
			}
			if err := ctx.JSON(he.Code, message); err != nil {
				slog.Error("could not send error response", "error", err)
			}
			return
		}

		var message any = echo.Map{"message": http.StatusText(http.StatusInternalServerError)}
		if e.Debug {
			message = echo.Map{"message": http.StatusText(http.StatusInternalServerError), "error": err.Error()}
		}
		if m, ok := err.(json.Marshaler); ok {
			message = m
		}

		if ctx.Request().Method == http.MethodHead {
			if err := ctx.NoContent(http.StatusInternalServerError); err != nil {
				slog.Error("could not send error response", "error", err)
			}
			return
		}
		if err := ctx.JSON(http.StatusInternalServerError, message); err != nil {
			slog.Error("could not send error response", "error", err)
		}
	}
}

func Server() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(99)
	registerMiddlewares(e)
	return e
}
