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

package router

import (
	"os"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/l3montree-dev/depwatch/middlewares"
	"github.com/l3montree-dev/depwatch/shared"
)

type AuthConfig struct {
	JWTSecret []byte
}

func AuthConfigFromEnv() (AuthConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return AuthConfig{}, errors.New("JWT_SECRET is not set")
	}
	return AuthConfig{JWTSecret: []byte(secret)}, nil
}

type APIV1Router struct {
	*echo.Group
}

func NewAPIV1Router(srv *echo.Echo, db shared.DB) APIV1Router {
	apiV1Router := srv.Group("/api/v1")

	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))
	apiV1Router.GET("/health/", func(ctx echo.Context) error {
		// Check database connectivity
		sqlDB, err := db.DB()
		if err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "failed to get database instance",
			})
		}

		if err := sqlDB.Ping(); err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "database ping failed",
			})
		}

		return ctx.JSON(200, map[string]string{
			"status": "healthy",
		})
	})

	return APIV1Router{Group: apiV1Router}
}

// AuthenticatedRouter is the part of the api which requires a bearer token
type AuthenticatedRouter struct {
	*echo.Group
}

// @Summary Get the subject of the bearer token
// @Security BearerAuth
// @Success 200 {object} object{subject=string}
// @Router /whoami/ [get]
func whoami(ctx echo.Context) error {
	return ctx.JSON(200, map[string]string{
		"subject": shared.GetSubject(ctx),
	})
}

func NewAuthenticatedRouter(apiV1Router APIV1Router, authConfig AuthConfig) AuthenticatedRouter {
	authenticatedRouter := apiV1Router.Group.Group("", middlewares.JWTMiddleware(authConfig.JWTSecret))
	authenticatedRouter.GET("/whoami/", whoami)
	return AuthenticatedRouter{Group: authenticatedRouter}
}
