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
	"github.com/l3montree-dev/depwatch/controllers"
	"github.com/labstack/echo/v4"
)

type DependencyRouter struct {
	*echo.Group
}

func NewDependencyRouter(
	authenticatedRouter AuthenticatedRouter,
	dependencyController *controllers.DependencyController,
) DependencyRouter {
	dependencyRouter := authenticatedRouter.Group.Group("/dependencies")
	dependencyRouter.GET("/", dependencyController.List)
	dependencyRouter.POST("/", dependencyController.Create)
	dependencyRouter.GET("/:dependencyID/", dependencyController.Read)
	dependencyRouter.DELETE("/:dependencyID/", dependencyController.Delete)
	dependencyRouter.GET("/:dependencyID/versions/", dependencyController.ListVersions)
	dependencyRouter.GET("/:dependencyID/vulnerabilities/", dependencyController.ListVulnerabilities)
	dependencyRouter.GET("/:dependencyID/versions/:version/vulnerabilities/", dependencyController.QueryVersionVulnerabilities)

	return DependencyRouter{Group: dependencyRouter}
}

type VulnerabilityRouter struct {
	*echo.Group
}

func NewVulnerabilityRouter(
	authenticatedRouter AuthenticatedRouter,
	vulnerabilityController *controllers.VulnerabilityController,
) VulnerabilityRouter {
	vulnerabilityRouter := authenticatedRouter.Group.Group("/vulnerabilities")
	vulnerabilityRouter.POST("/", vulnerabilityController.Create)
	vulnerabilityRouter.GET("/:vulnID/", vulnerabilityController.Read)
	vulnerabilityRouter.GET("/:vulnID/versions/", vulnerabilityController.ListAffectedVersions)

	return VulnerabilityRouter{Group: vulnerabilityRouter}
}
