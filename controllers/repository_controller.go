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

package controllers

import (
	"net/http"

	"github.com/l3montree-dev/depwatch/shared"
	"github.com/labstack/echo/v4"
)

type RepositoryController struct {
	repositoryService shared.RepositoryService
}

func NewRepositoryController(repositoryService shared.RepositoryService) *RepositoryController {
	return &RepositoryController{repositoryService: repositoryService}
}

// @Summary List repositories
// @Tags Repositories
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Number of items per page"
// @Success 200 {object} object{pageSize=int,page=int,total=int,data=[]models.Repo}
// @Router /repositories/ [get]
func (c *RepositoryController) List(ctx shared.Context) error {
	paged, err := c.repositoryService.ListPaged(ctx.Request().Context(), shared.GetPageInfo(ctx))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list repositories").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, paged)
}

// @Summary Catalog the dependencies of a repository
// @Description Reads the package.json of the default branch and tracks every listed dependency.
// @Tags Repositories
// @Produce json
// @Param repositoryID path string true "Repository ID"
// @Success 200 {array} models.RepoDependency
// @Router /repositories/{repositoryID}/dependencies/sync/ [post]
func (c *RepositoryController) SyncDependencies(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "repositoryID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid repository id").WithInternal(err)
	}

	deps, err := c.repositoryService.CatalogDependencies(ctx.Request().Context(), id)
	if err != nil {
		return storeError(err, "could not catalog dependencies")
	}
	return ctx.JSON(http.StatusOK, deps)
}

// @Summary List the dependencies of a repository
// @Tags Repositories
// @Produce json
// @Param repositoryID path string true "Repository ID"
// @Success 200 {array} models.RepoDependency
// @Router /repositories/{repositoryID}/dependencies/ [get]
func (c *RepositoryController) ListDependencies(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "repositoryID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid repository id").WithInternal(err)
	}

	deps, err := c.repositoryService.GetInstalledDependenciesByRepoID(ctx.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list dependencies").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, deps)
}

// @Summary Scan a repository for vulnerabilities
// @Description Requests a vulnerability lookup for every dependency of the repository.
// @Tags Repositories
// @Produce json
// @Param repositoryID path string true "Repository ID"
// @Success 202 {object} object{requested=int}
// @Router /repositories/{repositoryID}/scan/ [post]
func (c *RepositoryController) Scan(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "repositoryID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid repository id").WithInternal(err)
	}

	requested, err := c.repositoryService.ScanVulnerabilities(ctx.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not scan repository").WithInternal(err)
	}
	return ctx.JSON(http.StatusAccepted, echo.Map{"requested": requested})
}
