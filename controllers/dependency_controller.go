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

	"github.com/l3montree-dev/depwatch/dtos"
	"github.com/l3montree-dev/depwatch/shared"
	"github.com/labstack/echo/v4"
)

type DependencyController struct {
	dependencyService    shared.DependencyService
	vulnerabilityService shared.VulnerabilityService
}

func NewDependencyController(dependencyService shared.DependencyService, vulnerabilityService shared.VulnerabilityService) *DependencyController {
	return &DependencyController{
		dependencyService:    dependencyService,
		vulnerabilityService: vulnerabilityService,
	}
}

// @Summary Track a dependency
// @Description Stores the dependency and schedules its enrichment. The response contains the row before the enrichment ran.
// @Tags Dependencies
// @Accept json
// @Produce json
// @Param body body dtos.DependencyCreateRequest true "Dependency"
// @Success 201 {object} models.Dependency
// @Failure 400 {object} object{message=string}
// @Router /dependencies/ [post]
func (c *DependencyController) Create(ctx shared.Context) error {
	var req dtos.DependencyCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	dependency, err := c.dependencyService.CreateDependency(ctx.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create dependency").WithInternal(err)
	}
	return ctx.JSON(http.StatusCreated, dependency)
}

// @Summary List dependencies
// @Tags Dependencies
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Number of items per page"
// @Param search query string false "Substring of the name"
// @Success 200 {object} object{pageSize=int,page=int,total=int,data=[]models.Dependency}
// @Router /dependencies/ [get]
func (c *DependencyController) List(ctx shared.Context) error {
	paged, err := c.dependencyService.ListPaged(ctx.Request().Context(), shared.GetPageInfo(ctx), ctx.QueryParam("search"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list dependencies").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, paged)
}

// @Summary Get a dependency
// @Tags Dependencies
// @Produce json
// @Param dependencyID path string true "Dependency ID"
// @Success 200 {object} models.Dependency
// @Failure 404 {object} object{message=string}
// @Router /dependencies/{dependencyID}/ [get]
func (c *DependencyController) Read(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "dependencyID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid dependency id").WithInternal(err)
	}

	dependency, err := c.dependencyService.Read(ctx.Request().Context(), id)
	if err != nil {
		return storeError(err, "could not find dependency")
	}
	return ctx.JSON(http.StatusOK, dependency)
}

// @Summary Delete a dependency
// @Description The dependency is only marked as deleted and no longer refreshed.
// @Tags Dependencies
// @Param dependencyID path string true "Dependency ID"
// @Success 204
// @Failure 404 {object} object{message=string}
// @Router /dependencies/{dependencyID}/ [delete]
func (c *DependencyController) Delete(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "dependencyID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid dependency id").WithInternal(err)
	}

	if err := c.dependencyService.Delete(ctx.Request().Context(), id); err != nil {
		return storeError(err, "could not delete dependency")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// @Summary List the versions of a dependency
// @Tags Dependencies
// @Produce json
// @Param dependencyID path string true "Dependency ID"
// @Success 200 {array} models.DependencyVersion
// @Router /dependencies/{dependencyID}/versions/ [get]
func (c *DependencyController) ListVersions(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "dependencyID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid dependency id").WithInternal(err)
	}

	versions, err := c.dependencyService.ListVersions(ctx.Request().Context(), id)
	if err != nil {
		return storeError(err, "could not list versions")
	}
	return ctx.JSON(http.StatusOK, versions)
}

// @Summary List the stored vulnerabilities of a dependency
// @Tags Dependencies
// @Produce json
// @Param dependencyID path string true "Dependency ID"
// @Success 200 {array} models.Vulnerability
// @Router /dependencies/{dependencyID}/vulnerabilities/ [get]
func (c *DependencyController) ListVulnerabilities(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "dependencyID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid dependency id").WithInternal(err)
	}

	if _, err := c.dependencyService.Read(ctx.Request().Context(), id); err != nil {
		return storeError(err, "could not find dependency")
	}

	vulns, err := c.vulnerabilityService.ListByDependency(ctx.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list vulnerabilities").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, vulns)
}

// @Summary Query the vulnerabilities of a single version
// @Description Asks OSV directly, nothing is stored.
// @Tags Dependencies
// @Produce json
// @Param dependencyID path string true "Dependency ID"
// @Param version path string true "Version"
// @Success 200 {array} dtos.NormalizedOSVVuln
// @Failure 502 {object} object{message=string}
// @Router /dependencies/{dependencyID}/versions/{version}/vulnerabilities/ [get]
func (c *DependencyController) QueryVersionVulnerabilities(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "dependencyID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid dependency id").WithInternal(err)
	}
	version, err := shared.GetURLDecodedParam(ctx, "version")
	if err != nil || version == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid version").WithInternal(err)
	}

	dependency, err := c.dependencyService.Read(ctx.Request().Context(), id)
	if err != nil {
		return storeError(err, "could not find dependency")
	}

	vulns, err := c.vulnerabilityService.QueryVersionVulnerabilities(ctx.Request().Context(), dependency.Name, ctx.QueryParam("ecosystem"), version)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "could not query osv").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, vulns)
}
