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

type VulnerabilityController struct {
	vulnerabilityService shared.VulnerabilityService
}

func NewVulnerabilityController(vulnerabilityService shared.VulnerabilityService) *VulnerabilityController {
	return &VulnerabilityController{vulnerabilityService: vulnerabilityService}
}

// @Summary Request a vulnerability lookup
// @Description Schedules the OSV lookup of a dependency. The lookup runs in the background.
// @Tags Vulnerabilities
// @Accept json
// @Produce json
// @Param body body dtos.VulnerabilityRequest true "Lookup"
// @Success 202 {object} dtos.VulnerabilityRequestAccepted
// @Failure 400 {object} object{message=string}
// @Router /vulnerabilities/ [post]
func (c *VulnerabilityController) Create(ctx shared.Context) error {
	var req dtos.VulnerabilityRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if err := c.vulnerabilityService.CreateVulnerabilityRequest(ctx.Request().Context(), req); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not request vulnerability lookup").WithInternal(err)
	}

	ecosystem := req.Ecosystem
	if ecosystem == "" {
		ecosystem = "npm"
	}
	return ctx.JSON(http.StatusAccepted, dtos.VulnerabilityRequestAccepted{
		DependencyName: req.DependencyName,
		Ecosystem:      ecosystem,
		Status:         "queued",
	})
}

// @Summary Get a vulnerability
// @Tags Vulnerabilities
// @Produce json
// @Param vulnID path string true "OSV id, for example GHSA-xxxx-xxxx-xxxx"
// @Success 200 {object} models.Vulnerability
// @Failure 404 {object} object{message=string}
// @Router /vulnerabilities/{vulnID}/ [get]
func (c *VulnerabilityController) Read(ctx shared.Context) error {
	vuln, err := c.vulnerabilityService.ReadByExternalID(ctx.Request().Context(), shared.GetParam(ctx, "vulnID"))
	if err != nil {
		return storeError(err, "could not find vulnerability")
	}
	return ctx.JSON(http.StatusOK, vuln)
}

// @Summary List the versions a vulnerability was introduced or fixed in
// @Tags Vulnerabilities
// @Produce json
// @Param vulnID path string true "OSV id"
// @Success 200 {array} models.VulnerabilityVersion
// @Failure 404 {object} object{message=string}
// @Router /vulnerabilities/{vulnID}/versions/ [get]
func (c *VulnerabilityController) ListAffectedVersions(ctx shared.Context) error {
	versions, err := c.vulnerabilityService.ListAffectedVersions(ctx.Request().Context(), shared.GetParam(ctx, "vulnID"))
	if err != nil {
		return storeError(err, "could not find vulnerability")
	}
	return ctx.JSON(http.StatusOK, versions)
}
