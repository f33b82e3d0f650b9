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
	"strconv"

	"github.com/l3montree-dev/depwatch/integrations/githubint"
	"github.com/l3montree-dev/depwatch/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type IntegrationController struct {
	repositoryService shared.RepositoryService
}

func NewIntegrationController(repositoryService shared.RepositoryService) *IntegrationController {
	return &IntegrationController{repositoryService: repositoryService}
}

// @Summary Sync a github app installation
// @Description Stores every repository the installation can access.
// @Tags Integrations
// @Produce json
// @Param installationID path int true "Installation ID"
// @Success 200 {array} models.Repo
// @Failure 503 {object} object{message=string}
// @Router /integrations/github/installations/{installationID}/sync/ [post]
func (c *IntegrationController) SyncGithubInstallation(ctx shared.Context) error {
	installationID, err := strconv.ParseInt(shared.GetParam(ctx, "installationID"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid installation id").WithInternal(err)
	}

	repos, err := c.repositoryService.SyncInstallation(ctx.Request().Context(), installationID)
	if errors.Is(err, githubint.ErrGithubAppNotConfigured) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "github app is not configured").WithInternal(err)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "could not sync installation").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, repos)
}
