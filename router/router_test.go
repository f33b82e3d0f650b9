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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/l3montree-dev/depwatch/controllers"
	"github.com/l3montree-dev/depwatch/database/models"
	"github.com/l3montree-dev/depwatch/dtos"
	"github.com/l3montree-dev/depwatch/integrationtestutil"
	"github.com/l3montree-dev/depwatch/middlewares"
	"github.com/l3montree-dev/depwatch/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRoutes(t *testing.T) {
	secret := []byte("test-secret")
	dependencyService := mocks.NewDependencyService(t)
	vulnerabilityService := mocks.NewVulnerabilityService(t)
	repositoryService := mocks.NewRepositoryService(t)

	e := middlewares.Server()
	apiV1Router := NewAPIV1Router(e, integrationtestutil.InitSqliteDatabase(t))
	authenticatedRouter := NewAuthenticatedRouter(apiV1Router, AuthConfig{JWTSecret: secret})
	NewDependencyRouter(authenticatedRouter, controllers.NewDependencyController(dependencyService, vulnerabilityService))
	NewVulnerabilityRouter(authenticatedRouter, controllers.NewVulnerabilityController(vulnerabilityService))
	NewRepositoryRouter(authenticatedRouter, controllers.NewRepositoryController(repositoryService), controllers.NewIntegrationController(repositoryService))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "ci-bot"}).SignedString(secret)
	require.NoError(t, err)

	do := func(method, target, body string, authenticated bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		if authenticated {
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("health does not need a token", func(t *testing.T) {
		rec := do(http.MethodGet, "/api/v1/health", "", false)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	})

	t.Run("metrics does not need a token", func(t *testing.T) {
		rec := do(http.MethodGet, "/api/v1/metrics/", "", false)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("dependencies need a token", func(t *testing.T) {
		rec := do(http.MethodPost, "/api/v1/dependencies/", `{"dependencyName":"left-pad"}`, false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should create a dependency", func(t *testing.T) {
		dependencyService.On("CreateDependency", mock.Anything, dtos.DependencyCreateRequest{DependencyName: "left-pad"}).Return(models.Dependency{Name: "left-pad"}, nil).Once()

		rec := do(http.MethodPost, "/api/v1/dependencies", `{"dependencyName":"left-pad"}`, true)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("should map missing vulnerabilities to 404", func(t *testing.T) {
		vulnerabilityService.On("ReadByExternalID", mock.Anything, "GHSA-404").Return(models.Vulnerability{}, gorm.ErrRecordNotFound).Once()

		rec := do(http.MethodGet, "/api/v1/vulnerabilities/GHSA-404/", "", true)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"could not find vulnerability"}`, rec.Body.String())
	})

	t.Run("whoami returns the subject", func(t *testing.T) {
		rec := do(http.MethodGet, "/api/v1/whoami/", "", true)
		assert.JSONEq(t, `{"subject":"ci-bot"}`, rec.Body.String())
	})
}
