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

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/l3montree-dev/depwatch/database/models"
	"github.com/l3montree-dev/depwatch/database/repositories"
	"github.com/l3montree-dev/depwatch/dtos"
	"github.com/l3montree-dev/depwatch/integrationtestutil"
	"github.com/l3montree-dev/depwatch/jobs"
	"github.com/l3montree-dev/depwatch/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateVulnerabilityRequest(t *testing.T) {
	t.Run("should default to the npm ecosystem", func(t *testing.T) {
		db := integrationtestutil.InitSqliteDatabase(t)
		enqueuer := mocks.NewJobEnqueuer(t)
		enqueuer.On("Enqueue", mock.Anything, jobs.GetVulnerabilityInfo{DependencyName: "left-pad", Ecosystem: "npm"}, jobs.VulnerabilityInfoOptions()).Return(models.Job{}, nil)

		s := NewVulnerabilityService(repositories.NewVulnerabilityRepository(db), repositories.NewVulnerabilityVersionRepository(db), mocks.NewOSVClient(t), enqueuer)
		assert.NoError(t, s.CreateVulnerabilityRequest(context.Background(), dtos.VulnerabilityRequest{DependencyName: "left-pad"}))
	})

	t.Run("should return the error of the queue", func(t *testing.T) {
		db := integrationtestutil.InitSqliteDatabase(t)
		enqueuer := mocks.NewJobEnqueuer(t)
		enqueuer.On("Enqueue", mock.Anything, mock.Anything, mock.Anything).Return(models.Job{}, errors.New("db gone"))

		s := NewVulnerabilityService(repositories.NewVulnerabilityRepository(db), repositories.NewVulnerabilityVersionRepository(db), mocks.NewOSVClient(t), enqueuer)
		assert.Error(t, s.CreateVulnerabilityRequest(context.Background(), dtos.VulnerabilityRequest{DependencyName: "left-pad", Ecosystem: "PyPI"}))
	})
}

func TestQueryVersionVulnerabilities(t *testing.T) {
	db := integrationtestutil.InitSqliteDatabase(t)
	osv := mocks.NewOSVClient(t)
	osv.On("QueryPackageVersion", mock.Anything, "left-pad", "npm", "1.0.0").Return(osvResponse("1.0.0", "1.0.1"), nil)

	s := NewVulnerabilityService(repositories.NewVulnerabilityRepository(db), repositories.NewVulnerabilityVersionRepository(db), osv, mocks.NewJobEnqueuer(t))
	vulns, err := s.QueryVersionVulnerabilities(context.Background(), "left-pad", "", "1.0.0")
	require.NoError(t, err)
	require.Len(t, vulns, 1)
	assert.Equal(t, "CVE-2021-1234", vulns[0].CveID)
	assert.Equal(t, "1.0.1", vulns[0].Affected[0].Fixed)

	// nothing is persisted
	_, err = s.ReadByExternalID(context.Background(), "GHSA-xxxx-yyyy-zzzz")
	assert.Error(t, err)
}
