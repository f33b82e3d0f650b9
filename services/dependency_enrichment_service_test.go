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
	"encoding/json"
	"errors"
	"testing"

	"github.com/l3montree-dev/depwatch/database/models"
	"github.com/l3montree-dev/depwatch/database/repositories"
	"github.com/l3montree-dev/depwatch/dtos"
	"github.com/l3montree-dev/depwatch/integrationtestutil"
	"github.com/l3montree-dev/depwatch/jobs"
	"github.com/l3montree-dev/depwatch/mocks"
	"github.com/l3montree-dev/depwatch/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func leftPadDocument() dtos.NpmPackageDocument {
	return dtos.NpmPackageDocument{
		Name:     "left-pad",
		DistTags: map[string]string{"latest": "1.0.0"},
		Versions: map[string]dtos.NpmVersionDocument{"1.0.0": {}},
		Time:     map[string]string{"1.0.0": "2015-01-01"},
		License:  json.RawMessage(`"MIT"`),
	}
}

func TestCreateDependencyAndEnrich(t *testing.T) {
	t.Run("should return the row before enrichment and fill it once the worker ran", func(t *testing.T) {
		db := integrationtestutil.InitSqliteDatabase(t)
		dependencyRepository := repositories.NewDependencyRepository(db)
		dependencyVersionRepository := repositories.NewDependencyVersionRepository(db)

		enqueuer := mocks.NewJobEnqueuer(t)
		var enqueued jobs.Job
		enqueuer.On("Enqueue", mock.Anything, mock.Anything, jobs.DependencyInfoOptions()).Run(func(args mock.Arguments) {
			enqueued = args.Get(1).(jobs.Job)
		}).Return(models.Job{}, nil)

		registry := mocks.NewNpmRegistryClient(t)
		registry.On("GetPackage", mock.Anything, "left-pad").Return(leftPadDocument(), nil)
		npms := mocks.NewQualityReportClient(t)
		npms.On("GetQualityReport", mock.Anything, "left-pad").Return(dtos.NpmsPackageReport{}, errors.New("npms is down"))

		dependencyService := NewDependencyService(dependencyRepository, dependencyVersionRepository, enqueuer)
		enrichmentService := NewDependencyEnrichmentService(dependencyRepository, dependencyVersionRepository, registry, npms)

		created, err := dependencyService.CreateDependency(context.Background(), dtos.DependencyCreateRequest{DependencyName: "left-pad"})
		require.NoError(t, err)
		assert.Equal(t, "left-pad", created.Name)
		assert.Empty(t, created.CurrentVersion)
		assert.Empty(t, created.LastPublishDate)

		job, ok := enqueued.(jobs.GetDependencyInfo)
		require.True(t, ok)
		assert.Equal(t, created.ID, job.DependencyID)

		result, err := enrichmentService.FetchDependencyInfo(context.Background(), job)
		require.NoError(t, err)
		// the quality report failed, the registry worked
		assert.Equal(t, dtos.EnrichmentPartial, result.Status)

		stored, err := dependencyRepository.ReadByName(context.Background(), "left-pad")
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", stored.CurrentVersion)
		assert.Equal(t, "2015-01-01", stored.LastPublishDate)
		assert.Equal(t, "MIT", stored.License)

		versions, err := dependencyVersionRepository.ListByDependency(context.Background(), created.ID)
		require.NoError(t, err)
		require.Len(t, versions, 1)
		assert.Equal(t, "1.0.0", versions[0].Version)
		assert.Equal(t, "2015-01-01", versions[0].PublishDate)
		assert.Equal(t, "left-pad@1.0.0", versions[0].VersionID)
		assert.Equal(t, "pkg:npm/left-pad@1.0.0", versions[0].Purl)
	})

	t.Run("should not create a second row for a known name", func(t *testing.T) {
		db := integrationtestutil.InitSqliteDatabase(t)
		dependencyRepository := repositories.NewDependencyRepository(db)
		enqueuer := mocks.NewJobEnqueuer(t)
		enqueuer.On("Enqueue", mock.Anything, mock.Anything, mock.Anything).Return(models.Job{}, nil).Twice()

		dependencyService := NewDependencyService(dependencyRepository, repositories.NewDependencyVersionRepository(db), enqueuer)

		first, err := dependencyService.CreateDependency(context.Background(), dtos.DependencyCreateRequest{DependencyName: "left-pad"})
		require.NoError(t, err)
		second, err := dependencyService.CreateDependency(context.Background(), dtos.DependencyCreateRequest{DependencyName: "left-pad"})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		page, err := dependencyService.ListPaged(context.Background(), shared.PageInfo{Page: 1, PageSize: 10}, "")
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
	})
}

func TestFetchDependencyInfo(t *testing.T) {
	setup := func(t *testing.T) (shared.DependencyRepository, shared.DependencyVersionRepository, *mocks.NpmRegistryClient, *mocks.QualityReportClient, *dependencyEnrichmentService, models.Dependency) {
		db := integrationtestutil.InitSqliteDatabase(t)
		dependencyRepository := repositories.NewDependencyRepository(db)
		dependencyVersionRepository := repositories.NewDependencyVersionRepository(db)
		registry := mocks.NewNpmRegistryClient(t)
		npms := mocks.NewQualityReportClient(t)

		dependency, err := dependencyRepository.InsertIfNotExists(context.Background(), "left-pad")
		require.NoError(t, err)

		return dependencyRepository, dependencyVersionRepository, registry, npms,
			NewDependencyEnrichmentService(dependencyRepository, dependencyVersionRepository, registry, npms), dependency
	}

	t.Run("should be idempotent", func(t *testing.T) {
		dependencyRepository, dependencyVersionRepository, registry, npms, service, dependency := setup(t)

		doc := leftPadDocument()
		doc.Versions["1.0.1"] = dtos.NpmVersionDocument{ID: "left-pad@1.0.1"}
		doc.Time["1.0.1"] = "2015-02-01"
		registry.On("GetPackage", mock.Anything, "left-pad").Return(doc, nil)
		npms.On("GetQualityReport", mock.Anything, "left-pad").Return(dtos.NpmsPackageReport{}, nil)

		job := jobs.GetDependencyInfo{DependencyID: dependency.ID, DependencyName: "left-pad"}
		for range 2 {
			result, err := service.FetchDependencyInfo(context.Background(), job)
			require.NoError(t, err)
			assert.Equal(t, dtos.EnrichmentSucceeded, result.Status)
		}

		page, err := dependencyRepository.ListPaged(context.Background(), shared.PageInfo{Page: 1, PageSize: 10}, "left")
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)

		versions, err := dependencyVersionRepository.ListByDependency(context.Background(), dependency.ID)
		require.NoError(t, err)
		assert.Len(t, versions, 2)
	})

	t.Run("should prefer the license of the quality report", func(t *testing.T) {
		dependencyRepository, _, registry, npms, service, dependency := setup(t)

		registry.On("GetPackage", mock.Anything, "left-pad").Return(leftPadDocument(), nil)
		report := dtos.NpmsPackageReport{}
		report.Collected.Metadata.License = "ISC"
		report.Score = &models.Score{Final: 0.7}
		npms.On("GetQualityReport", mock.Anything, "left-pad").Return(report, nil)

		_, err := service.FetchDependencyInfo(context.Background(), jobs.GetDependencyInfo{DependencyID: dependency.ID, DependencyName: "left-pad"})
		require.NoError(t, err)

		stored, err := dependencyRepository.ReadByName(context.Background(), "left-pad")
		require.NoError(t, err)
		assert.Equal(t, "ISC", stored.License)
		assert.InDelta(t, 0.7, stored.Score.Data().Final, 0.0001)
		assert.Equal(t, "1.0.0", stored.CurrentVersion)
	})

	t.Run("should leave the row untouched when both upstreams fail", func(t *testing.T) {
		dependencyRepository, _, registry, npms, service, dependency := setup(t)

		registry.On("GetPackage", mock.Anything, "left-pad").Return(dtos.NpmPackageDocument{}, errors.New("registry is down"))
		npms.On("GetQualityReport", mock.Anything, "left-pad").Return(dtos.NpmsPackageReport{}, errors.New("npms is down"))

		result, err := service.FetchDependencyInfo(context.Background(), jobs.GetDependencyInfo{DependencyID: dependency.ID, DependencyName: "left-pad"})
		require.NoError(t, err)
		assert.Equal(t, dtos.EnrichmentFailed, result.Status)

		stored, err := dependencyRepository.ReadByName(context.Background(), "left-pad")
		require.NoError(t, err)
		assert.Empty(t, stored.CurrentVersion)
		assert.Empty(t, stored.License)
	})
}
