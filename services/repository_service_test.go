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

	"github.com/google/uuid"
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

type repositoryFixture struct {
	db           shared.DB
	githubClient *mocks.GithubAppClient
	enqueuer     *mocks.JobEnqueuer
	service      *repositoryService
}

func newRepositoryFixture(t *testing.T) repositoryFixture {
	db := integrationtestutil.InitSqliteDatabase(t)
	githubClient := mocks.NewGithubAppClient(t)
	enqueuer := mocks.NewJobEnqueuer(t)

	dependencyService := NewDependencyService(repositories.NewDependencyRepository(db), repositories.NewDependencyVersionRepository(db), enqueuer)
	vulnerabilityService := NewVulnerabilityService(repositories.NewVulnerabilityRepository(db), repositories.NewVulnerabilityVersionRepository(db), mocks.NewOSVClient(t), enqueuer)

	return repositoryFixture{
		db:           db,
		githubClient: githubClient,
		enqueuer:     enqueuer,
		service: NewRepositoryService(
			repositories.NewRepoRepository(db),
			repositories.NewRepoDependencyRepository(db),
			repositories.NewGithubAppInstallationRepository(db),
			githubClient,
			dependencyService,
			vulnerabilityService,
		),
	}
}

var exampleRepo = shared.GithubRepository{ID: 42, Owner: "l3montree-dev", Name: "frontend", FullName: "l3montree-dev/frontend", DefaultBranch: "main"}

func TestSyncInstallation(t *testing.T) {
	t.Run("should store the installation and its repositories", func(t *testing.T) {
		f := newRepositoryFixture(t)
		f.githubClient.On("ListInstallationRepositories", mock.Anything, int64(7)).Return("l3montree-dev", []shared.GithubRepository{exampleRepo}, nil)

		repos, err := f.service.SyncInstallation(context.Background(), 7)
		require.NoError(t, err)
		require.Len(t, repos, 1)
		assert.Equal(t, "l3montree-dev/frontend", repos[0].FullName)
		assert.Equal(t, int64(7), repos[0].InstallationID)

		installation, err := repositories.NewGithubAppInstallationRepository(f.db).Read(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "l3montree-dev", installation.AccountLogin)
	})

	t.Run("should keep the repository id on a second sync", func(t *testing.T) {
		f := newRepositoryFixture(t)
		renamed := exampleRepo
		renamed.Name = "web"
		renamed.FullName = "l3montree-dev/web"
		f.githubClient.On("ListInstallationRepositories", mock.Anything, int64(7)).Return("l3montree-dev", []shared.GithubRepository{exampleRepo}, nil).Once()
		f.githubClient.On("ListInstallationRepositories", mock.Anything, int64(7)).Return("l3montree-dev", []shared.GithubRepository{renamed}, nil).Once()

		first, err := f.service.SyncInstallation(context.Background(), 7)
		require.NoError(t, err)
		second, err := f.service.SyncInstallation(context.Background(), 7)
		require.NoError(t, err)

		assert.Equal(t, first[0].ID, second[0].ID)
		assert.Equal(t, "l3montree-dev/web", second[0].FullName)
	})

	t.Run("should not store anything if github fails", func(t *testing.T) {
		f := newRepositoryFixture(t)
		f.githubClient.On("ListInstallationRepositories", mock.Anything, int64(7)).Return("", nil, errors.New("bad credentials"))

		_, err := f.service.SyncInstallation(context.Background(), 7)
		assert.Error(t, err)

		_, err = repositories.NewGithubAppInstallationRepository(f.db).Read(context.Background(), 7)
		assert.Error(t, err)
	})
}

func TestCatalogDependencies(t *testing.T) {
	t.Run("should create every dependency of the manifest and attach it to the repository", func(t *testing.T) {
		f := newRepositoryFixture(t)
		f.githubClient.On("ListInstallationRepositories", mock.Anything, int64(7)).Return("l3montree-dev", []shared.GithubRepository{exampleRepo}, nil)
		f.githubClient.On("GetFileContent", mock.Anything, int64(7), "l3montree-dev", "frontend", "main", "package.json").Return([]byte(`{
			"name": "frontend",
			"dependencies": {"left-pad": "^1.0.0", "react": "18.2.0"},
			"devDependencies": {"vitest": "^1.0.0", "react": "18.2.0"}
		}`), nil)
		f.enqueuer.On("Enqueue", mock.Anything, mock.Anything, jobs.DependencyInfoOptions()).Return(models.Job{}, nil).Times(3)

		repos, err := f.service.SyncInstallation(context.Background(), 7)
		require.NoError(t, err)

		deps, err := f.service.CatalogDependencies(context.Background(), repos[0].ID)
		require.NoError(t, err)
		require.Len(t, deps, 3)

		byName := map[string]models.RepoDependency{}
		for _, d := range deps {
			byName[d.Dependency.Name] = d
		}
		assert.Equal(t, "^1.0.0", byName["left-pad"].VersionRange)
		assert.False(t, byName["react"].IsDev)
		assert.True(t, byName["vitest"].IsDev)
	})

	t.Run("should fail for a repository without a parsable manifest", func(t *testing.T) {
		f := newRepositoryFixture(t)
		f.githubClient.On("ListInstallationRepositories", mock.Anything, int64(7)).Return("l3montree-dev", []shared.GithubRepository{exampleRepo}, nil)
		f.githubClient.On("GetFileContent", mock.Anything, int64(7), "l3montree-dev", "frontend", "main", "package.json").Return([]byte(`not json`), nil)

		repos, err := f.service.SyncInstallation(context.Background(), 7)
		require.NoError(t, err)

		_, err = f.service.CatalogDependencies(context.Background(), repos[0].ID)
		assert.Error(t, err)
	})

	t.Run("should fail for an unknown repository", func(t *testing.T) {
		f := newRepositoryFixture(t)
		_, err := f.service.CatalogDependencies(context.Background(), uuid.New())
		assert.Error(t, err)
	})
}

func TestScanVulnerabilities(t *testing.T) {
	f := newRepositoryFixture(t)
	f.githubClient.On("ListInstallationRepositories", mock.Anything, int64(7)).Return("l3montree-dev", []shared.GithubRepository{exampleRepo}, nil)
	f.githubClient.On("GetFileContent", mock.Anything, int64(7), "l3montree-dev", "frontend", "main", "package.json").Return([]byte(`{"dependencies": {"left-pad": "^1.0.0", "react": "18.2.0"}}`), nil)
	f.enqueuer.On("Enqueue", mock.Anything, mock.Anything, jobs.DependencyInfoOptions()).Return(models.Job{}, nil)

	requested := []string{}
	f.enqueuer.On("Enqueue", mock.Anything, mock.Anything, jobs.VulnerabilityInfoOptions()).Run(func(args mock.Arguments) {
		job := args.Get(1).(jobs.GetVulnerabilityInfo)
		assert.Equal(t, "npm", job.Ecosystem)
		requested = append(requested, job.DependencyName)
	}).Return(models.Job{}, nil)

	repos, err := f.service.SyncInstallation(context.Background(), 7)
	require.NoError(t, err)
	_, err = f.service.CatalogDependencies(context.Background(), repos[0].ID)
	require.NoError(t, err)

	count, err := f.service.ScanVulnerabilities(context.Background(), repos[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.ElementsMatch(t, []string{"left-pad", "react"}, requested)
}

func TestManifestEntries(t *testing.T) {
	entries := manifestEntries(dtos.PackageJSON{
		Dependencies:    map[string]string{"b": "1", "a": "2"},
		DevDependencies: map[string]string{"c": "3", "a": "4"},
	})
	assert.Equal(t, []manifestEntry{
		{name: "a", versionRange: "2"},
		{name: "b", versionRange: "1"},
		{name: "c", versionRange: "3", isDev: true},
	}, entries)
}
