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
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depwatch/database/models"
	"github.com/l3montree-dev/depwatch/dtos"
	"github.com/l3montree-dev/depwatch/shared"
	"github.com/pkg/errors"
)

type repositoryService struct {
	repoRepository                  shared.RepoRepository
	repoDependencyRepository        shared.RepoDependencyRepository
	githubAppInstallationRepository shared.GithubAppInstallationRepository
	githubAppClient                 shared.GithubAppClient
	dependencyService               shared.DependencyService
	vulnerabilityService            shared.VulnerabilityService
}

func NewRepositoryService(
	repoRepository shared.RepoRepository,
	repoDependencyRepository shared.RepoDependencyRepository,
	githubAppInstallationRepository shared.GithubAppInstallationRepository,
	githubAppClient shared.GithubAppClient,
	dependencyService shared.DependencyService,
	vulnerabilityService shared.VulnerabilityService,
) *repositoryService {
	return &repositoryService{
		repoRepository:                  repoRepository,
		repoDependencyRepository:        repoDependencyRepository,
		githubAppInstallationRepository: githubAppInstallationRepository,
		githubAppClient:                 githubAppClient,
		dependencyService:               dependencyService,
		vulnerabilityService:            vulnerabilityService,
	}
}

// SyncInstallation stores every repository the github app installation can
// access.
func (s *repositoryService) SyncInstallation(ctx context.Context, installationID int64) ([]models.Repo, error) {
	accountLogin, githubRepos, err := s.githubAppClient.ListInstallationRepositories(ctx, installationID)
	if err != nil {
		return nil, errors.Wrap(err, "could not list installation repositories")
	}

	if err := s.githubAppInstallationRepository.Save(ctx, &models.GithubAppInstallation{
		InstallationID: installationID,
		AccountLogin:   accountLogin,
	}); err != nil {
		return nil, errors.Wrap(err, "could not save installation")
	}

	repos := make([]models.Repo, 0, len(githubRepos))
	for _, r := range githubRepos {
		stored, err := s.repoRepository.UpsertByGithubID(ctx, &models.Repo{
			GithubID:       r.ID,
			InstallationID: installationID,
			FullName:       r.FullName,
			Owner:          r.Owner,
			Name:           r.Name,
			DefaultBranch:  r.DefaultBranch,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "could not store repository %s", r.FullName)
		}
		repos = append(repos, stored)
	}

	slog.Info("synced github app installation", "installationID", installationID, "account", accountLogin, "repositories", len(repos))
	return repos, nil
}

func (s *repositoryService) ListPaged(ctx context.Context, pageInfo shared.PageInfo) (shared.Paged[models.Repo], error) {
	return s.repoRepository.ListPaged(ctx, pageInfo)
}

// CatalogDependencies reads the package.json of the default branch and
// creates every listed dependency.
func (s *repositoryService) CatalogDependencies(ctx context.Context, repoID uuid.UUID) ([]models.RepoDependency, error) {
	repo, err := s.repoRepository.Read(ctx, repoID)
	if err != nil {
		return nil, err
	}

	content, err := s.githubAppClient.GetFileContent(ctx, repo.InstallationID, repo.Owner, repo.Name, repo.DefaultBranch, "package.json")
	if err != nil {
		return nil, errors.Wrapf(err, "could not read package.json of %s", repo.FullName)
	}

	var manifest dtos.PackageJSON
	if err := json.Unmarshal(content, &manifest); err != nil {
		return nil, errors.Wrapf(err, "could not parse package.json of %s", repo.FullName)
	}

	for _, entry := range manifestEntries(manifest) {
		dependency, err := s.dependencyService.CreateDependency(ctx, dtos.DependencyCreateRequest{DependencyName: entry.name})
		if err != nil {
			return nil, err
		}
		if err := s.repoDependencyRepository.Upsert(ctx, &models.RepoDependency{
			RepoID:       repo.ID,
			DependencyID: dependency.ID,
			VersionRange: entry.versionRange,
			IsDev:        entry.isDev,
		}); err != nil {
			return nil, errors.Wrapf(err, "could not attach %s to %s", entry.name, repo.FullName)
		}
	}

	return s.repoDependencyRepository.ListByRepo(ctx, repo.ID)
}

type manifestEntry struct {
	name         string
	versionRange string
	isDev        bool
}

// manifestEntries flattens the manifest, a package listed in both sections
// counts as a production dependency
func manifestEntries(manifest dtos.PackageJSON) []manifestEntry {
	entries := make([]manifestEntry, 0, len(manifest.Dependencies)+len(manifest.DevDependencies))
	for name, versionRange := range manifest.Dependencies {
		entries = append(entries, manifestEntry{name: name, versionRange: versionRange})
	}
	for name, versionRange := range manifest.DevDependencies {
		if _, ok := manifest.Dependencies[name]; ok {
			continue
		}
		entries = append(entries, manifestEntry{name: name, versionRange: versionRange, isDev: true})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].name < entries[j].name
	})
	return entries
}

func (s *repositoryService) GetInstalledDependenciesByRepoID(ctx context.Context, repoID uuid.UUID) ([]models.RepoDependency, error) {
	return s.repoDependencyRepository.ListByRepo(ctx, repoID)
}

// ScanVulnerabilities requests a vulnerability lookup for every dependency of
// the repository and returns the number of requests.
func (s *repositoryService) ScanVulnerabilities(ctx context.Context, repoID uuid.UUID) (int, error) {
	deps, err := s.repoDependencyRepository.ListByRepo(ctx, repoID)
	if err != nil {
		return 0, err
	}

	for i, dep := range deps {
		if err := s.vulnerabilityService.CreateVulnerabilityRequest(ctx, dtos.VulnerabilityRequest{
			DependencyName: dep.Dependency.Name,
			Ecosystem:      defaultEcosystem,
		}); err != nil {
			return i, err
		}
	}
	return len(deps), nil
}
