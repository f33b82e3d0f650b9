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

package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depwatch/database/models"
	"github.com/l3montree-dev/depwatch/dtos"
	"github.com/l3montree-dev/depwatch/jobs"
)

type Tabler interface {
	TableName() string
}

type Repository[ID any, T Tabler] interface {
	Read(ctx context.Context, id ID) (T, error)
}

type DependencyRepository interface {
	Repository[uuid.UUID, models.Dependency]
	InsertIfNotExists(ctx context.Context, name string) (models.Dependency, error)
	ReadByName(ctx context.Context, name string) (models.Dependency, error)
	UpdateByName(ctx context.Context, name string, updates map[string]any) error
	ListPaged(ctx context.Context, pageInfo PageInfo, search string) (Paged[models.Dependency], error)
	ListActive(ctx context.Context) ([]models.Dependency, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type DependencyVersionRepository interface {
	Upsert(ctx context.Context, version *models.DependencyVersion) error
	FindByVersion(ctx context.Context, dependencyID uuid.UUID, version string) (models.DependencyVersion, error)
	ListByDependency(ctx context.Context, dependencyID uuid.UUID) ([]models.DependencyVersion, error)
}

type VulnerabilityRepository interface {
	UpsertByExternalID(ctx context.Context, vuln *models.Vulnerability, updateColumns []string) (models.Vulnerability, error)
	ReadByExternalID(ctx context.Context, externalID string) (models.Vulnerability, error)
	ListByDependency(ctx context.Context, dependencyID uuid.UUID) ([]models.Vulnerability, error)
}

type VulnerabilityVersionRepository interface {
	Upsert(ctx context.Context, vulnerabilityVersion *models.VulnerabilityVersion) error
	ListByVulnerability(ctx context.Context, vulnerabilityID uuid.UUID) ([]models.VulnerabilityVersion, error)
}

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	Read(ctx context.Context, id uuid.UUID) (models.Job, error)
	ClaimNext(ctx context.Context, lane string, now time.Time) (models.Job, bool, error)
	RequeueStale(ctx context.Context, lockedBefore time.Time) (int64, error)
	CountByState(ctx context.Context, lane string, state models.JobState) (int64, error)
}

type RepoRepository interface {
	Repository[uuid.UUID, models.Repo]
	UpsertByGithubID(ctx context.Context, repo *models.Repo) (models.Repo, error)
	ListPaged(ctx context.Context, pageInfo PageInfo) (Paged[models.Repo], error)
	ListByInstallation(ctx context.Context, installationID int64) ([]models.Repo, error)
}

type RepoDependencyRepository interface {
	Upsert(ctx context.Context, repoDependency *models.RepoDependency) error
	ListByRepo(ctx context.Context, repoID uuid.UUID) ([]models.RepoDependency, error)
}

type GithubAppInstallationRepository interface {
	Save(ctx context.Context, installation *models.GithubAppInstallation) error
	Read(ctx context.Context, installationID int64) (models.GithubAppInstallation, error)
}

type ConfigRepository interface {
	GetJSON(ctx context.Context, key string, v any) error
	SetJSON(ctx context.Context, key string, v any) error
}

type LeaderElector interface {
	Start(ctx context.Context)
	IsLeader() bool
}

type NpmRegistryClient interface {
	GetPackage(ctx context.Context, name string) (dtos.NpmPackageDocument, error)
}

type QualityReportClient interface {
	GetQualityReport(ctx context.Context, name string) (dtos.NpmsPackageReport, error)
}

type OSVClient interface {
	QueryPackage(ctx context.Context, name, ecosystem string) (dtos.OSVQueryResponse, error)
	QueryPackageVersion(ctx context.Context, name, ecosystem, version string) (dtos.OSVQueryResponse, error)
}

type NVDClient interface {
	GetCVE(ctx context.Context, cveID string) (dtos.NVDResponse, error)
}

type GithubRepository struct {
	ID            int64
	Owner         string
	Name          string
	FullName      string
	DefaultBranch string
}

type GithubAppClient interface {
	ListInstallationRepositories(ctx context.Context, installationID int64) (string, []GithubRepository, error)
	GetFileContent(ctx context.Context, installationID int64, owner, repo, ref, path string) ([]byte, error)
}

type JobEnqueuer interface {
	Enqueue(ctx context.Context, job jobs.Job, opts jobs.EnqueueOptions) (models.Job, error)
}

type DependencyService interface {
	CreateDependency(ctx context.Context, req dtos.DependencyCreateRequest) (models.Dependency, error)
	Read(ctx context.Context, id uuid.UUID) (models.Dependency, error)
	ReadByName(ctx context.Context, name string) (models.Dependency, error)
	ListPaged(ctx context.Context, pageInfo PageInfo, search string) (Paged[models.Dependency], error)
	ListVersions(ctx context.Context, id uuid.UUID) ([]models.DependencyVersion, error)
	Delete(ctx context.Context, id uuid.UUID) error
	RefreshAll(ctx context.Context) (int, error)
}

type VulnerabilityService interface {
	CreateVulnerabilityRequest(ctx context.Context, req dtos.VulnerabilityRequest) error
	QueryVersionVulnerabilities(ctx context.Context, name, ecosystem, version string) ([]dtos.NormalizedOSVVuln, error)
	ListByDependency(ctx context.Context, dependencyID uuid.UUID) ([]models.Vulnerability, error)
	ReadByExternalID(ctx context.Context, externalID string) (models.Vulnerability, error)
	ListAffectedVersions(ctx context.Context, externalID string) ([]models.VulnerabilityVersion, error)
}

type DependencyEnrichmentService interface {
	FetchDependencyInfo(ctx context.Context, job jobs.GetDependencyInfo) (*dtos.EnrichmentResult, error)
}

type VulnerabilityEnrichmentService interface {
	FetchVulnerabilityInfo(ctx context.Context, job jobs.GetVulnerabilityInfo) (*dtos.EnrichmentResult, error)
	FetchCVEInfo(ctx context.Context, job jobs.GetCVEInfo) (*dtos.EnrichmentResult, error)
}

type RepositoryService interface {
	SyncInstallation(ctx context.Context, installationID int64) ([]models.Repo, error)
	ListPaged(ctx context.Context, pageInfo PageInfo) (Paged[models.Repo], error)
	CatalogDependencies(ctx context.Context, repoID uuid.UUID) ([]models.RepoDependency, error)
	GetInstalledDependenciesByRepoID(ctx context.Context, repoID uuid.UUID) ([]models.RepoDependency, error)
	ScanVulnerabilities(ctx context.Context, repoID uuid.UUID) (int, error)
}
