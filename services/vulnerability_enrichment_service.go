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
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depwatch/database/models"
	"github.com/l3montree-dev/depwatch/dtos"
	"github.com/l3montree-dev/depwatch/jobs"
	"github.com/l3montree-dev/depwatch/normalize"
	"github.com/l3montree-dev/depwatch/shared"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// maximum number of vulnerabilities of a single OSV answer processed at once
const vulnerabilityParallelism = 5

var osvUpdateColumns = []string{
	"dependency_id",
	"summary",
	"details",
	"cve_id",
	"published",
	"cwe_ids",
	"nvd_published_at",
	"intensity",
	"references",
}

var nvdUpdateColumns = []string{
	"nvd_vuln_status",
	"nvd_description",
	"weaknesses",
	"severity",
}

type VulnerabilityEnrichmentOption func(*vulnerabilityEnrichmentService)

// WithAffectedRangeSweep additionally marks every known version between the
// introduced and the fixed version as not-fixed.
func WithAffectedRangeSweep(enabled bool) VulnerabilityEnrichmentOption {
	return func(s *vulnerabilityEnrichmentService) {
		s.affectedRangeSweep = enabled
	}
}

type vulnerabilityEnrichmentService struct {
	dependencyRepository           shared.DependencyRepository
	dependencyVersionRepository    shared.DependencyVersionRepository
	vulnerabilityRepository        shared.VulnerabilityRepository
	vulnerabilityVersionRepository shared.VulnerabilityVersionRepository
	osvClient                      shared.OSVClient
	nvdClient                      shared.NVDClient
	jobEnqueuer                    shared.JobEnqueuer

	affectedRangeSweep bool
}

func NewVulnerabilityEnrichmentService(
	dependencyRepository shared.DependencyRepository,
	dependencyVersionRepository shared.DependencyVersionRepository,
	vulnerabilityRepository shared.VulnerabilityRepository,
	vulnerabilityVersionRepository shared.VulnerabilityVersionRepository,
	osvClient shared.OSVClient,
	nvdClient shared.NVDClient,
	jobEnqueuer shared.JobEnqueuer,
	opts ...VulnerabilityEnrichmentOption,
) *vulnerabilityEnrichmentService {
	s := &vulnerabilityEnrichmentService{
		dependencyRepository:           dependencyRepository,
		dependencyVersionRepository:    dependencyVersionRepository,
		vulnerabilityRepository:        vulnerabilityRepository,
		vulnerabilityVersionRepository: vulnerabilityVersionRepository,
		osvClient:                      osvClient,
		nvdClient:                      nvdClient,
		jobEnqueuer:                    jobEnqueuer,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// FetchVulnerabilityInfo stores every OSV vulnerability of the dependency
// together with the versions in which it was introduced and fixed. Details
// from the NVD are fetched later by a separate job per CVE.
func (s *vulnerabilityEnrichmentService) FetchVulnerabilityInfo(ctx context.Context, job jobs.GetVulnerabilityInfo) (*dtos.EnrichmentResult, error) {
	result := dtos.NewEnrichmentResult(job.JobName())

	res, err := s.osvClient.QueryPackage(ctx, job.DependencyName, job.Ecosystem)
	if err != nil {
		slog.Warn("could not query osv", "name", job.DependencyName, "ecosystem", job.Ecosystem, "err", err)
		result.Step("osv", err)
		return result.Finish(), nil
	}
	if len(res.Vulns) == 0 {
		slog.Info("no vulnerabilities found", "name", job.DependencyName, "ecosystem", job.Ecosystem)
		return result.Skip("no vulnerabilities"), nil
	}
	result.StepWithCount("osv", len(res.Vulns))

	dependency, err := s.dependencyRepository.ReadByName(ctx, job.DependencyName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		slog.Warn("vulnerabilities found for unknown dependency", "name", job.DependencyName)
		return result.Skip("unknown dependency"), nil
	}
	if err != nil {
		return result, errors.Wrap(err, "could not read dependency")
	}

	var knownVersions []models.DependencyVersion
	if s.affectedRangeSweep {
		knownVersions, err = s.dependencyVersionRepository.ListByDependency(ctx, dependency.ID)
		if err != nil {
			return result, errors.Wrap(err, "could not list dependency versions")
		}
	}

	var dangling, enqueued, stored atomic.Int32
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(vulnerabilityParallelism)

	for _, vuln := range normalize.OsvQueryResult(res) {
		group.Go(func() error {
			if vuln.CveID != "" {
				if _, err := s.jobEnqueuer.Enqueue(groupCtx, jobs.GetCVEInfo{
					DependencyID: dependency.ID,
					CveID:        vuln.CveID,
					Vuln:         vuln,
				}, jobs.CVEInfoOptions()); err != nil {
					return errors.Wrapf(err, "could not enqueue cve lookup of %s", vuln.CveID)
				}
				enqueued.Add(1)
			}

			storedVuln, err := s.vulnerabilityRepository.UpsertByExternalID(groupCtx, vulnerabilityFromOSV(dependency.ID, vuln), osvUpdateColumns)
			if err != nil {
				return errors.Wrapf(err, "could not store vulnerability %s", vuln.ID)
			}
			stored.Add(1)

			for _, affected := range vuln.Affected {
				ok, err := s.storeAffectedRange(groupCtx, dependency.ID, storedVuln.ID, affected, knownVersions)
				if err != nil {
					return err
				}
				if !ok {
					dangling.Add(1)
				}
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return result, err
	}

	result.StepWithCount("vulnerabilities", int(stored.Load()))
	result.Dangling = int(dangling.Load())
	result.Enqueued = int(enqueued.Load())
	return result.Finish(), nil
}

// storeAffectedRange writes the introduced and the fixed row of a range. It
// reports false if one of the two versions is not known.
func (s *vulnerabilityEnrichmentService) storeAffectedRange(ctx context.Context, dependencyID, vulnerabilityID uuid.UUID, affected dtos.AffectedRange, knownVersions []models.DependencyVersion) (bool, error) {
	if affected.Introduced == "" || affected.Fixed == "" {
		return false, nil
	}

	introduced, err := s.dependencyVersionRepository.FindByVersion(ctx, dependencyID, affected.Introduced)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "could not resolve introduced version")
	}

	fixed, err := s.dependencyVersionRepository.FindByVersion(ctx, dependencyID, affected.Fixed)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "could not resolve fixed version")
	}

	rows := []models.VulnerabilityVersion{
		{DependencyID: dependencyID, VulnerabilityID: vulnerabilityID, DependencyVersionID: introduced.ID, Status: models.VulnerabilityVersionStatusIntroduced, Source: affected.Source},
		{DependencyID: dependencyID, VulnerabilityID: vulnerabilityID, DependencyVersionID: fixed.ID, Status: models.VulnerabilityVersionStatusFixed, Source: affected.Source},
	}
	// the sweep covers the versions strictly between the two endpoints
	for _, v := range knownVersions {
		if v.ID == introduced.ID || v.ID == fixed.ID || normalize.SemverCompare(v.Version, affected.Introduced) == 0 {
			continue
		}
		if normalize.InAffectedRange(v.Version, affected.Introduced, affected.Fixed) {
			rows = append(rows, models.VulnerabilityVersion{DependencyID: dependencyID, VulnerabilityID: vulnerabilityID, DependencyVersionID: v.ID, Status: models.VulnerabilityVersionStatusNotFixed, Source: affected.Source})
		}
	}

	for i := range rows {
		if err := s.vulnerabilityVersionRepository.Upsert(ctx, &rows[i]); err != nil {
			return false, errors.Wrap(err, "could not store vulnerability version")
		}
	}
	return true, nil
}

func vulnerabilityFromOSV(dependencyID uuid.UUID, vuln dtos.NormalizedOSVVuln) *models.Vulnerability {
	return &models.Vulnerability{
		ExternalID:     vuln.ID,
		DependencyID:   dependencyID,
		Summary:        vuln.Summary,
		Details:        vuln.Details,
		CveID:          vuln.CveID,
		Published:      vuln.Published,
		CweIDs:         datatypes.NewJSONSlice(vuln.CweIDs),
		NvdPublishedAt: vuln.NvdPublishedAt,
		Intensity:      vuln.DBSeverity,
		References:     datatypes.NewJSONSlice(vuln.References),
		// only used when the row is created, the cve lookup owns the severity
		Severity:   datatypes.NewJSONType(normalize.MergeCvssFromOsv(models.CvssSeverity{}, vuln.CvssSeverity)),
		Weaknesses: datatypes.NewJSONSlice([]string{}),
	}
}

// FetchCVEInfo completes a stored vulnerability with the NVD record of its
// CVE. The CVSS vectors of OSV fill the versions the NVD does not provide.
func (s *vulnerabilityEnrichmentService) FetchCVEInfo(ctx context.Context, job jobs.GetCVEInfo) (*dtos.EnrichmentResult, error) {
	result := dtos.NewEnrichmentResult(job.JobName())

	res, err := s.nvdClient.GetCVE(ctx, job.CveID)
	if err != nil {
		slog.Warn("could not fetch cve from nvd", "cve", job.CveID, "err", err)
		result.Step("nvd", err)
		return result.Finish(), nil
	}

	cve, err := normalize.NvdCveResult(res)
	if err != nil {
		slog.Info("nvd does not know the cve", "cve", job.CveID, "err", err)
		return result.Skip("cve not found in nvd"), nil
	}
	result.Step("nvd", nil)

	severity := normalize.MergeCvssFromOsv(normalize.SeverityFromNvdMetrics(cve.Metrics), job.Vuln.CvssSeverity)

	vuln := vulnerabilityFromOSV(job.DependencyID, job.Vuln)
	if vuln.ExternalID == "" {
		vuln.ExternalID = job.CveID
	}
	vuln.CveID = job.CveID
	vuln.NvdVulnStatus = cve.NvdVulnStatus
	vuln.NvdDescription = cve.NvdDescription
	vuln.Weaknesses = datatypes.NewJSONSlice(cve.Weaknesses)
	vuln.Severity = datatypes.NewJSONType(severity)

	if _, err := s.vulnerabilityRepository.UpsertByExternalID(ctx, vuln, nvdUpdateColumns); err != nil {
		return result, errors.Wrapf(err, "could not store nvd details of %s", job.CveID)
	}
	result.Step("update", nil)

	return result.Finish(), nil
}
