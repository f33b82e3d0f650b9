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

	"github.com/google/uuid"
	"github.com/l3montree-dev/depwatch/database/models"
	"github.com/l3montree-dev/depwatch/dtos"
	"github.com/l3montree-dev/depwatch/jobs"
	"github.com/l3montree-dev/depwatch/normalize"
	"github.com/l3montree-dev/depwatch/shared"
	"github.com/pkg/errors"
)

type dependencyEnrichmentService struct {
	dependencyRepository        shared.DependencyRepository
	dependencyVersionRepository shared.DependencyVersionRepository
	npmRegistryClient           shared.NpmRegistryClient
	qualityReportClient         shared.QualityReportClient
}

func NewDependencyEnrichmentService(
	dependencyRepository shared.DependencyRepository,
	dependencyVersionRepository shared.DependencyVersionRepository,
	npmRegistryClient shared.NpmRegistryClient,
	qualityReportClient shared.QualityReportClient,
) *dependencyEnrichmentService {
	return &dependencyEnrichmentService{
		dependencyRepository:        dependencyRepository,
		dependencyVersionRepository: dependencyVersionRepository,
		npmRegistryClient:           npmRegistryClient,
		qualityReportClient:         qualityReportClient,
	}
}

// FetchDependencyInfo pulls the registry document and the quality report of
// the dependency. Failing upstreams are recorded in the result, only store
// errors are returned.
func (s *dependencyEnrichmentService) FetchDependencyInfo(ctx context.Context, job jobs.GetDependencyInfo) (*dtos.EnrichmentResult, error) {
	result := dtos.NewEnrichmentResult(job.JobName())

	dependencyID := job.DependencyID
	if dependencyID == uuid.Nil {
		dependency, err := s.dependencyRepository.ReadByName(ctx, job.DependencyName)
		if err != nil {
			slog.Warn("dependency of enrichment job does not exist", "name", job.DependencyName, "err", err)
			return result.Skip("unknown dependency"), nil
		}
		dependencyID = dependency.ID
	}

	var registry *dtos.NormalizedRegistryPackage
	doc, err := s.npmRegistryClient.GetPackage(ctx, job.DependencyName)
	if err != nil {
		slog.Warn("could not fetch registry document", "name", job.DependencyName, "err", err)
		result.Step("registry", err)
	} else {
		pkg := normalize.RegistryPackage(doc)
		registry = &pkg
		result.Step("registry", nil)

		for _, v := range pkg.Versions {
			version := models.DependencyVersion{
				DependencyID: dependencyID,
				Version:      v.Version,
				VersionID:    v.VersionID,
				PublishDate:  v.PublishDate,
				Purl:         normalize.NpmPurl(job.DependencyName, v.Version),
			}
			if err := s.dependencyVersionRepository.Upsert(ctx, &version); err != nil {
				return result, errors.Wrapf(err, "could not store version %s of %s", v.Version, job.DependencyName)
			}
		}
		result.StepWithCount("versions", len(pkg.Versions))
	}

	var quality *dtos.NormalizedQualityReport
	report, err := s.qualityReportClient.GetQualityReport(ctx, job.DependencyName)
	if err != nil {
		slog.Warn("could not fetch quality report", "name", job.DependencyName, "err", err)
		result.Step("quality-report", err)
	} else {
		q := normalize.QualityReport(report)
		quality = &q
		result.Step("quality-report", nil)
	}

	patch := normalize.BuildDependencyPatch(registry, quality)
	if patch.IsEmpty() {
		result.SkipStep("update")
		return result.Finish(), nil
	}

	if err := s.dependencyRepository.UpdateByName(ctx, job.DependencyName, patch.Updates()); err != nil {
		return result, errors.Wrapf(err, "could not update dependency %s", job.DependencyName)
	}
	result.Step("update", nil)

	return result.Finish(), nil
}
