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

package daemons

import (
	"context"
	"log/slog"

	"github.com/l3montree-dev/depwatch/dtos"
	"github.com/l3montree-dev/depwatch/jobs"
	"github.com/l3montree-dev/depwatch/queue"
	"github.com/l3montree-dev/depwatch/shared"
	"github.com/pkg/errors"
)

type handlerRegistry interface {
	Register(lane string, handler queue.Handler) error
}

// EnrichmentConsumer binds the enrichment workers to the queue lanes
type EnrichmentConsumer struct {
	dependencyEnrichmentService    shared.DependencyEnrichmentService
	vulnerabilityEnrichmentService shared.VulnerabilityEnrichmentService
}

func NewEnrichmentConsumer(dependencyEnrichmentService shared.DependencyEnrichmentService, vulnerabilityEnrichmentService shared.VulnerabilityEnrichmentService) *EnrichmentConsumer {
	return &EnrichmentConsumer{
		dependencyEnrichmentService:    dependencyEnrichmentService,
		vulnerabilityEnrichmentService: vulnerabilityEnrichmentService,
	}
}

func (c *EnrichmentConsumer) Register(registry handlerRegistry) error {
	if err := registry.Register(jobs.LaneDependency, c.handleDependencyJob); err != nil {
		return err
	}
	return registry.Register(jobs.LaneVulnerabilities, c.handleVulnerabilityJob)
}

func (c *EnrichmentConsumer) handleDependencyJob(ctx context.Context, job jobs.Job) error {
	switch j := job.(type) {
	case jobs.GetDependencyInfo:
		return logResult(c.dependencyEnrichmentService.FetchDependencyInfo(ctx, j))
	default:
		return errors.Errorf("job %s does not belong to the %s lane", job.JobName(), jobs.LaneDependency)
	}
}

func (c *EnrichmentConsumer) handleVulnerabilityJob(ctx context.Context, job jobs.Job) error {
	switch j := job.(type) {
	case jobs.GetVulnerabilityInfo:
		return logResult(c.vulnerabilityEnrichmentService.FetchVulnerabilityInfo(ctx, j))
	case jobs.GetCVEInfo:
		return logResult(c.vulnerabilityEnrichmentService.FetchCVEInfo(ctx, j))
	default:
		return errors.Errorf("job %s does not belong to the %s lane", job.JobName(), jobs.LaneVulnerabilities)
	}
}

func logResult(result *dtos.EnrichmentResult, err error) error {
	if err != nil {
		return err
	}
	switch result.Status {
	case dtos.EnrichmentFailed, dtos.EnrichmentPartial:
		slog.Warn("enrichment finished with failures", "job", result.Job, "status", result.Status, "steps", result.Steps)
	default:
		slog.Info("enrichment finished", "job", result.Job, "status", result.Status, "reason", result.Reason, "dangling", result.Dangling, "enqueued", result.Enqueued)
	}
	return nil
}
