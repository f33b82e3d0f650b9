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
	"os"

	"github.com/l3montree-dev/depwatch/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewDependencyService, fx.As(new(shared.DependencyService)))),
	fx.Provide(fx.Annotate(NewVulnerabilityService, fx.As(new(shared.VulnerabilityService)))),
	fx.Provide(fx.Annotate(NewDependencyEnrichmentService, fx.As(new(shared.DependencyEnrichmentService)))),
	fx.Provide(fx.Annotate(func(
		dependencyRepository shared.DependencyRepository,
		dependencyVersionRepository shared.DependencyVersionRepository,
		vulnerabilityRepository shared.VulnerabilityRepository,
		vulnerabilityVersionRepository shared.VulnerabilityVersionRepository,
		osvClient shared.OSVClient,
		nvdClient shared.NVDClient,
		jobEnqueuer shared.JobEnqueuer,
	) *vulnerabilityEnrichmentService {
		return NewVulnerabilityEnrichmentService(
			dependencyRepository,
			dependencyVersionRepository,
			vulnerabilityRepository,
			vulnerabilityVersionRepository,
			osvClient,
			nvdClient,
			jobEnqueuer,
			WithAffectedRangeSweep(os.Getenv("AFFECTED_RANGE_SWEEP") == "true"),
		)
	}, fx.As(new(shared.VulnerabilityEnrichmentService)))),
	fx.Provide(fx.Annotate(NewRepositoryService, fx.As(new(shared.RepositoryService)))),
	fx.Provide(fx.Annotate(NewDatabaseLeaderElector, fx.As(new(shared.LeaderElector)))),
)
