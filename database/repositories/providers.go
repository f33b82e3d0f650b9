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

package repositories

import (
	"github.com/l3montree-dev/depwatch/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewDependencyRepository, fx.As(new(shared.DependencyRepository)))),
	fx.Provide(fx.Annotate(NewDependencyVersionRepository, fx.As(new(shared.DependencyVersionRepository)))),
	fx.Provide(fx.Annotate(NewVulnerabilityRepository, fx.As(new(shared.VulnerabilityRepository)))),
	fx.Provide(fx.Annotate(NewVulnerabilityVersionRepository, fx.As(new(shared.VulnerabilityVersionRepository)))),
	fx.Provide(fx.Annotate(NewJobRepository, fx.As(new(shared.JobRepository)))),
	fx.Provide(fx.Annotate(NewRepoRepository, fx.As(new(shared.RepoRepository)))),
	fx.Provide(fx.Annotate(NewRepoDependencyRepository, fx.As(new(shared.RepoDependencyRepository)))),
	fx.Provide(fx.Annotate(NewGithubAppInstallationRepository, fx.As(new(shared.GithubAppInstallationRepository)))),
	fx.Provide(fx.Annotate(NewConfigRepository, fx.As(new(shared.ConfigRepository)))),
)
