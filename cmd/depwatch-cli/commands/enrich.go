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

package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/l3montree-dev/depwatch/daemons"
	"github.com/l3montree-dev/depwatch/database/repositories"
	"github.com/l3montree-dev/depwatch/dtos"
	"github.com/l3montree-dev/depwatch/jobs"
	"github.com/l3montree-dev/depwatch/pubsub"
	"github.com/l3montree-dev/depwatch/queue"
	"github.com/l3montree-dev/depwatch/services"
	"github.com/l3montree-dev/depwatch/shared"
	"github.com/l3montree-dev/depwatch/vulndb"
	"github.com/spf13/cobra"
)

type laneProcessor interface {
	ProcessNext(ctx context.Context, lane string) (bool, error)
}

// drainLanes runs due jobs of the lanes in the calling goroutine until a full
// pass over all lanes finds nothing to do. Jobs waiting for a retry are left
// in the queue.
func drainLanes(ctx context.Context, processor laneProcessor, lanes ...string) (int, error) {
	processed := 0
	for {
		found := false
		for _, lane := range lanes {
			ok, err := processor.ProcessNext(ctx, lane)
			if err != nil {
				return processed, err
			}
			if ok {
				found = true
				processed++
			}
		}
		if !found {
			return processed, nil
		}
	}
}

type enrichmentOutput struct {
	Dependency      any `json:"dependency"`
	Versions        any `json:"versions"`
	Vulnerabilities any `json:"vulnerabilities"`
}

func NewEnrichCommand() *cobra.Command {
	enrich := &cobra.Command{
		Use:   "enrich <package>",
		Short: "Creates a dependency and runs its enrichment in the foreground",
		Long: `Creates the dependency if it does not exist, schedules the metadata and the
vulnerability lookup and processes the queue until no due job is left.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, db, err := openDatabase(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			skipVulnerabilities, _ := cmd.Flags().GetBool("skipVulnerabilities")
			output, _ := cmd.Flags().GetString("output")
			return runEnrichment(ctx, db, cmd.OutOrStdout(), output, args[0], skipVulnerabilities)
		},
	}

	enrich.Flags().Bool("skipVulnerabilities", false, "Only fetch the registry metadata")
	enrich.Flags().StringP("output", "o", outputJSON, "Output format. Options: json, yaml")
	return enrich
}

func runEnrichment(ctx context.Context, db shared.DB, out io.Writer, format, name string, skipVulnerabilities bool) error {
	cfg := vulndbConfig()

	dependencyRepository := repositories.NewDependencyRepository(db)
	dependencyVersionRepository := repositories.NewDependencyVersionRepository(db)
	vulnerabilityRepository := repositories.NewVulnerabilityRepository(db)
	vulnerabilityVersionRepository := repositories.NewVulnerabilityVersionRepository(db)

	// nobody else listens, the wake-ups stay in process
	q := queue.NewQueue(repositories.NewJobRepository(db), pubsub.NewMemoryBroker(), queue.DefaultLanes())

	dependencyService := services.NewDependencyService(dependencyRepository, dependencyVersionRepository, q)
	vulnerabilityService := services.NewVulnerabilityService(vulnerabilityRepository, vulnerabilityVersionRepository, vulndb.NewOSVService(cfg.OSVURL), q)

	consumer := daemons.NewEnrichmentConsumer(
		services.NewDependencyEnrichmentService(
			dependencyRepository,
			dependencyVersionRepository,
			vulndb.NewNpmRegistryService(cfg.NpmRegistryURL),
			vulndb.NewNpmsService(cfg.NpmsURL),
		),
		services.NewVulnerabilityEnrichmentService(
			dependencyRepository,
			dependencyVersionRepository,
			vulnerabilityRepository,
			vulnerabilityVersionRepository,
			vulndb.NewOSVService(cfg.OSVURL),
			vulndb.NewNVDService(cfg.NVDURL, cfg.NVDAPIKey),
			q,
		),
	)
	if err := consumer.Register(q); err != nil {
		return err
	}

	dependency, err := dependencyService.CreateDependency(ctx, dtos.DependencyCreateRequest{DependencyName: name})
	if err != nil {
		return err
	}
	lanes := []string{jobs.LaneDependency}
	if !skipVulnerabilities {
		if err := vulnerabilityService.CreateVulnerabilityRequest(ctx, dtos.VulnerabilityRequest{DependencyName: name}); err != nil {
			return err
		}
		lanes = append(lanes, jobs.LaneVulnerabilities)
	}

	processed, err := drainLanes(ctx, q, lanes...)
	if err != nil {
		return err
	}
	slog.Info("enrichment finished", "dependency", name, "jobs", processed)

	output := enrichmentOutput{}
	if output.Dependency, err = dependencyService.Read(ctx, dependency.ID); err != nil {
		return err
	}
	if output.Versions, err = dependencyService.ListVersions(ctx, dependency.ID); err != nil {
		return err
	}
	if output.Vulnerabilities, err = vulnerabilityService.ListByDependency(ctx, dependency.ID); err != nil {
		return err
	}

	return writeStructured(out, format, output)
}
