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

package daemons_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/l3montree-dev/depwatch/daemons"
	"github.com/l3montree-dev/depwatch/database/models"
	"github.com/l3montree-dev/depwatch/database/repositories"
	"github.com/l3montree-dev/depwatch/dtos"
	"github.com/l3montree-dev/depwatch/integrationtestutil"
	"github.com/l3montree-dev/depwatch/pubsub"
	"github.com/l3montree-dev/depwatch/queue"
	"github.com/l3montree-dev/depwatch/services"
	"github.com/l3montree-dev/depwatch/vulndb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUpstream(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/left-pad", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"name": "left-pad",
			"description": "String left pad",
			"dist-tags": {"latest": "1.3.0"},
			"license": "WTFPL",
			"versions": {
				"1.0.0": {"name": "left-pad", "version": "1.0.0"},
				"1.1.0": {"name": "left-pad", "version": "1.1.0"},
				"1.3.0": {"name": "left-pad", "version": "1.3.0"}
			},
			"time": {
				"1.0.0": "2016-03-01T00:00:00.000Z",
				"1.1.0": "2016-04-01T00:00:00.000Z",
				"1.3.0": "2018-04-09T00:00:00.000Z"
			}
		}`)) // nolint:errcheck
	})
	mux.HandleFunc("/v2/package/left-pad", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"collected":{"metadata":{"name":"left-pad","license":"WTFPL"}}}`)) // nolint:errcheck
	})
	mux.HandleFunc("/v1/query", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"vulns":[{
			"id": "GHSA-xxxx-yyyy-zzzz",
			"aliases": ["CVE-2021-1234"],
			"summary": "Denial of service",
			"affected": [{
				"package": {"name": "left-pad", "ecosystem": "npm"},
				"ranges": [{"type": "SEMVER", "events": [{"introduced": "1.0.0"}, {"fixed": "1.3.0"}]}]
			}],
			"database_specific": {"severity": "HIGH"}
		}]}`)) // nolint:errcheck
	})
	mux.HandleFunc("/rest/json/cves/2.0", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"vulnerabilities":[{"cve":{"id":"CVE-2021-1234","vulnStatus":"Analyzed","descriptions":[{"lang":"en","value":"left-pad dos"}]}}]}`)) // nolint:errcheck
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestEnrichmentAgainstPostgres(t *testing.T) {
	if os.Getenv("INTEGRATION_TESTS") != "true" {
		t.Skip("set INTEGRATION_TESTS=true to run tests against a postgres container")
	}

	db, cfg, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	broker, err := pubsub.BrokerFactory(cfg)
	require.NoError(t, err)

	upstream := newUpstream(t)

	dependencyRepository := repositories.NewDependencyRepository(db)
	dependencyVersionRepository := repositories.NewDependencyVersionRepository(db)
	vulnerabilityRepository := repositories.NewVulnerabilityRepository(db)
	vulnerabilityVersionRepository := repositories.NewVulnerabilityVersionRepository(db)
	osvClient := vulndb.NewOSVService(upstream.URL)

	q := queue.NewQueue(repositories.NewJobRepository(db), broker, queue.DefaultLanes(), queue.WithPollInterval(100*time.Millisecond))
	consumer := daemons.NewEnrichmentConsumer(
		services.NewDependencyEnrichmentService(dependencyRepository, dependencyVersionRepository, vulndb.NewNpmRegistryService(upstream.URL), vulndb.NewNpmsService(upstream.URL)),
		services.NewVulnerabilityEnrichmentService(dependencyRepository, dependencyVersionRepository, vulnerabilityRepository, vulnerabilityVersionRepository, osvClient, vulndb.NewNVDService(upstream.URL, ""), q),
	)
	require.NoError(t, consumer.Register(q))

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, q.Start(ctx))
	defer func() {
		cancel()
		q.Wait()
	}()

	dependencyService := services.NewDependencyService(dependencyRepository, dependencyVersionRepository, q)
	vulnerabilityService := services.NewVulnerabilityService(vulnerabilityRepository, vulnerabilityVersionRepository, osvClient, q)

	dependency, err := dependencyService.CreateDependency(context.Background(), dtos.DependencyCreateRequest{DependencyName: "left-pad"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		versions, err := dependencyService.ListVersions(context.Background(), dependency.ID)
		return err == nil && len(versions) == 3
	}, 20*time.Second, 100*time.Millisecond)

	stored, err := dependencyService.Read(context.Background(), dependency.ID)
	require.NoError(t, err)
	assert.Equal(t, "String left pad", stored.Description)

	require.NoError(t, vulnerabilityService.CreateVulnerabilityRequest(context.Background(), dtos.VulnerabilityRequest{DependencyName: "left-pad"}))

	require.Eventually(t, func() bool {
		vuln, err := vulnerabilityService.ReadByExternalID(context.Background(), "GHSA-xxxx-yyyy-zzzz")
		return err == nil && vuln.NvdVulnStatus == "Analyzed"
	}, 20*time.Second, 100*time.Millisecond)

	affected, err := vulnerabilityService.ListAffectedVersions(context.Background(), "GHSA-xxxx-yyyy-zzzz")
	require.NoError(t, err)
	require.Len(t, affected, 2)
	statuses := []models.VulnerabilityVersionStatus{affected[0].Status, affected[1].Status}
	assert.ElementsMatch(t, []models.VulnerabilityVersionStatus{models.VulnerabilityVersionStatusIntroduced, models.VulnerabilityVersionStatusFixed}, statuses)
}
