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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/l3montree-dev/depwatch/dtos"
	"github.com/l3montree-dev/depwatch/mocks"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeProcessor struct {
	pending map[string]int
	calls   []string
	err     error
}

func (f *fakeProcessor) ProcessNext(ctx context.Context, lane string) (bool, error) {
	f.calls = append(f.calls, lane)
	if f.err != nil {
		return false, f.err
	}
	if f.pending[lane] == 0 {
		return false, nil
	}
	f.pending[lane]--
	return true, nil
}

func TestDrainLanes(t *testing.T) {
	t.Run("should process jobs of every lane until all lanes are empty", func(t *testing.T) {
		processor := &fakeProcessor{pending: map[string]int{"dependency": 1, "vulnerabilities": 3}}

		n, err := drainLanes(context.Background(), processor, "dependency", "vulnerabilities")
		require.NoError(t, err)
		assert.Equal(t, 4, n)
		assert.Equal(t, 0, processor.pending["dependency"])
		assert.Equal(t, 0, processor.pending["vulnerabilities"])
		// the last pass finds nothing in both lanes
		assert.Equal(t, []string{"dependency", "vulnerabilities"}, processor.calls[len(processor.calls)-2:])
	})

	t.Run("should stop on the first error", func(t *testing.T) {
		processor := &fakeProcessor{pending: map[string]int{}, err: errors.New("db down")}

		n, err := drainLanes(context.Background(), processor, "dependency", "vulnerabilities")
		assert.Error(t, err)
		assert.Equal(t, 0, n)
		assert.Len(t, processor.calls, 1)
	})
}

func TestQueryOSV(t *testing.T) {
	response := dtos.OSVQueryResponse{Vulns: []dtos.OSV{{
		ID:      "GHSA-xxxx-yyyy-zzzz",
		Aliases: []string{"CVE-2021-1234"},
		Summary: "Prototype pollution",
	}}}

	t.Run("should query a single version if one is given", func(t *testing.T) {
		client := mocks.NewOSVClient(t)
		client.On("QueryPackageVersion", mock.Anything, "lodash", "npm", "4.17.20").Return(response, nil)

		out := bytes.Buffer{}
		require.NoError(t, queryOSV(context.Background(), client, &out, outputJSON, "lodash", "npm", "4.17.20"))

		var vulns []dtos.NormalizedOSVVuln
		require.NoError(t, json.Unmarshal(out.Bytes(), &vulns))
		require.Len(t, vulns, 1)
		assert.Equal(t, "GHSA-xxxx-yyyy-zzzz", vulns[0].ID)
		assert.Equal(t, "CVE-2021-1234", vulns[0].CveID)
	})

	t.Run("should query the whole package without a version", func(t *testing.T) {
		client := mocks.NewOSVClient(t)
		client.On("QueryPackage", mock.Anything, "lodash", "npm").Return(dtos.OSVQueryResponse{}, nil)

		out := bytes.Buffer{}
		require.NoError(t, queryOSV(context.Background(), client, &out, outputJSON, "lodash", "npm", ""))
		assert.JSONEq(t, "[]", out.String())
	})

	t.Run("should return the upstream error", func(t *testing.T) {
		client := mocks.NewOSVClient(t)
		client.On("QueryPackage", mock.Anything, "lodash", "npm").Return(dtos.OSVQueryResponse{}, errors.New("503"))

		out := bytes.Buffer{}
		err := queryOSV(context.Background(), client, &out, outputJSON, "lodash", "npm", "")
		assert.ErrorContains(t, err, "could not query osv for lodash")
		assert.Empty(t, out.String())
	})
}

func TestPrintVulnerabilities(t *testing.T) {
	vulns := []dtos.NormalizedOSVVuln{{
		ID:         "GHSA-xxxx-yyyy-zzzz",
		CveID:      "CVE-2021-1234",
		DBSeverity: "HIGH",
		Summary:    "Prototype pollution",
		Affected:   []dtos.AffectedRange{{Introduced: "1.0.0", Fixed: "1.3.0"}, {Introduced: "2.0.0"}},
	}}

	t.Run("should render a table", func(t *testing.T) {
		out := bytes.Buffer{}
		require.NoError(t, printVulnerabilities(&out, outputTable, vulns))
		assert.Contains(t, out.String(), "GHSA-xxxx-yyyy-zzzz")
		assert.Contains(t, out.String(), ">=1.0.0 <1.3.0")
		assert.Contains(t, out.String(), ">=2.0.0 <*")
	})

	t.Run("should use the json field names in yaml", func(t *testing.T) {
		out := bytes.Buffer{}
		require.NoError(t, printVulnerabilities(&out, outputYAML, vulns))
		assert.Contains(t, out.String(), "cveId: CVE-2021-1234")
		assert.Contains(t, out.String(), "dbSeverity: HIGH")
	})

	t.Run("should reject unknown formats", func(t *testing.T) {
		out := bytes.Buffer{}
		assert.Error(t, printVulnerabilities(&out, "xml", vulns))
	})
}

func TestVulndbConfig(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("osvUrl", "http://localhost:9999")
	viper.Set("nvdApiKey", "secret")

	cfg := vulndbConfig()
	assert.Equal(t, "http://localhost:9999", cfg.OSVURL)
	assert.Equal(t, "secret", cfg.NVDAPIKey)
}

func TestRootCommand(t *testing.T) {
	root := GetRootCmd()
	root.AddCommand(NewMigrateCommand(), NewEnrichCommand(), NewOSVCommand(), NewRefreshCommand())

	names := []string{}
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"migrate", "enrich", "osv", "refresh"})

	osv, _, err := root.Find([]string{"osv"})
	require.NoError(t, err)
	assert.Error(t, osv.Args(osv, []string{}))
	assert.NoError(t, osv.Args(osv, []string{"lodash", "4.17.20"}))
}
