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

package vulndb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/depwatch/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSVServiceQueryPackage(t *testing.T) {
	t.Run("should follow the page token and keep the page order", func(t *testing.T) {
		var requests []dtos.OSVQueryRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/query", r.URL.Path)

			var body dtos.OSVQueryRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			requests = append(requests, body)

			switch body.PageToken {
			case "":
				w.Write([]byte(`{"vulns":[{"id":"GHSA-1"},{"id":"GHSA-2"}],"next_page_token":"p2"}`)) // nolint:errcheck
			case "p2":
				w.Write([]byte(`{"vulns":[{"id":"GHSA-3"}],"next_page_token":"p3"}`)) // nolint:errcheck
			case "p3":
				w.Write([]byte(`{"vulns":[{"id":"GHSA-4"}]}`)) // nolint:errcheck
			}
		}))
		defer server.Close()

		res, err := NewOSVService(server.URL).QueryPackage(context.Background(), "lodash", "npm")
		require.NoError(t, err)

		ids := make([]string, 0, len(res.Vulns))
		for _, v := range res.Vulns {
			ids = append(ids, v.ID)
		}
		assert.Equal(t, []string{"GHSA-1", "GHSA-2", "GHSA-3", "GHSA-4"}, ids)
		assert.Empty(t, res.NextPageToken)

		require.Len(t, requests, 3)
		for _, r := range requests {
			assert.Equal(t, "lodash", r.Package.Name)
			assert.Equal(t, "npm", r.Package.Ecosystem)
			assert.Empty(t, r.Version)
		}
	})

	t.Run("should send the version for version scoped queries", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body dtos.OSVQueryRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "4.17.20", body.Version)
			w.Write([]byte(`{}`)) // nolint:errcheck
		}))
		defer server.Close()

		res, err := NewOSVService(server.URL).QueryPackageVersion(context.Background(), "lodash", "npm", "4.17.20")
		require.NoError(t, err)
		assert.Empty(t, res.Vulns)
	})

	t.Run("should return an error on non 200 responses", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := NewOSVService(server.URL).QueryPackage(context.Background(), "lodash", "npm")
		assert.Error(t, err)
	})
}

func TestNVDServiceGetCVE(t *testing.T) {
	t.Run("should send the api key header and the cve id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rest/json/cves/2.0", r.URL.Path)
			assert.Equal(t, "CVE-2021-23337", r.URL.Query().Get("cveId"))
			assert.Equal(t, "secret", r.Header.Get("apiKey"))
			w.Write([]byte(`{"totalResults":1,"vulnerabilities":[{"cve":{"id":"CVE-2021-23337","vulnStatus":"Analyzed"}}]}`)) // nolint:errcheck
		}))
		defer server.Close()

		res, err := NewNVDService(server.URL, "secret").GetCVE(context.Background(), "CVE-2021-23337")
		require.NoError(t, err)
		require.Len(t, res.Vulnerabilities, 1)
		assert.Equal(t, "Analyzed", res.Vulnerabilities[0].Cve.VulnStatus)
	})

	t.Run("should not send an empty api key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := r.Header["Apikey"]
			assert.False(t, ok)
			w.Write([]byte(`{"vulnerabilities":[]}`)) // nolint:errcheck
		}))
		defer server.Close()

		res, err := NewNVDService(server.URL, "").GetCVE(context.Background(), "CVE-2021-23337")
		require.NoError(t, err)
		assert.Empty(t, res.Vulnerabilities)
	})
}

func TestNpmClients(t *testing.T) {
	t.Run("should escape the slash of scoped package names", func(t *testing.T) {
		var registryPath, npmsPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v2/package/@types/node" {
				npmsPath = r.URL.RawPath
				w.Write([]byte(`{"collected":{"metadata":{"name":"@types/node","license":"MIT"}}}`)) // nolint:errcheck
				return
			}
			registryPath = r.URL.RawPath
			w.Write([]byte(`{"name":"@types/node","dist-tags":{"latest":"20.0.0"}}`)) // nolint:errcheck
		}))
		defer server.Close()

		doc, err := NewNpmRegistryService(server.URL).GetPackage(context.Background(), "@types/node")
		require.NoError(t, err)
		assert.Equal(t, "20.0.0", doc.DistTags["latest"])
		assert.Equal(t, "/@types%2Fnode", registryPath)

		report, err := NewNpmsService(server.URL).GetQualityReport(context.Background(), "@types/node")
		require.NoError(t, err)
		assert.Equal(t, "MIT", report.Collected.Metadata.License)
		assert.Equal(t, "/v2/package/%40types%2Fnode", npmsPath)
	})

	t.Run("should fail on unknown packages", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := NewNpmRegistryService(server.URL).GetPackage(context.Background(), "does-not-exist")
		assert.Error(t, err)
		_, err = NewNpmsService(server.URL).GetQualityReport(context.Background(), "does-not-exist")
		assert.Error(t, err)
	})
}

func TestUpstreamTimeouts(t *testing.T) {
	t.Run("should only put a timeout on the nvd client", func(t *testing.T) {
		assert.Zero(t, NewOSVService("http://localhost").httpClient.Timeout)
		assert.Zero(t, NewNpmRegistryService("http://localhost").httpClient.Timeout)
		assert.Zero(t, NewNpmsService("http://localhost").httpClient.Timeout)
		assert.Equal(t, nvdTimeout, NewNVDService("http://localhost", "").httpClient.Timeout)
	})
}
