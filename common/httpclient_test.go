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

package common

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheTransport(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"name":"left-pad"}`)) // nolint:errcheck
	}))
	defer server.Close()

	get := func(t *testing.T, client *http.Client, path string) (int, string) {
		t.Helper()
		res, err := client.Get(server.URL + path)
		require.NoError(t, err)
		defer res.Body.Close()
		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		return res.StatusCode, string(body)
	}

	t.Run("should answer repeated GET requests from the cache", func(t *testing.T) {
		hits.Store(0)
		client := NewUpstreamHTTPClient("test", 5*time.Second, NewCacheTransport(10, time.Minute))

		for range 3 {
			status, body := get(t, client, "/left-pad")
			assert.Equal(t, http.StatusOK, status)
			assert.JSONEq(t, `{"name":"left-pad"}`, body)
		}
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("should not cache unsuccessful responses", func(t *testing.T) {
		hits.Store(0)
		client := NewUpstreamHTTPClient("test", 5*time.Second, NewCacheTransport(10, time.Minute))

		for range 2 {
			status, _ := get(t, client, "/missing")
			assert.Equal(t, http.StatusNotFound, status)
		}
		assert.Equal(t, int32(2), hits.Load())
	})

	t.Run("should always reach the upstream without a cache", func(t *testing.T) {
		hits.Store(0)
		client := NewUpstreamHTTPClient("test", 5*time.Second, nil)

		get(t, client, "/left-pad")
		get(t, client, "/left-pad")
		assert.Equal(t, int32(2), hits.Load())
	})
}

func TestCacheKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "https://services.nvd.nist.gov/rest/json/cves/2.0?cveId=CVE-2021-1", nil)
	assert.Equal(t, "https://services.nvd.nist.gov/rest/json/cves/2.0?cveId=CVE-2021-1", cacheKey(req))

	req.Header.Set("apiKey", "secret")
	key := cacheKey(req)
	assert.NotContains(t, key, "secret")
	assert.Len(t, key, 64)
}
