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
	"bufio"
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/l3montree-dev/depwatch/monitoring"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// WrapHTTPClient places wrap in front of the current transport of the client.
func WrapHTTPClient(client *http.Client, wrap func(req *http.Request, next http.RoundTripper) (*http.Response, error)) {
	if client == nil {
		return
	}
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	client.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return wrap(req, base)
	})
}

// NewUpstreamHTTPClient returns a client which records request metrics for
// the named upstream. A zero timeout keeps the http.Client default of no
// timeout. A nil cache disables response caching.
func NewUpstreamHTTPClient(upstream string, timeout time.Duration, cache *CacheTransport) *http.Client {
	client := &http.Client{Timeout: timeout, Transport: otelhttp.NewTransport(http.DefaultTransport)}
	WrapHTTPClient(client, metricsHandler(upstream))
	if cache != nil {
		// the cache sits in front, cache hits are not upstream requests
		WrapHTTPClient(client, cache.Handler())
	}
	return client
}

func metricsHandler(upstream string) func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
	return func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
		start := time.Now()
		resp, err := next.RoundTrip(req)
		monitoring.UpstreamRequestDuration.WithLabelValues(upstream).Observe(time.Since(start).Seconds())
		if err != nil {
			monitoring.UpstreamRequests.WithLabelValues(upstream, "error").Inc()
			return resp, err
		}
		monitoring.UpstreamRequests.WithLabelValues(upstream, strconv.Itoa(resp.StatusCode)).Inc()
		return resp, nil
	}
}

// CacheTransport keeps successful GET responses in an expiring lru cache.
type CacheTransport struct {
	cache *expirable.LRU[string, []byte]
}

func NewCacheTransport(cacheSize int, expiration time.Duration) *CacheTransport {
	return &CacheTransport{
		cache: expirable.NewLRU[string, []byte](cacheSize, nil, expiration),
	}
}

func (c *CacheTransport) Handler() func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
	return func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
		if req.Method != http.MethodGet {
			return next.RoundTrip(req)
		}

		key := cacheKey(req)
		if val, ok := c.cache.Get(key); ok {
			slog.Debug("cache hit", "url", req.URL.String())
			return responseFromBytes(val, req)
		}

		resp, err := next.RoundTrip(req)
		if err != nil {
			return resp, err
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return resp, nil
		}

		v, err := httputil.DumpResponse(resp, true)
		if err != nil {
			slog.Warn("could not dump response, skipping cache", "err", err)
			return resp, nil
		}
		c.cache.Add(key, v)

		return responseFromBytes(v, req)
	}
}

func responseFromBytes(v []byte, req *http.Request) (*http.Response, error) {
	resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(v)), req)
	if err != nil {
		return nil, fmt.Errorf("failed to read cached response: %w", err)
	}
	return resp, nil
}

func cacheKey(req *http.Request) string {
	key := req.URL.String()

	auth := req.Header.Get("Authorization")
	apiKey := req.Header.Get("apiKey")
	if auth == "" && apiKey == "" {
		return key
	}

	// never keep credentials in memory in plain text
	h := sha256.New()
	h.Write([]byte(key))
	h.Write([]byte(auth))
	h.Write([]byte(apiKey))
	return fmt.Sprintf("%x", h.Sum(nil))
}
