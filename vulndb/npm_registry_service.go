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
	"net/url"
	"strings"
	"time"

	"github.com/l3montree-dev/depwatch/common"
	"github.com/l3montree-dev/depwatch/dtos"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const DefaultNpmRegistryURL = "https://registry.npmjs.org"

// packuments change rarely compared to how often the same package is enriched
var npmRegistryCache = common.NewCacheTransport(1000, 10*time.Minute)

type npmRegistryService struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

func NewNpmRegistryService(baseURL string) *npmRegistryService {
	return &npmRegistryService{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		httpClient:  common.NewUpstreamHTTPClient("npm-registry", 0, npmRegistryCache),
		rateLimiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 5),
	}
}

// GetPackage fetches the packument of a package. Scoped names keep their
// "@" but the slash is escaped, which the registry expects.
func (s *npmRegistryService) GetPackage(ctx context.Context, name string) (dtos.NpmPackageDocument, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return dtos.NpmPackageDocument{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/"+url.PathEscape(name), nil)
	if err != nil {
		return dtos.NpmPackageDocument{}, errors.Wrap(err, "could not create request")
	}
	req.Header.Set("Accept", "application/json")

	res, err := s.httpClient.Do(req)
	if err != nil {
		return dtos.NpmPackageDocument{}, errors.Wrap(err, "could not fetch package from npm registry")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return dtos.NpmPackageDocument{}, errors.Errorf("npm registry responded with %s for %s", res.Status, name)
	}

	var doc dtos.NpmPackageDocument
	if err := json.NewDecoder(res.Body).Decode(&doc); err != nil {
		return dtos.NpmPackageDocument{}, errors.Wrap(err, "could not decode npm package document")
	}
	return doc, nil
}
