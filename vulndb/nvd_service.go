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

const DefaultNVDURL = "https://services.nvd.nist.gov"

const nvdTimeout = 10 * time.Second

type nvdService struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewNVDService respects the public NVD rate limits: 50 requests in a rolling
// 30 second window with an api key, 5 without.
func NewNVDService(baseURL, apiKey string) *nvdService {
	limiter := rate.NewLimiter(rate.Every(6*time.Second), 1)
	if apiKey != "" {
		limiter = rate.NewLimiter(rate.Every(600*time.Millisecond), 5)
	}
	return &nvdService{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		apiKey:      apiKey,
		httpClient:  common.NewUpstreamHTTPClient("nvd", nvdTimeout, nil),
		rateLimiter: limiter,
	}
}

func (s *nvdService) GetCVE(ctx context.Context, cveID string) (dtos.NVDResponse, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return dtos.NVDResponse{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, nvdTimeout)
	defer cancel()

	u := s.baseURL + "/rest/json/cves/2.0?" + url.Values{"cveId": []string{cveID}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return dtos.NVDResponse{}, errors.Wrap(err, "could not create request")
	}
	if s.apiKey != "" {
		req.Header.Set("apiKey", s.apiKey)
	}

	res, err := s.httpClient.Do(req)
	if err != nil {
		return dtos.NVDResponse{}, errors.Wrap(err, "could not fetch cve from nvd")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return dtos.NVDResponse{}, errors.Errorf("nvd responded with %s for %s", res.Status, cveID)
	}

	var response dtos.NVDResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return dtos.NVDResponse{}, errors.Wrap(err, "could not decode nvd response")
	}
	return response, nil
}
