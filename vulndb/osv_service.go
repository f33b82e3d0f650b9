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
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/l3montree-dev/depwatch/common"
	"github.com/l3montree-dev/depwatch/dtos"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const DefaultOSVURL = "https://api.osv.dev"

// upper bound of followed next_page_tokens
const maxOSVPages = 50

type osvService struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

func NewOSVService(baseURL string) *osvService {
	return &osvService{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		httpClient:  common.NewUpstreamHTTPClient("osv", 0, nil),
		rateLimiter: rate.NewLimiter(rate.Every(50*time.Millisecond), 10),
	}
}

func (s *osvService) QueryPackage(ctx context.Context, name, ecosystem string) (dtos.OSVQueryResponse, error) {
	return s.queryAllPages(ctx, dtos.OSVQueryRequest{
		Package: dtos.OSVPackage{Name: name, Ecosystem: ecosystem},
	})
}

func (s *osvService) QueryPackageVersion(ctx context.Context, name, ecosystem, version string) (dtos.OSVQueryResponse, error) {
	return s.queryAllPages(ctx, dtos.OSVQueryRequest{
		Package: dtos.OSVPackage{Name: name, Ecosystem: ecosystem},
		Version: version,
	})
}

// queryAllPages follows next_page_token and concatenates the pages in the
// order they were received
func (s *osvService) queryAllPages(ctx context.Context, body dtos.OSVQueryRequest) (dtos.OSVQueryResponse, error) {
	result := dtos.OSVQueryResponse{}
	for page := 0; page < maxOSVPages; page++ {
		res, err := s.query(ctx, body)
		if err != nil {
			return dtos.OSVQueryResponse{}, err
		}
		result.Vulns = append(result.Vulns, res.Vulns...)
		if res.NextPageToken == "" {
			return result, nil
		}
		body.PageToken = res.NextPageToken
	}
	return dtos.OSVQueryResponse{}, errors.Errorf("osv query for %s did not finish after %d pages", body.Package.Name, maxOSVPages)
}

func (s *osvService) query(ctx context.Context, body dtos.OSVQueryRequest) (dtos.OSVQueryResponse, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return dtos.OSVQueryResponse{}, err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return dtos.OSVQueryResponse{}, errors.Wrap(err, "could not marshal osv query")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/query", bytes.NewReader(payload))
	if err != nil {
		return dtos.OSVQueryResponse{}, errors.Wrap(err, "could not create request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.httpClient.Do(req)
	if err != nil {
		return dtos.OSVQueryResponse{}, errors.Wrap(err, "could not query osv")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return dtos.OSVQueryResponse{}, errors.Errorf("osv responded with %s", res.Status)
	}

	var response dtos.OSVQueryResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return dtos.OSVQueryResponse{}, errors.Wrap(err, "could not decode osv response")
	}
	return response, nil
}
