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

const DefaultNpmsURL = "https://api.npms.io"

var npmsCache = common.NewCacheTransport(1000, 10*time.Minute)

type npmsService struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

func NewNpmsService(baseURL string) *npmsService {
	return &npmsService{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		httpClient:  common.NewUpstreamHTTPClient("npms", 0, npmsCache),
		rateLimiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 5),
	}
}

// GetQualityReport fetches the npms.io report. npms expects the whole name
// url encoded, "@scope/name" becomes "%40scope%2Fname".
func (s *npmsService) GetQualityReport(ctx context.Context, name string) (dtos.NpmsPackageReport, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return dtos.NpmsPackageReport{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/v2/package/"+url.QueryEscape(name), nil)
	if err != nil {
		return dtos.NpmsPackageReport{}, errors.Wrap(err, "could not create request")
	}

	res, err := s.httpClient.Do(req)
	if err != nil {
		return dtos.NpmsPackageReport{}, errors.Wrap(err, "could not fetch quality report")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return dtos.NpmsPackageReport{}, errors.Errorf("npms responded with %s for %s", res.Status, name)
	}

	var report dtos.NpmsPackageReport
	if err := json.NewDecoder(res.Body).Decode(&report); err != nil {
		return dtos.NpmsPackageReport{}, errors.Wrap(err, "could not decode quality report")
	}
	return report, nil
}
