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
	"os"

	"github.com/l3montree-dev/depwatch/shared"
	"go.uber.org/fx"
)

// Config holds the upstream endpoints. Every base url can be overridden,
// which is how mirrors and tests point the clients elsewhere.
type Config struct {
	NpmRegistryURL string
	NpmsURL        string
	OSVURL         string
	NVDURL         string
	NVDAPIKey      string
}

func ConfigFromEnv() Config {
	return Config{
		NpmRegistryURL: shared.GetEnvOrDefault("NPM_REGISTRY_BASE_URL", DefaultNpmRegistryURL),
		NpmsURL:        shared.GetEnvOrDefault("NPMS_BASE_URL", DefaultNpmsURL),
		OSVURL:         shared.GetEnvOrDefault("OSV_BASE_URL", DefaultOSVURL),
		NVDURL:         shared.GetEnvOrDefault("NVD_BASE_URL", DefaultNVDURL),
		NVDAPIKey:      os.Getenv("NVD_API_KEY"),
	}
}

var Module = fx.Module("vulndb",
	fx.Provide(ConfigFromEnv),
	fx.Provide(fx.Annotate(func(cfg Config) *npmRegistryService {
		return NewNpmRegistryService(cfg.NpmRegistryURL)
	}, fx.As(new(shared.NpmRegistryClient)))),
	fx.Provide(fx.Annotate(func(cfg Config) *npmsService {
		return NewNpmsService(cfg.NpmsURL)
	}, fx.As(new(shared.QualityReportClient)))),
	fx.Provide(fx.Annotate(func(cfg Config) *osvService {
		return NewOSVService(cfg.OSVURL)
	}, fx.As(new(shared.OSVClient)))),
	fx.Provide(fx.Annotate(func(cfg Config) *nvdService {
		return NewNVDService(cfg.NVDURL, cfg.NVDAPIKey)
	}, fx.As(new(shared.NVDClient)))),
)
