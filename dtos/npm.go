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

package dtos

import (
	"encoding/json"

	"github.com/l3montree-dev/depwatch/database/models"
)

// NpmPackageDocument is the packument returned by the npm registry for
// GET /{name}. License and repository come in several shapes and are kept
// raw until normalization.
type NpmPackageDocument struct {
	ID          string                        `json:"_id"`
	Name        string                        `json:"name"`
	Description string                        `json:"description"`
	DistTags    map[string]string             `json:"dist-tags"`
	Versions    map[string]NpmVersionDocument `json:"versions"`
	Time        map[string]string             `json:"time"`
	License     json.RawMessage               `json:"license"`
	Homepage    string                        `json:"homepage"`
	Repository  json.RawMessage               `json:"repository"`
	Maintainers []NpmPerson                   `json:"maintainers"`
}

type NpmVersionDocument struct {
	ID          string            `json:"_id"`
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	License     json.RawMessage   `json:"license"`
	Deprecated  string            `json:"deprecated,omitempty"`
	Dist        map[string]any    `json:"dist,omitempty"`
	Engines     map[string]string `json:"engines,omitempty"`
}

type NpmPerson struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type NpmsLinks struct {
	Npm        string `json:"npm"`
	Homepage   string `json:"homepage"`
	Repository string `json:"repository"`
	Bugs       string `json:"bugs"`
}

type NpmsMetadata struct {
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	Description string    `json:"description"`
	License     string    `json:"license"`
	Links       NpmsLinks `json:"links"`
}

// NpmsPackageReport is the npms.io quality report of a package
type NpmsPackageReport struct {
	AnalyzedAt string `json:"analyzedAt"`
	Collected  struct {
		Metadata NpmsMetadata `json:"metadata"`
	} `json:"collected"`
	Evaluation *models.Evaluation `json:"evaluation"`
	Score      *models.Score      `json:"score"`
}
