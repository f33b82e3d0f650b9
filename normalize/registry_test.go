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

package normalize

import (
	"encoding/json"
	"testing"

	"github.com/l3montree-dev/depwatch/database/models"
	"github.com/l3montree-dev/depwatch/dtos"
	"github.com/stretchr/testify/assert"
)

func TestRegistryPackage(t *testing.T) {
	t.Run("should normalize a left-pad like packument", func(t *testing.T) {
		var raw dtos.NpmPackageDocument
		err := json.Unmarshal([]byte(`{
			"_id": "left-pad",
			"name": "left-pad",
			"description": "String left pad",
			"dist-tags": {"latest": "1.0.0"},
			"versions": {"1.0.0": {"_id": "left-pad@1.0.0", "version": "1.0.0"}},
			"time": {"1.0.0": "2015-01-01", "modified": "2016-01-01"},
			"license": "WTFPL",
			"repository": {"type": "git", "url": "git+https://github.com/stevemao/left-pad.git"},
			"maintainers": [{"name": "stevemao", "email": "maochenyan@gmail.com"}]
		}`), &raw)
		assert.Nil(t, err)

		pkg := RegistryPackage(raw)

		assert.Equal(t, "left-pad", pkg.Name)
		assert.Equal(t, "1.0.0", pkg.CurrentVersion)
		assert.Equal(t, "2015-01-01", pkg.LastPublishDate)
		assert.Equal(t, "WTFPL", pkg.License)
		assert.Equal(t, "git+https://github.com/stevemao/left-pad.git", pkg.Repository)
		assert.Equal(t, []dtos.VersionInfo{{Version: "1.0.0", VersionID: "left-pad@1.0.0", PublishDate: "2015-01-01"}}, pkg.Versions)
		assert.Equal(t, []models.Maintainer{{Name: "stevemao", Email: "maochenyan@gmail.com"}}, pkg.Maintainers)
	})

	t.Run("should fall back to modified and synthesize version ids", func(t *testing.T) {
		raw := dtos.NpmPackageDocument{
			Name: "pkg",
			Versions: map[string]dtos.NpmVersionDocument{
				"1.10.0": {},
				"1.2.0":  {},
			},
			Time:    map[string]string{"modified": "2020-02-02", "1.2.0": "2019-01-01"},
			License: json.RawMessage(`{"type": "MIT"}`),
		}

		pkg := RegistryPackage(raw)

		assert.Equal(t, "", pkg.CurrentVersion)
		assert.Equal(t, "2020-02-02", pkg.LastPublishDate)
		assert.Equal(t, "MIT", pkg.License)
		assert.Equal(t, []dtos.VersionInfo{
			{Version: "1.2.0", VersionID: "pkg@1.2.0", PublishDate: "2019-01-01"},
			{Version: "1.10.0", VersionID: "pkg@1.10.0", PublishDate: ""},
		}, pkg.Versions)
	})

	t.Run("should not fail on an empty document", func(t *testing.T) {
		pkg := RegistryPackage(dtos.NpmPackageDocument{})
		assert.Empty(t, pkg.Versions)
		assert.Equal(t, "", pkg.License)
		assert.Equal(t, "", pkg.LastPublishDate)
	})
}

func TestBuildDependencyPatch(t *testing.T) {
	t.Run("should prefer the license of the quality report", func(t *testing.T) {
		registry := &dtos.NormalizedRegistryPackage{License: "MIT", Homepage: "https://registry.example"}
		report := &dtos.NormalizedQualityReport{License: "ISC"}

		patch := BuildDependencyPatch(registry, report)

		assert.Equal(t, "ISC", patch.License)
		assert.Equal(t, "https://registry.example", patch.Homepage)
	})

	t.Run("should keep registry values if the report is missing", func(t *testing.T) {
		registry := &dtos.NormalizedRegistryPackage{License: "MIT", CurrentVersion: "1.0.0"}

		patch := BuildDependencyPatch(registry, nil)

		assert.Equal(t, "MIT", patch.License)
		assert.Equal(t, "1.0.0", patch.CurrentVersion)
		assert.Nil(t, patch.Evaluation)
	})

	t.Run("should produce an empty patch if both sources failed", func(t *testing.T) {
		patch := BuildDependencyPatch(nil, nil)
		assert.True(t, patch.IsEmpty())
	})

	t.Run("should take evaluation and score from the report", func(t *testing.T) {
		report := QualityReport(dtos.NpmsPackageReport{
			Evaluation: &models.Evaluation{Quality: models.QualityEvaluation{Tests: 0.5}},
			Score:      &models.Score{Final: 0.7},
		})

		patch := BuildDependencyPatch(nil, &report)

		assert.Equal(t, 0.5, patch.Evaluation.Quality.Tests)
		assert.Equal(t, 0.7, patch.Score.Final)
		assert.Contains(t, patch.Updates(), "evaluation")
		assert.Contains(t, patch.Updates(), "score")
	})
}
