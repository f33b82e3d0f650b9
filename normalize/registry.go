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
	"fmt"
	"strings"

	"github.com/l3montree-dev/depwatch/database/models"
	"github.com/l3montree-dev/depwatch/dtos"
)

// RegistryPackage flattens an npm packument into the fields we persist.
// Missing fields collapse to empty values, it never fails.
func RegistryPackage(raw dtos.NpmPackageDocument) dtos.NormalizedRegistryPackage {
	name := raw.Name
	if name == "" {
		name = raw.ID
	}

	currentVersion := raw.DistTags["latest"]

	versions := make([]dtos.VersionInfo, 0, len(raw.Versions))
	for version, doc := range raw.Versions {
		versionID := doc.ID
		if versionID == "" {
			versionID = fmt.Sprintf("%s@%s", name, version)
		}
		versions = append(versions, dtos.VersionInfo{
			Version:     version,
			VersionID:   versionID,
			PublishDate: raw.Time[version],
		})
	}
	SortVersionInfos(versions)

	lastPublishDate := ""
	if currentVersion != "" {
		lastPublishDate = raw.Time[currentVersion]
	}
	if lastPublishDate == "" {
		lastPublishDate = raw.Time["modified"]
	}

	license := parseLicense(raw.License)
	if license == "" && currentVersion != "" {
		license = parseLicense(raw.Versions[currentVersion].License)
	}

	maintainers := make([]models.Maintainer, 0, len(raw.Maintainers))
	for _, m := range raw.Maintainers {
		maintainers = append(maintainers, models.Maintainer{Name: m.Name, Email: m.Email})
	}

	return dtos.NormalizedRegistryPackage{
		Name:            name,
		Description:     raw.Description,
		Versions:        versions,
		License:         license,
		Homepage:        raw.Homepage,
		Repository:      parseRepository(raw.Repository),
		Maintainers:     maintainers,
		CurrentVersion:  currentVersion,
		LastPublishDate: lastPublishDate,
	}
}

// the registry knows "MIT", {"type": "MIT"} and the deprecated
// [{"type": "MIT"}, {"type": "Apache-2.0"}]
func parseLicense(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var obj struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Type != "" {
		return obj.Type
	}

	var list []struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &list); err == nil {
		types := make([]string, 0, len(list))
		for _, l := range list {
			if l.Type != "" {
				types = append(types, l.Type)
			}
		}
		return strings.Join(types, " OR ")
	}
	return ""
}

func parseRepository(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.URL
	}
	return ""
}

func QualityReport(raw dtos.NpmsPackageReport) dtos.NormalizedQualityReport {
	metadata := raw.Collected.Metadata
	return dtos.NormalizedQualityReport{
		Description: metadata.Description,
		License:     metadata.License,
		Homepage:    metadata.Links.Homepage,
		Npm:         metadata.Links.Npm,
		Repository:  metadata.Links.Repository,
		Evaluation:  raw.Evaluation,
		Score:       raw.Score,
	}
}

// BuildDependencyPatch merges both sources into a single patch. Either
// source may be nil if its fetch failed. For overlapping fields a non-empty
// value of the quality report wins over the registry.
func BuildDependencyPatch(registry *dtos.NormalizedRegistryPackage, report *dtos.NormalizedQualityReport) dtos.DependencyPatch {
	patch := dtos.DependencyPatch{}
	if registry != nil {
		patch.Description = registry.Description
		patch.License = registry.License
		patch.Homepage = registry.Homepage
		patch.Repository = registry.Repository
		patch.Maintainers = registry.Maintainers
		patch.CurrentVersion = registry.CurrentVersion
		patch.LastPublishDate = registry.LastPublishDate
	}

	if report == nil {
		return patch
	}

	overwrite := func(dst *string, value string) {
		if value != "" {
			*dst = value
		}
	}
	overwrite(&patch.Description, report.Description)
	overwrite(&patch.License, report.License)
	overwrite(&patch.Homepage, report.Homepage)
	overwrite(&patch.Repository, report.Repository)
	overwrite(&patch.Npm, report.Npm)

	if report.Evaluation != nil {
		patch.Evaluation = report.Evaluation
	}
	if report.Score != nil {
		patch.Score = report.Score
	}
	return patch
}
