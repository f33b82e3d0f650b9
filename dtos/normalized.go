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
	"github.com/l3montree-dev/depwatch/database/models"
	"gorm.io/datatypes"
)

type VersionInfo struct {
	Version     string `json:"version"`
	VersionID   string `json:"versionId"`
	PublishDate string `json:"publishDate"`
}

type NormalizedRegistryPackage struct {
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	Versions        []VersionInfo       `json:"versions"`
	License         string              `json:"license"`
	Homepage        string              `json:"homepage"`
	Repository      string              `json:"repository"`
	Maintainers     []models.Maintainer `json:"maintainers"`
	CurrentVersion  string              `json:"currentVersion"`
	LastPublishDate string              `json:"lastPublishDate"`
}

type NormalizedQualityReport struct {
	Description string             `json:"description"`
	License     string             `json:"license"`
	Homepage    string             `json:"homepage"`
	Npm         string             `json:"npm"`
	Repository  string             `json:"repository"`
	Evaluation  *models.Evaluation `json:"evaluation"`
	Score       *models.Score      `json:"score"`
}

// DependencyPatch collects the enriched fields of a dependency. Empty
// fields are left untouched when the patch is written.
type DependencyPatch struct {
	Description     string
	License         string
	Homepage        string
	Repository      string
	Npm             string
	Maintainers     []models.Maintainer
	CurrentVersion  string
	LastPublishDate string
	Evaluation      *models.Evaluation
	Score           *models.Score
}

func (p DependencyPatch) IsEmpty() bool {
	return len(p.Updates()) == 0
}

// Updates returns the column updates of all non-empty fields
func (p DependencyPatch) Updates() map[string]any {
	updates := map[string]any{}
	setIfNotEmpty := func(column, value string) {
		if value != "" {
			updates[column] = value
		}
	}
	setIfNotEmpty("description", p.Description)
	setIfNotEmpty("license", p.License)
	setIfNotEmpty("homepage", p.Homepage)
	setIfNotEmpty("repository", p.Repository)
	setIfNotEmpty("npm", p.Npm)
	setIfNotEmpty("current_version", p.CurrentVersion)
	setIfNotEmpty("last_publish_date", p.LastPublishDate)

	if len(p.Maintainers) > 0 {
		updates["maintainers"] = datatypes.NewJSONSlice(p.Maintainers)
	}
	if p.Evaluation != nil {
		updates["evaluation"] = datatypes.NewJSONType(*p.Evaluation)
	}
	if p.Score != nil {
		updates["score"] = datatypes.NewJSONType(*p.Score)
	}
	return updates
}

type AffectedRange struct {
	Source     string `json:"source"`
	Introduced string `json:"introduced"`
	Fixed      string `json:"fixed"`
}

type NormalizedOSVVuln struct {
	ID             string             `json:"id"`
	Summary        string             `json:"summary"`
	Details        string             `json:"details"`
	CveID          string             `json:"cveId"`
	Published      string             `json:"published"`
	CweIDs         []string           `json:"cweIds"`
	NvdPublishedAt string             `json:"nvdPublishedAt"`
	DBSeverity     string             `json:"dbSeverity"`
	References     []models.Reference `json:"references"`
	CvssSeverity   []OSVSeverity      `json:"cvssSeverity"`
	Affected       []AffectedRange    `json:"affected"`
}

type NormalizedNVDMetrics struct {
	CvssMetricV40 *NVDCvssMetric `json:"cvssMetricV40"`
	CvssMetricV31 *NVDCvssMetric `json:"cvssMetricV31"`
	CvssMetricV30 *NVDCvssMetric `json:"cvssMetricV30"`
	CvssMetricV2  *NVDCvssMetric `json:"cvssMetricV2"`
}

type NormalizedNVDCve struct {
	NvdVulnStatus  string               `json:"nvdVulnStatus"`
	NvdDescription string               `json:"nvdDescription"`
	Metrics        NormalizedNVDMetrics `json:"metrics"`
	Weaknesses     []string             `json:"weaknesses"`
}
