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

type OSVPackage struct {
	Name      string `json:"name,omitempty"`
	Ecosystem string `json:"ecosystem,omitempty"`
	Purl      string `json:"purl,omitempty"`
}

// OSVQueryRequest is the body of POST /v1/query
type OSVQueryRequest struct {
	Package   OSVPackage `json:"package"`
	Version   string     `json:"version,omitempty"`
	PageToken string     `json:"page_token,omitempty"`
}

type OSVQueryResponse struct {
	Vulns         []OSV  `json:"vulns"`
	NextPageToken string `json:"next_page_token,omitempty"`
}

type OSVEvent struct {
	Introduced   string `json:"introduced,omitempty"`
	Fixed        string `json:"fixed,omitempty"`
	LastAffected string `json:"last_affected,omitempty"`
	Limit        string `json:"limit,omitempty"`
}

type OSVRange struct {
	Type   string     `json:"type"`
	Repo   string     `json:"repo,omitempty"`
	Events []OSVEvent `json:"events"`
}

type OSVAffected struct {
	Package          OSVPackage     `json:"package"`
	Ranges           []OSVRange     `json:"ranges"`
	Versions         []string       `json:"versions"`
	DatabaseSpecific map[string]any `json:"database_specific"`
}

type OSVSeverity struct {
	Type  string `json:"type"`
	Score string `json:"score"`
}

type OSVReference struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type OSVDatabaseSpecific struct {
	CweIDs         []string `json:"cwe_ids"`
	GithubReviewed bool     `json:"github_reviewed"`
	NvdPublishedAt string   `json:"nvd_published_at"`
	Severity       string   `json:"severity"`
}

type OSV struct {
	SchemaVersion    string              `json:"schema_version"`
	ID               string              `json:"id"`
	Modified         string              `json:"modified"`
	Published        string              `json:"published"`
	Aliases          []string            `json:"aliases"`
	Summary          string              `json:"summary"`
	Details          string              `json:"details"`
	Severity         []OSVSeverity       `json:"severity"`
	Affected         []OSVAffected       `json:"affected"`
	References       []OSVReference      `json:"references"`
	DatabaseSpecific OSVDatabaseSpecific `json:"database_specific"`
}
