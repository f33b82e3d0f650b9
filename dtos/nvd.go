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

type NVDLangString struct {
	Lang  string `json:"lang"`
	Value string `json:"value"`
}

type NVDCvssData struct {
	Version      string  `json:"version"`
	VectorString string  `json:"vectorString"`
	BaseScore    float64 `json:"baseScore"`
	BaseSeverity string  `json:"baseSeverity"`
}

type NVDCvssMetric struct {
	Source              string      `json:"source"`
	Type                string      `json:"type"`
	CvssData            NVDCvssData `json:"cvssData"`
	BaseSeverity        string      `json:"baseSeverity,omitempty"`
	ExploitabilityScore float64     `json:"exploitabilityScore"`
	ImpactScore         float64     `json:"impactScore"`
}

type NVDMetrics struct {
	CvssMetricV40 []NVDCvssMetric `json:"cvssMetricV40"`
	CvssMetricV31 []NVDCvssMetric `json:"cvssMetricV31"`
	CvssMetricV30 []NVDCvssMetric `json:"cvssMetricV30"`
	CvssMetricV2  []NVDCvssMetric `json:"cvssMetricV2"`
}

type NVDWeakness struct {
	Source      string          `json:"source"`
	Type        string          `json:"type"`
	Description []NVDLangString `json:"description"`
}

type NVDReference struct {
	URL    string   `json:"url"`
	Source string   `json:"source"`
	Tags   []string `json:"tags"`
}

type NVDCve struct {
	ID               string          `json:"id"`
	SourceIdentifier string          `json:"sourceIdentifier"`
	Published        string          `json:"published"`
	LastModified     string          `json:"lastModified"`
	VulnStatus       string          `json:"vulnStatus"`
	Descriptions     []NVDLangString `json:"descriptions"`
	Metrics          NVDMetrics      `json:"metrics"`
	Weaknesses       []NVDWeakness   `json:"weaknesses"`
	References       []NVDReference  `json:"references"`
}

// NVDResponse is the response of
// https://services.nvd.nist.gov/rest/json/cves/2.0
type NVDResponse struct {
	ResultsPerPage  int    `json:"resultsPerPage"`
	StartIndex      int    `json:"startIndex"`
	TotalResults    int    `json:"totalResults"`
	Format          string `json:"format"`
	Version         string `json:"version"`
	Timestamp       string `json:"timestamp"`
	Vulnerabilities []struct {
		Cve NVDCve `json:"cve"`
	} `json:"vulnerabilities"`
}
