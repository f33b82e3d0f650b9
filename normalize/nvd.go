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
	"errors"

	"github.com/l3montree-dev/depwatch/database/models"
	"github.com/l3montree-dev/depwatch/dtos"
)

var ErrNoCVEInResponse = errors.New("nvd response does not contain a cve")

func NvdCveResult(raw dtos.NVDResponse) (dtos.NormalizedNVDCve, error) {
	if len(raw.Vulnerabilities) == 0 {
		return dtos.NormalizedNVDCve{}, ErrNoCVEInResponse
	}
	cve := raw.Vulnerabilities[0].Cve

	weaknesses := make([]string, 0, len(cve.Weaknesses))
	for _, w := range cve.Weaknesses {
		if len(w.Description) > 0 && w.Description[0].Value != "" {
			weaknesses = append(weaknesses, w.Description[0].Value)
		}
	}

	return dtos.NormalizedNVDCve{
		NvdVulnStatus:  cve.VulnStatus,
		NvdDescription: englishDescription(cve.Descriptions),
		Metrics: dtos.NormalizedNVDMetrics{
			CvssMetricV40: firstMetric(cve.Metrics.CvssMetricV40),
			CvssMetricV31: firstMetric(cve.Metrics.CvssMetricV31),
			CvssMetricV30: firstMetric(cve.Metrics.CvssMetricV30),
			CvssMetricV2:  firstMetric(cve.Metrics.CvssMetricV2),
		},
		Weaknesses: weaknesses,
	}, nil
}

func englishDescription(descriptions []dtos.NVDLangString) string {
	for _, d := range descriptions {
		if d.Lang == "en" {
			return d.Value
		}
	}
	return ""
}

func firstMetric(metrics []dtos.NVDCvssMetric) *dtos.NVDCvssMetric {
	if len(metrics) == 0 {
		return nil
	}
	m := metrics[0]
	return &m
}

// SeverityFromNvdMetrics converts the NVD metrics into the persisted severity
func SeverityFromNvdMetrics(metrics dtos.NormalizedNVDMetrics) models.CvssSeverity {
	return models.CvssSeverity{
		CvssMetricV40: cvssEntryFromNvd(metrics.CvssMetricV40, "4.0"),
		CvssMetricV31: cvssEntryFromNvd(metrics.CvssMetricV31, "3.1"),
		CvssMetricV30: cvssEntryFromNvd(metrics.CvssMetricV30, "3.0"),
		CvssMetricV2:  cvssEntryFromNvd(metrics.CvssMetricV2, "2.0"),
	}
}

func cvssEntryFromNvd(metric *dtos.NVDCvssMetric, fallbackVersion string) *models.CvssEntry {
	if metric == nil || metric.CvssData.VectorString == "" {
		return nil
	}
	version := metric.CvssData.Version
	if version == "" {
		version = fallbackVersion
	}
	entry := &models.CvssEntry{
		Version:      version,
		VectorString: metric.CvssData.VectorString,
	}
	if metric.CvssData.BaseScore > 0 {
		score := metric.CvssData.BaseScore
		entry.BaseScore = &score
	} else {
		entry.BaseScore = BaseScore(metric.CvssData.VectorString)
	}
	return entry
}
