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
	"regexp"
	"strings"

	"github.com/l3montree-dev/depwatch/database/models"
	"github.com/l3montree-dev/depwatch/dtos"
	gocvss20 "github.com/pandatix/go-cvss/20"
	gocvss30 "github.com/pandatix/go-cvss/30"
	gocvss31 "github.com/pandatix/go-cvss/31"
	gocvss40 "github.com/pandatix/go-cvss/40"
)

var cvssVersionRegex = regexp.MustCompile(`^CVSS:(\d+\.\d+)`)

// CvssVersion returns the version a vector claims to be, e.g. "3.1".
// Vectors without the CVSS prefix (like plain v2 vectors) yield "".
func CvssVersion(vector string) string {
	match := cvssVersionRegex.FindStringSubmatch(vector)
	if match == nil {
		return ""
	}
	return match[1]
}

// MergeCvssFromOsv fills empty version slots of the existing severity with
// the OSV severity entries. A populated slot is never overwritten and the
// first entry seen for a slot wins.
func MergeCvssFromOsv(existing models.CvssSeverity, list []dtos.OSVSeverity) models.CvssSeverity {
	merged := existing
	for _, s := range list {
		switch s.Type {
		case "CVSS_V4":
			if merged.CvssMetricV40 == nil {
				merged.CvssMetricV40 = newCvssEntry("4.0", s.Score)
			}
		case "CVSS_V3":
			switch CvssVersion(s.Score) {
			case "3.1":
				if merged.CvssMetricV31 == nil {
					merged.CvssMetricV31 = newCvssEntry("3.1", s.Score)
				}
			case "3.0":
				if merged.CvssMetricV30 == nil {
					merged.CvssMetricV30 = newCvssEntry("3.0", s.Score)
				}
			}
		case "CVSS_V2":
			if merged.CvssMetricV2 == nil {
				merged.CvssMetricV2 = newCvssEntry("2.0", s.Score)
			}
		}
	}
	return merged
}

func newCvssEntry(version, vector string) *models.CvssEntry {
	return &models.CvssEntry{
		Version:      version,
		VectorString: vector,
		BaseScore:    BaseScore(vector),
	}
}

// BaseScore calculates the base score of a vector. Returns nil if the
// vector cannot be parsed.
func BaseScore(vector string) *float64 {
	var score float64
	switch {
	case strings.HasPrefix(vector, "CVSS:4.0"):
		cvss, err := gocvss40.ParseVector(vector)
		if err != nil {
			return nil
		}
		score = cvss.Score()
	case strings.HasPrefix(vector, "CVSS:3.1"):
		cvss, err := gocvss31.ParseVector(vector)
		if err != nil {
			return nil
		}
		score = cvss.BaseScore()
	case strings.HasPrefix(vector, "CVSS:3.0"):
		cvss, err := gocvss30.ParseVector(vector)
		if err != nil {
			return nil
		}
		score = cvss.BaseScore()
	default:
		cvss, err := gocvss20.ParseVector(vector)
		if err != nil {
			return nil
		}
		score = cvss.BaseScore()
	}
	return &score
}
