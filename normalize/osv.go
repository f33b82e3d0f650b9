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
	"github.com/l3montree-dev/depwatch/database/models"
	"github.com/l3montree-dev/depwatch/dtos"
)

// OsvQueryResult flattens the vulnerabilities of an OSV query response.
// Only the first range of every affected entry is taken into account.
func OsvQueryResult(raw dtos.OSVQueryResponse) []dtos.NormalizedOSVVuln {
	result := make([]dtos.NormalizedOSVVuln, 0, len(raw.Vulns))
	for _, vuln := range raw.Vulns {
		result = append(result, osvVuln(vuln))
	}
	return result
}

func osvVuln(vuln dtos.OSV) dtos.NormalizedOSVVuln {
	references := make([]models.Reference, 0, len(vuln.References))
	for _, ref := range vuln.References {
		references = append(references, models.Reference{Type: ref.Type, URL: ref.URL})
	}

	affected := make([]dtos.AffectedRange, 0, len(vuln.Affected))
	for _, a := range vuln.Affected {
		affected = append(affected, affectedRange(a))
	}

	cweIDs := vuln.DatabaseSpecific.CweIDs
	if cweIDs == nil {
		cweIDs = []string{}
	}

	return dtos.NormalizedOSVVuln{
		ID:             vuln.ID,
		Summary:        vuln.Summary,
		Details:        vuln.Details,
		CveID:          cveAlias(vuln.Aliases),
		Published:      vuln.Published,
		CweIDs:         cweIDs,
		NvdPublishedAt: vuln.DatabaseSpecific.NvdPublishedAt,
		DBSeverity:     vuln.DatabaseSpecific.Severity,
		References:     references,
		CvssSeverity:   vuln.Severity,
		Affected:       affected,
	}
}

// the first alias is taken as the cve id, whatever its prefix
func cveAlias(aliases []string) string {
	if len(aliases) > 0 {
		return aliases[0]
	}
	return ""
}

func affectedRange(a dtos.OSVAffected) dtos.AffectedRange {
	source := a.Package.Ecosystem
	if s, ok := a.DatabaseSpecific["source"].(string); ok && s != "" {
		source = s
	}

	r := dtos.AffectedRange{Source: source}
	if len(a.Ranges) == 0 {
		return r
	}

	for _, event := range a.Ranges[0].Events {
		if r.Introduced == "" && event.Introduced != "" {
			r.Introduced = event.Introduced
		}
		if r.Fixed == "" && event.Fixed != "" {
			r.Fixed = event.Fixed
		}
	}
	return r
}
