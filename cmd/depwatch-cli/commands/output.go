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

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/l3montree-dev/depwatch/dtos"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// writeStructured prints v as json or yaml. The yaml output uses the json
// field names.
func writeStructured(out io.Writer, format string, v any) error {
	switch format {
	case outputJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case outputYAML:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var generic any
		if err := json.Unmarshal(b, &generic); err != nil {
			return err
		}
		encoder := yaml.NewEncoder(out)
		defer encoder.Close()
		return encoder.Encode(generic)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func severityColor(severity string) text.Colors {
	switch strings.ToUpper(severity) {
	case "CRITICAL":
		return text.Colors{text.FgHiRed, text.Bold}
	case "HIGH":
		return text.Colors{text.FgRed}
	case "MODERATE", "MEDIUM":
		return text.Colors{text.FgYellow}
	default:
		return text.Colors{}
	}
}

func affectedRanges(affected []dtos.AffectedRange) string {
	ranges := make([]string, 0, len(affected))
	for _, a := range affected {
		introduced := a.Introduced
		if introduced == "" {
			introduced = "0"
		}
		fixed := a.Fixed
		if fixed == "" {
			fixed = "*"
		}
		ranges = append(ranges, fmt.Sprintf(">=%s <%s", introduced, fixed))
	}
	return strings.Join(ranges, "\n")
}

func printVulnerabilities(out io.Writer, format string, vulns []dtos.NormalizedOSVVuln) error {
	if format != outputTable {
		return writeStructured(out, format, vulns)
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetAllowedRowLength(160)
	tw.AppendHeader(table.Row{"ID", "CVE", "Severity", "Affected", "Summary"})
	for _, vuln := range vulns {
		tw.AppendRow(table.Row{
			vuln.ID,
			vuln.CveID,
			severityColor(vuln.DBSeverity).Sprint(vuln.DBSeverity),
			affectedRanges(vuln.Affected),
			text.WrapSoft(vuln.Summary, 60),
		})
	}
	tw.AppendFooter(table.Row{"", "", "", "Total", len(vulns)})
	tw.Render()
	return nil
}
