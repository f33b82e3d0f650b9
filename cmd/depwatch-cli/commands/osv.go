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
	"context"
	"io"

	"github.com/l3montree-dev/depwatch/dtos"
	"github.com/l3montree-dev/depwatch/normalize"
	"github.com/l3montree-dev/depwatch/shared"
	"github.com/l3montree-dev/depwatch/vulndb"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func NewOSVCommand() *cobra.Command {
	osv := &cobra.Command{
		Use:   "osv <package> [version]",
		Short: "Queries osv for the vulnerabilities of a package",
		Long:  "Queries osv and prints the normalized vulnerabilities. Nothing is written to the database.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ecosystem, _ := cmd.Flags().GetString("ecosystem")
			output, _ := cmd.Flags().GetString("output")
			version := ""
			if len(args) == 2 {
				version = args[1]
			}
			client := vulndb.NewOSVService(vulndbConfig().OSVURL)
			return queryOSV(cmd.Context(), client, cmd.OutOrStdout(), output, args[0], ecosystem, version)
		},
	}

	osv.Flags().StringP("ecosystem", "e", "npm", "Ecosystem of the package")
	osv.Flags().StringP("output", "o", outputTable, "Output format. Options: table, json, yaml")
	return osv
}

func queryOSV(ctx context.Context, client shared.OSVClient, out io.Writer, format, name, ecosystem, version string) error {
	var raw dtos.OSVQueryResponse
	var err error
	if version == "" {
		raw, err = client.QueryPackage(ctx, name, ecosystem)
	} else {
		raw, err = client.QueryPackageVersion(ctx, name, ecosystem, version)
	}
	if err != nil {
		return errors.Wrapf(err, "could not query osv for %s", name)
	}

	return printVulnerabilities(out, format, normalize.OsvQueryResult(raw))
}
