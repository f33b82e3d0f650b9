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
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/depwatch/database"
	"github.com/l3montree-dev/depwatch/shared"
	"github.com/l3montree-dev/depwatch/vulndb"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const defaultConfigFilename = ".depwatch"

var rootCmd = &cobra.Command{
	SilenceUsage: true,
	Use:          "depwatch-cli",
	Short:        "Management cli",
	Long: `The depwatch cli runs migrations and enrichments against the depwatch database.
Configuration can be provided via a ./.depwatch config file or environment variables (prefix DEPWATCH_).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func init() {
	defaults := vulndb.ConfigFromEnv()
	rootCmd.PersistentFlags().String("npmRegistryUrl", defaults.NpmRegistryURL, "Base url of the npm registry")
	rootCmd.PersistentFlags().String("npmsUrl", defaults.NpmsURL, "Base url of the npms.io api")
	rootCmd.PersistentFlags().String("osvUrl", defaults.OSVURL, "Base url of the osv api")
	rootCmd.PersistentFlags().String("nvdUrl", defaults.NVDURL, "Base url of the nvd api")
	rootCmd.PersistentFlags().String("nvdApiKey", defaults.NVDAPIKey, "Api key for the nvd api")
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

func initializeConfig(cmd *cobra.Command) error {
	viper.SetConfigName(defaultConfigFilename)
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/depwatch/")

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if there isn't a config file
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		slog.Debug("no config file found")
	}

	viper.SetEnvPrefix("DEPWATCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	bindFlags(cmd)
	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		configName := f.Name
		if !f.Changed && viper.IsSet(configName) {
			val := viper.Get(configName)
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)) // nolint: errcheck
		}

		if err := viper.BindPFlag(configName, f); err != nil {
			slog.Error("could not bind flag to viper", "err", err)
		}
	})
}

func vulndbConfig() vulndb.Config {
	return vulndb.Config{
		NpmRegistryURL: viper.GetString("npmRegistryUrl"),
		NpmsURL:        viper.GetString("npmsUrl"),
		OSVURL:         viper.GetString("osvUrl"),
		NVDURL:         viper.GetString("nvdUrl"),
		NVDAPIKey:      viper.GetString("nvdApiKey"),
	}
}

func openDatabase(ctx context.Context) (*pgxpool.Pool, shared.DB, error) {
	pool, db, err := database.NewConnection(ctx, database.GetPoolConfigFromEnv())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to database: %w", err)
	}
	return pool, db, nil
}
