// Package cmd holds the cobra commands of the billlookup CLI.
//
//	billlookup
//	├── lookup <id>   (alias: print)
//	├── export <id>
//	├── save <id>
//	└── version
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"billlookup/internal/config"
	"billlookup/pkg/logging"
)

const defaultConfigFile = "billlookup.yaml"

// errReported marks a failure whose message was already printed with the
// bill output.
var errReported = errors.New("reported")

type rootOptions struct {
	cfgFile string
	verbose bool
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "billlookup",
		Short: "Look up and print the bill of a purchase transaction",
		Long: `billlookup reads one transaction, its buyer and its purchased products
from PostgreSQL or an embedded SQLite file and prints the bill.

Example Usage:
  billlookup lookup T100                       # Print the bill of T100
  billlookup --config ./prod.yaml print T100   # Use a custom configuration file`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logging.LevelFromEnv()
			if opts.verbose {
				level = slog.LevelDebug
			}
			logging.SetupWithLevel(cmd.ErrOrStderr(), level)

			// the default file is optional, an explicit one is not
			allowMissing := !cmd.Flags().Changed("config")
			cfg, err := config.Load(opts.cfgFile, allowMissing)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			slog.Debug("config loaded", "path", opts.cfgFile, "driver", cfg.Database.Driver)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", defaultConfigFile, "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output for debugging")

	rootCmd.AddCommand(
		newLookupCmd(opts),
		newExportCmd(opts),
		newSaveCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the CLI and returns the process exit status.
func Execute() int {
	return run(newRootCmd(), os.Args[1:])
}

func run(rootCmd *cobra.Command, args []string) int {
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
