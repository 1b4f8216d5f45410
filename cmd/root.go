package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/editorconfig-updater/cmd/update"
	"github.com/scan-io-git/editorconfig-updater/cmd/version"
	"github.com/scan-io-git/editorconfig-updater/pkg/shared/config"
	"github.com/scan-io-git/editorconfig-updater/pkg/shared/errors"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "editorconfig-updater [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "Keeps dotnet_diagnostic severities of an .editorconfig in sync with Roslyn.",
		Long: `editorconfig-updater collects C# compiler diagnostics and .NET analyzer rules
	from the upstream Roslyn repositories and rewrites the dotnet_diagnostic block of an
	existing .editorconfig, keeping every severity the user has already set.
	`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $"+config.ConfigEnvVar+" or built-in defaults)")
	rootCmd.AddCommand(update.UpdateCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return errors.ExitCodeFor(err)
	}
	return 0
}

func initConfig() error {
	var err error

	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		return errors.NewCommandError(fmt.Errorf("initializing config file function is crashed - %w", err), errors.ExitUsage)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		return errors.NewCommandError(err, errors.ExitUsage)
	}

	update.Init(AppConfig)
	return nil
}
