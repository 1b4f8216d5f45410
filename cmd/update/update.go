package update

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/editorconfig-updater/internal/fetcher"
	"github.com/scan-io-git/editorconfig-updater/internal/updater"
	"github.com/scan-io-git/editorconfig-updater/pkg/shared/config"
	"github.com/scan-io-git/editorconfig-updater/pkg/shared/errors"
	"github.com/scan-io-git/editorconfig-updater/pkg/shared/httpclient"
	"github.com/scan-io-git/editorconfig-updater/pkg/shared/logger"
)

var (
	AppConfig *config.Config
	opts      updater.Options

	exampleUpdateUsage = `  # Update severities in an existing .editorconfig from the latest sources
  editorconfig-updater update ./.editorconfig

  # Pin the compiler sources to a commit and the analyzers to a release branch
  editorconfig-updater update ./.editorconfig e59309f35553d53147088c01c5b7706d1e8cdec2 release/8.0.1xx

  # Print the merged file instead of replacing it
  editorconfig-updater update --dry-run ./.editorconfig`

	// UpdateCmd merges the upstream diagnostic registry into an existing .editorconfig.
	UpdateCmd = &cobra.Command{
		Use:                   "update PATH [COMPILER_REF] [ANALYZERS_REF]",
		Short:                 "Regenerate dotnet_diagnostic severities in an existing .editorconfig",
		Example:               exampleUpdateUsage,
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		RunE:                  runUpdate,
	}
)

// Init wires config into this command.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

func init() {
	UpdateCmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the merged file to stdout instead of replacing it")
	UpdateCmd.Flags().BoolP("help", "h", false, "Show help for update command.")
}

// runUpdate is the main execution function for the update command.
func runUpdate(cmd *cobra.Command, args []string) error {
	// 1. Validate arguments
	if err := validateUpdateArgs(args); err != nil {
		cmd.PrintErrln(cmd.UsageString())
		return errors.NewCommandError(fmt.Errorf("invalid arguments: %w", err), errors.ExitUsage)
	}
	applyArgs(&opts, args)

	cfg := AppConfig
	if cfg == nil {
		cfg = &config.Config{Sources: config.DefaultSources()}
	}

	// 2. Initialize logger
	lg := logger.NewLogger(cfg, "editorconfig-updater")
	lg.Info("branches", "compiler", config.SetThen(opts.CompilerRef, cfg.Sources.DefaultRef), "analyzers", config.SetThen(opts.AnalyzersRef, cfg.Sources.DefaultRef))

	// 3. Resolve source locations
	sources, err := fetcher.ResolveSources(cfg.Sources, opts.CompilerRef, opts.AnalyzersRef)
	if err != nil {
		lg.Error("failed to resolve sources", "error", err)
		return errors.NewCommandError(err, errors.ExitUsage)
	}

	// 4. Run the update pass
	httpLogger := lg.Named("http")
	client := httpclient.InitializeRestyClient(httpLogger, cfg)
	u := updater.New(fetcher.New(client, httpLogger), sources, lg, cmd.OutOrStdout())

	result, err := u.Run(cmd.Context(), opts)
	if err != nil {
		lg.Error("update failed", "error", err)
		return errors.NewCommandError(err, errors.ExitCodeFor(err))
	}

	// 5. Report
	if !opts.DryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %d diagnostic(s), %d user severity(ies) kept, %d unknown code(s) skipped\n",
			result.Path, result.Records, result.Report.Applied, len(result.Report.Ignored))
	}
	return nil
}
