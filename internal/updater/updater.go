package updater

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/editorconfig-updater/internal/analyzers"
	"github.com/scan-io-git/editorconfig-updater/internal/diagnostic"
	"github.com/scan-io-git/editorconfig-updater/internal/editorconfig"
	"github.com/scan-io-git/editorconfig-updater/internal/fetcher"
	"github.com/scan-io-git/editorconfig-updater/internal/registry"
	"github.com/scan-io-git/editorconfig-updater/internal/roslyn"
	"github.com/scan-io-git/editorconfig-updater/pkg/shared/errors"
	"github.com/scan-io-git/editorconfig-updater/pkg/shared/files"
)

// Options holds the parameters of one update run.
type Options struct {
	Path         string
	CompilerRef  string
	AnalyzersRef string
	DryRun       bool
}

// Result summarizes an update run.
type Result struct {
	Path    string
	Records int
	Report  editorconfig.Report
	// Changed is false when the merged content equals the existing file.
	Changed bool
}

// Updater runs the fetch, reconcile and rewrite pass over one .editorconfig.
type Updater struct {
	fetcher fetcher.Fetcher
	sources fetcher.Sources
	logger  hclog.Logger
	out     io.Writer
	locator roslyn.BlockLocator
}

// New creates an Updater. Dry-run output goes to out.
func New(f fetcher.Fetcher, sources fetcher.Sources, logger hclog.Logger, out io.Writer) *Updater {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Updater{
		fetcher: f,
		sources: sources,
		logger:  logger,
		out:     out,
		locator: roslyn.EnumBlockLocator{},
	}
}

// Run performs one full pass. The target file is only replaced after every source has
// been fetched and parsed and the new content is complete.
func (u *Updater) Run(ctx context.Context, opts Options) (*Result, error) {
	path, err := files.ExpandPath(opts.Path)
	if err != nil {
		return nil, errors.NewIOError("expand", opts.Path, err)
	}
	if err := files.ValidatePath(path); err != nil {
		return nil, errors.NewIOError("open", path, err)
	}

	payloads, err := fetcher.FetchAll(ctx, u.fetcher, u.sources, u.logger.Named("fetcher"))
	if err != nil {
		return nil, err
	}

	reg, err := u.buildRegistry(payloads)
	if err != nil {
		return nil, err
	}

	original, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError("read", path, err)
	}

	lg := u.logger.Named("editorconfig")
	lg.Info("updating severities", "path", path)
	merged, report := editorconfig.Merge(reg, string(original), lg)

	result := &Result{
		Path:    path,
		Records: reg.Len(),
		Report:  report,
		Changed: !bytes.Equal(original, []byte(merged)),
	}

	if opts.DryRun {
		if _, err := io.WriteString(u.out, merged); err != nil {
			return nil, fmt.Errorf("failed to write dry-run output: %w", err)
		}
		return result, nil
	}

	if !result.Changed {
		lg.Info("file is up to date", "path", path)
		return result, nil
	}
	if err := files.WriteFileAtomic(path, []byte(merged)); err != nil {
		return nil, errors.NewIOError("write", path, err)
	}
	lg.Info("file updated", "path", path, "diagnostics", result.Records, "overrides", report.Applied)
	return result, nil
}

// buildRegistry parses the fetched payloads into the canonical registry.
func (u *Updater) buildRegistry(p *fetcher.Payloads) (*diagnostic.Registry, error) {
	roslynLog := u.logger.Named("roslyn")

	roslynLog.Info("parsing error codes")
	codes, err := roslyn.ParseErrorCodes(bytes.NewReader(p.CompilerCodes), u.locator)
	if err != nil {
		return nil, err
	}
	roslynLog.Info("found error codes", "count", len(codes))

	roslynLog.Info("parsing resx data")
	messages, err := roslyn.ParseResources(bytes.NewReader(p.CompilerMessages))
	if err != nil {
		return nil, err
	}
	roslynLog.Info("found resx messages", "count", len(messages))

	analyzersLog := u.logger.Named("analyzers")
	analyzersLog.Info("parsing sarif data")
	analyzerRecords, err := analyzers.ParseReport(p.AnalyzerReport)
	if err != nil {
		return nil, err
	}
	analyzersLog.Info("found analyzer rules", "count", analyzerRecords.Len())

	reg, err := registry.Build(codes, messages, analyzerRecords)
	if err != nil {
		return nil, err
	}
	u.logger.Named("registry").Info("registry built", "diagnostics", reg.Len())
	return reg, nil
}
