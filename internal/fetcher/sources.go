package fetcher

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/scan-io-git/editorconfig-updater/pkg/shared/config"
)

// Sources holds the resolved URLs of the upstream sources.
type Sources struct {
	CompilerCodes    string
	CompilerMessages string
	AnalyzerReport   string
}

// ResolveSources renders the configured URL templates. Compiler sources use compilerRef,
// the analyzer report uses analyzersRef; an empty ref falls back to the configured default.
func ResolveSources(cfg config.Sources, compilerRef, analyzersRef string) (Sources, error) {
	compilerRef = config.SetThen(compilerRef, cfg.DefaultRef)
	analyzersRef = config.SetThen(analyzersRef, cfg.DefaultRef)

	var (
		sources Sources
		err     error
	)
	if sources.CompilerCodes, err = renderURL("compiler_codes_url", cfg.CompilerCodesURL, compilerRef); err != nil {
		return Sources{}, err
	}
	if sources.CompilerMessages, err = renderURL("compiler_messages_url", cfg.CompilerMessagesURL, compilerRef); err != nil {
		return Sources{}, err
	}
	if sources.AnalyzerReport, err = renderURL("analyzer_report_url", cfg.AnalyzerReportURL, analyzersRef); err != nil {
		return Sources{}, err
	}
	return sources, nil
}

func renderURL(name, tmpl, ref string) (string, error) {
	t, err := template.New(name).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s template: %w", name, err)
	}

	var b strings.Builder
	if err := t.Execute(&b, struct{ Ref string }{Ref: ref}); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return b.String(), nil
}
