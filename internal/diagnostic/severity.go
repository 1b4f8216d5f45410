package diagnostic

import (
	"fmt"
	"strings"

	"github.com/scan-io-git/editorconfig-updater/pkg/shared/errors"
)

// Severity is the directive written after "severity =" in an .editorconfig diagnostic line.
// Generated records always carry one of the four constants below; a user override
// is kept verbatim and may hold any text.
type Severity string

const (
	SeverityError      Severity = "error"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
	SeverityNone       Severity = "none"
)

func (s Severity) String() string {
	return string(s)
}

// IsKnown reports whether s is one of the four generated severities.
func (s Severity) IsKnown() bool {
	switch s {
	case SeverityError, SeverityWarning, SeveritySuggestion, SeverityNone:
		return true
	}
	return false
}

// compilerPrefixes maps the three-letter prefix of a compiler symbolic name to its severity.
var compilerPrefixes = map[string]Severity{
	"FTL": SeverityError,
	"ERR": SeverityError,
	"WRN": SeverityWarning,
	"INF": SeveritySuggestion,
	"HDN": SeverityNone,
}

// analyzerLevels maps the default level vocabulary of an analyzer report to a severity.
var analyzerLevels = map[string]Severity{
	"fatal":       SeverityError,
	"error":       SeverityError,
	"warning":     SeverityWarning,
	"information": SeveritySuggestion,
	"note":        SeveritySuggestion,
	"hidden":      SeverityNone,
}

// SeverityFromCompilerName derives the default severity of a compiler diagnostic
// from the first three characters of its symbolic name, e.g. ERR_BadBinaryOps.
func SeverityFromCompilerName(name string) (Severity, error) {
	if len(name) < 3 {
		return "", errors.NewFormatError("compiler codes", fmt.Sprintf("symbolic name %q has no severity prefix", name), nil)
	}
	sev, ok := compilerPrefixes[name[:3]]
	if !ok {
		return "", errors.NewFormatError("compiler codes", fmt.Sprintf("unknown severity prefix %q in %q", name[:3], name), nil)
	}
	return sev, nil
}

// SeverityFromAnalyzerLevel maps an analyzer report default level to a severity.
func SeverityFromAnalyzerLevel(level string) (Severity, error) {
	sev, ok := analyzerLevels[level]
	if !ok {
		return "", errors.NewFormatError("analyzer report", fmt.Sprintf("unknown severity level %q", level), nil)
	}
	return sev, nil
}

// SeverityFromOverride returns the severity a user wrote in the config file.
// The value is not checked against the known severities.
func SeverityFromOverride(text string) Severity {
	return Severity(strings.TrimSpace(text))
}
