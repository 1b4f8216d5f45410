package editorconfig

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/editorconfig-updater/internal/diagnostic"
)

// DiagnosticPrefix starts every diagnostic directive line.
const DiagnosticPrefix = "dotnet_diagnostic."

// Override is a user severity that differs from the registry default.
type Override struct {
	Code string
	From diagnostic.Severity
	To   diagnostic.Severity
}

// Report describes what a merge did with the user's diagnostic lines.
type Report struct {
	// Applied counts user severities taken over into the registry.
	Applied int
	// Changed lists the applied severities that differ from the registry default.
	Changed []Override
	// Ignored lists codes that are not in the registry.
	Ignored []string
	// Malformed lists diagnostic lines that carry no code or no value.
	Malformed []string
}

// IsDiagnosticLine reports whether line is a diagnostic directive.
func IsDiagnosticLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), DiagnosticPrefix)
}

// ParseDirective extracts the code and the severity text of a diagnostic line.
// Anything after the first '#' is a comment. The code is returned lowercased.
func ParseDirective(line string) (code string, severity diagnostic.Severity, ok bool) {
	if !IsDiagnosticLine(line) {
		return "", "", false
	}

	directive := strings.SplitN(line, "#", 2)[0]
	parts := strings.Split(directive, "=")
	if len(parts) < 2 {
		return "", "", false
	}

	segments := strings.Split(strings.TrimSpace(parts[0]), ".")
	if len(segments) < 2 || strings.TrimSpace(segments[1]) == "" {
		return "", "", false
	}

	return diagnostic.Key(strings.TrimSpace(segments[1])), diagnostic.SeverityFromOverride(parts[1]), true
}

// ApplyOverrides returns a copy of reg with the severities the user already set in lines.
// Message and code of an overridden record are kept. Codes missing from reg are skipped.
func ApplyOverrides(reg *diagnostic.Registry, lines []string, logger hclog.Logger) (*diagnostic.Registry, Report) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	out := reg.Clone()
	var report Report

	for _, line := range lines {
		if !IsDiagnosticLine(line) {
			continue
		}

		code, severity, ok := ParseDirective(line)
		if !ok {
			logger.Warn("skipping malformed diagnostic line", "line", strings.TrimSpace(line))
			report.Malformed = append(report.Malformed, strings.TrimSpace(line))
			continue
		}

		record, found := out.Get(code)
		if !found {
			logger.Info("unknown diagnostic", "code", code)
			report.Ignored = append(report.Ignored, code)
			continue
		}

		if record.Severity != severity {
			logger.Info("updating severity", "code", code, "from", record.Severity, "to", severity)
			report.Changed = append(report.Changed, Override{Code: code, From: record.Severity, To: severity})
		}

		record.Severity = severity
		out.Put(record)
		report.Applied++
	}

	return out, report
}

// SanitizeMessage collapses a message onto one line: line breaks become spaces,
// whitespace runs become a single space, and the result is trimmed.
func SanitizeMessage(message string) string {
	message = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(message)
	return strings.Join(strings.Fields(message), " ")
}

// FormatLine renders a record as a diagnostic directive line without a trailing newline.
func FormatLine(r diagnostic.Record) string {
	line := fmt.Sprintf("%s%s.severity = %s", DiagnosticPrefix, strings.ToLower(r.Code), r.Severity)
	if msg := SanitizeMessage(r.Message); msg != "" {
		line += " # " + msg
	}
	return line
}

// Rewrite regenerates the file content. Lines that are not diagnostic directives are kept
// in order with trailing whitespace removed. The first diagnostic line is replaced by every
// record of reg in ascending code order; the remaining diagnostic lines are dropped.
func Rewrite(reg *diagnostic.Registry, lines []string) string {
	var b strings.Builder
	written := false

	for _, line := range lines {
		if !IsDiagnosticLine(line) {
			b.WriteString(strings.TrimRightFunc(line, unicode.IsSpace))
			b.WriteByte('\n')
			continue
		}
		if written {
			continue
		}

		written = true
		for _, record := range reg.Records() {
			b.WriteString(FormatLine(record))
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// SplitLines splits file content into lines. "\n" and "\r\n" both end a line
// and a final line terminator does not produce an empty trailing line.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Merge layers the user's severities from content over reg and returns the new content.
func Merge(reg *diagnostic.Registry, content string, logger hclog.Logger) (string, Report) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	lines := SplitLines(content)
	merged, report := ApplyOverrides(reg, lines, logger)
	logger.Debug("writing diagnostics", "count", merged.Len())
	return Rewrite(merged, lines), report
}
