package analyzers

import (
	"bytes"
	"fmt"

	"github.com/owenrumney/go-sarif/v2/sarif"
	"github.com/tidwall/gjson"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/scan-io-git/editorconfig-updater/internal/diagnostic"
	"github.com/scan-io-git/editorconfig-updater/pkg/shared/errors"
)

const reportSource = "analyzer report"

// SARIF 2.1.0 spells the analyzer "hidden" level as "none". Both versions default to "warning".
const (
	sarifLevelNone    = "none"
	sarifLevelDefault = "warning"
)

// ParseReport reads the rule definitions of an analyzer SARIF report into a new registry.
// Both the SARIF 1.0 layout published by the .NET analyzers and SARIF 2.1.0 are accepted.
// A rule with an unknown default level rejects the whole report.
func ParseReport(data []byte) (*diagnostic.Registry, error) {
	data, err := decodeText(data)
	if err != nil {
		return nil, errors.NewFormatError(reportSource, "failed to decode report text", err)
	}

	reg := diagnostic.NewRegistry()
	if len(bytes.TrimSpace(data)) == 0 {
		return reg, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.NewFormatError(reportSource, "report is not valid JSON", nil)
	}

	if gjson.GetBytes(data, "version").String() == string(sarif.Version210) {
		err = parseV2(data, reg)
	} else {
		err = parseV1(data, reg)
	}
	if err != nil {
		return nil, err
	}
	return reg, nil
}

// decodeText strips a byte order mark and replaces invalid UTF-8 sequences.
func decodeText(data []byte) ([]byte, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	return out, err
}

// parseV1 walks runs[].rules, which SARIF 1.0 keys by rule id.
func parseV1(data []byte, reg *diagnostic.Registry) error {
	var parseErr error
	gjson.GetBytes(data, "runs").ForEach(func(_, run gjson.Result) bool {
		run.Get("rules").ForEach(func(_, rule gjson.Result) bool {
			parseErr = addRule(reg, rule.Get("id").String(), v1Description(rule), v1Level(rule))
			return parseErr == nil
		})
		return parseErr == nil
	})
	return parseErr
}

// v1Description reads shortDescription, which is a plain string in SARIF 1.0
// and a message object in some producers.
func v1Description(rule gjson.Result) string {
	desc := rule.Get("shortDescription")
	if desc.IsObject() {
		return desc.Get("text").String()
	}
	return desc.String()
}

func v1Level(rule gjson.Result) string {
	level := rule.Get("defaultLevel").String()
	if level == "" {
		return sarifLevelDefault
	}
	return level
}

// parseV2 walks runs[].tool.driver.rules of a SARIF 2.1.0 report.
func parseV2(data []byte, reg *diagnostic.Registry) error {
	report, err := sarif.FromBytes(data)
	if err != nil {
		return errors.NewFormatError(reportSource, "failed to decode SARIF 2.1.0 report", err)
	}

	for _, run := range report.Runs {
		if run == nil || run.Tool.Driver == nil {
			continue
		}
		for _, rule := range run.Tool.Driver.Rules {
			if rule == nil {
				continue
			}
			if err := addRule(reg, rule.ID, shortDescription(rule), defaultLevel(rule)); err != nil {
				return err
			}
		}
	}
	return nil
}

func shortDescription(rule *sarif.ReportingDescriptor) string {
	if rule.ShortDescription == nil || rule.ShortDescription.Text == nil {
		return ""
	}
	return *rule.ShortDescription.Text
}

func defaultLevel(rule *sarif.ReportingDescriptor) string {
	if rule.DefaultConfiguration == nil || rule.DefaultConfiguration.Level == "" {
		return sarifLevelDefault
	}
	if rule.DefaultConfiguration.Level == sarifLevelNone {
		return "hidden"
	}
	return rule.DefaultConfiguration.Level
}

func addRule(reg *diagnostic.Registry, id, message, level string) error {
	if id == "" {
		return errors.NewFormatError(reportSource, "rule without id", nil)
	}
	severity, err := diagnostic.SeverityFromAnalyzerLevel(level)
	if err != nil {
		return fmt.Errorf("rule %s: %w", id, err)
	}
	reg.Put(diagnostic.Record{Code: id, Message: message, Severity: severity})
	return nil
}
