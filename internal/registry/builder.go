package registry

import (
	"fmt"
	"sort"

	"github.com/scan-io-git/editorconfig-updater/internal/diagnostic"
)

const (
	// compilerCodePrefix marks the compiler diagnostic family.
	compilerCodePrefix = "CS"
	// UnknownMessage is used for compiler codes without a resource string.
	UnknownMessage = "Unknown"
)

// FormatCompilerCode renders a numeric compiler id as a display code, e.g. 1 -> CS0001.
func FormatCompilerCode(id int) string {
	return fmt.Sprintf("%s%04d", compilerCodePrefix, id)
}

// BuildCompiler combines compiler error codes with their resource messages.
// Names are visited in ascending order, so when two names share an id the last one wins.
func BuildCompiler(codes map[string]int, messages map[string]string) (*diagnostic.Registry, error) {
	names := make([]string, 0, len(codes))
	for name := range codes {
		names = append(names, name)
	}
	sort.Strings(names)

	reg := diagnostic.NewRegistry()
	for _, name := range names {
		severity, err := diagnostic.SeverityFromCompilerName(name)
		if err != nil {
			return nil, err
		}

		message, ok := messages[name]
		if !ok {
			message = UnknownMessage
		}

		reg.Put(diagnostic.Record{
			Code:     FormatCompilerCode(codes[name]),
			Message:  message,
			Severity: severity,
		})
	}
	return reg, nil
}

// Build produces the canonical registry: compiler diagnostics with analyzer diagnostics
// layered on top. An analyzer record replaces a compiler record with the same code.
func Build(codes map[string]int, messages map[string]string, analyzers *diagnostic.Registry) (*diagnostic.Registry, error) {
	compiler, err := BuildCompiler(codes, messages)
	if err != nil {
		return nil, err
	}
	return compiler.Layer(analyzers), nil
}
