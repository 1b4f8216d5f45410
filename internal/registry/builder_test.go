package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-io-git/editorconfig-updater/internal/diagnostic"
	sharederrors "github.com/scan-io-git/editorconfig-updater/pkg/shared/errors"
)

func TestFormatCompilerCode(t *testing.T) {
	tests := map[int]string{
		1:     "CS0001",
		19:    "CS0019",
		8600:  "CS8600",
		12345: "CS12345",
	}
	for id, want := range tests {
		if got := FormatCompilerCode(id); got != want {
			t.Fatalf("FormatCompilerCode(%d) = %q, want %q", id, got, want)
		}
	}
}

func TestBuildCompiler(t *testing.T) {
	codes := map[string]int{
		"ERR_BadBinaryOps":       19,
		"WRN_UnreferencedField":  169,
		"HDN_UnusedUsing":        8019,
		"INF_TooManyBoundLambda": 8603,
	}
	messages := map[string]string{
		"ERR_BadBinaryOps":      "Operator '{0}' cannot be applied",
		"WRN_UnreferencedField": "The field '{0}' is never used",
	}

	reg, err := BuildCompiler(codes, messages)
	require.NoError(t, err)

	assert.Equal(t, []diagnostic.Record{
		{Code: "CS0019", Message: "Operator '{0}' cannot be applied", Severity: diagnostic.SeverityError},
		{Code: "CS0169", Message: "The field '{0}' is never used", Severity: diagnostic.SeverityWarning},
		{Code: "CS8019", Message: UnknownMessage, Severity: diagnostic.SeverityNone},
		{Code: "CS8603", Message: UnknownMessage, Severity: diagnostic.SeveritySuggestion},
	}, reg.Records())
	for _, key := range reg.Keys() {
		assert.Equal(t, diagnostic.Key(key), key)
	}
}

func TestBuildCompilerSharedIDIsDeterministic(t *testing.T) {
	codes := map[string]int{"ERR_Alpha": 7, "WRN_Beta": 7}

	for i := 0; i < 10; i++ {
		reg, err := BuildCompiler(codes, nil)
		require.NoError(t, err)
		got, _ := reg.Get("cs0007")
		assert.Equal(t, diagnostic.SeverityWarning, got.Severity)
	}
}

func TestBuildCompilerRejectsUnknownPrefix(t *testing.T) {
	_, err := BuildCompiler(map[string]int{"Void": 0}, nil)

	var formatErr *sharederrors.FormatError
	assert.True(t, errors.As(err, &formatErr), "expected FormatError, got %v", err)
}

func TestBuildLayersAnalyzers(t *testing.T) {
	analyzers := diagnostic.NewRegistry()
	analyzers.Put(diagnostic.Record{Code: "CA1802", Message: "Use const", Severity: diagnostic.SeveritySuggestion})
	analyzers.Put(diagnostic.Record{Code: "CS0019", Message: "Overridden by analyzer", Severity: diagnostic.SeverityWarning})

	reg, err := Build(map[string]int{"ERR_BadBinaryOps": 19, "ERR_NoSemicolon": 1}, map[string]string{"ERR_NoSemicolon": "Missing semicolon"}, analyzers)
	require.NoError(t, err)

	assert.Equal(t, []string{"ca1802", "cs0001", "cs0019"}, reg.Keys())

	got, _ := reg.Get("cs0019")
	assert.Equal(t, diagnostic.Record{Code: "CS0019", Message: "Overridden by analyzer", Severity: diagnostic.SeverityWarning}, got)
	got, _ = reg.Get("cs0001")
	assert.Equal(t, "Missing semicolon", got.Message)

	// the analyzer registry is not modified by the merge
	assert.Equal(t, 2, analyzers.Len())
}
