package fetcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-io-git/editorconfig-updater/pkg/shared/config"
)

func TestResolveSourcesDefaults(t *testing.T) {
	sources, err := ResolveSources(config.DefaultSources(), "", "")
	require.NoError(t, err)

	assert.Equal(t, Sources{
		CompilerCodes:    "https://raw.githubusercontent.com/dotnet/roslyn/main/src/Compilers/CSharp/Portable/Errors/ErrorCode.cs",
		CompilerMessages: "https://raw.githubusercontent.com/dotnet/roslyn/main/src/Compilers/CSharp/Portable/CSharpResources.resx",
		AnalyzerReport:   "https://raw.githubusercontent.com/dotnet/roslyn-analyzers/main/src/NetAnalyzers/Microsoft.CodeAnalysis.NetAnalyzers.sarif",
	}, sources)
}

func TestResolveSourcesRefs(t *testing.T) {
	sources, err := ResolveSources(config.DefaultSources(), "e59309f35553d53147088c01c5b7706d1e8cdec2", "release/8.0")
	require.NoError(t, err)

	assert.Contains(t, sources.CompilerCodes, "/dotnet/roslyn/e59309f35553d53147088c01c5b7706d1e8cdec2/")
	assert.Contains(t, sources.CompilerMessages, "/dotnet/roslyn/e59309f35553d53147088c01c5b7706d1e8cdec2/")
	assert.Contains(t, sources.AnalyzerReport, "/dotnet/roslyn-analyzers/release/8.0/")
}

func TestResolveSourcesBadTemplate(t *testing.T) {
	cfg := config.DefaultSources()
	cfg.AnalyzerReportURL = "https://example.com/{{.Branch}}"

	_, err := ResolveSources(cfg, "", "")
	assert.ErrorContains(t, err, "analyzer_report_url")
}
