package config

import (
	"crypto/tls"
	"time"
)

// Default upstream locations of the diagnostic sources.
const (
	DefaultCompilerCodesURL    = "https://raw.githubusercontent.com/dotnet/roslyn/{{.Ref}}/src/Compilers/CSharp/Portable/Errors/ErrorCode.cs"
	DefaultCompilerMessagesURL = "https://raw.githubusercontent.com/dotnet/roslyn/{{.Ref}}/src/Compilers/CSharp/Portable/CSharpResources.resx"
	DefaultAnalyzerReportURL   = "https://raw.githubusercontent.com/dotnet/roslyn-analyzers/{{.Ref}}/src/NetAnalyzers/Microsoft.CodeAnalysis.NetAnalyzers.sarif"
	DefaultRef                 = "main"
)

// BaseHTTPConfig holds common HTTP client configuration settings.
type BaseHTTPConfig struct {
	RetryCount       int           // Number of retries for failed requests
	RetryWaitTime    time.Duration // Wait time between retries
	RetryMaxWaitTime time.Duration // Maximum wait time for retries
	Timeout          time.Duration // Timeout for requests
	TLSClientConfig  *tls.Config   // TLS configuration
	Proxy            string        // Proxy address
}

// RestyHTTPClientConfig holds additional configuration settings for the Resty HTTP client.
type RestyHTTPClientConfig struct {
	BaseHTTPConfig
	Debug bool // Flag to enable Resty debug mode
}

// DefaultHTTPConfig returns a base configuration for HTTP clients with default values.
// Sources are fetched once per run, so retries are off unless configured.
func DefaultHTTPConfig() BaseHTTPConfig {
	return BaseHTTPConfig{
		RetryCount:       0,
		RetryWaitTime:    1 * time.Second,
		RetryMaxWaitTime: 5 * time.Second,
		Timeout:          60 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		Proxy: "",
	}
}

// DefaultRestyConfig returns a default configuration for the Resty HTTP client, extending the base HTTP configuration.
func DefaultRestyConfig() RestyHTTPClientConfig {
	return RestyHTTPClientConfig{
		BaseHTTPConfig: DefaultHTTPConfig(),
		Debug:          false,
	}
}

// DefaultSources returns the upstream locations used when the config does not override them.
func DefaultSources() Sources {
	return Sources{
		CompilerCodesURL:    DefaultCompilerCodesURL,
		CompilerMessagesURL: DefaultCompilerMessagesURL,
		AnalyzerReportURL:   DefaultAnalyzerReportURL,
		DefaultRef:          DefaultRef,
	}
}
