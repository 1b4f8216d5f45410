package config

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// ConfigEnvVar names the environment variable that points at a YAML config file.
const ConfigEnvVar = "EDITORCONFIG_UPDATER_CONFIG"

// Config is the global configuration of editorconfig-updater.
type Config struct {
	Logger     Logger     `yaml:"logger"`
	HTTPClient HTTPClient `yaml:"http_client"`
	Sources    Sources    `yaml:"sources"`
}

// Logger holds logger settings.
type Logger struct {
	Level           string `yaml:"level"`
	DisableTime     *bool  `yaml:"disable_time"`
	JSONFormat      *bool  `yaml:"json_format"`
	IncludeLocation *bool  `yaml:"include_location"`
}

// HTTPClient holds settings of the client used to fetch upstream sources.
type HTTPClient struct {
	Debug            *bool           `yaml:"debug"`
	RetryCount       int             `yaml:"retry_count"`
	RetryWaitTime    time.Duration   `yaml:"retry_wait_time"`
	RetryMaxWaitTime time.Duration   `yaml:"retry_max_wait_time"`
	Timeout          time.Duration   `yaml:"timeout"`
	TLSClientConfig  TLSClientConfig `yaml:"tls_client_config"`
	Proxy            Proxy           `yaml:"proxy"`
}

type TLSClientConfig struct {
	Verify *bool `yaml:"verify"`
}

type Proxy struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Sources holds URL templates of the upstream diagnostic sources.
// Each template may reference {{.Ref}}, the source-version identifier.
type Sources struct {
	CompilerCodesURL    string `yaml:"compiler_codes_url"`
	CompilerMessagesURL string `yaml:"compiler_messages_url"`
	AnalyzerReportURL   string `yaml:"analyzer_report_url"`
	DefaultRef          string `yaml:"default_ref"`
}

// ValidateConfigPath checks that path exists and is not a directory.
func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

// LoadYAML decodes the YAML file at configPath into data.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// LoadConfig reads the configuration file and fills unset values with defaults.
// An empty configPath falls back to $EDITORCONFIG_UPDATER_CONFIG and then to built-in defaults.
func LoadConfig(configPath string) (*Config, error) {
	cfg := &Config{}

	if configPath == "" {
		configPath = os.Getenv(ConfigEnvVar)
	}
	if configPath != "" {
		if err := LoadYAML(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config %q: %w", configPath, err)
		}
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults fills in every unset field of cfg.
func applyDefaults(cfg *Config) {
	defaults := DefaultSources()
	cfg.Sources.CompilerCodesURL = SetThen(cfg.Sources.CompilerCodesURL, defaults.CompilerCodesURL)
	cfg.Sources.CompilerMessagesURL = SetThen(cfg.Sources.CompilerMessagesURL, defaults.CompilerMessagesURL)
	cfg.Sources.AnalyzerReportURL = SetThen(cfg.Sources.AnalyzerReportURL, defaults.AnalyzerReportURL)
	cfg.Sources.DefaultRef = SetThen(cfg.Sources.DefaultRef, defaults.DefaultRef)
}
