package httpclient

import (
	"crypto/tls"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"

	"github.com/scan-io-git/editorconfig-updater/pkg/shared/config"
)

func TestApplyHTTPClientConfigDefaults(t *testing.T) {
	got := applyHTTPClientConfig(nil)

	assert.Equal(t, 0, got.RetryCount)
	assert.Equal(t, 60*time.Second, got.Timeout)
	assert.Equal(t, uint16(tls.VersionTLS12), got.TLSClientConfig.MinVersion)
	assert.False(t, got.TLSClientConfig.InsecureSkipVerify)
	assert.Empty(t, got.Proxy)
}

func TestApplyHTTPClientConfigOverrides(t *testing.T) {
	no := false
	cfg := &config.Config{HTTPClient: config.HTTPClient{
		RetryCount:      3,
		Timeout:         5 * time.Second,
		TLSClientConfig: config.TLSClientConfig{Verify: &no},
		Proxy:           config.Proxy{Host: "http://proxy", Port: 8080},
	}}

	got := applyHTTPClientConfig(cfg)

	assert.Equal(t, 3, got.RetryCount)
	assert.Equal(t, 5*time.Second, got.Timeout)
	assert.Equal(t, time.Second, got.RetryWaitTime)
	assert.True(t, got.TLSClientConfig.InsecureSkipVerify)
	assert.Equal(t, "http://proxy:8080", got.Proxy)
}

func TestInitializeRestyClient(t *testing.T) {
	client := InitializeRestyClient(hclog.NewNullLogger(), &config.Config{})

	assert.Equal(t, 0, client.RetryCount)
	assert.NotNil(t, client.GetClient())
}
