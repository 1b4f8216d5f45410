package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharederrors "github.com/scan-io-git/editorconfig-updater/pkg/shared/errors"
)

func newTLSFetcher(t *testing.T, handler http.Handler) (*HTTPFetcher, string) {
	t.Helper()
	server := httptest.NewTLSServer(handler)
	t.Cleanup(server.Close)

	client := resty.New().SetTransport(server.Client().Transport)
	return New(client, hclog.NewNullLogger()), server.URL
}

func TestHTTPFetcherFetch(t *testing.T) {
	fetcher, baseURL := newTLSFetcher(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dotnet/roslyn/main/ErrorCode.cs" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("ERR_BadBinaryOps = 19,"))
	}))

	data, err := fetcher.Fetch(context.Background(), baseURL+"/dotnet/roslyn/main/ErrorCode.cs")
	require.NoError(t, err)
	assert.Equal(t, "ERR_BadBinaryOps = 19,", string(data))
}

func TestHTTPFetcherStatusError(t *testing.T) {
	fetcher, baseURL := newTLSFetcher(t, http.NotFoundHandler())

	_, err := fetcher.Fetch(context.Background(), baseURL+"/missing")

	var fetchErr *sharederrors.FetchError
	require.True(t, errors.As(err, &fetchErr), "expected FetchError, got %v", err)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
}

func TestHTTPFetcherRejectsPlainHTTP(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	_, err := New(resty.New(), nil).Fetch(context.Background(), server.URL+"/x")

	var fetchErr *sharederrors.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, err.Error(), "only https is supported")
	assert.False(t, called)
}

// fakeFetcher serves canned payloads keyed by URL.
type fakeFetcher struct {
	mu      sync.Mutex
	payload map[string]string
	fail    map[string]error
	calls   []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, rawURL)
	f.mu.Unlock()

	if err, ok := f.fail[rawURL]; ok {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []byte(f.payload[rawURL]), nil
}

func TestFetchAll(t *testing.T) {
	sources := Sources{CompilerCodes: "https://x/codes", CompilerMessages: "https://x/resx", AnalyzerReport: "https://x/sarif"}
	fake := &fakeFetcher{payload: map[string]string{
		"https://x/codes": "codes",
		"https://x/resx":  "resx",
		"https://x/sarif": "sarif",
	}}

	payloads, err := FetchAll(context.Background(), fake, sources, nil)
	require.NoError(t, err)

	assert.Equal(t, "codes", string(payloads.CompilerCodes))
	assert.Equal(t, "resx", string(payloads.CompilerMessages))
	assert.Equal(t, "sarif", string(payloads.AnalyzerReport))
	assert.Len(t, fake.calls, 3)
}

func TestFetchAllFailsFast(t *testing.T) {
	sources := Sources{CompilerCodes: "https://x/codes", CompilerMessages: "https://x/resx", AnalyzerReport: "https://x/sarif"}
	fake := &fakeFetcher{
		payload: map[string]string{},
		fail:    map[string]error{"https://x/resx": sharederrors.NewFetchStatusError("https://x/resx", 500)},
	}

	payloads, err := FetchAll(context.Background(), fake, sources, hclog.NewNullLogger())
	assert.Nil(t, payloads)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "compiler messages: "))

	var fetchErr *sharederrors.FetchError
	assert.True(t, errors.As(err, &fetchErr))
}
