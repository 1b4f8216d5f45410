package fetcher

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/scan-io-git/editorconfig-updater/pkg/shared/errors"
)

// Fetcher retrieves the raw bytes published at a URL.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// HTTPFetcher fetches sources over HTTPS with a resty client.
type HTTPFetcher struct {
	client *resty.Client
	logger hclog.Logger
}

// New creates an HTTPFetcher using client.
func New(client *resty.Client, logger hclog.Logger) *HTTPFetcher {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &HTTPFetcher{client: client, logger: logger}
}

// Fetch downloads rawURL. Only https URLs are accepted; any transport failure or
// non-2xx status is returned as a FetchError.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.NewFetchError(rawURL, err)
	}
	if u.Scheme != "https" {
		return nil, errors.NewFetchError(rawURL, fmt.Errorf("scheme %q is not allowed, only https is supported", u.Scheme))
	}

	f.logger.Debug("fetching source", "url", rawURL)
	resp, err := f.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return nil, errors.NewFetchError(rawURL, err)
	}
	if !resp.IsSuccess() {
		return nil, errors.NewFetchStatusError(rawURL, resp.StatusCode())
	}

	f.logger.Debug("source fetched", "url", rawURL, "bytes", len(resp.Body()), "duration", resp.Time())
	return resp.Body(), nil
}

// Payloads holds the raw content of the three upstream sources.
type Payloads struct {
	CompilerCodes    []byte
	CompilerMessages []byte
	AnalyzerReport   []byte
}

// FetchAll downloads every source concurrently and returns once all of them are in.
// The first failure cancels the remaining downloads and is returned.
func FetchAll(ctx context.Context, f Fetcher, sources Sources, logger hclog.Logger) (*Payloads, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var payloads Payloads
	targets := []struct {
		name string
		url  string
		dst  *[]byte
	}{
		{name: "compiler codes", url: sources.CompilerCodes, dst: &payloads.CompilerCodes},
		{name: "compiler messages", url: sources.CompilerMessages, dst: &payloads.CompilerMessages},
		{name: "analyzer report", url: sources.AnalyzerReport, dst: &payloads.AnalyzerReport},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, target := range targets {
		target := target
		g.Go(func() error {
			logger.Info("fetching", "source", target.name, "uri", target.url)
			data, err := f.Fetch(gctx, target.url)
			if err != nil {
				return fmt.Errorf("%s: %w", target.name, err)
			}
			*target.dst = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &payloads, nil
}
