package manifest

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
)

const DefaultMaxBodySize int64 = 16 << 20

// Fetcher performs a single GET for a manifest document. It never retries
// and adds no timeout of its own, cancellation comes from the context.
type Fetcher struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
}

type Option func(*Fetcher)

func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		if client != nil {
			f.client = client
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxBodySize = n
		}
	}
}

func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:      http.DefaultClient,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Fetcher) Fetch(ctx context.Context, manifestURL string) (*Raw, error) {
	logger := log.FromContext(ctx).WithPrefix("fetch")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, manifestURL, nil)
	if err != nil {
		return nil, &FetchError{URL: manifestURL, Kind: ErrUnreachable, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	logger.Debug("Fetching manifest", "url", manifestURL)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: manifestURL, Kind: ErrUnreachable, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: manifestURL, Kind: ErrBadStatus, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return nil, &FetchError{URL: manifestURL, Kind: ErrUnreachable, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read body: %w", err)}
	}
	if int64(len(body)) > f.maxBodySize {
		return nil, &FetchError{
			URL:        manifestURL,
			Kind:       ErrInvalidDocument,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("body larger than %s", humanize.IBytes(uint64(f.maxBodySize))),
		}
	}
	raw, err := DecodeRaw(body)
	if err != nil {
		return nil, &FetchError{
			URL:        manifestURL,
			Kind:       ErrInvalidDocument,
			StatusCode: resp.StatusCode,
			MimeType:   mimetype.Detect(body).String(),
			Err:        err,
		}
	}
	logger.Debug("Fetched manifest", "url", manifestURL, "size", humanize.Bytes(uint64(len(body))))
	return raw, nil
}
