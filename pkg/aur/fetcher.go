// Package aur retrieves the AUR package name index.
//
// The index is a single gzip file, packages.gz, published at the root of
// an AUR instance. Its first line is a header; every other non-empty line
// is a package name. No versions or other metadata are available from it.
package aur

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"net/url"

	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/pacls/pkg/errors"
	"github.com/arthur-debert/pacls/pkg/logging"
)

const (
	// IndexFile is the index resource relative to the AUR base URL.
	IndexFile = "packages.gz"
	// DefaultURL is the official AUR instance.
	DefaultURL = "https://aur.archlinux.org"
)

var (
	gzipMagic  = []byte{0x1f, 0x8b}
	errNotGzip = stderrors.New("body is not gzip data")
)

// HTTPDoer is the part of *http.Client the fetcher needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a Fetcher.
type Options struct {
	// Client performs the request. Defaults to http.DefaultClient.
	Client HTTPDoer
	// BaseURL is the AUR root the index file is resolved against.
	BaseURL string
	// UserAgent is sent when non-empty.
	UserAgent string
}

// Fetcher downloads and decodes the package index.
type Fetcher struct {
	client    HTTPDoer
	baseURL   string
	userAgent string
	logger    zerolog.Logger
}

// NewFetcher creates a Fetcher. An empty BaseURL selects DefaultURL.
func NewFetcher(opts Options) *Fetcher {
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultURL
	}
	return &Fetcher{
		client:    opts.Client,
		baseURL:   opts.BaseURL,
		userAgent: opts.UserAgent,
		logger:    logging.GetLogger("aur.fetcher"),
	}
}

// URL returns the address of the index file.
func (f *Fetcher) URL() (string, error) {
	u, err := url.JoinPath(f.baseURL, IndexFile)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrURLBuild, "join %s with %s", f.baseURL, IndexFile).
			WithDetail("base_url", f.baseURL)
	}
	return u, nil
}

// Fetch performs one GET of the index and returns its decoded contents.
// Nothing is retried: any failure ends the fetch.
func (f *Fetcher) Fetch(ctx context.Context) (*Index, error) {
	addr, err := f.URL()
	if err != nil {
		return nil, err
	}
	defer logging.LogOperationStart(f.logger, "fetch "+addr)()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrURLBuild, "get %s", addr).
			WithDetail("url", addr)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRetrieval, "get %s", addr).
			WithDetail("url", addr)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, errors.Newf(errors.ErrHTTPStatus, "get %s: %s", addr, resp.Status).
			WithDetail("url", addr).
			WithDetail("status", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrBodyRead, "read %s", addr).
			WithDetail("url", addr)
	}

	data, err := decode(body, resp.Uncompressed)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDecode, "decode %s", addr).
			WithDetail("url", addr)
	}

	f.logger.Debug().
		Str("url", addr).
		Int("compressed", len(body)).
		Int("decoded", len(data)).
		Bool("transport_decoded", resp.Uncompressed).
		Msg("Index retrieved")

	return ParseIndex(data), nil
}

// decode gunzips body. uncompressed reports that the transport already
// removed a Content-Encoding: gzip layer; such a body is returned as is
// unless it is still gzip data.
func decode(body []byte, uncompressed bool) ([]byte, error) {
	if !bytes.HasPrefix(body, gzipMagic) {
		if uncompressed {
			return body, nil
		}
		return nil, errNotGzip
	}

	zr, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer func() { _ = zr.Close() }()

	return io.ReadAll(zr)
}
