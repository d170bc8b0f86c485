// Package http downloads remote source images for the resize command.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/jmylchreest/touchicon/internal/security"
	"github.com/jmylchreest/touchicon/internal/version"
)

const (
	// UserAgentName is the application name used in the User-Agent header.
	UserAgentName = "touchicon"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxBytes caps downloaded bodies; logos are far smaller.
	DefaultMaxBytes = 32 << 20

	// DefaultMaxRedirects bounds how many redirects Fetch follows.
	DefaultMaxRedirects = 5
)

var (
	// ErrUnexpectedContent is returned when the response media type is not accepted.
	ErrUnexpectedContent = errors.New("unexpected content type")

	// ErrTooManyRedirects is returned when a redirect chain exceeds MaxRedirects.
	ErrTooManyRedirects = errors.New("too many redirects")
)

// FetchOptions configures HTTP fetch behavior.
type FetchOptions struct {
	// Timeout specifies the HTTP request timeout.
	// If zero, DefaultTimeout is used.
	Timeout time.Duration

	// MaxBytes limits the response body size. If zero, DefaultMaxBytes is used.
	MaxBytes int64

	// MaxRedirects limits redirects. If zero, DefaultMaxRedirects is used.
	MaxRedirects int

	// ContentTypes lists accepted media types. An entry ending in "/" matches
	// the whole family ("image/"). Empty accepts anything. The list is also
	// sent as the Accept header.
	ContentTypes []string

	// CheckURL vets the request URL and every redirect target.
	CheckURL func(url string) error

	// Headers specifies additional HTTP headers to send with the request.
	Headers map[string]string
}

// Fetch downloads url and returns the body.
//
// Redirects are followed only while CheckURL accepts the target, so a
// public URL cannot bounce the request to a host the caller refuses.
func Fetch(ctx context.Context, url string, opts FetchOptions) ([]byte, error) {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	maxBytes := opts.MaxBytes
	if maxBytes == 0 {
		maxBytes = DefaultMaxBytes
	}
	maxRedirects := opts.MaxRedirects
	if maxRedirects == 0 {
		maxRedirects = DefaultMaxRedirects
	}

	if opts.CheckURL != nil {
		if err := opts.CheckURL(url); err != nil {
			return nil, err
		}
	}

	client := &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > maxRedirects {
				return fmt.Errorf("%w: stopped after %d", ErrTooManyRedirects, maxRedirects)
			}
			if opts.CheckURL != nil {
				if err := opts.CheckURL(req.URL.String()); err != nil {
					return fmt.Errorf("redirect to %s refused: %w", req.URL.Redacted(), err)
				}
			}
			return nil
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", fmt.Sprintf("%s/%s", UserAgentName, version.Short()))
	if accept := acceptHeader(opts.ContentTypes); accept != "" {
		req.Header.Set("Accept", accept)
	}
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}
	if resp.ContentLength > maxBytes {
		return nil, fmt.Errorf("%w: content length %d exceeds %d bytes", security.ErrSizeLimit, resp.ContentLength, maxBytes)
	}
	if err := checkContentType(resp.Header.Get("Content-Type"), opts.ContentTypes); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(security.NewLimitedReader(resp.Body, maxBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}

func acceptHeader(types []string) string {
	accept := make([]string, 0, len(types))
	for _, t := range types {
		if strings.HasSuffix(t, "/") {
			t += "*"
		}
		accept = append(accept, t)
	}
	return strings.Join(accept, ", ")
}

func checkContentType(header string, accepted []string) error {
	if len(accepted) == 0 {
		return nil
	}

	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnexpectedContent, header)
	}
	for _, t := range accepted {
		if strings.HasSuffix(t, "/") && strings.HasPrefix(mediaType, t) || mediaType == t {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnexpectedContent, mediaType)
}
