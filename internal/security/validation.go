// Package security provides validation for remote sources.
package security

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/netip"
	"net/url"
	"strings"
)

// ErrSizeLimit is returned by LimitedReader once its budget is spent.
var ErrSizeLimit = errors.New("size limit exceeded")

// URLPolicy decides which remote image URLs may be fetched.
type URLPolicy struct {
	// AllowHTTP permits plain http:// in addition to https://.
	AllowHTTP bool

	// AllowPrivate permits loopback, link-local and private addresses.
	AllowPrivate bool
}

// DefaultURLPolicy only allows HTTPS to public hosts.
func DefaultURLPolicy() URLPolicy {
	return URLPolicy{}
}

// Validate checks urlStr against the policy.
func (p URLPolicy) Validate(urlStr string) error {
	if urlStr == "" {
		return fmt.Errorf("empty URL")
	}

	parsed, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	switch strings.ToLower(parsed.Scheme) {
	case "https":
	case "http":
		if !p.AllowHTTP {
			return fmt.Errorf("only HTTPS URLs are allowed (got %s)", parsed.Scheme)
		}
	default:
		return fmt.Errorf("unsupported URL scheme: %q", parsed.Scheme)
	}

	if parsed.Hostname() == "" {
		return fmt.Errorf("URL must have a hostname")
	}

	if !p.AllowPrivate && isLocalOrPrivateHost(parsed.Hostname()) {
		return fmt.Errorf("URL cannot point to local or private hosts: %s", parsed.Hostname())
	}

	return nil
}

// isLocalOrPrivateHost reports whether host is localhost or a literal
// loopback, link-local, private or unspecified address. Names other than
// localhost are not resolved.
func isLocalOrPrivateHost(host string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	ip := net.IP(addr.Unmap().AsSlice())
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() || ip.IsUnspecified()
}

// LimitedReader wraps an io.Reader and fails once more than Remaining bytes
// have been read, instead of silently truncating like io.LimitReader.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		// Allow a clean EOF exactly at the limit.
		var probe [1]byte
		if n, err := l.R.Read(probe[:]); n == 0 && err != nil {
			return 0, err
		}
		return 0, ErrSizeLimit
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
