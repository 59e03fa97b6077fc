package netutil

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/duke-git/lancet/v2/strutil"
	"golang.org/x/net/proxy"
)

var proxySchemes = []string{"http://", "https://", "socks5://", "socks5h://"}

func NewProxyDialer(proxyUrl string) (proxy.Dialer, error) {
	url, err := url.Parse(proxyUrl)
	if err != nil {
		return nil, err
	}
	return proxy.FromURL(url, proxy.Direct)
}

// NewHTTPClient returns a client that goes through proxyUrl, or a plain
// client when proxyUrl is empty. No client timeout is set.
func NewHTTPClient(proxyUrl string) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if proxyUrl == "" {
		return &http.Client{Transport: transport}, nil
	}
	if !strutil.HasPrefixAny(strings.ToLower(proxyUrl), proxySchemes) {
		return nil, fmt.Errorf("unsupported proxy scheme: %s", proxyUrl)
	}
	u, err := url.Parse(proxyUrl)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy url: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		transport.Proxy = http.ProxyURL(u)
	default:
		dialer, err := NewProxyDialer(proxyUrl)
		if err != nil {
			return nil, fmt.Errorf("failed to create proxy dialer: %w", err)
		}
		transport.Proxy = nil
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			transport.DialContext = cd.DialContext
		} else {
			transport.DialContext = func(_ context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			}
		}
	}
	return &http.Client{Transport: transport}, nil
}
