package network

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Noooste/azuretls-client"
	"golang.org/x/net/proxy"
)

// ClientFactory creates outbound HTTP clients, all honoring the same
// optional proxy URL.
type ClientFactory struct {
	proxyURL       string
	testHTTPClient *http.Client // For testing only
}

// NewClientFactory creates a new client factory. proxyURL may be empty.
func NewClientFactory(proxyURL string) *ClientFactory {
	return &ClientFactory{proxyURL: proxyURL}
}

// NewClientFactoryForTest creates a client factory that uses the given
// http.Client for testing. This is only for use in tests.
func NewClientFactoryForTest(client *http.Client) *ClientFactory {
	return &ClientFactory{testHTTPClient: client}
}

// NewHTTPClient creates a standard http.Client with proxy configuration.
func (f *ClientFactory) NewHTTPClient(timeout time.Duration) *http.Client {
	if f.testHTTPClient != nil {
		return f.testHTTPClient
	}

	client := &http.Client{Timeout: timeout}
	if f.proxyURL != "" {
		client.Transport = newTransportWithProxy(f.proxyURL)
	}
	return client
}

// NewAzureSession creates an azuretls.Session with a Chrome profile for
// manifest hosts that gate plain clients.
func (f *ClientFactory) NewAzureSession(ctx context.Context, timeout time.Duration) *azuretls.Session {
	session := azuretls.NewSession()
	session.Browser = azuretls.Chrome
	session.SetTimeout(timeout)

	if f.proxyURL != "" {
		_ = session.SetProxy(f.proxyURL)
	}

	return session
}

const acceptManifest = "application/manifest+json,application/json;q=0.9,*/*;q=0.8"

// Get fetches rawURL with a plain proxied client first, retrying once
// with the browser-profile session when the host gates plain clients
// (403 or 429). Returns the response body and status code.
func (f *ClientFactory) Get(ctx context.Context, rawURL string, timeout time.Duration, userAgent string) ([]byte, int, error) {
	body, status, err := f.getPlain(ctx, rawURL, timeout, userAgent)
	if f.testHTTPClient != nil {
		return body, status, err
	}
	if err == nil && status != http.StatusForbidden && status != http.StatusTooManyRequests {
		return body, status, nil
	}
	return f.getBrowserProfile(ctx, rawURL, timeout, userAgent)
}

func (f *ClientFactory) getPlain(ctx context.Context, rawURL string, timeout time.Duration, userAgent string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", acceptManifest)
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.NewHTTPClient(timeout).Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

func (f *ClientFactory) getBrowserProfile(ctx context.Context, rawURL string, timeout time.Duration, userAgent string) ([]byte, int, error) {
	session := f.NewAzureSession(ctx, timeout)
	defer session.Close()

	resp, err := session.Do(&azuretls.Request{
		Method: http.MethodGet,
		Url:    rawURL,
		OrderedHeaders: azuretls.OrderedHeaders{
			{"accept", acceptManifest},
			{"user-agent", userAgent},
		},
	})
	if err != nil {
		return nil, 0, err
	}
	return resp.Body, resp.StatusCode, nil
}

// newTransportWithProxy creates an http.Transport with proper proxy support.
// For SOCKS5 proxies, it uses golang.org/x/net/proxy for correct handling.
// For HTTP/HTTPS proxies, it uses the standard http.ProxyURL.
func newTransportWithProxy(proxyURL string) *http.Transport {
	parsed, err := url.Parse(proxyURL)
	if err != nil {
		return &http.Transport{}
	}

	if strings.HasPrefix(parsed.Scheme, "socks") {
		var auth *proxy.Auth
		if parsed.User != nil {
			auth = &proxy.Auth{
				User: parsed.User.Username(),
			}
			if password, ok := parsed.User.Password(); ok {
				auth.Password = password
			}
		}

		dialer, err := proxy.SOCKS5("tcp", parsed.Host, auth, proxy.Direct)
		if err != nil {
			return &http.Transport{}
		}

		return &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			},
		}
	}

	return &http.Transport{
		Proxy: http.ProxyURL(parsed),
	}
}
