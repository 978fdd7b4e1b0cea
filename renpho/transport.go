package renpho

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/net/proxy"
)

const (
	requestTimeout = 60 * time.Second
	requestRetries = 3
)

// buildHTTPClient returns an http.Client with the fixed total timeout,
// optionally routed through the proxy named by proxyURL. socks5:// proxies
// dial through golang.org/x/net/proxy; http and https proxies use the
// standard CONNECT path.
func buildHTTPClient(proxyURL string) (*http.Client, error) {
	if proxyURL == "" {
		return &http.Client{Timeout: requestTimeout}, nil
	}

	u, err := url.Parse(proxyURL)
	if err != nil {
		return nil, fmt.Errorf("parse proxy url %q: %w", proxyURL, err)
	}

	transport := &http.Transport{}
	switch u.Scheme {
	case "socks5", "socks5h":
		var auth *proxy.Auth
		if u.User != nil {
			password, _ := u.User.Password()
			auth = &proxy.Auth{User: u.User.Username(), Password: password}
		}
		dialer, err := proxy.SOCKS5("tcp", u.Host, auth, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("socks5 dialer: %w", err)
		}
		contextDialer, ok := dialer.(proxy.ContextDialer)
		if !ok {
			return nil, fmt.Errorf("socks5 dialer does not support context dialing")
		}
		transport.DialContext = contextDialer.DialContext
	case "http", "https":
		transport.Proxy = http.ProxyURL(u)
	default:
		return nil, fmt.Errorf("unsupported proxy scheme %q", u.Scheme)
	}

	return &http.Client{Timeout: requestTimeout, Transport: transport}, nil
}

// checkReachable probes a known external endpoint through the configured
// route before a real request is attempted. A failed probe means the proxy
// (or the network) is down and the request would only burn the retry budget.
func (c *Client) checkReachable(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.probeURL, nil)
	if err != nil {
		return fmt.Errorf("create probe request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("probe %s: %w", c.probeURL, err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("probe %s returned status %d", c.probeURL, resp.StatusCode)
	}
	return nil
}

// sanitizeBody converts byte-valued fields to text so the request body
// marshals as plain JSON strings, never base64 blobs.
func sanitizeBody(data map[string]any) map[string]any {
	clean := make(map[string]any, len(data))
	for key, value := range data {
		switch v := value.(type) {
		case []byte:
			clean[key] = string(v)
		case map[string]any:
			clean[key] = sanitizeBody(v)
		default:
			clean[key] = value
		}
	}
	return clean
}

// userQuery builds the query string shared by the list endpoints. sinceKey is
// the name of the epoch cursor parameter ("last_at" or "last_updated_at");
// the session token is injected per attempt by request.
func (c *Client) userQuery(sinceKey string) url.Values {
	values := url.Values{}
	values.Set("user_id", strconv.FormatInt(c.UserID(), 10))
	values.Set(sinceKey, strconv.FormatInt(sinceStamp, 10))
	values.Set("locale", "en")
	values.Set("app_id", "Renpho")
	return values
}

// request performs one logical API exchange: probe, send, classify the
// status envelope, and retry after a transparent re-authentication when the
// vendor reports the session expired. The retry budget is shared between
// expiry retries and the overall attempt count. Returns the raw body of a
// successful response for the caller to decode.
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body any, withToken bool) (RawPayload, error) {
	if err := c.checkReachable(ctx); err != nil {
		return nil, &APIError{Method: method, URL: path, Message: "reachability check failed", Err: err}
	}

	var payload []byte
	if body != nil {
		if m, ok := body.(map[string]any); ok {
			body = sanitizeBody(m)
		}
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		payload = encoded
	}

	retries := requestRetries
	for retries > 0 {
		if withToken && c.currentToken() == "" {
			if err := c.Authenticate(ctx); err != nil {
				return nil, err
			}
		}

		reqURL := c.endpoint(path, query, withToken)

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, &APIError{Method: method, URL: path, Err: err}
		}
		raw, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return nil, &APIError{Method: method, URL: path, Message: "read response", Err: err}
		}
		if resp.StatusCode >= 400 {
			return nil, &APIError{Method: method, URL: path, Message: fmt.Sprintf("http status %d", resp.StatusCode)}
		}

		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, &APIError{Method: method, URL: path, Message: "decode response", Err: err}
		}

		switch {
		case env.StatusCode == statusExpired:
			// Session expired server-side: re-authenticate once and retry
			// the original request against the shared budget.
			c.setToken("")
			if err := c.Authenticate(ctx); err != nil {
				return nil, err
			}
			retries--
			continue
		case env.StatusCode == statusServerError:
			return nil, &APIError{Method: method, URL: path, Message: fmt.Sprintf("internal server error: %s", env.StatusMessage)}
		case env.ok():
			return RawPayload(raw), nil
		default:
			return nil, &APIError{Method: method, URL: path, Message: fmt.Sprintf("status %s: %s", env.StatusCode, env.StatusMessage)}
		}
	}

	return nil, &APIError{Method: method, URL: path, Message: "retry budget exhausted"}
}

// endpoint resolves path and query against the base URL, appending the
// current session token when the endpoint requires one.
func (c *Client) endpoint(path string, query url.Values, withToken bool) string {
	values := url.Values{}
	for key, vals := range query {
		values[key] = vals
	}
	if withToken {
		values.Set("terminal_user_session_key", c.currentToken())
	}
	rel := &url.URL{Path: path, RawQuery: values.Encode()}
	return c.baseURL.ResolveReference(rel).String()
}

// isTransientNetErr reports whether err looks like a connection-level
// failure worth retrying during sign-in.
func isTransientNetErr(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr)
}
