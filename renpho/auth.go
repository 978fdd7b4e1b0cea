package renpho

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

const (
	authRetries    = 3
	authRetryDelay = 5 * time.Second
)

// Authenticate signs in against the vendor API and stores the returned
// session token and login payload. Exactly one authentication may be in
// flight: a concurrent call fails fast instead of blocking or racing.
// Transient connection failures are retried with a fixed delay before an
// AuthError surfaces.
func (c *Client) Authenticate(ctx context.Context) error {
	c.authMu.Lock()
	if c.authActive {
		c.authMu.Unlock()
		return &AuthError{Message: "authentication already in progress"}
	}
	c.authActive = true
	c.authMu.Unlock()

	defer func() {
		c.authMu.Lock()
		c.authActive = false
		c.authMu.Unlock()
	}()

	if c.email == "" || c.password == "" {
		return &AuthError{Message: "email and password are required"}
	}
	if c.publicKey == "" {
		return &AuthError{Message: "vendor public key is missing"}
	}

	encrypted, err := EncryptPassword(c.publicKey, c.password)
	if err != nil {
		return err
	}

	body := sanitizeBody(map[string]any{
		"secure_flag": "1",
		"email":       c.email,
		"password":    encrypted,
	})
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal sign-in body: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < authRetries; attempt++ {
		if attempt > 0 {
			if err := sleepCtx(ctx, authRetryDelay); err != nil {
				return &AuthError{Message: "sign-in cancelled", Err: err}
			}
		}

		c.setToken("")

		if err := c.checkReachable(ctx); err != nil {
			return &APIError{Method: http.MethodPost, URL: signInPath, Message: "reachability check failed", Err: err}
		}

		login, env, err := c.postSignIn(ctx, payload)
		if err != nil {
			if isTransientNetErr(err) {
				log.Printf("renpho: sign-in attempt %d failed: %v", attempt+1, err)
				lastErr = err
				continue
			}
			return &AuthError{Message: "sign-in request failed", Err: err}
		}

		if env.StatusCode == statusServerError && env.StatusMessage == "Email was not registered" {
			return &AuthError{Message: "email was not registered"}
		}
		if env.StatusCode == "500" {
			return &AuthError{Message: "bad password or internal server error"}
		}
		if !env.ok() {
			return &AuthError{Message: fmt.Sprintf("sign-in rejected: status %s: %s", env.StatusCode, env.StatusMessage)}
		}
		if login.SessionKey == "" {
			return &AuthError{Message: "session key not found in response"}
		}

		c.sessionMu.Lock()
		c.token = login.SessionKey
		c.loginData = login
		if c.userID == 0 {
			c.userID = login.ID
		}
		c.sessionMu.Unlock()
		return nil
	}

	return &AuthError{Message: fmt.Sprintf("sign-in failed after %d attempts", authRetries), Err: lastErr}
}

// ValidateCredentials authenticates once to confirm the configured account
// works, wrapping any failure as an AuthError for the caller.
func (c *Client) ValidateCredentials(ctx context.Context) error {
	if err := c.Authenticate(ctx); err != nil {
		return &AuthError{Message: fmt.Sprintf("invalid credentials for %s", c.email), Err: err}
	}
	return nil
}

// postSignIn performs the raw sign-in POST and decodes both the status
// envelope and the login payload from the same body.
func (c *Client) postSignIn(ctx context.Context, payload []byte) (*LoginPayload, envelope, error) {
	query := url.Values{}
	query.Set("app_id", "Renpho")
	reqURL := c.endpoint(signInPath, query, false)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, envelope{}, fmt.Errorf("create sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, envelope{}, fmt.Errorf("execute sign-in request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, envelope{}, fmt.Errorf("read sign-in response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, envelope{}, fmt.Errorf("sign-in returned status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, envelope{}, fmt.Errorf("decode sign-in envelope: %w", err)
	}
	var login LoginPayload
	if err := json.Unmarshal(raw, &login); err != nil {
		return nil, envelope{}, fmt.Errorf("decode login payload: %w", err)
	}
	return &login, env, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
