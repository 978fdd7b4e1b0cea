package renpho

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	defaultBaseURL   = "https://renpho.qnclouds.com"
	defaultProbeURL  = "http://httpbin.org/get"
	defaultUserAgent = "Renpho/2.1.0 (iPhone; iOS 14.4; Scale/2.1.0; en-US)"
	defaultRefresh   = 60 * time.Second
)

// sinceStamp is the fixed epoch the app sends as the "everything after"
// cursor on list endpoints: 1998-01-01 UTC.
var sinceStamp = time.Date(1998, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()

// API endpoint paths.
const (
	signInPath       = "/api/v3/users/sign_in.json"
	scaleUsersPath   = "/api/v3/scale_users/list_scale_user"
	measurementsPath = "/api/v2/measurements/list.json"
	devicePath       = "/api/v2/device_binds/get_device.json"
	latestModelPath  = "/api/v3/devices/list_lastest_model.json"
	girthPath        = "/api/v3/girths/list_girth.json"
	girthGoalPath    = "/api/v3/girth_goals/list_girth_goal.json"
	growthRecordPath = "/api/v3/growth_records/list_growth_record.json"
	messagesPath     = "/api/v2/messages/list.json"
	requestUserPath  = "/api/v2/users/request_user.json"
	reachGoalPath    = "/api/v3/users/reach_goal.json"
)

// Vendor status codes carried in the response envelope.
const (
	statusOK          = "20000"
	statusExpired     = "40302"
	statusServerError = "50000"
)

// Config holds the account and connection settings for a Client.
type Config struct {
	Email    string
	Password string
	UserID   int64         // optional; adopted from the login payload when zero
	Refresh  time.Duration // poll interval; zero uses the 60s default
	ProxyURL string        // optional socks5:// or http(s):// proxy
}

// Client talks to the Renpho cloud API on behalf of one account. It owns the
// session token, the per-resource caches, and the background poll loop.
// Safe for concurrent use.
type Client struct {
	email     string
	password  string
	publicKey string
	proxyURL  string
	refresh   time.Duration

	baseURL   *url.URL
	probeURL  string
	userAgent string
	http      *http.Client

	// Session state. token empty means no session.
	sessionMu sync.Mutex
	token     string
	userID    int64
	loginData *LoginPayload

	// In-progress guard: a concurrent Authenticate fails fast, it never
	// blocks or duplicates the sign-in.
	authMu     sync.Mutex
	authActive bool

	// Resource caches, one per kind.
	weight        cached[Measurement]
	weightHistory cached[[]Measurement]
	devices       cached[[]DeviceBind]
	latestModel   cached[RawPayload]
	girths        cached[[]Girth]
	girthGoals    cached[[]GirthGoal]
	growthRecord  cached[RawPayload]
	scaleUsers    cached[[]ScaleUser]

	// Poll loop state.
	pollMu     sync.Mutex
	pollActive bool
	pollStop   func()
	pollDone   chan struct{}
}

// NewClient builds a Client for the given account. The vendor public key and
// base endpoint are fixed; only the proxy route is configurable.
func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(defaultBaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	httpClient, err := buildHTTPClient(strings.TrimSpace(cfg.ProxyURL))
	if err != nil {
		return nil, fmt.Errorf("build http client: %w", err)
	}

	refresh := cfg.Refresh
	if refresh <= 0 {
		refresh = defaultRefresh
	}

	return &Client{
		email:     strings.TrimSpace(cfg.Email),
		password:  cfg.Password,
		publicKey: publicKeyPEM,
		proxyURL:  strings.TrimSpace(cfg.ProxyURL),
		refresh:   refresh,
		baseURL:   base,
		probeURL:  defaultProbeURL,
		userAgent: defaultUserAgent,
		http:      httpClient,
		userID:    cfg.UserID,
	}, nil
}

// IsAuthenticated reports whether a session token is currently held. This is
// a local check only; the token may still be rejected by the next request.
func (c *Client) IsAuthenticated() bool {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()
	return c.token != ""
}

// UserID returns the user the client currently fetches data for. Zero until
// configured or resolved from the login payload.
func (c *Client) UserID() int64 {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()
	return c.userID
}

// SetUserID retargets this and subsequent fetches at another scale user.
func (c *Client) SetUserID(id int64) {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()
	c.userID = id
}

// LoginData returns the full payload from the last successful sign-in.
func (c *Client) LoginData() (LoginPayload, bool) {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()
	if c.loginData == nil {
		return LoginPayload{}, false
	}
	return *c.loginData, true
}

func (c *Client) currentToken() string {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()
	c.token = token
}

// Getters for the cached snapshots.

// LastWeight returns the most recent weight reading and its timestamp.
func (c *Client) LastWeight() (float64, time.Time, bool) {
	m, ok := c.weight.get()
	if !ok {
		return 0, time.Time{}, false
	}
	return m.Weight, m.Time(), true
}

// WeightInfo returns the most recent full measurement.
func (c *Client) WeightInfo() (Measurement, bool) {
	return c.weight.get()
}

// WeightHistory returns the cached measurement history, newest first.
func (c *Client) WeightHistory() ([]Measurement, bool) {
	history, ok := c.weightHistory.get()
	return cloneSlice(history), ok
}

// DeviceInfo returns the cached device binds.
func (c *Client) DeviceInfo() ([]DeviceBind, bool) {
	devices, ok := c.devices.get()
	return cloneSlice(devices), ok
}

// Girths returns the cached girth entries.
func (c *Client) Girths() ([]Girth, bool) {
	girths, ok := c.girths.get()
	return cloneSlice(girths), ok
}

// GirthGoals returns the cached girth goals.
func (c *Client) GirthGoals() ([]GirthGoal, bool) {
	goals, ok := c.girthGoals.get()
	return cloneSlice(goals), ok
}

// GrowthRecord returns the cached growth-record payload.
func (c *Client) GrowthRecord() (RawPayload, bool) {
	return c.growthRecord.get()
}

// LatestModel returns the cached latest-model payload.
func (c *Client) LatestModel() (RawPayload, bool) {
	return c.latestModel.get()
}

// ScaleUsers returns the cached scale user list.
func (c *Client) ScaleUsers() ([]ScaleUser, bool) {
	users, ok := c.scaleUsers.get()
	return cloneSlice(users), ok
}

// Close stops polling and releases the network resources held by the client.
func (c *Client) Close() {
	c.StopPolling()
	c.http.CloseIdleConnections()
}
