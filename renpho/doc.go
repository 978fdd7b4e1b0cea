// Package renpho provides a client for the Renpho body-composition scale
// cloud API.
//
// # Overview
//
// The client authenticates against the vendor cloud with an account email
// and password, then retrieves the signed-in user's profile, devices, weight
// measurements, girths, girth goals, and growth records. The latest parsed
// value of each resource is cached with a fetch timestamp so a
// periodic-polling host (a home-automation platform, a dashboard) can read
// current values without issuing its own requests.
//
// # Architecture
//
// The package is split by concern:
//
//   - crypto.go: password encryption with the fixed vendor RSA key
//   - transport.go: HTTP plumbing, proxy routing, reachability probe,
//     status-envelope classification, retry-on-expiry
//   - auth.go: session lifecycle (sign-in, token storage, re-login guard)
//   - fetch.go: one fetcher per resource, each updating its cache
//   - metrics.go: name-based access to the newest non-zero reading
//   - poller.go: the background refresh loop
//   - store.go: per-resource caches and the aggregate Snapshot
//
// # Session Lifecycle
//
// A Client starts with no session. Authenticate encrypts the password with
// the vendor public key (RSA PKCS#1 v1.5, base64), POSTs the credentials,
// and stores the returned terminal_user_session_key. Every subsequent
// request carries the token as a query parameter. When the API answers with
// the session-expired status code, the transport re-authenticates once and
// retries the original request against a shared budget of three attempts.
//
// Only one authentication may be in flight at a time. A concurrent call
// observes the in-progress guard and fails fast with an AuthError rather
// than blocking or racing on the token.
//
// When no user id is configured, the id returned by the login payload
// becomes the fetch target. FetchScaleUsers can later retarget the client
// at another profile registered on the scale.
//
// # Fetchers and Caches
//
// Fetchers never propagate errors. A failed request, a non-success status,
// or a malformed body is logged and reported as an absent result (nil), so
// one bad cycle never kills the poll loop and hosts observe "no data"
// instead of an exception. Successful fetches replace the corresponding
// cache wholesale together with a fresh timestamp.
//
// # Metric Access
//
// Metric(ctx, category, name, userID) serves the most recent non-zero value
// for a named metric:
//
//   - weight: from the cached latest measurement only (no fetch)
//   - girth: lazily fetched, then the newest entry with a non-zero value
//     for the named circumference
//   - girth_goals: lazily fetched, then the newest non-zero goal whose
//     girth_type matches the name
//
// Zero and absent are both "no reading"; a zero-valued newer entry never
// shadows an older real one. Accessors are explicit per-name functions, not
// reflection.
//
// # Polling
//
// StartPolling runs a background loop that refreshes weight, girth, and
// girth-goal data every refresh interval. Double start and double stop are
// warning-level no-ops. Cancellation is cooperative: the loop checks its
// context at the sleep boundary and exits cleanly, and Close releases idle
// connections after stopping the loop.
//
// # Errors
//
// Three kinds cover the failure surface:
//
//   - EncryptionError: bad key or cipher failure; aborts authentication
//   - AuthError: missing credentials, vendor rejection, missing session
//     key, exhausted sign-in retries, or a concurrent sign-in
//   - APIError: probe failure, transport failure, or a non-success vendor
//     status, annotated with method and URL
//
// All are matchable with errors.As and wrap their cause.
//
// # Network Assumptions
//
// Requests go to the fixed vendor host over HTTPS with a 60 second total
// timeout and the mobile app's User-Agent. An optional proxy URL routes all
// traffic; socks5:// proxies dial through golang.org/x/net/proxy, http(s)://
// proxies use the standard CONNECT path. Before every request a lightweight
// probe confirms the route is alive so a dead proxy fails fast instead of
// burning the retry budget.
package renpho
