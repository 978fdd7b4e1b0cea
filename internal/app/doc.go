// Package app provides the orchestration layer for renpho-watch.
//
// # Overview
//
// This package wires together configuration, the Renpho API client, and the
// UI to create the complete renpho-watch TUI experience. It serves as the
// composition root where all dependencies are initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load account configuration from ~/.config/renpho-watch/config.toml
//  2. Load user preferences (theme, units)
//  3. Create the renpho.Client with the account credentials
//  4. Sign in once up front so bad credentials fail before the UI starts
//  5. Start the client's background poller for continuous updates
//  6. Start the TUI and block until the user exits or the context cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()            Read account config
//	       ├─────> prefs.Load()             Read theme and unit choices
//	       ├─────> renpho.NewClient()       Create API client
//	       ├─────> ValidateCredentials()    Pre-flight sign-in
//	       ├─────> StartPolling()           Launch background updates
//	       └─────> ui.Run()                 Start TUI (blocks)
//
//	Background Poll Loop (inside renpho.Client):
//	┌─────────────────────────────────────────┐
//	│ StartPolling() goroutine                │
//	│  ├─> FetchMeasurements()                │
//	│  ├─> FetchGirths()                      │
//	│  └─> FetchGirthGoals()                  │
//	│      └─> UI reads client.Snapshot()     │
//	└─────────────────────────────────────────┘
//
// # Polling Behavior
//
// The client polls the cloud API at the configured interval (default: 60
// seconds). The UI reads cache snapshots at its own refresh rate, so it stays
// responsive even during slow API calls.
//
// # Error Handling
//
// Configuration and sign-in failures abort startup with a wrapped error so
// the shell sees a clear message. Once polling starts, fetch failures are
// logged and the UI keeps showing the last good data.
package app
