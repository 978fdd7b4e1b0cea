// Package config handles loading and parsing renpho-watch configuration files.
//
// # Overview
//
// This package reads the TOML configuration that tells renpho-watch which
// Renpho account to sign in with and how often to poll the cloud API.
// Credentials are deliberately file-based rather than flag-based so they
// never show up in shell history or process listings.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/renpho-watch/config.toml (default)
//
// Unlike host daemons with sensible zero configs, there is no fallback when
// the file is missing: an account cannot be invented, so Load fails with a
// pointer at the expected path.
//
// # Configuration Fields
//
//   - email (required): Renpho account email
//   - password (required): Renpho account password
//   - user_id (optional): scale user to fetch data for; resolved from the
//     login payload when omitted
//   - refresh_seconds (optional): poll interval, default 60
//   - proxy_url (optional): socks5:// or http(s):// proxy for all API traffic
//
// # TOML Format
//
// Example config.toml:
//
//	email = "user@example.com"
//	password = "hunter2"
//	refresh_seconds = 60
//	proxy_url = "socks5://127.0.0.1:1080"
//
// # Path Expansion
//
// Paths support tilde expansion (~/...) and are resolved to absolute paths.
// Whitespace around values is trimmed before validation.
package config
