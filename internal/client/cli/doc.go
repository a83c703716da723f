// Package cli provides the interactive FloodWatch command-line client.
//
// It wires configuration, the encrypted credential cache, the gRPC gateway,
// and an interactive REPL for authentication and flood-report work. Typical
// flow: restore a previous session (online or from the cache), then execute
// user commands until exit.
//
// Key features:
//   - Register / Login / Logout / password reset
//   - Session restoration with offline fallback within the cache TTL
//   - Submit reports with optional photo upload
//   - Browse reports, nearby filtering, triage, discussion threads
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
