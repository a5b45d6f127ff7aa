// Package cli provides the interactive account service command-line client.
//
// It wires configuration, the API client, and an interactive REPL. Typical
// flow: register or log in, then inspect the current account with "me".
// A background connectivity watcher pings the server and reports when it
// becomes unreachable.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
