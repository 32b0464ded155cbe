// Package cli provides the interactive RedHub command-line client.
//
// It wires configuration, the local credential store, the gateway client,
// session state, and the route guard into an interactive REPL. Typical flow:
// bootstrap the persisted session, then execute user commands, each guarded
// the way the web client guards its views.
//
// Key features:
//   - Login / Register / Logout with a persisted bearer credential
//   - Browse articles and comments; submit articles into moderation
//   - Favorites, moderation, user administration and statistics views,
//     each gated by the role the session's claims carry
//   - Optimistic list mutations with rollback notifications
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
