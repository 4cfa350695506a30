// Package cli provides the interactive imagefeed command-line client.
//
// It wires configuration, local storage, provider services and the sign-in
// orchestrator, then drives a small terminal UI: the authorization prompt
// while signing in, and a REPL once the main screen is reached.
//
// Key features:
//   - Cold start with a stored credential goes straight to the main screen
//   - Authorization-code sign-in (open the printed URL, paste the code)
//   - Profile and avatar display, refresh
//   - Logout, which clears the stored credential and signs in again
//
// The UI is started via App.Run(ctx), which blocks until the user exits.
package cli
