// Package bootstrap decides, on every cold start, whether the user already
// holds a credential and drives the sign-in chain:
//
//	credential lookup -> token exchange -> profile fetch -> avatar lookup -> main screen
//
// The Orchestrator owns the only mutable state of the chain and talks to the
// outside world through small interfaces: CredentialStore, TokenExchanger,
// ProfileClient, Indicator and Presenter. Steps run one at a time on the
// caller's goroutine; a second Start or CompleteAuthorization while a chain is
// running (or suspended waiting for the user) is rejected with
// ErrChainInFlight instead of racing a second chain.
//
// # Failure policy
//
// A failed token exchange or profile fetch is shown to the user as one
// generic Alert and always leads back to AwaitingAuthorization. A stored
// credential is never cleared on failure. A failed avatar lookup is logged
// and ignored.
package bootstrap
