package bootstrap

import "errors"

var (
	// Chain failures. The first two are fatal for the chain and send the user
	// back to authorization; the last one is only logged.
	ErrTokenExchangeFailed = errors.New("token exchange failed")
	ErrProfileFetchFailed  = errors.New("profile fetch failed")
	ErrAvatarFetchFailed   = errors.New("avatar fetch failed")

	// Caller errors.
	ErrChainInFlight            = errors.New("sign-in chain already in flight")
	ErrChainFinished            = errors.New("sign-in chain finished, reset required")
	ErrNotAwaitingAuthorization = errors.New("not awaiting authorization")
	ErrEmptyCode                = errors.New("empty authorization code")
	ErrCodeSpent                = errors.New("authorization code already used")

	ErrIllegalTransition = errors.New("illegal state transition")
)
