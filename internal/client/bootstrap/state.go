package bootstrap

import "fmt"

type State int

const (
	StateIdle State = iota
	StateCheckingCredential
	StateAwaitingAuthorization
	StateExchangingToken
	StateFetchingProfile
	StateFetchingAvatar
	StateShowingError
	StateNavigatingMain
)

var stateNames = map[State]string{
	StateIdle:                  "idle",
	StateCheckingCredential:    "checking-credential",
	StateAwaitingAuthorization: "awaiting-authorization",
	StateExchangingToken:       "exchanging-token",
	StateFetchingProfile:       "fetching-profile",
	StateFetchingAvatar:        "fetching-avatar",
	StateShowingError:          "showing-error",
	StateNavigatingMain:        "navigating-main",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// transitions lists every edge of the chain. Anything else is a bug.
var transitions = map[State][]State{
	StateIdle:                  {StateCheckingCredential},
	StateCheckingCredential:    {StateFetchingProfile, StateAwaitingAuthorization},
	StateAwaitingAuthorization: {StateExchangingToken},
	StateExchangingToken:       {StateFetchingProfile, StateShowingError},
	StateFetchingProfile:       {StateFetchingAvatar, StateShowingError},
	StateFetchingAvatar:        {StateNavigatingMain},
	StateShowingError:          {StateAwaitingAuthorization},
}

// CanTransition reports whether the chain may move from s to next.
func (s State) CanTransition(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
