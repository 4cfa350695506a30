package bootstrap

import (
	"context"

	"github.com/dmitrijs2005/imagefeed/internal/client/models"
)

// CredentialStore holds the access credential between runs. Get returns ""
// and a nil error when nothing is stored.
type CredentialStore interface {
	Get(ctx context.Context) (models.Credential, error)
	Set(ctx context.Context, credential models.Credential) error
}

// TokenExchanger trades an authorization code for a credential. One attempt,
// no retries.
type TokenExchanger interface {
	Exchange(ctx context.Context, code models.AuthorizationCode) (models.Credential, error)
}

// ProfileClient reads the signed-in user's profile and avatar.
type ProfileClient interface {
	FetchProfile(ctx context.Context, credential models.Credential) (models.Profile, error)
	FetchAvatarURL(ctx context.Context, credential models.Credential, userName string) (string, error)
}

// Indicator is the process-wide blocking "busy" overlay.
type Indicator interface {
	Show()
	Hide()
}

// Presenter renders the directives the orchestrator emits.
//
// Implementations must not call back into the Orchestrator from inside these
// methods: the authorization code is delivered later via
// Orchestrator.CompleteAuthorization.
type Presenter interface {
	// PresentAuthorization shows the provider's authorization UI.
	PresentAuthorization(ctx context.Context)
	// ShowError shows alert and returns once the user acknowledged it.
	ShowError(ctx context.Context, alert Alert)
	// NavigateToMain replaces the current screen with the main one.
	NavigateToMain(ctx context.Context, session models.Session)
}

// Alert is the single user-visible failure message.
type Alert struct {
	Title   string
	Message string
	Action  string
}

// SignInFailedAlert is shown for every fatal chain failure; the cause is
// only logged.
var SignInFailedAlert = Alert{
	Title:   "operation failed",
	Message: "could not complete sign-in",
	Action:  "OK",
}
