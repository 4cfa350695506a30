package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/imagefeed/internal/client/bootstrap"
	"github.com/dmitrijs2005/imagefeed/internal/client/models"
)

// PresentAuthorization prints the provider's sign-in page. The code is read
// afterwards by Run.
func (a *App) PresentAuthorization(ctx context.Context) {
	u, err := a.auth.AuthorizationURL()
	if err != nil {
		a.logger.Error(ctx, "cannot build authorization url", "error", err)
		fmt.Fprintln(a.out, "Sign-in page is unavailable.")
		return
	}
	fmt.Fprintf(a.out, "Open this page, allow access and paste the code shown:\n  %s\n", a.styles.link.Render(u))
}

// ShowError prints alert and blocks until the user presses Enter.
func (a *App) ShowError(ctx context.Context, alert bootstrap.Alert) {
	fmt.Fprintln(a.out, a.styles.renderAlert(alert))
	if _, err := GetSimpleText(a.reader, "["+alert.Action+"]", a.out); err != nil {
		a.logger.Debug(ctx, "alert dismissed by end of input", "error", err)
	}
}

func (a *App) NavigateToMain(ctx context.Context, session models.Session) {
	a.mu.Lock()
	a.session = &session
	a.mu.Unlock()

	name := session.Profile.DisplayName
	if name == "" {
		name = session.Profile.LoginName
	}
	fmt.Fprintf(a.out, "Signed in as %s (type 'help' for commands)\n", name)
}
