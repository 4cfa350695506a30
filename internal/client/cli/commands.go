package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/imagefeed/internal/client/bootstrap"
	"github.com/dmitrijs2005/imagefeed/internal/client/models"
)

var errNotSignedIn = errors.New("not signed in")

func (a *App) isSignedIn() bool {
	return a.boot.State() == bootstrap.StateNavigatingMain
}

// ShowProfile prints the cached profile.
func (a *App) ShowProfile(ctx context.Context) error {
	p, ok := a.profiles.Profile()
	if !ok {
		fmt.Fprintln(a.out, "No profile loaded, try 'refresh'")
		return nil
	}
	fmt.Fprintf(a.out, "Name:  %s\nLogin: %s\nBio:   %s\n", orDash(p.DisplayName), orDash(p.LoginName), orDash(p.Bio))
	return nil
}

// ShowAvatar prints the cached avatar URL.
func (a *App) ShowAvatar(ctx context.Context) error {
	u := a.profiles.AvatarURL()
	if u == "" {
		fmt.Fprintln(a.out, "No avatar")
		return nil
	}
	fmt.Fprintln(a.out, u)
	return nil
}

// Refresh reloads profile and avatar with the stored credential. A failed
// avatar lookup keeps the previous value.
func (a *App) Refresh(ctx context.Context) error {
	cred, err := a.store.Get(ctx)
	if err != nil {
		a.logger.Error(ctx, "cannot read credential", "error", err)
		return err
	}
	if cred == "" {
		fmt.Fprintln(a.out, "Not signed in")
		return errNotSignedIn
	}

	a.indicator.Show()
	defer a.indicator.Hide()

	p, err := a.profiles.FetchProfile(ctx, cred)
	if err != nil {
		a.logger.Warn(ctx, "profile refresh failed", "error", err)
		fmt.Fprintln(a.out, "Could not refresh profile")
		return err
	}
	avatarURL, err := a.profiles.FetchAvatarURL(ctx, cred, p.UserName)
	if err != nil {
		a.logger.Warn(ctx, "avatar refresh failed", "error", err)
	}

	a.mu.Lock()
	if avatarURL == "" && a.session != nil && a.session.Profile.UserName == p.UserName {
		avatarURL = a.session.AvatarURL
	}
	a.session = &models.Session{Profile: p, AvatarURL: avatarURL}
	a.mu.Unlock()

	fmt.Fprintln(a.out, "Profile refreshed")
	return nil
}

// Logout forgets the credential and everything fetched with it, then starts
// a new sign-in cycle.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		a.logger.Error(ctx, "cannot clear credential", "error", err)
		return err
	}
	a.profiles.Forget()

	a.mu.Lock()
	a.session = nil
	a.mu.Unlock()

	if err := a.boot.Reset(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out")

	if err := a.boot.Start(ctx); err != nil {
		a.logger.Warn(ctx, "sign-in failed", "error", err)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
