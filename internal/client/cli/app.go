package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/dmitrijs2005/imagefeed/internal/client/bootstrap"
	"github.com/dmitrijs2005/imagefeed/internal/client/client"
	"github.com/dmitrijs2005/imagefeed/internal/client/config"
	"github.com/dmitrijs2005/imagefeed/internal/client/hud"
	"github.com/dmitrijs2005/imagefeed/internal/client/models"
	"github.com/dmitrijs2005/imagefeed/internal/client/services"
	"github.com/dmitrijs2005/imagefeed/internal/filex"
	"github.com/dmitrijs2005/imagefeed/internal/logging"

	_ "modernc.org/sqlite"
)

var errUnexpectedState = errors.New("unexpected sign-in state")

type credentialStore interface {
	bootstrap.CredentialStore
	Clear(ctx context.Context) error
}

type profileService interface {
	bootstrap.ProfileClient
	Profile() (models.Profile, bool)
	AvatarURL() string
	Forget()
}

type App struct {
	logger    logging.Logger
	auth      services.AuthService
	store     credentialStore
	profiles  profileService
	indicator bootstrap.Indicator
	boot      *bootstrap.Orchestrator
	db        *sql.DB
	reader    *bufio.Reader
	out       io.Writer
	styles    styles

	mu      sync.Mutex
	session *models.Session
}

// NewApp opens the local database, connects the configured transport and
// wires the sign-in chain. The App renders on stdout and reads stdin.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	dbPath, err := filex.EnsureParentDir(c.DatabasePath)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, dbPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", dbPath, "error", err)
		return nil, err
	}

	store, err := services.NewCredentialStore(db, []byte(c.StorageSecret))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	apiClient, err := newAPIClient(c)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	app := newApp(
		services.NewAuthService(apiClient, c.OAuth2()),
		store,
		services.NewProfileService(apiClient),
		hud.Default(),
		logger,
		os.Stdin,
		os.Stdout,
	)
	app.db = db
	return app, nil
}

func newAPIClient(c *config.Config) (client.Client, error) {
	switch c.Transport {
	case config.TransportGRPC:
		return client.NewGRPCClient(c.GRPCEndpointAddr, c.ClientID, c.RedirectURI, c.RequestTimeout)
	case config.TransportHTTP:
		return client.NewHTTPClient(c.APIBaseURL, c.OAuth2(), &http.Client{Timeout: c.RequestTimeout})
	default:
		return nil, fmt.Errorf("unknown transport %q", c.Transport)
	}
}

func newApp(
	auth services.AuthService,
	store credentialStore,
	profiles profileService,
	indicator bootstrap.Indicator,
	logger logging.Logger,
	in io.Reader,
	out io.Writer,
) *App {
	a := &App{
		logger:    logger,
		auth:      auth,
		store:     store,
		profiles:  profiles,
		indicator: indicator,
		reader:    bufio.NewReader(in),
		out:       out,
		styles:    newStyles(out),
	}
	a.boot = bootstrap.New(bootstrap.Collaborators{
		Store:     store,
		Exchanger: auth,
		Profiles:  profiles,
		Indicator: indicator,
		Presenter: a,
		Logger:    logger,
	})
	return a
}

// Run starts the sign-in chain and serves the terminal until the user exits
// or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.close(ctx)

	fmt.Fprintln(a.out, "Welcome to imagefeed")

	if err := a.boot.Start(ctx); err != nil {
		a.logger.Warn(ctx, "sign-in failed", "error", err)
	}

	for ctx.Err() == nil {
		switch state := a.boot.State(); state {
		case bootstrap.StateAwaitingAuthorization:
			if quit := a.authorize(ctx); quit {
				return nil
			}
		case bootstrap.StateNavigatingMain:
			if quit := runREPL(ctx, a, a.getStatus, a.reader); quit {
				return nil
			}
		default:
			return fmt.Errorf("%w: %s", errUnexpectedState, state)
		}
	}
	return nil
}

// authorize reads one authorization code and hands it to the orchestrator.
func (a *App) authorize(ctx context.Context) (quit bool) {
	code, err := GetSimpleText(a.reader, "Authorization code (or 'exit'):", a.out)
	if err != nil {
		return true
	}

	switch code {
	case "":
		return false
	case "exit", "quit":
		fmt.Fprintln(a.out, "Bye!")
		return true
	}

	err = a.boot.CompleteAuthorization(ctx, models.AuthorizationCode(code))
	switch {
	case errors.Is(err, bootstrap.ErrCodeSpent):
		fmt.Fprintln(a.out, "This code was already used. Get a new one from the sign-in page.")
		a.PresentAuthorization(ctx)
	case err != nil:
		a.logger.Warn(ctx, "sign-in failed", "error", err)
	}
	return false
}

func (a *App) close(ctx context.Context) {
	if err := a.auth.Close(); err != nil {
		a.logger.Warn(ctx, "error closing provider client", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(ctx, "error closing database", "error", err)
		}
	}
}

// Session returns what the main screen was opened with.
func (a *App) Session() (models.Session, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return models.Session{}, false
	}
	return *a.session, true
}

func (a *App) getStatus() string {
	s, ok := a.Session()
	if !ok || s.Profile.LoginName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", s.Profile.LoginName)
}
