package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/imagefeed/internal/client/models"
	"github.com/dmitrijs2005/imagefeed/internal/logging"
	"github.com/google/uuid"
)

// Collaborators bundles everything the Orchestrator talks to. Logger may be
// nil.
type Collaborators struct {
	Store     CredentialStore
	Exchanger TokenExchanger
	Profiles  ProfileClient
	Indicator Indicator
	Presenter Presenter
	Logger    logging.Logger
}

// Orchestrator drives one sign-in chain at a time. It is safe to call from
// several goroutines; concurrent calls are rejected, not queued.
type Orchestrator struct {
	store     CredentialStore
	exchanger TokenExchanger
	profiles  ProfileClient
	indicator Indicator
	presenter Presenter
	logger    logging.Logger

	mu       sync.Mutex
	state    State
	inFlight bool
	spent    map[models.AuthorizationCode]struct{}

	// chainLog carries the chain_id of the current cycle. Only the goroutine
	// holding inFlight touches it.
	chainLog logging.Logger
}

func New(c Collaborators) *Orchestrator {
	logger := c.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Orchestrator{
		store:     c.Store,
		exchanger: c.Exchanger,
		profiles:  c.Profiles,
		indicator: c.Indicator,
		presenter: c.Presenter,
		logger:    logger,
		state:     StateIdle,
		spent:     make(map[models.AuthorizationCode]struct{}),
		chainLog:  logger,
	}
}

// State returns the current state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Start begins a new cycle. With a stored credential it goes straight to the
// profile fetch and never presents authorization; without one it presents
// authorization and returns, leaving the chain in AwaitingAuthorization.
//
// A non-nil error is either a caller error (ErrChainInFlight,
// ErrChainFinished) or a chain failure that has already been shown to the
// user and recovered into AwaitingAuthorization.
func (o *Orchestrator) Start(ctx context.Context) error {
	if err := o.beginStart(); err != nil {
		return err
	}
	defer o.end()

	if err := o.enter(ctx, StateCheckingCredential); err != nil {
		return err
	}

	credential, err := o.store.Get(ctx)
	if err != nil {
		o.chainLog.Warn(ctx, "credential lookup failed, treating as missing", "error", err)
		credential = ""
	}

	if credential == "" {
		return o.awaitAuthorization(ctx)
	}

	o.chainLog.Info(ctx, "stored credential found, skipping authorization")

	lease := acquireIndicator(o.indicator)
	defer lease.Release()

	return o.fetchProfile(ctx, lease, credential)
}

// CompleteAuthorization resumes a chain suspended in AwaitingAuthorization
// with the code the user obtained. Every code is used at most once; a retry
// needs a fresh code from a new authorization round.
func (o *Orchestrator) CompleteAuthorization(ctx context.Context, code models.AuthorizationCode) error {
	if err := o.beginAuthorization(code); err != nil {
		return err
	}
	defer o.end()

	if err := o.enter(ctx, StateExchangingToken); err != nil {
		return err
	}

	lease := acquireIndicator(o.indicator)
	defer lease.Release()

	credential, err := o.exchanger.Exchange(ctx, code)
	if err == nil && credential == "" {
		err = errors.New("empty credential")
	}
	if err != nil {
		return o.fail(ctx, lease, fmt.Errorf("%w: %w", ErrTokenExchangeFailed, err))
	}

	if err := o.store.Set(ctx, credential); err != nil {
		return o.fail(ctx, lease, fmt.Errorf("%w: persist credential: %w", ErrTokenExchangeFailed, err))
	}

	return o.fetchProfile(ctx, lease, credential)
}

// Reset returns the orchestrator to Idle so the next foreground cycle can
// Start. It is refused while a call executes or while the chain waits for
// an authorization code. A chain abandoned mid-step (a collaborator
// panicked) is reset like a finished one. Spent codes stay spent.
func (o *Orchestrator) Reset() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.inFlight || o.state == StateAwaitingAuthorization {
		return ErrChainInFlight
	}
	o.state = StateIdle
	return nil
}

func (o *Orchestrator) fetchProfile(ctx context.Context, lease *indicatorLease, credential models.Credential) error {
	if err := o.enter(ctx, StateFetchingProfile); err != nil {
		return err
	}

	profile, err := o.profiles.FetchProfile(ctx, credential)
	if err != nil {
		return o.fail(ctx, lease, fmt.Errorf("%w: %w", ErrProfileFetchFailed, err))
	}

	return o.fetchAvatar(ctx, lease, credential, profile)
}

func (o *Orchestrator) fetchAvatar(ctx context.Context, lease *indicatorLease, credential models.Credential, profile models.Profile) error {
	if err := o.enter(ctx, StateFetchingAvatar); err != nil {
		return err
	}

	avatarURL, err := o.profiles.FetchAvatarURL(ctx, credential, profile.UserName)
	if err != nil {
		o.chainLog.Warn(ctx, "continuing without avatar", "error", fmt.Errorf("%w: %w", ErrAvatarFetchFailed, err))
		avatarURL = ""
	}

	return o.navigateToMain(ctx, lease, models.Session{Profile: profile, AvatarURL: avatarURL})
}

func (o *Orchestrator) navigateToMain(ctx context.Context, lease *indicatorLease, session models.Session) error {
	if err := o.enter(ctx, StateNavigatingMain); err != nil {
		return err
	}

	lease.Release()
	o.chainLog.Info(ctx, "signed in", "user", session.Profile.UserName)
	o.presenter.NavigateToMain(ctx, session)
	return nil
}

// fail shows the generic alert and, once acknowledged, re-presents
// authorization. cause is returned for the caller to log.
func (o *Orchestrator) fail(ctx context.Context, lease *indicatorLease, cause error) error {
	if err := o.enter(ctx, StateShowingError); err != nil {
		return errors.Join(cause, err)
	}

	lease.Release()
	o.chainLog.Error(ctx, "sign-in chain failed", "error", cause)
	o.presenter.ShowError(ctx, SignInFailedAlert)

	if err := o.awaitAuthorization(ctx); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}

func (o *Orchestrator) awaitAuthorization(ctx context.Context) error {
	if err := o.enter(ctx, StateAwaitingAuthorization); err != nil {
		return err
	}
	o.presenter.PresentAuthorization(ctx)
	return nil
}

func (o *Orchestrator) beginStart() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch {
	case o.inFlight:
		return ErrChainInFlight
	case o.state == StateNavigatingMain:
		return ErrChainFinished
	case o.state != StateIdle:
		return ErrChainInFlight
	}

	o.inFlight = true
	o.chainLog = o.logger.With("chain_id", uuid.NewString())
	return nil
}

func (o *Orchestrator) beginAuthorization(code models.AuthorizationCode) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.inFlight {
		return ErrChainInFlight
	}
	if o.state != StateAwaitingAuthorization {
		return ErrNotAwaitingAuthorization
	}
	if code == "" {
		return ErrEmptyCode
	}
	if _, ok := o.spent[code]; ok {
		return ErrCodeSpent
	}

	o.spent[code] = struct{}{}
	o.inFlight = true
	return nil
}

func (o *Orchestrator) end() {
	o.mu.Lock()
	o.inFlight = false
	o.mu.Unlock()
}

func (o *Orchestrator) enter(ctx context.Context, next State) error {
	o.mu.Lock()
	prev := o.state
	if !prev.CanTransition(next) {
		o.mu.Unlock()
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, prev, next)
	}
	o.state = next
	o.mu.Unlock()

	o.chainLog.Debug(ctx, "state changed", "from", prev.String(), "to", next.String())
	return nil
}
