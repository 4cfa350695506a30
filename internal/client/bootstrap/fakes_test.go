package bootstrap

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/imagefeed/internal/client/models"
)

// journal records every collaborator call in order so tests can assert on
// sequencing across fakes.
type journal struct {
	mu     sync.Mutex
	events []string
}

func (j *journal) add(e string) {
	j.mu.Lock()
	j.events = append(j.events, e)
	j.mu.Unlock()
}

func (j *journal) list() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.events...)
}

func (j *journal) count(e string) int {
	n := 0
	for _, got := range j.list() {
		if got == e {
			n++
		}
	}
	return n
}

type fakeStore struct {
	j          *journal
	credential models.Credential
	getErr     error
	setErr     error
}

func (s *fakeStore) Get(ctx context.Context) (models.Credential, error) {
	s.j.add("store.get")
	if s.getErr != nil {
		return "", s.getErr
	}
	return s.credential, nil
}

func (s *fakeStore) Set(ctx context.Context, c models.Credential) error {
	s.j.add("store.set")
	if s.setErr != nil {
		return s.setErr
	}
	s.credential = c
	return nil
}

type fakeExchanger struct {
	j      *journal
	tokens map[models.AuthorizationCode]models.Credential
	err    error
	codes  []models.AuthorizationCode
}

func (e *fakeExchanger) Exchange(ctx context.Context, code models.AuthorizationCode) (models.Credential, error) {
	e.j.add("exchange")
	e.codes = append(e.codes, code)
	if e.err != nil {
		return "", e.err
	}
	return e.tokens[code], nil
}

type fakeProfiles struct {
	j          *journal
	profile    models.Profile
	profileErr error
	avatarURL  string
	avatarErr  error

	// onProfile runs inside FetchProfile before it returns.
	onProfile func(credential models.Credential)

	credentials []models.Credential
	userNames   []string
}

func (p *fakeProfiles) FetchProfile(ctx context.Context, c models.Credential) (models.Profile, error) {
	p.j.add("profile")
	p.credentials = append(p.credentials, c)
	if p.onProfile != nil {
		p.onProfile(c)
	}
	if p.profileErr != nil {
		return models.Profile{}, p.profileErr
	}
	return p.profile, nil
}

func (p *fakeProfiles) FetchAvatarURL(ctx context.Context, c models.Credential, userName string) (string, error) {
	p.j.add("avatar")
	p.userNames = append(p.userNames, userName)
	if p.avatarErr != nil {
		return "", p.avatarErr
	}
	return p.avatarURL, nil
}

// recIndicator fails the test on a Hide without a matching Show or a
// Show while already shown.
type recIndicator struct {
	t     *testing.T
	j     *journal
	mu    sync.Mutex
	shown bool
	shows int
	hides int
}

func (i *recIndicator) Show() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.shown {
		i.t.Errorf("indicator shown twice")
	}
	i.shown = true
	i.shows++
	i.j.add("show")
}

func (i *recIndicator) Hide() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if !i.shown {
		i.t.Errorf("indicator hidden while not shown")
	}
	i.shown = false
	i.hides++
	i.j.add("hide")
}

func (i *recIndicator) isShown() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.shown
}

type recPresenter struct {
	t         *testing.T
	j         *journal
	indicator *recIndicator
	alerts    []Alert
	sessions  []models.Session
}

func (p *recPresenter) PresentAuthorization(ctx context.Context) {
	p.assertIndicatorHidden("present-auth")
	p.j.add("present-auth")
}

func (p *recPresenter) ShowError(ctx context.Context, alert Alert) {
	p.assertIndicatorHidden("show-error")
	p.alerts = append(p.alerts, alert)
	p.j.add("show-error")
}

func (p *recPresenter) NavigateToMain(ctx context.Context, s models.Session) {
	p.assertIndicatorHidden("navigate")
	p.sessions = append(p.sessions, s)
	p.j.add("navigate")
}

func (p *recPresenter) assertIndicatorHidden(directive string) {
	if p.indicator.isShown() {
		p.t.Errorf("%s emitted while the indicator is still shown", directive)
	}
}

type harness struct {
	j         *journal
	store     *fakeStore
	exchanger *fakeExchanger
	profiles  *fakeProfiles
	indicator *recIndicator
	presenter *recPresenter
	o         *Orchestrator
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	j := &journal{}
	ind := &recIndicator{t: t, j: j}
	h := &harness{
		j:     j,
		store: &fakeStore{j: j},
		exchanger: &fakeExchanger{j: j, tokens: map[models.AuthorizationCode]models.Credential{
			"abc123": "token-abc123",
			"fresh":  "token-fresh",
		}},
		profiles: &fakeProfiles{
			j:         j,
			profile:   models.NewProfile("jdoe", "John", "Doe", "photographer"),
			avatarURL: "https://images.example/jdoe_small.jpg",
		},
		indicator: ind,
		presenter: &recPresenter{t: t, j: j, indicator: ind},
	}
	h.o = New(Collaborators{
		Store:     h.store,
		Exchanger: h.exchanger,
		Profiles:  h.profiles,
		Indicator: h.indicator,
		Presenter: h.presenter,
	})
	return h
}

// assertBalanced checks the indicator invariant at a terminal point.
func (h *harness) assertBalanced(t *testing.T) {
	t.Helper()
	if h.indicator.shows != h.indicator.hides {
		t.Fatalf("indicator unbalanced: %d shows, %d hides (events %v)", h.indicator.shows, h.indicator.hides, h.j.list())
	}
	if h.indicator.isShown() {
		t.Fatalf("indicator left shown (events %v)", h.j.list())
	}
}
