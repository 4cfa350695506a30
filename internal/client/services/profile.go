package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/imagefeed/internal/client/client"
	"github.com/dmitrijs2005/imagefeed/internal/client/models"
)

// ProfileService reads the signed-in user from the provider and remembers
// the last values it saw, so the main screen can render them without
// another round trip.
type ProfileService struct {
	client client.Client

	mu        sync.RWMutex
	profile   *models.Profile
	avatarURL string
}

func NewProfileService(client client.Client) *ProfileService {
	return &ProfileService{client: client}
}

func (p *ProfileService) FetchProfile(ctx context.Context, credential models.Credential) (models.Profile, error) {
	resp, err := p.client.GetProfile(ctx, string(credential))
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile error: %w", err)
	}

	profile := models.NewProfile(resp.UserName, resp.FirstName, resp.LastName, resp.Bio)

	p.mu.Lock()
	p.profile = &profile
	p.mu.Unlock()

	return profile, nil
}

func (p *ProfileService) FetchAvatarURL(ctx context.Context, credential models.Credential, userName string) (string, error) {
	avatarURL, err := p.client.GetAvatarURL(ctx, string(credential), userName)
	if err != nil {
		return "", fmt.Errorf("get avatar error: %w", err)
	}

	p.mu.Lock()
	p.avatarURL = avatarURL
	p.mu.Unlock()

	return avatarURL, nil
}

// Profile returns the last fetched profile.
func (p *ProfileService) Profile() (models.Profile, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.profile == nil {
		return models.Profile{}, false
	}
	return *p.profile, true
}

// AvatarURL returns the last fetched avatar URL, or "".
func (p *ProfileService) AvatarURL() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.avatarURL
}

// Forget drops the cached values.
func (p *ProfileService) Forget() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.profile = nil
	p.avatarURL = ""
}
