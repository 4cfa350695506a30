package client

import (
	"context"
)

// Client is the transport-agnostic contract for the identity provider.
// Access tokens are passed per call; implementations keep no session state.
type Client interface {
	ExchangeCode(ctx context.Context, code string) (string, error)
	GetProfile(ctx context.Context, accessToken string) (*ProfileResponse, error)
	GetAvatarURL(ctx context.Context, accessToken string, userName string) (string, error)
	Close() error
}

// ProfileResponse is the provider's raw view of the current user.
type ProfileResponse struct {
	UserName  string
	FirstName string
	LastName  string
	Bio       string
}
