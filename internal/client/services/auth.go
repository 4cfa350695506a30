// Package services contains application services for the imagefeed client.
// This file defines the authorization service: building the provider's
// authorize URL and trading an authorization code for an access credential.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/imagefeed/internal/client/client"
	"github.com/dmitrijs2005/imagefeed/internal/client/models"
	"github.com/dmitrijs2005/imagefeed/internal/common"
	"golang.org/x/oauth2"
)

var ErrEmptyCredential = errors.New("provider returned an empty credential")

// AuthService defines authorization operations for the CLI.
//
// Contract:
//   - AuthorizationURL: the page the user opens to grant access.
//   - Exchange: one code-for-token attempt, no retries.
//   - Close: release underlying client resources.
type AuthService interface {
	AuthorizationURL() (string, error)
	Exchange(ctx context.Context, code models.AuthorizationCode) (models.Credential, error)
	Close() error
}

type authService struct {
	client client.Client
	oauth  *oauth2.Config
}

// NewAuthService binds the service to a provider client. oauth is only used
// to render the authorize URL; the exchange itself goes through client.
func NewAuthService(client client.Client, oauth *oauth2.Config) AuthService {
	return &authService{client: client, oauth: oauth}
}

// AuthorizationURL renders the authorize endpoint with client id, redirect
// URI, response_type=code and the configured scopes. A random state value
// is attached on every call.
func (a *authService) AuthorizationURL() (string, error) {
	state, err := common.MakeRandHexString(16)
	if err != nil {
		return "", fmt.Errorf("state generation error: %w", err)
	}
	return a.oauth.AuthCodeURL(state), nil
}

func (a *authService) Exchange(ctx context.Context, code models.AuthorizationCode) (models.Credential, error) {
	token, err := a.client.ExchangeCode(ctx, string(code))
	if err != nil {
		return "", fmt.Errorf("exchange error: %w", err)
	}
	if token == "" {
		return "", ErrEmptyCredential
	}
	return models.Credential(token), nil
}

func (a *authService) Close() error {
	return a.client.Close()
}
