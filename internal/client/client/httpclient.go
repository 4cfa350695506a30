package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
)

const maxResponseBodyBytes = 1 << 20

// HTTPClient talks to the provider's public REST API.
type HTTPClient struct {
	baseURL    *url.URL
	oauth      *oauth2.Config
	httpClient *http.Client
}

type meResponse struct {
	UserName  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
}

type userResponse struct {
	ProfileImage struct {
		Small  string `json:"small"`
		Medium string `json:"medium"`
		Large  string `json:"large"`
	} `json:"profile_image"`
}

// NewHTTPClient builds a REST client rooted at baseURL. oauth carries the
// token endpoint and client credentials used by ExchangeCode. A nil
// httpClient means http.DefaultClient.
func NewHTTPClient(baseURL string, oauth *oauth2.Config, httpClient *http.Client) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("api base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api base url %q must be absolute", baseURL)
	}
	if oauth == nil {
		return nil, errors.New("oauth config is required")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{baseURL: u, oauth: oauth, httpClient: httpClient}, nil
}

func (c *HTTPClient) withHTTPClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

// ExchangeCode posts the authorization code to the token endpoint.
func (c *HTTPClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	token, err := c.oauth.Exchange(c.withHTTPClient(ctx), code)
	if err != nil {
		return "", c.mapError(err)
	}
	return token.AccessToken, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context, accessToken string) (*ProfileResponse, error) {
	var me meResponse
	if err := c.get(ctx, accessToken, &me, "me"); err != nil {
		return nil, err
	}
	return &ProfileResponse{
		UserName:  me.UserName,
		FirstName: me.FirstName,
		LastName:  me.LastName,
		Bio:       me.Bio,
	}, nil
}

func (c *HTTPClient) GetAvatarURL(ctx context.Context, accessToken string, userName string) (string, error) {
	if strings.TrimSpace(userName) == "" {
		return "", errors.New("username is required")
	}

	var user userResponse
	if err := c.get(ctx, accessToken, &user, "users", userName); err != nil {
		return "", err
	}
	if user.ProfileImage.Small == "" {
		return "", fmt.Errorf("%w: no profile image", ErrBadResponse)
	}
	return user.ProfileImage.Small, nil
}

func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) get(ctx context.Context, accessToken string, out any, path ...string) error {
	hc := oauth2.NewClient(c.withHTTPClient(ctx), oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))
	hc.Timeout = c.httpClient.Timeout

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.JoinPath(path...).String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return c.mapError(err)
	}
	defer resp.Body.Close()

	if err := statusError(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s", ErrUnavailable, resp.Status)
	default:
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
}

func (c *HTTPClient) mapError(err error) error {
	if err == nil {
		return nil
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
		if retrieveErr.Response.StatusCode < 500 {
			return fmt.Errorf("%w: %s", ErrUnauthorized, retrieveErr.ErrorCode)
		}
		return fmt.Errorf("%w: %s", ErrUnavailable, retrieveErr.Response.Status)
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return fmt.Errorf("http error: %w", err)
}
