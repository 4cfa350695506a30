package config

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/oauth2"
)

const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

// Config holds runtime settings for the imagefeed client.
//
// Fields:
//   - Transport: how the provider is reached, "http" (REST + OAuth) or "grpc"
//     (identity gateway).
//   - APIBaseURL, AuthURL, TokenURL: provider REST and OAuth endpoints.
//   - GRPCEndpointAddr: host:port of the identity gateway.
//   - ClientID, ClientSecret, RedirectURI, Scopes: the registered application.
//   - DatabasePath, StorageSecret: where and how the credential is kept.
//   - RequestTimeout: per-request limit of the HTTP transport.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	Transport        string
	APIBaseURL       string
	AuthURL          string
	TokenURL         string
	GRPCEndpointAddr string
	ClientID         string
	ClientSecret     string
	RedirectURI      string
	Scopes           []string
	DatabasePath     string
	StorageSecret    string
	RequestTimeout   time.Duration
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Transport = TransportHTTP
	c.APIBaseURL = "https://api.unsplash.com"
	c.AuthURL = "https://unsplash.com/oauth/authorize"
	c.TokenURL = "https://unsplash.com/oauth/token"
	c.GRPCEndpointAddr = "127.0.0.1:50051"
	c.RedirectURI = "urn:ietf:wg:oauth:2.0:oob"
	c.Scopes = []string{"public", "read_user", "write_likes"}
	c.DatabasePath = "imagefeed.db"
	c.StorageSecret = "imagefeed-local"
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "info"
}

// Validate reports settings the client cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Transport != TransportHTTP && c.Transport != TransportGRPC {
		errs = append(errs, fmt.Errorf("unknown transport %q", c.Transport))
	}
	if c.ClientID == "" {
		errs = append(errs, errors.New("client_id is required"))
	}
	if c.StorageSecret == "" {
		errs = append(errs, errors.New("storage_secret is required"))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("request timeout must be positive"))
	}
	return errors.Join(errs...)
}

// OAuth2 describes the registered application for golang.org/x/oauth2.
// Credentials go in the request body, which is what the provider expects.
func (c *Config) OAuth2() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURI,
		Scopes:       c.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.AuthURL,
			TokenURL:  c.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones. args is usually os.Args[1:].
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
