package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/imagefeed/internal/flagx"
	"github.com/dmitrijs2005/imagefeed/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "30s" or as integer nanoseconds.
type JsonConfig struct {
	Transport        string         `json:"transport"`
	APIBaseURL       string         `json:"api_base_url"`
	AuthURL          string         `json:"auth_url"`
	TokenURL         string         `json:"token_url"`
	GRPCEndpointAddr string         `json:"grpc_endpoint_addr"`
	ClientID         string         `json:"client_id"`
	ClientSecret     string         `json:"client_secret"`
	RedirectURI      string         `json:"redirect_uri"`
	Scopes           []string       `json:"scopes"`
	DatabasePath     string         `json:"database_path"`
	StorageSecret    string         `json:"storage_secret"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	LogLevel         string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config in args. Without either flag nothing happens. Fields absent
// from the file keep their current values.
func parseJson(cfg *Config, args []string) error {
	jsonConfigFile := flagx.ConfigPath(args)
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	setString(&cfg.Transport, jc.Transport)
	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.AuthURL, jc.AuthURL)
	setString(&cfg.TokenURL, jc.TokenURL)
	setString(&cfg.GRPCEndpointAddr, jc.GRPCEndpointAddr)
	setString(&cfg.ClientID, jc.ClientID)
	setString(&cfg.ClientSecret, jc.ClientSecret)
	setString(&cfg.RedirectURI, jc.RedirectURI)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.StorageSecret, jc.StorageSecret)
	setString(&cfg.LogLevel, jc.LogLevel)
	if len(jc.Scopes) > 0 {
		cfg.Scopes = jc.Scopes
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
