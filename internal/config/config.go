// Package config loads CLI configuration from HCL files.
package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/catalogkit/purview-go/pkg/atlas"
	"github.com/catalogkit/purview-go/pkg/auth"
)

// Config represents the CLI configuration from HCL.
//
// Example:
//
//	endpoint = "https://myaccount.purview.azure.com"
//
//	auth {
//	  tenant_id         = "00000000-0000-0000-0000-000000000000"
//	  client_id         = "11111111-1111-1111-1111-111111111111"
//	  client_secret_env = "PURVIEW_CLIENT_SECRET"
//	}
type Config struct {
	// Endpoint is the Purview account base URL.
	Endpoint string `hcl:"endpoint"`

	// TLSVerify controls TLS certificate verification.
	TLSVerify *bool `hcl:"tls_verify,optional"`

	// TimeoutSeconds is the per-request timeout. Default: 30.
	TimeoutSeconds int `hcl:"timeout_seconds,optional"`

	// MaxRetries for transient request failures. Default: 3.
	MaxRetries int `hcl:"max_retries,optional"`

	// Auth configures token acquisition.
	Auth *AuthConfig `hcl:"auth,block"`
}

// AuthConfig configures how tokens are acquired. Either a static
// bearer token or a service principal must be configured.
type AuthConfig struct {
	// TokenEnv names an environment variable holding a bearer token.
	TokenEnv string `hcl:"token_env,optional"`

	// TenantID is the AAD tenant for the service principal flow.
	TenantID string `hcl:"tenant_id,optional"`

	// ClientID is the service principal application id.
	ClientID string `hcl:"client_id,optional"`

	// ClientSecretEnv names an environment variable holding the
	// client secret. The secret itself never lives in the config file.
	ClientSecretEnv string `hcl:"client_secret_env,optional"`
}

// FromFile loads and validates a configuration file.
func FromFile(path string) (*Config, error) {
	var cfg Config
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the configuration is complete.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	if c.Auth == nil {
		return fmt.Errorf("auth block is required")
	}

	hasToken := c.Auth.TokenEnv != ""
	hasSP := c.Auth.TenantID != "" || c.Auth.ClientID != "" || c.Auth.ClientSecretEnv != ""
	if !hasToken && !hasSP {
		return fmt.Errorf("auth requires token_env or a service principal (tenant_id, client_id, client_secret_env)")
	}
	if hasSP && !hasToken {
		if c.Auth.TenantID == "" || c.Auth.ClientID == "" || c.Auth.ClientSecretEnv == "" {
			return fmt.Errorf("service principal auth requires tenant_id, client_id, and client_secret_env")
		}
	}

	return nil
}

// AtlasConfig converts the file config into a client config.
func (c *Config) AtlasConfig() *atlas.Config {
	cfg := atlas.DefaultConfig()
	cfg.Endpoint = c.Endpoint
	if c.TLSVerify != nil {
		cfg.TLSVerify = c.TLSVerify
	}
	if c.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(c.TimeoutSeconds) * time.Second
	}
	if c.MaxRetries > 0 {
		cfg.MaxRetries = c.MaxRetries
	}
	return cfg
}

// NewAuthProvider builds the configured token provider, reading
// secrets from the environment.
func (c *Config) NewAuthProvider(ctx context.Context) (auth.Provider, error) {
	if c.Auth.TokenEnv != "" {
		token := os.Getenv(c.Auth.TokenEnv)
		if token == "" {
			return nil, fmt.Errorf("environment variable %s is empty", c.Auth.TokenEnv)
		}
		return &auth.StaticTokenProvider{AccessToken: token}, nil
	}

	secret := os.Getenv(c.Auth.ClientSecretEnv)
	if secret == "" {
		return nil, fmt.Errorf("environment variable %s is empty", c.Auth.ClientSecretEnv)
	}
	return auth.NewServicePrincipalProvider(ctx, c.Auth.TenantID, c.Auth.ClientID, secret)
}
