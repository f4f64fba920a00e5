// Package auth provides token providers for the Purview data plane.
package auth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// DefaultScope is the OAuth2 scope for the Purview data plane.
const DefaultScope = "https://purview.azure.net/.default"

// aadTokenURL is the AAD v2.0 token endpoint format.
const aadTokenURL = "https://login.microsoftonline.com/%s/oauth2/v2.0/token"

// Provider supplies bearer tokens for API requests.
type Provider interface {
	// Token returns a valid bearer token, refreshing it if needed.
	Token(ctx context.Context) (string, error)
}

// StaticTokenProvider returns a fixed bearer token. Useful for tests and
// for callers that manage token acquisition themselves.
type StaticTokenProvider struct {
	AccessToken string
}

func (p *StaticTokenProvider) Token(ctx context.Context) (string, error) {
	if p.AccessToken == "" {
		return "", fmt.Errorf("static token provider has no token")
	}
	return p.AccessToken, nil
}

// ServicePrincipalProvider acquires tokens via the OAuth2 client
// credentials flow against Azure AD.
type ServicePrincipalProvider struct {
	source oauth2.TokenSource
}

// NewServicePrincipalProvider creates a provider for the given tenant and
// service principal. Tokens are cached and refreshed by the underlying
// token source.
func NewServicePrincipalProvider(ctx context.Context, tenantID, clientID, clientSecret string) (*ServicePrincipalProvider, error) {
	if tenantID == "" || clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("tenant ID, client ID, and client secret are all required")
	}

	cfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     fmt.Sprintf(aadTokenURL, tenantID),
		Scopes:       []string{DefaultScope},
	}

	return &ServicePrincipalProvider{
		source: cfg.TokenSource(ctx),
	}, nil
}

func (p *ServicePrincipalProvider) Token(ctx context.Context) (string, error) {
	tok, err := p.source.Token()
	if err != nil {
		return "", fmt.Errorf("failed to acquire service principal token: %w", err)
	}
	return tok.AccessToken, nil
}
