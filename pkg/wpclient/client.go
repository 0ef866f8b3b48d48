// Package wpclient provides the main entry point for creating WordPress REST API clients
package wpclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/wpclient/internal/auth"
	"github.com/fivetwenty-io/wpclient/internal/client"
	"github.com/fivetwenty-io/wpclient/pkg/wp"
)

// JWTConfig configures the JWT token exchange.
type JWTConfig = auth.JWTConfig

// New creates a new WordPress API client. The authenticator is chosen from
// config.AuthMethod; JWT without a token logs in before New returns.
func New(ctx context.Context, config *wp.Config) (wp.Client, error) {
	if config == nil {
		return nil, wp.ErrConfigRequired
	}

	normalized, err := normalizeConfig(config)
	if err != nil {
		return nil, err
	}

	c, err := client.New(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithAuthenticator creates a client that signs requests with the given
// authenticator instead of building one from config credentials.
func NewWithAuthenticator(config *wp.Config, authenticator wp.Authenticator) (wp.Client, error) {
	if config == nil {
		return nil, wp.ErrConfigRequired
	}

	normalized, err := normalizeConfig(config)
	if err != nil {
		return nil, err
	}

	c, err := client.NewWithAuthenticator(normalized, authenticator)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithSite creates an anonymous client for public endpoints.
func NewWithSite(ctx context.Context, siteURL string) (wp.Client, error) {
	return New(ctx, &wp.Config{
		SiteURL: siteURL,
	})
}

// NewWithApplicationPassword creates a client authenticating with a
// WordPress application password.
func NewWithApplicationPassword(ctx context.Context, siteURL, username, password string) (wp.Client, error) {
	return New(ctx, &wp.Config{
		SiteURL:    siteURL,
		Username:   username,
		Password:   password,
		AuthMethod: wp.AuthApplicationPassword,
	})
}

// NewWithJWT creates a client that exchanges username and password for a JWT
// token through the JWT Authentication plugin.
func NewWithJWT(ctx context.Context, siteURL, username, password string) (wp.Client, error) {
	return New(ctx, &wp.Config{
		SiteURL:    siteURL,
		Username:   username,
		Password:   password,
		AuthMethod: wp.AuthJWT,
	})
}

// NewApplicationPasswordAuth creates a Basic authenticator for an
// application password. Empty credentials are a Validation error.
func NewApplicationPasswordAuth(username, password string) (wp.Authenticator, error) {
	authenticator, err := auth.NewApplicationPasswordAuth(username, password)
	if err != nil {
		return nil, err
	}

	return authenticator, nil
}

// NewJWTAuth creates a JWT authenticator. Without a pre-issued token it
// logs in immediately.
func NewJWTAuth(ctx context.Context, config JWTConfig) (wp.TokenAuthenticator, error) {
	siteURL, err := NormalizeSiteURL(config.SiteURL)
	if err != nil {
		return nil, err
	}

	config.SiteURL = siteURL

	authenticator, err := auth.NewJWTAuth(ctx, config)
	if err != nil {
		return nil, err
	}

	return authenticator, nil
}

// normalizeConfig returns a shallow copy of config with a normalized site URL.
func normalizeConfig(config *wp.Config) (*wp.Config, error) {
	siteURL, err := NormalizeSiteURL(config.SiteURL)
	if err != nil {
		return nil, err
	}

	normalized := *config
	normalized.SiteURL = siteURL

	return &normalized, nil
}

// NormalizeSiteURL trims trailing slashes and defaults the scheme to https.
func NormalizeSiteURL(siteURL string) (string, error) {
	siteURL = strings.TrimSpace(siteURL)
	if siteURL == "" {
		return "", wp.ErrSiteURLRequired
	}

	siteURL = strings.TrimRight(siteURL, "/")
	if !strings.HasPrefix(siteURL, "http://") && !strings.HasPrefix(siteURL, "https://") {
		siteURL = "https://" + siteURL
	}

	return siteURL, nil
}
