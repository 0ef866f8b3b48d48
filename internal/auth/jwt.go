package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/fivetwenty-io/wpclient/internal/constants"
	internalhttp "github.com/fivetwenty-io/wpclient/internal/http"
	"github.com/fivetwenty-io/wpclient/pkg/wp"
	"github.com/hashicorp/go-cleanhttp"
)

// JWTConfig configures a JWTAuth.
type JWTConfig struct {
	SiteURL  string
	Username string
	Password string
	// Token: pre-issued token. When empty the constructor logs in.
	Token string

	HTTPClient *http.Client
	Logger     wp.Logger
	// Persister: best-effort store for new tokens. Save failures are logged
	// at warn level and never fail the login.
	Persister wp.TokenPersister
}

// JWTAuth authenticates with a bearer token issued by the JWT Authentication
// plugin. The token is the only mutable state and is guarded by mutex.
type JWTAuth struct {
	siteURL    string
	username   string
	password   string
	httpClient *http.Client
	logger     wp.Logger
	persister  wp.TokenPersister

	mutex sync.RWMutex
	token string
}

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token           string `json:"token"`
	UserEmail       string `json:"user_email"`
	UserNicename    string `json:"user_nicename"`
	UserDisplayName string `json:"user_display_name"`
}

// NewJWTAuth creates a JWT authenticator. Without a pre-issued token it
// performs the login exchange immediately and fails with an Authentication
// error if that exchange fails.
func NewJWTAuth(ctx context.Context, config JWTConfig) (*JWTAuth, error) {
	if config.SiteURL == "" {
		return nil, wp.NewValidationError("Site URL is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = cleanhttp.DefaultPooledClient()
		httpClient.Timeout = constants.DefaultRequestTimeout
	}

	jwtAuth := &JWTAuth{
		siteURL:    strings.TrimRight(config.SiteURL, "/"),
		username:   config.Username,
		password:   config.Password,
		httpClient: httpClient,
		logger:     config.Logger,
		persister:  config.Persister,
		token:      config.Token,
	}

	if jwtAuth.token == "" {
		if err := jwtAuth.login(ctx); err != nil {
			return nil, err
		}
	}

	return jwtAuth, nil
}

// AuthHeaders returns the Bearer Authorization header, logging in first when
// no token is held.
func (a *JWTAuth) AuthHeaders(ctx context.Context) (map[string]string, error) {
	token := a.Token()
	if token == "" {
		if err := a.login(ctx); err != nil {
			return nil, err
		}

		token = a.Token()
	}

	return map[string]string{"Authorization": "Bearer " + token}, nil
}

// Token returns the token currently held.
func (a *JWTAuth) Token() string {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	return a.token
}

// RefreshToken forces a new login exchange.
func (a *JWTAuth) RefreshToken(ctx context.Context) error {
	return a.login(ctx)
}

// ValidateToken asks the server whether the current token is valid. An
// invalid token yields false; only a transport failure yields an error.
func (a *JWTAuth) ValidateToken(ctx context.Context) (bool, error) {
	token := a.Token()
	if token == "" {
		return false, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint(constants.APIPathJWTValidate), nil)
	if err != nil {
		return false, wp.NewTransportError(fmt.Errorf("creating validate request: %w", err))
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constants.DefaultUserAgent)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return false, wp.NewTransportError(err)
	}

	defer func() { _ = resp.Body.Close() }()

	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK, nil
}

func (a *JWTAuth) endpoint(path string) string {
	return internalhttp.BuildURL(a.siteURL, path, nil)
}

// login exchanges username and password for a token and stores it. Concurrent
// callers may each log in; the last successful exchange wins.
func (a *JWTAuth) login(ctx context.Context) error {
	if a.username == "" || a.password == "" {
		return wp.NewAuthenticationError("JWT authentication failed: username and password are required", nil)
	}

	payload, err := json.Marshal(tokenRequest{Username: a.username, Password: a.password})
	if err != nil {
		return wp.NewAuthenticationError(fmt.Sprintf("JWT authentication failed: %v", err), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint(constants.APIPathJWTToken), bytes.NewReader(payload))
	if err != nil {
		return wp.NewAuthenticationError(fmt.Sprintf("JWT authentication failed: %v", err), err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constants.DefaultUserAgent)

	if a.logger != nil {
		a.logger.Debug("Requesting JWT token", map[string]interface{}{
			"site":     a.siteURL,
			"username": a.username,
		})
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return wp.NewAuthenticationError(fmt.Sprintf("JWT authentication failed: %v", err), err)
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return wp.NewAuthenticationError(fmt.Sprintf("JWT authentication failed: %v", err), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		authErr := wp.NewAuthenticationError(
			fmt.Sprintf("JWT authentication failed: %s", loginFailureMessage(resp.StatusCode, body)),
			fmt.Errorf("%w: %d", constants.ErrInvalidTokenStatus, resp.StatusCode))
		authErr.StatusCode = resp.StatusCode

		return authErr
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil || tokenResp.Token == "" {
		return wp.NewAuthenticationError("JWT authentication failed: no token in response", constants.ErrJWTTokenMissing)
	}

	a.mutex.Lock()
	a.token = tokenResp.Token
	a.mutex.Unlock()

	if a.logger != nil {
		a.logger.Info("Obtained JWT token", map[string]interface{}{
			"site":     a.siteURL,
			"username": a.username,
		})
	}

	if a.persister != nil {
		if err := a.persister.SaveToken(a.siteURL, tokenResp.Token); err != nil && a.logger != nil {
			a.logger.Warn("Failed to persist JWT token", map[string]interface{}{"error": err.Error()})
		}
	}

	return nil
}

func loginFailureMessage(statusCode int, body []byte) string {
	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err == nil {
		if message := wp.ParseErrorMessage(parsed); message != wp.UnknownErrorMessage {
			return message
		}
	}

	return fmt.Sprintf("status %d", statusCode)
}
