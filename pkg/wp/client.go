package wp

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client is the main interface for interacting with the WordPress REST API.
type Client interface {
	Posts() PostsClient
	Categories() CategoriesClient
	Media() MediaClient

	// GetSiteInfo fetches the REST index at /wp-json/.
	GetSiteInfo(ctx context.Context) (*SiteInfo, error)

	// Authenticator returns the credential the client signs requests with,
	// or nil for an anonymous client.
	Authenticator() Authenticator
}

// PostsClient manages /wp/v2/posts.
type PostsClient interface {
	List(ctx context.Context, opts *PostListOptions) ([]Post, error)
	Get(ctx context.Context, id int) (*Post, error)
	Create(ctx context.Context, req *PostCreateRequest) (*Post, error)
	Update(ctx context.Context, id int, req *PostUpdateRequest) (*Post, error)
	// Delete trashes the post, or removes it permanently when force is true.
	// The server payload is returned unmodified.
	Delete(ctx context.Context, id int, force bool) (map[string]any, error)
}

// CategoriesClient manages /wp/v2/categories.
type CategoriesClient interface {
	List(ctx context.Context, opts *CategoryListOptions) ([]Category, error)
	Get(ctx context.Context, id int) (*Category, error)
	Create(ctx context.Context, req *CategoryCreateRequest) (*Category, error)
	Update(ctx context.Context, id int, req *CategoryUpdateRequest) (*Category, error)
	Delete(ctx context.Context, id int, force bool) (map[string]any, error)
}

// MediaClient manages /wp/v2/media.
type MediaClient interface {
	List(ctx context.Context, opts *MediaListOptions) ([]Media, error)
	Get(ctx context.Context, id int) (*Media, error)
	Upload(ctx context.Context, req *MediaUploadRequest) (*Media, error)
	Update(ctx context.Context, id int, req *MediaUpdateRequest) (*Media, error)
	Delete(ctx context.Context, id int, force bool) (map[string]any, error)
}

// Authenticator produces the headers that prove identity on a request.
type Authenticator interface {
	AuthHeaders(ctx context.Context) (map[string]string, error)
}

// TokenAuthenticator is an Authenticator backed by a bearer token that can be
// validated and refreshed.
type TokenAuthenticator interface {
	Authenticator

	// ValidateToken reports whether the server accepts the current token. It
	// only returns an error when the validation request could not be sent.
	ValidateToken(ctx context.Context) (bool, error)
	// RefreshToken forces a new login exchange.
	RefreshToken(ctx context.Context) error
	// Token returns the token currently held.
	Token() string
}

// TokenPersister stores a token after a successful login so later processes
// can reuse it. Persistence is best-effort: a SaveToken error never fails the
// login and is only reported through the configured Logger.
type TokenPersister interface {
	SaveToken(siteURL, token string) error
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// AuthMethod selects the credential variant built by wpclient.New.
type AuthMethod string

// Supported authentication methods.
const (
	AuthApplicationPassword AuthMethod = "app-password"
	AuthJWT                 AuthMethod = "jwt"
)

// ParseAuthMethod converts a user-supplied name to an AuthMethod. The empty
// string selects application passwords.
func ParseAuthMethod(name string) (AuthMethod, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "app-password", "application-password", "basic":
		return AuthApplicationPassword, nil
	case "jwt":
		return AuthJWT, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownAuthMethod, name)
	}
}

// Config represents client configuration for building a wp.Client.
//
// # Authentication
//
// AuthMethod picks the credential built by wpclient.New:
//  1. AuthApplicationPassword (default): Username and Password are sent as
//     HTTP Basic credentials. Password is an application password generated in
//     the WordPress admin, not the login password.
//  2. AuthJWT: requires the JWT Authentication plugin. If Token is set it is
//     used as-is, otherwise Username and Password are exchanged for a token
//     while the client is constructed.
//
// Leaving Username empty builds an anonymous client that can only read public
// content.
//
// # Timeouts
//
// Timeout bounds every HTTP attempt. Requests are never retried.
type Config struct {
	// SiteURL: base URL of the WordPress site (e.g., "https://example.com").
	// wpclient.New trims a trailing slash and adds "https://" when no scheme
	// is present.
	SiteURL string

	Username string
	Password string
	// AuthMethod: see the type documentation. Zero value is AuthApplicationPassword.
	AuthMethod AuthMethod
	// Token: pre-issued JWT, only used with AuthJWT.
	Token string

	// Timeout: per-request timeout. Zero uses the library default.
	Timeout time.Duration
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: enables HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger.
	Logger Logger
	// HTTPClient: optional pre-built client. Its Timeout is left untouched.
	HTTPClient *http.Client
	// TokenPersister: optional, receives every JWT obtained by a login.
	TokenPersister TokenPersister
}
