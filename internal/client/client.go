package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/fivetwenty-io/wpclient/internal/auth"
	"github.com/fivetwenty-io/wpclient/internal/constants"
	"github.com/fivetwenty-io/wpclient/internal/http"
	"github.com/fivetwenty-io/wpclient/pkg/wp"
)

// Client implements the wp.Client interface.
type Client struct {
	httpClient    *http.Client
	authenticator wp.Authenticator
	baseURL       string
	logger        wp.Logger

	// Resource clients
	posts      wp.PostsClient
	categories wp.CategoriesClient
	media      wp.MediaClient
}

// New creates a new WordPress API client, building the authenticator the
// config asks for. JWT without a token logs in before New returns.
func New(ctx context.Context, config *wp.Config) (*Client, error) {
	if config.SiteURL == "" {
		return nil, wp.ErrSiteURLRequired
	}

	pooled := sharedHTTPClient(config)

	authenticator, err := createAuthenticator(ctx, config, pooled)
	if err != nil {
		return nil, err
	}

	return newClient(config, authenticator, pooled), nil
}

// NewWithAuthenticator creates a new WordPress API client with a caller
// supplied authenticator. A nil authenticator sends anonymous requests.
func NewWithAuthenticator(config *wp.Config, authenticator wp.Authenticator) (*Client, error) {
	if config.SiteURL == "" {
		return nil, wp.ErrSiteURLRequired
	}

	return newClient(config, authenticator, sharedHTTPClient(config)), nil
}

func newClient(config *wp.Config, authenticator wp.Authenticator, pooled *nethttp.Client) *Client {
	httpOpts := append(createHTTPClientOptions(config), http.WithHTTPClient(pooled))

	client := &Client{
		httpClient:    http.NewClient(config.SiteURL, authenticator, httpOpts...),
		authenticator: authenticator,
		baseURL:       config.SiteURL,
		logger:        config.Logger,
	}

	client.initializeResourceClients()

	return client
}

// sharedHTTPClient returns the connection pool used by both the executor and
// the JWT exchange.
func sharedHTTPClient(config *wp.Config) *nethttp.Client {
	if config.HTTPClient != nil {
		return config.HTTPClient
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}

	return http.NewPooledClient(timeout)
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *wp.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	return httpOpts
}

// createAuthenticator picks the credential variant from config.AuthMethod.
// Application passwords with no username and no password give an anonymous
// client.
func createAuthenticator(ctx context.Context, config *wp.Config, pooled *nethttp.Client) (wp.Authenticator, error) {
	switch config.AuthMethod {
	case "", wp.AuthApplicationPassword:
		if config.Username == "" && config.Password == "" {
			return nil, nil //nolint:nilnil // anonymous client
		}

		authenticator, err := auth.NewApplicationPasswordAuth(config.Username, config.Password)
		if err != nil {
			return nil, err
		}

		return authenticator, nil
	case wp.AuthJWT:
		authenticator, err := auth.NewJWTAuth(ctx, auth.JWTConfig{
			SiteURL:    config.SiteURL,
			Username:   config.Username,
			Password:   config.Password,
			Token:      config.Token,
			HTTPClient: pooled,
			Logger:     config.Logger,
			Persister:  config.TokenPersister,
		})
		if err != nil {
			return nil, err
		}

		return authenticator, nil
	default:
		return nil, fmt.Errorf("%w: %s", wp.ErrUnknownAuthMethod, config.AuthMethod)
	}
}

// initializeResourceClients creates all resource client instances.
func (c *Client) initializeResourceClients() {
	c.posts = NewPostsClient(c.httpClient)
	c.categories = NewCategoriesClient(c.httpClient)
	c.media = NewMediaClient(c.httpClient)
}

// Posts implements wp.Client.Posts.
func (c *Client) Posts() wp.PostsClient {
	return c.posts
}

// Categories implements wp.Client.Categories.
func (c *Client) Categories() wp.CategoriesClient {
	return c.categories
}

// Media implements wp.Client.Media.
func (c *Client) Media() wp.MediaClient {
	return c.media
}

// Authenticator implements wp.Client.Authenticator.
func (c *Client) Authenticator() wp.Authenticator {
	return c.authenticator
}

// BaseURL returns the normalized site URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetSiteInfo implements wp.Client.GetSiteInfo.
func (c *Client) GetSiteInfo(ctx context.Context) (*wp.SiteInfo, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathIndex, nil)
	if err != nil {
		return nil, fmt.Errorf("getting site info: %w", err)
	}

	var info wp.SiteInfo

	err = decodeObject(resp, &info)
	if err != nil {
		return nil, fmt.Errorf("parsing site info: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug("Fetched site info", map[string]interface{}{
			"site":       c.baseURL,
			"name":       info.Name,
			"namespaces": len(info.Namespaces),
		})
	}

	return &info, nil
}

// decodeObject decodes a single-object response, rejecting arrays and scalars.
func decodeObject(resp *http.Response, v any) error {
	if _, ok := resp.Object(); !ok {
		return &wp.Error{Kind: wp.KindAPI, Message: wp.InvalidResponseMessage, StatusCode: resp.StatusCode}
	}

	return resp.Decode(v)
}

// decodeList decodes a collection response, rejecting anything but an array.
func decodeList(resp *http.Response, v any) error {
	value, err := resp.JSON()
	if err != nil {
		return &wp.Error{Kind: wp.KindAPI, Message: wp.InvalidResponseMessage, StatusCode: resp.StatusCode, Err: err}
	}

	if _, ok := value.([]any); !ok {
		return &wp.Error{Kind: wp.KindAPI, Message: wp.InvalidResponseMessage, StatusCode: resp.StatusCode}
	}

	return resp.Decode(v)
}

// deletePayload returns the object a DELETE produced, unmodified.
func deletePayload(resp *http.Response) (map[string]any, error) {
	payload, ok := resp.Object()
	if !ok {
		return nil, &wp.Error{Kind: wp.KindAPI, Message: wp.InvalidResponseMessage, StatusCode: resp.StatusCode}
	}

	return payload, nil
}

func itemPath(collection string, id int) string {
	return fmt.Sprintf("%s/%d", collection, id)
}
