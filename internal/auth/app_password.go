package auth

import (
	"context"
	"encoding/base64"

	"github.com/fivetwenty-io/wpclient/pkg/wp"
)

// ApplicationPasswordAuth signs requests with HTTP Basic credentials built
// from a WordPress application password.
type ApplicationPasswordAuth struct {
	username string
	header   string
}

// NewApplicationPasswordAuth validates the credentials and precomputes the
// Authorization header. It never touches the network.
func NewApplicationPasswordAuth(username, secret string) (*ApplicationPasswordAuth, error) {
	if username == "" || secret == "" {
		return nil, wp.NewValidationError("Username and password are required")
	}

	encoded := base64.StdEncoding.EncodeToString([]byte(username + ":" + secret))

	return &ApplicationPasswordAuth{
		username: username,
		header:   "Basic " + encoded,
	}, nil
}

// AuthHeaders returns the Basic Authorization header.
func (a *ApplicationPasswordAuth) AuthHeaders(ctx context.Context) (map[string]string, error) {
	return map[string]string{"Authorization": a.header}, nil
}

// Username returns the account the credential belongs to.
func (a *ApplicationPasswordAuth) Username() string {
	return a.username
}
