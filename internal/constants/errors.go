package constants

import "errors"

// Configuration errors.
var (
	ErrNoSiteConfigured   = errors.New("no site configured, use 'wp config set url <site>' or --url")
	ErrNoUsername         = errors.New("username is required, use --username or WP_USERNAME")
	ErrNoPassword         = errors.New("password is required, use --password or WP_PASSWORD")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrNotJWTConfigured   = errors.New("token commands require --auth jwt")
	ErrTokenInvalid       = errors.New("token is invalid or expired, run 'wp login' or 'wp auth refresh'")
	ErrJWTTokenMissing    = errors.New("token response did not contain a token")
	ErrInvalidTokenStatus = errors.New("token endpoint returned non-success status")
)

// Validation errors.
var (
	ErrInvalidID           = errors.New("invalid ID")
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrInvalidFormat       = errors.New("invalid content format")
	ErrNothingToUpdate     = errors.New("no fields to update, pass at least one flag")
)

// Operation errors.
var (
	ErrUploadsFailed = errors.New("one or more uploads failed")
)
