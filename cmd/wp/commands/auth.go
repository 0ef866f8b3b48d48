package commands

import (
	"fmt"
	"io"

	"github.com/fivetwenty-io/wpclient/internal/constants"
	"github.com/fivetwenty-io/wpclient/pkg/wp"
	"github.com/spf13/cobra"
)

// TokenStatus is the result of a token validation.
type TokenStatus struct {
	Site  string `json:"site"  yaml:"site"`
	Valid bool   `json:"valid" yaml:"valid"`
}

// NewAuthCommand creates the auth command group.
func NewAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage JWT authentication",
		Long:  "Validate and refresh the JWT used with --auth jwt",
	}

	cmd.AddCommand(newAuthValidateCommand())
	cmd.AddCommand(newAuthRefreshCommand())

	return cmd
}

func newAuthValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check whether the stored token is accepted",
		Long:  "Ask the JWT Authentication plugin whether the current token is still valid",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenAuth, siteURL, err := tokenAuthenticator(cmd, false)
			if err != nil {
				return err
			}

			valid, err := tokenAuth.ValidateToken(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("failed to validate token: %w", err)
			}

			status := TokenStatus{Site: siteURL, Valid: valid}

			err = renderOutput(cmd, status, func(w io.Writer) error {
				if valid {
					_, _ = fmt.Fprintf(w, "%s Token is valid for %s\n", constants.CheckMarkSymbol, siteURL)
				}

				return nil
			})
			if err != nil {
				return err
			}

			if !valid {
				return constants.ErrTokenInvalid
			}

			return nil
		},
	}
}

func newAuthRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Obtain a new token",
		Long:  "Log in again with the configured username and password and store the new token",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenAuth, siteURL, err := tokenAuthenticator(cmd, true)
			if err != nil {
				return err
			}

			err = tokenAuth.RefreshToken(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("failed to refresh token: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s Token refreshed for %s\n", constants.CheckMarkSymbol, siteURL)

			return nil
		},
	}
}

// tokenAuthenticator builds a client and returns its JWT authenticator. With
// credentials set the password is required even when a token is stored.
func tokenAuthenticator(cmd *cobra.Command, credentials bool) (wp.TokenAuthenticator, string, error) {
	config, err := buildClientConfig(cmd)
	if err != nil {
		return nil, "", err
	}

	if config.AuthMethod != wp.AuthJWT {
		return nil, "", constants.ErrNotJWTConfigured
	}

	if credentials && config.Password == "" {
		if config.Username == "" {
			return nil, "", constants.ErrNoUsername
		}

		config.Password, err = promptPassword(cmd)
		if err != nil {
			return nil, "", err
		}
	}

	client, err := newClientFromConfig(cmd, config)
	if err != nil {
		return nil, "", err
	}

	tokenAuth, ok := client.Authenticator().(wp.TokenAuthenticator)
	if !ok {
		return nil, "", constants.ErrNotJWTConfigured
	}

	return tokenAuth, config.SiteURL, nil
}
