package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fivetwenty-io/wpclient/internal/constants"
	"github.com/fivetwenty-io/wpclient/pkg/wp"
	"github.com/fivetwenty-io/wpclient/pkg/wpclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// CreateClient builds a client from flags, environment and config file.
func CreateClient(cmd *cobra.Command) (wp.Client, error) {
	config, err := buildClientConfig(cmd)
	if err != nil {
		return nil, err
	}

	return newClientFromConfig(cmd, config)
}

func newClientFromConfig(cmd *cobra.Command, config *wp.Config) (wp.Client, error) {
	return wpclient.New(commandContext(cmd), config)
}

// createClientWithTimeout is CreateClient with a floor on the request timeout.
func createClientWithTimeout(cmd *cobra.Command, minTimeout time.Duration) (wp.Client, error) {
	config, err := buildClientConfig(cmd)
	if err != nil {
		return nil, err
	}

	if config.Timeout < minTimeout {
		config.Timeout = minTimeout
	}

	return newClientFromConfig(cmd, config)
}

func buildClientConfig(cmd *cobra.Command) (*wp.Config, error) {
	siteURL := viper.GetString("url")
	if siteURL == "" {
		return nil, constants.ErrNoSiteConfigured
	}

	siteURL, err := wpclient.NormalizeSiteURL(siteURL)
	if err != nil {
		return nil, err
	}

	method, err := wp.ParseAuthMethod(viper.GetString("auth"))
	if err != nil {
		return nil, err
	}

	verbose := viper.GetBool("verbose")

	config := &wp.Config{
		SiteURL:        siteURL,
		Username:       viper.GetString("username"),
		Password:       viper.GetString("password"),
		AuthMethod:     method,
		Timeout:        viper.GetDuration("timeout"),
		UserAgent:      constants.DefaultUserAgent,
		Debug:          verbose,
		Logger:         newLogger(cmd.ErrOrStderr(), verbose),
		TokenPersister: NewConfigPersister(),
	}

	if method == wp.AuthJWT {
		config.Token = storedToken(siteURL)
	}

	if needsPassword(config) {
		password, err := promptPassword(cmd)
		if err != nil {
			return nil, err
		}

		config.Password = password
	}

	return config, nil
}

// storedToken returns the configured JWT unless it was issued for another site.
func storedToken(siteURL string) string {
	token := viper.GetString("token")
	tokenSite := viper.GetString("token_site")

	if token == "" || tokenSite == "" {
		return token
	}

	normalized, err := wpclient.NormalizeSiteURL(tokenSite)
	if err != nil || normalized != siteURL {
		return ""
	}

	return token
}

// needsPassword reports whether a username was given without a password the
// chosen method can use.
func needsPassword(config *wp.Config) bool {
	if config.Username == "" || config.Password != "" {
		return false
	}

	return config.AuthMethod != wp.AuthJWT || config.Token == ""
}

// promptPassword reads a password from the terminal without echo. Without a
// terminal the password must come from a flag or the environment.
func promptPassword(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd()) //nolint:gosec // file descriptors fit in int

	if !term.IsTerminal(fd) {
		return "", constants.ErrNoPassword
	}

	_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Password: ")

	password, err := term.ReadPassword(fd)

	_, _ = fmt.Fprintln(cmd.ErrOrStderr())

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return string(password), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
