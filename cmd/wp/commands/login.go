package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fivetwenty-io/wpclient/internal/constants"
	"github.com/fivetwenty-io/wpclient/pkg/wp"
	"github.com/fivetwenty-io/wpclient/pkg/wpclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in with the JWT Authentication plugin",
		Long: `Exchange a username and password for a JWT and store it in the config file.

The password is never saved. Later commands reuse the token while it is
issued for the configured site.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			siteURL := viper.GetString("url")
			if siteURL == "" {
				return constants.ErrNoSiteConfigured
			}

			siteURL, err := wpclient.NormalizeSiteURL(siteURL)
			if err != nil {
				return err
			}

			username := viper.GetString("username")
			if username == "" {
				username = promptLine(cmd, "Username: ")
			}

			if username == "" {
				return constants.ErrNoUsername
			}

			password := viper.GetString("password")
			if password == "" {
				password, err = promptPassword(cmd)
				if err != nil {
					return err
				}
			}

			verbose := viper.GetBool("verbose")

			// Token is left empty so the exchange always runs.
			client, err := wpclient.New(commandContext(cmd), &wp.Config{
				SiteURL:    siteURL,
				Username:   username,
				Password:   password,
				AuthMethod: wp.AuthJWT,
				Timeout:    viper.GetDuration("timeout"),
				UserAgent:  constants.DefaultUserAgent,
				Debug:      verbose,
				Logger:     newLogger(cmd.ErrOrStderr(), verbose),
			})
			if err != nil {
				return fmt.Errorf("failed to log in: %w", err)
			}

			tokenAuth, ok := client.Authenticator().(wp.TokenAuthenticator)
			if !ok {
				return constants.ErrNotJWTConfigured
			}

			config, err := loadConfigFile()
			if err != nil {
				return err
			}

			config.URL = siteURL
			config.Username = username
			config.Auth = string(wp.AuthJWT)
			config.Token = tokenAuth.Token()
			config.TokenSite = siteURL

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s Logged in to %s as %s\n", constants.CheckMarkSymbol, siteURL, username)

			// The token is already stored, a failing index lookup only loses the site name.
			info, err := client.GetSiteInfo(commandContext(cmd))
			if err != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not fetch site info: %s\n", errorMessage(err))

				return nil
			}

			if info.Name != "" {
				_, _ = fmt.Fprintf(out, "  Site: %s\n", info.Name)
			}

			return nil
		},
	}
}

// promptLine reads one trimmed line from the command's input.
func promptLine(cmd *cobra.Command, prompt string) string {
	_, _ = io.WriteString(cmd.ErrOrStderr(), prompt)

	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')

	return strings.TrimSpace(line)
}
