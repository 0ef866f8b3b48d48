package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/wpclient/internal/constants"
	"github.com/fivetwenty-io/wpclient/pkg/wp"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand creates the wp root command with every command group attached.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wp",
		Short: "WordPress REST API CLI",
		Long: `A command-line interface for the WordPress REST API.

Manage posts, categories and media on any WordPress site using application
passwords or the JWT Authentication plugin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.wp/config.yml)")
	flags.StringP("url", "u", "", "WordPress site URL")
	flags.String("username", "", "WordPress username")
	flags.String("password", "", "application password or account password for JWT")
	flags.String("auth", string(wp.AuthApplicationPassword), "authentication method (app-password, jwt)")
	flags.Duration("timeout", constants.DefaultRequestTimeout, "per-request timeout")
	flags.StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.StringP("query", "q", "", "JMESPath expression applied to json/yaml output")
	flags.BoolP("verbose", "v", false, "verbose output")

	// Bind flags to viper
	for _, name := range []string{"config", "url", "username", "password", "auth", "timeout", "output", "query", "verbose"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	// Add commands
	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewLoginCommand())
	rootCmd.AddCommand(NewAuthCommand())
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewInfoCommand())
	rootCmd.AddCommand(NewPostsCommand())
	rootCmd.AddCommand(NewCategoriesCommand())
	rootCmd.AddCommand(NewMediaCommand())

	return rootCmd
}

func initConfig() error {
	// A .env file in the working directory is optional.
	_ = godotenv.Load()

	// Read in environment variables that match
	viper.SetEnvPrefix("WP")
	viper.AutomaticEnv()

	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		// Search config in ~/.wp/config.yml
		viper.AddConfigPath(filepath.Join(home, ".wp"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}

	return nil
}
