package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fivetwenty-io/wpclient/internal/constants"
	"github.com/fivetwenty-io/wpclient/pkg/wp"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration file.
type Config struct {
	URL       string `json:"url,omitempty"        yaml:"url,omitempty"`
	Username  string `json:"username,omitempty"   yaml:"username,omitempty"`
	Password  string `json:"password,omitempty"   yaml:"password,omitempty"`
	Auth      string `json:"auth,omitempty"       yaml:"auth,omitempty"`
	Token     string `json:"token,omitempty"      yaml:"token,omitempty"`
	TokenSite string `json:"token_site,omitempty" yaml:"token_site,omitempty"`
	Timeout   string `json:"timeout,omitempty"    yaml:"timeout,omitempty"`
	Output    string `json:"output,omitempty"     yaml:"output,omitempty"`
}

// configSetters maps each settable key to its validating setter.
var configSetters = map[string]func(config *Config, value string) error{
	"url": func(config *Config, value string) error {
		config.URL = strings.TrimSpace(value)

		return nil
	},
	"username": func(config *Config, value string) error {
		config.Username = value

		return nil
	},
	"password": func(config *Config, value string) error {
		config.Password = value

		return nil
	},
	"auth": func(config *Config, value string) error {
		method, err := wp.ParseAuthMethod(value)
		if err != nil {
			return err
		}

		config.Auth = string(method)

		return nil
	},
	"token": func(config *Config, value string) error {
		config.Token = value
		config.TokenSite = ""

		return nil
	},
	"timeout": func(config *Config, value string) error {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}

		config.Timeout = value

		return nil
	},
	"output": func(config *Config, value string) error {
		switch value {
		case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
			config.Output = value

			return nil
		default:
			return fmt.Errorf("%w: %s", constants.ErrInvalidOutputFormat, value)
		}
	},
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the WordPress CLI configuration stored in ~/.wp/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration from flags, environment and config file. Secrets are masked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := effectiveConfig()
			config.Password = maskSecret(config.Password)
			config.Token = maskSecret(config.Token)

			return renderOutput(cmd, config, func(w io.Writer) error {
				return displayConfigTable(w, config)
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: url, username, password, auth, token, timeout, output",
		Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(args[0])
			value := args[1]

			setter, ok := configSetters[key]
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			config, err := loadConfigFile()
			if err != nil {
				return err
			}

			err = setter(config, value)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			display := value
			if key == "password" || key == "token" {
				display = constants.MaskedSecret
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s Set %s = %s\n", constants.CheckMarkSymbol, key, display)

			return nil
		},
	}
}

// effectiveConfig reads the merged configuration from viper.
func effectiveConfig() *Config {
	return &Config{
		URL:       viper.GetString("url"),
		Username:  viper.GetString("username"),
		Password:  viper.GetString("password"),
		Auth:      viper.GetString("auth"),
		Token:     viper.GetString("token"),
		TokenSite: viper.GetString("token_site"),
		Timeout:   viper.GetDuration("timeout").String(),
		Output:    viper.GetString("output"),
	}
}

// configFilePath returns the config file in use, defaulting to ~/.wp/config.yml.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".wp", "config.yml"), nil
}

// loadConfigFile reads only the config file, so flags and environment
// values are never written back. A missing file is an empty config.
func loadConfigFile() (*Config, error) {
	configFile, err := configFilePath()
	if err != nil {
		return nil, err
	}

	// configFile comes from the user's own --config flag or home directory.
	// #nosec G304
	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}

		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configFile, err)
	}

	return &config, nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displayConfigTable(w io.Writer, config *Config) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	_ = table.Append("URL", orNA(config.URL))
	_ = table.Append("Username", orNA(config.Username))
	_ = table.Append("Password", orNA(config.Password))
	_ = table.Append("Auth", orNA(config.Auth))
	_ = table.Append("Token", orNA(config.Token))
	_ = table.Append("Timeout", config.Timeout)
	_ = table.Append("Output", orNA(config.Output))

	if configFile, err := configFilePath(); err == nil {
		_ = table.Append("Config File", configFile)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func maskSecret(value string) string {
	if value == "" {
		return ""
	}

	return constants.MaskedSecret
}
