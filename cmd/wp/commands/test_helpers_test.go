package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// commandResult captures the streams of one CLI invocation.
type commandResult struct {
	stdout string
	stderr string
	err    error
}

// executeCommand runs the root command with args against a fresh viper and
// a config file under a temporary directory. stdin feeds prompts.
func executeCommand(t *testing.T, configFile, stdin string, args ...string) commandResult {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	if configFile == "" {
		configFile = filepath.Join(t.TempDir(), "config.yml")
	}

	var stdout, stderr bytes.Buffer

	root := NewRootCommand("1.2.3", "abc123", "2026-01-01")
	root.SetArgs(append([]string{"--config", configFile}, args...))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))

	err := root.Execute()

	return commandResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}
