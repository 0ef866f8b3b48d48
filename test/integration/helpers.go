//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	SiteURL  string
	Username string
	Password string
	WPPath   string
	Verbose  bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		SiteURL:  os.Getenv("WP_INTEGRATION_URL"),
		Username: os.Getenv("WP_INTEGRATION_USERNAME"),
		Password: os.Getenv("WP_INTEGRATION_PASSWORD"),
		WPPath:   getWPPath(),
		Verbose:  os.Getenv("WP_INTEGRATION_VERBOSE") == "true",
	}
}

// getWPPath determines the path to the wp binary
func getWPPath() string {
	if path := os.Getenv("WP_BINARY_PATH"); path != "" {
		return path
	}

	// Try common locations
	candidates := []string{
		"../../wp",
		"./wp",
		"../wp",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "wp" // Fallback to PATH
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.SiteURL == "" || config.Username == "" || config.Password == "" {
		t.Skip("WP_INTEGRATION_URL, WP_INTEGRATION_USERNAME or WP_INTEGRATION_PASSWORD not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.WPPath); err != nil {
		t.Skipf("wp binary not found at %s, skipping integration test", config.WPPath)
	}
}

// CommandRunner runs wp commands against the configured site with an
// isolated config file.
type CommandRunner struct {
	config     *TestConfig
	configFile string
	t          *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config:     config,
		configFile: filepath.Join(t.TempDir(), "config.yml"),
		t:          t,
	}
}

// Run executes a wp command and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	return runner.RunWithInput("", args...)
}

// RunWithInput executes a wp command with stdin input
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	fullArgs := append([]string{"--config", runner.configFile}, args...)

	cmd := exec.Command(runner.config.WPPath, fullArgs...) // #nosec G204
	cmd.Env = append(os.Environ(),
		"WP_URL="+runner.config.SiteURL,
		"WP_USERNAME="+runner.config.Username,
		"WP_PASSWORD="+runner.config.Password,
	)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.Stdin = strings.NewReader(input)

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.WPPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunJSON executes a wp command with --output json and decodes the result.
func (runner *CommandRunner) RunJSON(target any, args ...string) error {
	stdout, stderr, err := runner.Run(append([]string{"--output", "json"}, args...)...)
	if err != nil {
		return fmt.Errorf("wp %s: %w: %s", strings.Join(args, " "), err, stderr)
	}

	return json.Unmarshal([]byte(stdout), target)
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// CleanupResource permanently deletes a test resource, ignoring failures.
func (runner *CommandRunner) CleanupResource(resourceType string, id int) {
	if id == 0 {
		return
	}

	stdout, stderr, err := runner.Run(resourceType, "delete", fmt.Sprint(id), "--force", "--yes")
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for %s %d: %s\nStderr: %s", resourceType, id, stdout, stderr)
	}
}

// AssertJSONOutput verifies command output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	if !json.Valid([]byte(strings.TrimSpace(output))) {
		t.Errorf("Output is not valid JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output looks like YAML
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	output = strings.TrimSpace(output)
	if strings.Contains(output, "---") || strings.Contains(output, ":") {
		return // Looks like YAML
	}

	t.Errorf("Output does not appear to be YAML: %s", output)
}
