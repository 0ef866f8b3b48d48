package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/wpclient/internal/constants"
	"github.com/fivetwenty-io/wpclient/pkg/wp"
	"github.com/jmespath/go-jmespath"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// PrintError writes the message of a failed command. Classified API errors
// print their message only.
func PrintError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "%s Error: %s\n", constants.CrossMarkSymbol, errorMessage(err))
}

func errorMessage(err error) string {
	if apiErr, ok := wp.AsError(err); ok {
		return apiErr.Message
	}

	return err.Error()
}

// outputFormat returns the selected output format. A --query with table
// output switches to JSON.
func outputFormat() (string, error) {
	format := strings.ToLower(viper.GetString("output"))
	if format == "" {
		format = constants.FormatTable
	}

	switch format {
	case constants.FormatTable:
		if viper.GetString("query") != "" {
			return constants.FormatJSON, nil
		}

		return format, nil
	case constants.FormatJSON, constants.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %s", constants.ErrInvalidOutputFormat, format)
	}
}

// renderOutput writes data in the selected format, calling table for the
// table format.
func renderOutput(cmd *cobra.Command, data any, table func(w io.Writer) error) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	switch format {
	case constants.FormatJSON:
		return StandardJSONRenderer(w, data)
	case constants.FormatYAML:
		return StandardYAMLRenderer(w, data)
	default:
		return table(w)
	}
}

// StandardJSONRenderer writes indented JSON after applying --query.
func StandardJSONRenderer(w io.Writer, data any) error {
	data, err := applyQuery(data)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err = encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes YAML after applying --query.
func StandardYAMLRenderer(w io.Writer, data any) error {
	data, err := applyQuery(data)
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(constants.JSONIndentSize)

	err = encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

// applyQuery evaluates the --query JMESPath expression against the JSON form
// of data. Without a query data is returned unchanged.
func applyQuery(data any) (any, error) {
	expression := viper.GetString("query")
	if expression == "" {
		return data, nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encoding data for query: %w", err)
	}

	var generic any

	err = json.Unmarshal(raw, &generic)
	if err != nil {
		return nil, fmt.Errorf("decoding data for query: %w", err)
	}

	jp, err := jmespath.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid JMESPath expression '%s': %w", expression, err)
	}

	result, err := jp.Search(generic)
	if err != nil {
		return nil, fmt.Errorf("failed to apply query: %w", err)
	}

	return result, nil
}

// parseID parses a positive resource ID argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", constants.ErrInvalidID, arg)
	}

	return id, nil
}

// parseIDList parses a comma-separated list of IDs such as "3,4,5".
func parseIDList(value string) ([]int, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	parts := strings.Split(value, ",")
	ids := make([]int, 0, len(parts))

	for _, part := range parts {
		id, err := parseID(part)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// confirm asks a yes/no question on the command's input. Anything but y or
// yes is a no.
func confirm(cmd *cobra.Command, prompt string) bool {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (y/N): ", prompt)

	response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	response = strings.ToLower(strings.TrimSpace(response))

	return response == "y" || response == constants.ConfirmationYes
}

// stringFlag returns a pointer to the flag value when the flag was set.
func stringFlag(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	return &value
}

func intFlag(cmd *cobra.Command, name string, value int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	return &value
}

func orNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func formatTime(t wp.Time) string {
	if t.IsZero() {
		return constants.NotAvailable
	}

	return t.String()
}
