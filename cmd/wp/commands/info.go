package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fivetwenty-io/wpclient/pkg/wp"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewInfoCommand creates the info command
func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display site information",
		Long:  "Display information about the WordPress site from the REST API index",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			info, err := client.GetSiteInfo(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("failed to get site info: %w", err)
			}

			return renderOutput(cmd, info, func(w io.Writer) error {
				return renderSiteInfo(w, info)
			})
		},
	}
}

func renderSiteInfo(w io.Writer, info *wp.SiteInfo) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	_ = table.Append("Name", orNA(info.Name))
	_ = table.Append("Description", orNA(info.Description))
	_ = table.Append("URL", orNA(info.URL))
	_ = table.Append("Home", orNA(info.Home))
	_ = table.Append("Timezone", orNA(info.TimezoneString))

	if info.GMTOffset != nil {
		_ = table.Append("GMT Offset", fmt.Sprintf("%v", info.GMTOffset))
	}

	if len(info.Namespaces) > 0 {
		_ = table.Append("Namespaces", strings.Join(info.Namespaces, "\n"))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
