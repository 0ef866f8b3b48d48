package commands

import (
	"fmt"
	"io"

	"github.com/fivetwenty-io/wpclient/internal/constants"
	"github.com/fivetwenty-io/wpclient/pkg/wp"
	"github.com/spf13/cobra"
)

// deleteFunc deletes one resource and returns the server payload.
type deleteFunc func(cmd *cobra.Command, client wp.Client, id int, force bool) (map[string]any, error)

// newDeleteCommand builds the delete subcommand shared by every resource group.
func newDeleteCommand(noun string, del deleteFunc) *cobra.Command {
	var (
		force bool
		yes   bool
	)

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a " + noun,
		Long:  "Delete a " + noun + ". Without --force posts are moved to the trash; terms and attachments require --force.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !yes && !confirm(cmd, fmt.Sprintf("Are you sure you want to delete %s %d?", noun, id)) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled.")

				return nil
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			payload, err := del(cmd, client, id, force)
			if err != nil {
				return fmt.Errorf("failed to delete %s: %w", noun, err)
			}

			return renderOutput(cmd, payload, func(w io.Writer) error {
				_, _ = fmt.Fprintf(w, "%s Deleted %s %d\n", constants.CheckMarkSymbol, noun, id)

				if !force {
					_, _ = io.WriteString(w, "  (Moved to trash)\n")
				}

				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "permanently delete, skipping the trash")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}
