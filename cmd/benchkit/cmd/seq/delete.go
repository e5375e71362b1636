package seq

import (
	"fmt"

	"github.com/spf13/cobra"

	"benchkit/cmd/benchkit/cmd/types"
	"benchkit/internal/app/client"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a sequence by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("client not initialized")
		}

		if _, err := app.Sequences.DeleteID(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete sequence: %w", err)
		}

		fmt.Printf("sequence %s deleted\n", args[0])
		return nil
	},
}
