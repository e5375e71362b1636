package folder

import (
	"fmt"

	"github.com/spf13/cobra"

	"benchkit/cmd/benchkit/cmd/types"
	"benchkit/internal/app/client"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a folder by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("client not initialized")
		}

		if _, err := app.Folders.DeleteID(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete folder: %w", err)
		}

		fmt.Printf("folder %s deleted\n", args[0])
		return nil
	},
}
