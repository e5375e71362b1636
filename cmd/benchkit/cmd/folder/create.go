package folder

import (
	"fmt"

	"github.com/spf13/cobra"

	"benchkit/cmd/benchkit/cmd/types"
	"benchkit/internal/app/client"
	"benchkit/internal/domain/folder"
)

var (
	createDescription string
	createType        string
)

var CreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("client not initialized")
		}

		// The server requires an owner; default to the key's entity.
		me, err := app.Entities.Me(cmd.Context())
		if err != nil {
			return fmt.Errorf("resolve owner: %w", err)
		}

		opts := folder.CreateOptions{
			Name:        args[0],
			Description: createDescription,
			Owner:       me.ID,
			Type:        createType,
		}
		if _, err := app.Folders.Create(cmd.Context(), opts); err != nil {
			return fmt.Errorf("create folder: %w", err)
		}

		fmt.Printf("folder %q created\n", args[0])
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVar(&createDescription, "description", "", "folder description")
	CreateCmd.Flags().StringVar(&createType, "type", folder.TypeInventory, "folder type (INVENTORY, NOTEBOOK, ALL)")
}
