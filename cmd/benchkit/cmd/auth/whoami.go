package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"benchkit/cmd/benchkit/cmd/types"
	"benchkit/internal/app/client"
)

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the entity owning the API key",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("client not initialized")
		}

		me, err := app.Entities.Me(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch identity: %w", err)
		}

		fmt.Printf("%s\t%s\n", me.ID, me.Name)
		return nil
	},
}
