package align

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"benchkit/cmd/benchkit/cmd/types"
	"benchkit/internal/app/client"
)

var GetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch a finished alignment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("client not initialized")
		}

		resp, err := app.Alignments.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("fetch alignment: %w", err)
		}

		_, err = os.Stdout.Write(append(resp, '\n'))
		return err
	},
}
