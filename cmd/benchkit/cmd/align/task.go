package align

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"benchkit/cmd/benchkit/cmd/types"
	"benchkit/internal/app/client"
)

var TaskCmd = &cobra.Command{
	Use:   "task <id>",
	Short: "Poll an alignment task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("client not initialized")
		}

		resp, err := app.Alignments.Task(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("fetch task: %w", err)
		}

		_, err = os.Stdout.Write(append(resp, '\n'))
		return err
	},
}
