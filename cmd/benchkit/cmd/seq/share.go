package seq

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"benchkit/cmd/benchkit/cmd/types"
	"benchkit/internal/app/client"
)

var ShareCmd = &cobra.Command{
	Use:   "share <link>",
	Short: "Resolve a share link to its sequence",
	Long: `Resolves a https://benchling.com/s/... share link to the full
sequence record by scraping the page for the sequence id, falling back
to the edit-URL path pattern.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("client not initialized")
		}

		s, err := app.SequenceFromShareLink(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("resolve share link: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	},
}
