package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"benchkit/cmd/benchkit/cmd/types"
	"benchkit/internal/app/client"
	"benchkit/internal/domain/search"
)

var (
	searchType   string
	searchLimit  int
	searchOffset int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Server-side search",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("client not initialized")
		}

		q := search.NewQuery(args[0])
		q.Type = searchType
		q.Limit = searchLimit
		q.Offset = searchOffset

		resp, err := app.Search.Search(cmd.Context(), q)
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}

		_, err = os.Stdout.Write(append(resp, '\n'))
		return err
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchType, "type", "text", "query type")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "result limit")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "result offset")
}
