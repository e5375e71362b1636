package seq

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"benchkit/cmd/benchkit/cmd/types"
	"benchkit/internal/app/client"
)

var basesOnly bool

var GetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch one sequence by id",
	Long: `Fetches a sequence with its annotations and primers. Annotation
end positions use the real sequence length, never the server's
end-of-molecule sentinel.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("client not initialized")
		}

		s, err := app.Sequences.Find(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("fetch sequence: %w", err)
		}

		if basesOnly {
			fmt.Println(s.Bases)
			return nil
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	},
}

func init() {
	GetCmd.Flags().BoolVar(&basesOnly, "bases", false, "print only the bases")
}
