package folder

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"benchkit/cmd/benchkit/cmd/types"
	"benchkit/internal/app/client"
)

var listJSON bool

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all folders",
	Long: `Lists every folder the API key can see. The listing refreshes
the local folder and sequence caches in one pass.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("client not initialized")
		}

		folders, err := app.Folders.All(cmd.Context(), url.Values{})
		if err != nil {
			return fmt.Errorf("list folders: %w", err)
		}

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(folders)
		}

		if len(folders) == 0 {
			fmt.Println("no folders found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tSEQUENCES")
		for _, f := range folders {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", f.ID, f.Name, f.Type, len(f.Sequences))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		color.New(color.FgGreen).Fprintf(os.Stdout, "%d folders\n", len(folders))
		return nil
	},
}

func init() {
	ListCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
}
