package seq

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"benchkit/cmd/benchkit/cmd/types"
	"benchkit/internal/app/client"
	"benchkit/internal/domain/sequence"
)

var (
	createBases     string
	createBasesFile string
	createFolder    string
	createCircular  bool
	createDesc      string
	createOverwrite bool
)

var CreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a sequence in a folder",
	Long: `Creates a sequence from bases given inline or from a file. With
--overwrite, sequences of the same name in the target folder are deleted
first, so the name stays unique within the folder.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("client not initialized")
		}

		bases := createBases
		if createBasesFile != "" {
			data, err := os.ReadFile(createBasesFile)
			if err != nil {
				return fmt.Errorf("read bases file: %w", err)
			}
			bases = strings.TrimSpace(string(data))
		}

		opts := sequence.CreateOptions{
			Name:        args[0],
			Bases:       bases,
			Circular:    createCircular,
			Folder:      createFolder,
			Description: createDesc,
		}

		created, err := app.Sequences.Create(cmd.Context(), opts, createOverwrite)
		if err != nil {
			return fmt.Errorf("create sequence: %w", err)
		}

		fmt.Printf("sequence %q created with id %s\n", created.Name, created.ID)
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVar(&createBases, "bases", "", "sequence bases")
	CreateCmd.Flags().StringVar(&createBasesFile, "bases-file", "", "file containing the bases")
	CreateCmd.Flags().StringVar(&createFolder, "folder", "", "target folder id (required)")
	CreateCmd.Flags().BoolVar(&createCircular, "circular", false, "circular topology")
	CreateCmd.Flags().StringVar(&createDesc, "description", "", "sequence description")
	CreateCmd.Flags().BoolVar(&createOverwrite, "overwrite", false, "delete same-name sequences in the folder first")
	_ = CreateCmd.MarkFlagRequired("folder")
}
