package align

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"benchkit/cmd/benchkit/cmd/types"
	"benchkit/internal/app/client"
	"benchkit/internal/domain/alignment"
)

var (
	submitAlgorithm string
	submitFiles     []string
	submitSeqIDs    []string
)

var SubmitCmd = &cobra.Command{
	Use:   "submit <target-seq-id>",
	Short: "Submit an alignment job",
	Long: `Submits an external alignment job for the target sequence.
Queries come from --seq (existing sequence ids) and --file (local
fasta/ab1 files, uploaded base64-encoded). The target is always the
first file of the job.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("client not initialized")
		}

		var opts alignment.Options
		switch strings.ToLower(submitAlgorithm) {
		case "mafft":
			opts = alignment.DefaultMafft()
		case "clustalo":
			opts = alignment.DefaultClustalo()
		default:
			return fmt.Errorf("unknown algorithm %q (want mafft or clustalo)", submitAlgorithm)
		}

		var queries []alignment.File
		for _, id := range submitSeqIDs {
			queries = append(queries, alignment.FileFromSequence(id))
		}
		for _, path := range submitFiles {
			f, err := alignment.FileFromPath(path)
			if err != nil {
				return err
			}
			queries = append(queries, f)
		}
		if len(queries) == 0 {
			return fmt.Errorf("no queries supplied, use --seq or --file")
		}

		resp, err := app.Alignments.Submit(cmd.Context(), args[0], queries, opts)
		if err != nil {
			return fmt.Errorf("submit alignment: %w", err)
		}

		_, err = os.Stdout.Write(append(resp, '\n'))
		return err
	},
}

func init() {
	SubmitCmd.Flags().StringVar(&submitAlgorithm, "algorithm", "mafft", "alignment algorithm (mafft, clustalo)")
	SubmitCmd.Flags().StringSliceVar(&submitSeqIDs, "seq", nil, "query sequence ids")
	SubmitCmd.Flags().StringSliceVar(&submitFiles, "file", nil, "query files to upload")
}
