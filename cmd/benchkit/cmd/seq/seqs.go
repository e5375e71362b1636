package seq

import "github.com/spf13/cobra"

var SeqCmd = &cobra.Command{
	Use:   "seq",
	Short: "Sequence operations",
}

func init() {
	SeqCmd.AddCommand(GetCmd)
	SeqCmd.AddCommand(CreateCmd)
	SeqCmd.AddCommand(DeleteCmd)
	SeqCmd.AddCommand(ShareCmd)
}
