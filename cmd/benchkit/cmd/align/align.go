package align

import "github.com/spf13/cobra"

var AlignCmd = &cobra.Command{
	Use:   "align",
	Short: "Alignment job operations",
}

func init() {
	AlignCmd.AddCommand(SubmitCmd)
	AlignCmd.AddCommand(TaskCmd)
	AlignCmd.AddCommand(GetCmd)
}
