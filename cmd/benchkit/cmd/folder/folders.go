package folder

import "github.com/spf13/cobra"

var FolderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Folder operations",
}

func init() {
	FolderCmd.AddCommand(ListCmd)
	FolderCmd.AddCommand(GetCmd)
	FolderCmd.AddCommand(CreateCmd)
	FolderCmd.AddCommand(DeleteCmd)
}
