package auth

import "github.com/spf13/cobra"

var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "API key management",
}

func init() {
	AuthCmd.AddCommand(LoginCmd)
	AuthCmd.AddCommand(WhoamiCmd)
}
