package auth

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"benchkit/cmd/benchkit/cmd/types"
	"benchkit/internal/app/client/config"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the API key for later commands",
	Long: `Prompts for the Benchling API key and saves it under the config
directory. The key is sent as the basic-auth username on every request.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, ok := cmd.Context().Value(types.ClientCfgKey).(*config.Config)
		if !ok || cfg == nil {
			return fmt.Errorf("configuration not initialized")
		}

		fmt.Print("API key: ")
		key, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("read api key: %w", err)
		}
		if len(key) == 0 {
			return fmt.Errorf("empty api key")
		}

		if err := cfg.SaveKey(string(key)); err != nil {
			return err
		}

		fmt.Printf("API key saved to %s\n", cfg.KeyPath())
		return nil
	},
}
