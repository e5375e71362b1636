package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	alignCmd "benchkit/cmd/benchkit/cmd/align"
	authCmd "benchkit/cmd/benchkit/cmd/auth"
	folderCmd "benchkit/cmd/benchkit/cmd/folder"
	seqCmd "benchkit/cmd/benchkit/cmd/seq"
	"benchkit/cmd/benchkit/cmd/types"
	"benchkit/internal/app/client"
	"benchkit/internal/app/client/config"
	"benchkit/internal/utils/logger"
)

var (
	cfg     *config.Config
	log     *slog.Logger
	baseURL string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "benchkit",
	Short: "benchkit - client for the Benchling v1 API",
	Long: `benchkit talks to the Benchling REST API: folders, sequences,
annotations, alignments and search.

The client keeps an in-memory registry of folders and sequences that is
refreshed wholesale on listing operations, so filtered lookups work
without extra round trips.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if debug {
		cfg.Env = config.EnvLocal
	}

	log = logger.New(cfg.Env)

	// `auth login` must run without a key in place.
	if cmd.Name() == "login" {
		cmd.SetContext(context.WithValue(cmd.Context(), types.ClientCfgKey, cfg))
		return nil
	}

	app, err := client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("init client: %w", err)
	}

	ctx := context.WithValue(cmd.Context(), types.ClientAppKey, app)
	ctx = context.WithValue(ctx, types.ClientCfgKey, cfg)
	cmd.SetContext(ctx)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL override")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(authCmd.AuthCmd)
	rootCmd.AddCommand(folderCmd.FolderCmd)
	rootCmd.AddCommand(seqCmd.SeqCmd)
	rootCmd.AddCommand(alignCmd.AlignCmd)
	rootCmd.AddCommand(searchCmd)
}
