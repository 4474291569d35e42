package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the ammsim command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ammsim",
		Short:        "Offline simulator for hook-aware constant-product markets",
		SilenceUsage: true,
	}

	root.PersistentFlags().String(flagConfig, "", "config file path")
	root.PersistentFlags().String(flagLogLevel, "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().Bool(flagLogJSON, false, "emit logs as JSON")

	root.AddCommand(
		validateGenesisCmd(),
		quoteCmd(),
		swapCmd(),
	)
	return root
}

// loadCommandConfig merges the command's local and inherited flags.
func loadCommandConfig(cmd *cobra.Command) (Config, error) {
	cfgFile, _ := cmd.Flags().GetString(flagConfig)
	return LoadConfig(cfgFile, cmd.Flags())
}

func bootHost(cmd *cobra.Command) (*Host, Config, error) {
	cfg, err := loadCommandConfig(cmd)
	if err != nil {
		return nil, cfg, err
	}
	if cfg.Genesis == "" {
		return nil, cfg, fmt.Errorf("--%s is required", flagGenesis)
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, cfg, err
	}
	gs, err := ReadGenesis(cfg.Genesis)
	if err != nil {
		return nil, cfg, err
	}
	host, err := NewHost(logger, gs)
	if err != nil {
		return nil, cfg, err
	}
	return host, cfg, nil
}

func printJSON(w io.Writer, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(bz))
	return err
}
