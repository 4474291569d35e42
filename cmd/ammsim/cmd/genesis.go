package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func validateGenesisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-genesis [file]",
		Short: "Validate an amm genesis file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gs, err := ReadGenesis(args[0])
			if err != nil {
				return err
			}

			pools := 0
			for _, m := range gs.Markets {
				if m.Pool != nil {
					pools++
				}
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "genesis valid: %d markets, %d pools, %d assets\n",
				len(gs.Markets), pools, len(gs.Assets))
			return err
		},
	}
}
