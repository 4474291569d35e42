package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
)

type quoteOutput struct {
	MarketId  uint64 `json:"market_id"`
	DenomIn   string `json:"denom_in"`
	DenomOut  string `json:"denom_out"`
	AmountIn  uint64 `json:"amount_in"`
	AmountOut uint64 `json:"amount_out"`
}

func quoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote [denom-in] [denom-out] [amount]",
		Short: "Price a swap against the genesis reserves",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amountIn, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return err
			}
			host, _, err := bootHost(cmd)
			if err != nil {
				return err
			}

			cfg, err := host.Keeper.GetMarketByPair(host.Ctx, args[0], args[1])
			if err != nil {
				return err
			}
			out, err := host.Keeper.Quote(host.Ctx, args[0], args[1], amountIn)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), quoteOutput{
				MarketId:  cfg.Id,
				DenomIn:   args[0],
				DenomOut:  args[1],
				AmountIn:  amountIn,
				AmountOut: out,
			})
		},
	}
	cmd.Flags().String(flagGenesis, "", "genesis file to boot from")
	return cmd
}
