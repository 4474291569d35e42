package cmd

import (
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/spf13/cobra"

	"github.com/TanmayDhobale/token22AMM/app"
	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

type swapOutput struct {
	Trader    string     `json:"trader"`
	AmountIn  uint64     `json:"amount_in"`
	AmountOut uint64     `json:"amount_out"`
	Pool      types.Pool `json:"pool"`
	HookCalls []HookCall `json:"hook_calls"`
}

func swapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [denom-in] [denom-out] [amount]",
		Short: "Run a full swap from a funded simulated trader",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			denomIn, denomOut := args[0], args[1]
			amountIn, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return err
			}
			host, cfg, err := bootHost(cmd)
			if err != nil {
				return err
			}

			trader := traderAddress(cfg.Trader)
			if err := app.FundAccount(host.Ctx, host.Bank, trader, sdk.NewCoins(sdk.NewCoin(denomIn, math.NewIntFromUint64(amountIn)))); err != nil {
				return err
			}

			out, err := host.Keeper.Swap(host.Ctx, trader, denomIn, denomOut, amountIn, cfg.MinOut, cfg.HookAccounts)
			if err != nil {
				return err
			}

			market, err := host.Keeper.GetMarketByPair(host.Ctx, denomIn, denomOut)
			if err != nil {
				return err
			}
			pool, _ := host.Keeper.GetPool(host.Ctx, market.Id)
			return printJSON(cmd.OutOrStdout(), swapOutput{
				Trader:    trader.String(),
				AmountIn:  amountIn,
				AmountOut: out,
				Pool:      pool,
				HookCalls: host.HookCalls(),
			})
		},
	}
	cmd.Flags().String(flagGenesis, "", "genesis file to boot from")
	cmd.Flags().Uint64(flagMinOut, 0, "minimum acceptable output")
	cmd.Flags().String(flagTrader, "ammsim-trader", "trader bech32 address or a name to derive one from")
	cmd.Flags().StringSlice(flagHookAccounts, nil, "extra accounts forwarded to transfer hooks (comma-separated)")
	return cmd
}

// traderAddress accepts a bech32 address or derives one from a name.
func traderAddress(s string) sdk.AccAddress {
	if addr, err := sdk.AccAddressFromBech32(s); err == nil {
		return addr
	}
	return authtypes.NewModuleAddress(s)
}
