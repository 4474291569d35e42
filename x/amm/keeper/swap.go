package keeper

import (
	"context"
	"strconv"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

// Swap exchanges amountIn of denomIn for denomOut in the market of the pair.
//
// The protocol runs in this order inside one atomic scope with the market
// locked: authorize the hook program of each asset, price the swap against
// the current reserves, move amountIn from the trader to the vault, move the
// output from the vault to the trader, then commit the new reserves. Any
// failure discards every effect, including coins moved by an earlier leg.
func (k Keeper) Swap(ctx context.Context, trader sdk.AccAddress, denomIn, denomOut string, amountIn, minAmountOut uint64, hookAccounts []string) (uint64, error) {
	start := time.Now()
	defer func() {
		k.metrics.SwapLatency.Observe(time.Since(start).Seconds())
	}()

	if amountIn == 0 {
		return 0, types.ErrInvalidAmount.Wrap("swap amount must be positive")
	}
	if err := types.ValidatePair(denomIn, denomOut); err != nil {
		return 0, err
	}

	cfg, err := k.GetMarketByPair(ctx, denomIn, denomOut)
	if err != nil {
		return 0, err
	}
	marketLabel := strconv.FormatUint(cfg.Id, 10)

	var amountOut uint64
	err = k.withMarketLock(ctx, cfg.Id, "swap", func(ctx sdk.Context) error {
		pool, found := k.GetPool(ctx, cfg.Id)
		if !found {
			return types.ErrPoolNotInitialized.Wrapf("market %d", cfg.Id)
		}

		if err := k.authorizeAssets(ctx, cfg, denomIn, denomOut); err != nil {
			return err
		}

		next, out, err := pool.ApplySwap(cfg, denomIn, amountIn, minAmountOut)
		if err != nil {
			return err
		}

		vault := sdk.MustAccAddressFromBech32(cfg.Vault)
		if err := k.transfer(ctx, transferRequest{
			market:       cfg,
			leg:          legIn,
			denom:        denomIn,
			from:         trader,
			to:           vault,
			authority:    trader,
			amount:       amountIn,
			hookAccounts: hookAccounts,
		}); err != nil {
			return err
		}
		if err := k.transfer(ctx, transferRequest{
			market:       cfg,
			leg:          legOut,
			denom:        denomOut,
			from:         vault,
			to:           trader,
			authority:    vault,
			amount:       out,
			hookAccounts: hookAccounts,
		}); err != nil {
			return err
		}

		if err := k.SetPool(ctx, next); err != nil {
			return err
		}

		if k.hooks != nil {
			if err := k.hooks.AfterSwap(ctx, cfg.Id, trader.String(), denomIn, denomOut, amountIn, out); err != nil {
				return err
			}
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeSwap,
				sdk.NewAttribute(types.AttributeKeyMarketID, marketLabel),
				sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
				sdk.NewAttribute(types.AttributeKeyDenomIn, denomIn),
				sdk.NewAttribute(types.AttributeKeyDenomOut, denomOut),
				sdk.NewAttribute(types.AttributeKeyAmountIn, strconv.FormatUint(amountIn, 10)),
				sdk.NewAttribute(types.AttributeKeyAmountOut, strconv.FormatUint(out, 10)),
			),
		)
		amountOut = out
		return nil
	})
	if err != nil {
		k.metrics.SwapsTotal.WithLabelValues(marketLabel, denomIn, denomOut, "failed").Inc()
		return 0, err
	}

	k.metrics.SwapsTotal.WithLabelValues(marketLabel, denomIn, denomOut, "success").Inc()
	k.metrics.SwapVolume.WithLabelValues(marketLabel, denomIn).Add(float64(amountIn))
	k.Logger(ctx).Info("swap executed", "market_id", cfg.Id, "trader", trader.String(), "denom_in", denomIn, "amount_in", amountIn, "amount_out", amountOut)
	return amountOut, nil
}

// Quote returns the output a swap would produce against the current reserves.
// It moves no funds and checks no hooks.
func (k Keeper) Quote(ctx context.Context, denomIn, denomOut string, amountIn uint64) (uint64, error) {
	if err := types.ValidatePair(denomIn, denomOut); err != nil {
		return 0, err
	}
	cfg, err := k.GetMarketByPair(ctx, denomIn, denomOut)
	if err != nil {
		return 0, err
	}
	pool, found := k.GetPool(ctx, cfg.Id)
	if !found {
		return 0, types.ErrPoolNotInitialized.Wrapf("market %d", cfg.Id)
	}
	return pool.QuoteSwap(cfg, denomIn, amountIn)
}
