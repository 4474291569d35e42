package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

// AddLiquidity deposits both assets of a market and mints LP units to the
// provider. Amounts are given in the caller's denom order.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, denomX, denomY string, amountX, amountY uint64, hookAccounts []string) (uint64, error) {
	if err := types.ValidatePair(denomX, denomY); err != nil {
		return 0, err
	}
	cfg, err := k.GetMarketByPair(ctx, denomX, denomY)
	if err != nil {
		return 0, err
	}
	amountA, amountB := canonicalAmounts(cfg, denomX, amountX, amountY)

	var minted uint64
	err = k.withMarketLock(ctx, cfg.Id, "add_liquidity", func(ctx sdk.Context) error {
		pool, found := k.GetPool(ctx, cfg.Id)
		if !found {
			return types.ErrPoolNotInitialized.Wrapf("market %d", cfg.Id)
		}
		// deposits are gated like swaps: a hooked leg runs its program, so the program must be whitelisted
		if err := k.authorizeAssets(ctx, cfg, cfg.AssetA, cfg.AssetB); err != nil {
			return err
		}

		next, lp, err := pool.ApplyAddLiquidity(amountA, amountB)
		if err != nil {
			return err
		}
		if err := k.depositLegs(ctx, cfg, provider, amountA, amountB, hookAccounts); err != nil {
			return err
		}
		if err := k.mintLP(ctx, cfg, provider, lp); err != nil {
			return err
		}
		if err := k.SetPool(ctx, next); err != nil {
			return err
		}

		if k.hooks != nil {
			if err := k.hooks.AfterLiquidityChanged(ctx, cfg.Id, provider.String(), amountA, amountB, true); err != nil {
				return err
			}
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeAddLiquidity,
				sdk.NewAttribute(types.AttributeKeyMarketID, strconv.FormatUint(cfg.Id, 10)),
				sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
				sdk.NewAttribute(types.AttributeKeyAmountA, strconv.FormatUint(amountA, 10)),
				sdk.NewAttribute(types.AttributeKeyAmountB, strconv.FormatUint(amountB, 10)),
				sdk.NewAttribute(types.AttributeKeyLpAmount, strconv.FormatUint(lp, 10)),
			),
		)
		minted = lp
		return nil
	})
	if err != nil {
		return 0, err
	}

	k.metrics.LiquidityAdded.WithLabelValues(strconv.FormatUint(cfg.Id, 10)).Add(float64(minted))
	k.Logger(ctx).Info("liquidity added", "market_id", cfg.Id, "provider", provider.String(), "lp_minted", minted)
	return minted, nil
}

// RemoveLiquidity burns lpAmount units and pays the provider its share of both
// reserves. Results and minimums are in the caller's denom order.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, denomX, denomY string, lpAmount, minX, minY uint64, hookAccounts []string) (uint64, uint64, error) {
	if err := types.ValidatePair(denomX, denomY); err != nil {
		return 0, 0, err
	}
	cfg, err := k.GetMarketByPair(ctx, denomX, denomY)
	if err != nil {
		return 0, 0, err
	}
	minA, minB := canonicalAmounts(cfg, denomX, minX, minY)

	var outA, outB uint64
	err = k.withMarketLock(ctx, cfg.Id, "remove_liquidity", func(ctx sdk.Context) error {
		pool, found := k.GetPool(ctx, cfg.Id)
		if !found {
			return types.ErrPoolNotInitialized.Wrapf("market %d", cfg.Id)
		}
		if err := k.authorizeAssets(ctx, cfg, cfg.AssetA, cfg.AssetB); err != nil {
			return err
		}

		held := k.bankKeeper.GetBalance(ctx, provider, cfg.LpDenom)
		if held.Amount.LT(math.NewIntFromUint64(lpAmount)) {
			return types.ErrInvalidAmount.Wrapf("provider holds %s, cannot burn %d", held, lpAmount)
		}

		next, a, b, err := pool.ApplyRemoveLiquidity(lpAmount, minA, minB)
		if err != nil {
			return err
		}
		if err := k.burnLP(ctx, cfg, provider, lpAmount); err != nil {
			return err
		}
		if err := k.withdrawLegs(ctx, cfg, provider, a, b, hookAccounts); err != nil {
			return err
		}
		if err := k.SetPool(ctx, next); err != nil {
			return err
		}

		if k.hooks != nil {
			if err := k.hooks.AfterLiquidityChanged(ctx, cfg.Id, provider.String(), a, b, false); err != nil {
				return err
			}
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeRemoveLiquidity,
				sdk.NewAttribute(types.AttributeKeyMarketID, strconv.FormatUint(cfg.Id, 10)),
				sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
				sdk.NewAttribute(types.AttributeKeyAmountA, strconv.FormatUint(a, 10)),
				sdk.NewAttribute(types.AttributeKeyAmountB, strconv.FormatUint(b, 10)),
				sdk.NewAttribute(types.AttributeKeyLpAmount, strconv.FormatUint(lpAmount, 10)),
			),
		)
		outA, outB = a, b
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	k.metrics.LiquidityRemoved.WithLabelValues(strconv.FormatUint(cfg.Id, 10)).Add(float64(lpAmount))
	k.Logger(ctx).Info("liquidity removed", "market_id", cfg.Id, "provider", provider.String(), "lp_burned", lpAmount)

	outX, outY := canonicalAmounts(cfg, denomX, outA, outB)
	return outX, outY, nil
}
