package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

// GetPool returns the pool ledger of a market.
func (k Keeper) GetPool(ctx context.Context, marketID uint64) (types.Pool, bool) {
	var pool types.Pool
	found, err := k.getJSON(ctx, types.PoolKey(marketID), &pool)
	if err != nil {
		panic(err)
	}
	return pool, found
}

// SetPool stores a pool ledger.
func (k Keeper) SetPool(ctx context.Context, pool types.Pool) error {
	if err := pool.Validate(); err != nil {
		return err
	}
	id := strconv.FormatUint(pool.MarketId, 10)
	k.metrics.PoolReserves.WithLabelValues(id, pool.AssetA).Set(float64(pool.ReserveA))
	k.metrics.PoolReserves.WithLabelValues(id, pool.AssetB).Set(float64(pool.ReserveB))
	k.metrics.LPSupply.WithLabelValues(id).Set(float64(pool.LpSupply))
	return k.setJSON(ctx, types.PoolKey(pool.MarketId), pool)
}

// GetAllPools returns every initialized pool.
func (k Keeper) GetAllPools(ctx context.Context) ([]types.Pool, error) {
	pools := []types.Pool{}
	err := iterateJSON(k.getStore(ctx), types.PoolKeyPrefix, func(p types.Pool) bool {
		pools = append(pools, p)
		return false
	})
	return pools, err
}

// CreatePool seeds the pool of an existing market with its first deposit and
// mints LP units equal to the asset A deposit to the creator.
func (k Keeper) CreatePool(ctx context.Context, creator sdk.AccAddress, denomX, denomY string, amountX, amountY uint64, hookAccounts []string) (types.Pool, uint64, error) {
	cfg, err := k.GetMarketByPair(ctx, denomX, denomY)
	if err != nil {
		return types.Pool{}, 0, err
	}
	amountA, amountB := canonicalAmounts(cfg, denomX, amountX, amountY)

	var pool types.Pool
	err = k.withMarketLock(ctx, cfg.Id, "create_pool", func(ctx sdk.Context) error {
		if _, exists := k.GetPool(ctx, cfg.Id); exists {
			return types.ErrPoolAlreadyInitialized.Wrapf("market %d", cfg.Id)
		}
		if err := k.authorizeAssets(ctx, cfg, cfg.AssetA, cfg.AssetB); err != nil {
			return err
		}

		pool, err = types.NewPool(cfg, amountA, amountB)
		if err != nil {
			return err
		}
		if err := k.depositLegs(ctx, cfg, creator, amountA, amountB, hookAccounts); err != nil {
			return err
		}
		if err := k.mintLP(ctx, cfg, creator, pool.LpSupply); err != nil {
			return err
		}
		if err := k.SetPool(ctx, pool); err != nil {
			return err
		}

		if k.hooks != nil {
			if err := k.hooks.AfterPoolCreated(ctx, cfg.Id, creator.String(), pool); err != nil {
				return err
			}
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypePoolCreated,
				sdk.NewAttribute(types.AttributeKeyMarketID, strconv.FormatUint(cfg.Id, 10)),
				sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
				sdk.NewAttribute(types.AttributeKeyReserveA, strconv.FormatUint(pool.ReserveA, 10)),
				sdk.NewAttribute(types.AttributeKeyReserveB, strconv.FormatUint(pool.ReserveB, 10)),
				sdk.NewAttribute(types.AttributeKeyLpAmount, strconv.FormatUint(pool.LpSupply, 10)),
			),
		)
		return nil
	})
	if err != nil {
		return types.Pool{}, 0, err
	}

	k.metrics.PoolsCreated.Inc()
	k.Logger(ctx).Info("pool created", "market_id", cfg.Id, "creator", creator.String(), "reserve_a", pool.ReserveA, "reserve_b", pool.ReserveB)
	return pool, pool.LpSupply, nil
}

// canonicalAmounts reorders amounts given for (denomX, denomY) into (A, B).
func canonicalAmounts(cfg types.PoolConfig, denomX string, amountX, amountY uint64) (uint64, uint64) {
	if denomX == cfg.AssetA {
		return amountX, amountY
	}
	return amountY, amountX
}

// depositLegs moves both assets from provider into the market vault.
func (k Keeper) depositLegs(ctx sdk.Context, cfg types.PoolConfig, provider sdk.AccAddress, amountA, amountB uint64, hookAccounts []string) error {
	vault := sdk.MustAccAddressFromBech32(cfg.Vault)
	for _, leg := range []struct {
		denom  string
		amount uint64
	}{{cfg.AssetA, amountA}, {cfg.AssetB, amountB}} {
		if err := k.transfer(ctx, transferRequest{
			market:       cfg,
			leg:          legIn,
			denom:        leg.denom,
			from:         provider,
			to:           vault,
			authority:    provider,
			amount:       leg.amount,
			hookAccounts: hookAccounts,
		}); err != nil {
			return err
		}
	}
	return nil
}

// withdrawLegs pays both assets from the market vault to recipient.
func (k Keeper) withdrawLegs(ctx sdk.Context, cfg types.PoolConfig, recipient sdk.AccAddress, amountA, amountB uint64, hookAccounts []string) error {
	vault := sdk.MustAccAddressFromBech32(cfg.Vault)
	for _, leg := range []struct {
		denom  string
		amount uint64
	}{{cfg.AssetA, amountA}, {cfg.AssetB, amountB}} {
		if err := k.transfer(ctx, transferRequest{
			market:       cfg,
			leg:          legOut,
			denom:        leg.denom,
			from:         vault,
			to:           recipient,
			authority:    vault,
			amount:       leg.amount,
			hookAccounts: hookAccounts,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (k Keeper) mintLP(ctx sdk.Context, cfg types.PoolConfig, recipient sdk.AccAddress, amount uint64) error {
	coins := sdk.NewCoins(sdk.NewCoin(cfg.LpDenom, math.NewIntFromUint64(amount)))
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, coins); err != nil {
		return err
	}
	return k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, coins)
}

func (k Keeper) burnLP(ctx sdk.Context, cfg types.PoolConfig, holder sdk.AccAddress, amount uint64) error {
	coins := sdk.NewCoins(sdk.NewCoin(cfg.LpDenom, math.NewIntFromUint64(amount)))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, holder, types.ModuleName, coins); err != nil {
		return err
	}
	return k.bankKeeper.BurnCoins(ctx, types.ModuleName, coins)
}
