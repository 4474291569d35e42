package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

// RegisterInvariants registers all AMM invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "positive-reserves", PositiveReservesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "canonical-ordering", CanonicalOrderingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "vault-balance", VaultBalanceInvariant(k))
	ir.RegisterRoute(types.ModuleName, "lp-supply", LPSupplyInvariant(k))
}

// AllInvariants runs all invariants of the AMM module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, inv := range []sdk.Invariant{
			PositiveReservesInvariant(k),
			CanonicalOrderingInvariant(k),
			VaultBalanceInvariant(k),
			LPSupplyInvariant(k),
		} {
			if res, stop := inv(ctx); stop {
				return res, stop
			}
		}
		return "", false
	}
}

// poolCheck runs check against every pool and formats the violations.
func poolCheck(k Keeper, route string, check func(ctx sdk.Context, cfg types.PoolConfig, pool types.Pool) string) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, route, err.Error()), true
		}
		for _, pool := range pools {
			cfg, err := k.GetMarket(ctx, pool.MarketId)
			if err != nil {
				count++
				msg += fmt.Sprintf("\tpool %d has no market: %s\n", pool.MarketId, err)
				continue
			}
			if violation := check(ctx, cfg, pool); violation != "" {
				count++
				msg += fmt.Sprintf("\tpool %d: %s\n", pool.MarketId, violation)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(types.ModuleName, route,
			fmt.Sprintf("found %d violations\n%s", count, msg)), broken
	}
}

// PositiveReservesInvariant checks that a pool with LP supply never holds an empty reserve
func PositiveReservesInvariant(k Keeper) sdk.Invariant {
	return poolCheck(k, "positive-reserves", func(_ sdk.Context, _ types.PoolConfig, pool types.Pool) string {
		if pool.LpSupply > 0 && (pool.ReserveA == 0 || pool.ReserveB == 0) {
			return fmt.Sprintf("lp supply %d with reserves %d/%d", pool.LpSupply, pool.ReserveA, pool.ReserveB)
		}
		return ""
	})
}

// CanonicalOrderingInvariant checks that asset A sorts before asset B and matches the market config
func CanonicalOrderingInvariant(k Keeper) sdk.Invariant {
	return poolCheck(k, "canonical-ordering", func(_ sdk.Context, cfg types.PoolConfig, pool types.Pool) string {
		if !types.IsCanonical(pool.AssetA, pool.AssetB) {
			return fmt.Sprintf("assets %s/%s out of order", pool.AssetA, pool.AssetB)
		}
		if pool.AssetA != cfg.AssetA || pool.AssetB != cfg.AssetB {
			return fmt.Sprintf("assets %s/%s differ from market %s/%s", pool.AssetA, pool.AssetB, cfg.AssetA, cfg.AssetB)
		}
		return ""
	})
}

// VaultBalanceInvariant checks that each vault holds at least the recorded reserves
func VaultBalanceInvariant(k Keeper) sdk.Invariant {
	return poolCheck(k, "vault-balance", func(ctx sdk.Context, cfg types.PoolConfig, pool types.Pool) string {
		vault := sdk.MustAccAddressFromBech32(cfg.Vault)
		balA := k.bankKeeper.GetBalance(ctx, vault, pool.AssetA).Amount
		balB := k.bankKeeper.GetBalance(ctx, vault, pool.AssetB).Amount
		if balA.LT(math.NewIntFromUint64(pool.ReserveA)) || balB.LT(math.NewIntFromUint64(pool.ReserveB)) {
			return fmt.Sprintf("vault holds %s/%s, reserves are %d/%d", balA, balB, pool.ReserveA, pool.ReserveB)
		}
		return ""
	})
}

// LPSupplyInvariant checks that the bank supply of the LP denom equals the recorded supply
func LPSupplyInvariant(k Keeper) sdk.Invariant {
	return poolCheck(k, "lp-supply", func(ctx sdk.Context, cfg types.PoolConfig, pool types.Pool) string {
		supply := k.bankKeeper.GetSupply(ctx, cfg.LpDenom).Amount
		if !supply.Equal(math.NewIntFromUint64(pool.LpSupply)) {
			return fmt.Sprintf("bank supply %s, recorded %d", supply, pool.LpSupply)
		}
		return ""
	})
}
