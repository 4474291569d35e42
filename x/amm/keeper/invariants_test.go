package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/TanmayDhobale/token22AMM/testutil/keeper"
	"github.com/TanmayDhobale/token22AMM/x/amm/keeper"
)

func TestInvariantsHoldAfterOperations(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	_, creator := keepertest.CreateTestPool(t, k, ctx, bank, denomAtom, denomUsdc, 1_000_000, 500_000)

	trader := keepertest.TestAddr("trader")
	keepertest.FundAccount(t, ctx, bank, trader, 100_000, denomAtom, denomUsdc)
	_, err := k.Swap(ctx, trader, denomAtom, denomUsdc, 10_000, 0, nil)
	require.NoError(t, err)
	_, err = k.Swap(ctx, trader, denomUsdc, denomAtom, 7_500, 0, nil)
	require.NoError(t, err)
	_, _, err = k.RemoveLiquidity(ctx, creator, denomAtom, denomUsdc, 250_000, 0, 0, nil)
	require.NoError(t, err)

	msg, broken := keeper.AllInvariants(*k)(ctx)
	require.False(t, broken, msg)
}

func TestVaultBalanceInvariantDetectsPhantomReserves(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	cfg, _ := keepertest.CreateTestPool(t, k, ctx, bank, denomAtom, denomUsdc, 1_000, 500)

	pool, _ := k.GetPool(ctx, cfg.Id)
	pool.ReserveA++
	require.NoError(t, k.SetPool(ctx, pool))

	msg, broken := keeper.VaultBalanceInvariant(*k)(ctx)
	require.True(t, broken)
	require.Contains(t, msg, "vault-balance")

	_, broken = keeper.AllInvariants(*k)(ctx)
	require.True(t, broken)
}

func TestLPSupplyInvariantDetectsDrift(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	cfg, _ := keepertest.CreateTestPool(t, k, ctx, bank, denomAtom, denomUsdc, 1_000, 500)

	pool, _ := k.GetPool(ctx, cfg.Id)
	pool.LpSupply += 10
	require.NoError(t, k.SetPool(ctx, pool))

	_, broken := keeper.LPSupplyInvariant(*k)(ctx)
	require.True(t, broken)

	_, broken = keeper.PositiveReservesInvariant(*k)(ctx)
	require.False(t, broken)
	_, broken = keeper.CanonicalOrderingInvariant(*k)(ctx)
	require.False(t, broken)
}
