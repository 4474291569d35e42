package keeper_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/TanmayDhobale/token22AMM/testutil/keeper"
	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

type observer struct {
	swapErr error
	swaps   int
	pools   int
	changes []bool
}

func (o *observer) AfterPoolCreated(context.Context, uint64, string, types.Pool) error {
	o.pools++
	return nil
}

func (o *observer) AfterSwap(context.Context, uint64, string, string, string, uint64, uint64) error {
	o.swaps++
	return o.swapErr
}

func (o *observer) AfterLiquidityChanged(_ context.Context, _ uint64, _ string, _, _ uint64, isAdd bool) error {
	o.changes = append(o.changes, isAdd)
	return nil
}

func TestObserverHooks(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	obs := &observer{}
	k.SetHooks(types.NewMultiAmmHooks(obs))
	require.Panics(t, func() { k.SetHooks(obs) })

	cfg, creator := keepertest.CreateTestPool(t, k, ctx, bank, denomAtom, denomUsdc, 1_000_000, 500_000)
	require.Equal(t, 1, obs.pools)

	keepertest.FundAccount(t, ctx, bank, creator, 10_000, denomAtom, denomUsdc)
	_, err := k.AddLiquidity(ctx, creator, denomAtom, denomUsdc, 1_000, 500, nil)
	require.NoError(t, err)
	_, _, err = k.RemoveLiquidity(ctx, creator, denomAtom, denomUsdc, 1_000, 0, 0, nil)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false}, obs.changes)

	_, err = k.Swap(ctx, creator, denomAtom, denomUsdc, 1_000, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 1, obs.swaps)

	obs.swapErr = errors.New("observer veto")
	before, _ := k.GetPool(ctx, cfg.Id)
	atomBefore := bank.GetBalance(ctx, creator, denomAtom)

	_, err = k.Swap(ctx, creator, denomAtom, denomUsdc, 1_000, 0, nil)
	require.ErrorContains(t, err, "observer veto")

	after, _ := k.GetPool(ctx, cfg.Id)
	require.Equal(t, before, after)
	require.Equal(t, atomBefore, bank.GetBalance(ctx, creator, denomAtom))
}
