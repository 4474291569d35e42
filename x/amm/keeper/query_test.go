package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/TanmayDhobale/token22AMM/testutil/keeper"
	"github.com/TanmayDhobale/token22AMM/x/amm/keeper"
	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

func TestQuerier(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	q := keeper.NewQuerier(*k)
	cfg, _ := keepertest.CreateTestPool(t, k, ctx, bank, denomAtom, denomUsdc, 1_000_000_000, 500_000_000)

	params, err := q.Params(ctx)
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), params)

	byID, err := q.Market(ctx, types.QueryMarketRequest{MarketId: cfg.Id})
	require.NoError(t, err)
	byPair, err := q.Market(ctx, types.QueryMarketRequest{DenomX: denomUsdc, DenomY: denomAtom})
	require.NoError(t, err)
	require.Equal(t, byID, byPair)
	require.NotNil(t, byID.Pool)
	require.Nil(t, byID.Whitelist)

	_, err = q.Market(ctx, types.QueryMarketRequest{MarketId: 7})
	require.ErrorIs(t, err, types.ErrMarketNotFound)

	markets, err := q.Markets(ctx)
	require.NoError(t, err)
	require.Equal(t, []types.PoolConfig{cfg}, markets.Markets)

	quote, err := q.QuoteSwap(ctx, types.QueryQuoteRequest{DenomIn: denomAtom, DenomOut: denomUsdc, AmountIn: 1_000_000})
	require.NoError(t, err)
	require.Equal(t, &types.QueryQuoteResponse{MarketId: cfg.Id, AmountOut: 498_252}, quote)

	asset, err := q.Asset(ctx, denomUsdc)
	require.NoError(t, err)
	require.False(t, asset.Registered)
	require.Equal(t, denomUsdc, asset.Asset.Denom)
}

func TestAssetRegistry(t *testing.T) {
	k, ctx, _ := keepertest.AmmKeeper(t)

	require.NoError(t, k.SetAssetMetadata(ctx, types.AssetMetadata{Denom: denomUsdc, Decimals: 6, TransferHookProgram: hookProgram}))
	require.NoError(t, k.SetAssetMetadata(ctx, types.AssetMetadata{Denom: denomAtom, Decimals: 6}))

	var seen []string
	require.NoError(t, k.IterateAssets(ctx, func(meta types.AssetMetadata) bool {
		seen = append(seen, meta.Denom)
		return true
	}))
	require.Equal(t, []string{denomAtom}, seen)

	all, err := k.GetAllAssets(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	program, required := k.IsHookRequired(ctx, denomUsdc)
	require.True(t, required)
	require.Equal(t, hookProgram, program)
	_, required = k.IsHookRequired(ctx, "uosmo")
	require.False(t, required)
}
