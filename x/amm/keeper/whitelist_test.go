package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/TanmayDhobale/token22AMM/testutil/keeper"
	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

func TestWhitelistAdmin(t *testing.T) {
	k, ctx, _ := keepertest.AmmKeeper(t)
	authority := keepertest.TestAddr("authority")
	stranger := keepertest.TestAddr("stranger")
	cfg := keepertest.CreateTestMarket(t, k, ctx, authority, denomAtom, denomUsdc)

	_, err := k.AddHookProgram(ctx, authority, cfg.Id, "hook-a")
	require.ErrorIs(t, err, types.ErrInvalidWhitelist, "whitelist must be initialized first")

	_, err = k.InitializeWhitelist(ctx, stranger, cfg.Id, 0)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	wl, err := k.InitializeWhitelist(ctx, authority, cfg.Id, 0)
	require.NoError(t, err)
	require.Equal(t, types.DefaultWhitelistCapacity, wl.Capacity)
	require.Empty(t, wl.AllowedPrograms)

	_, err = k.InitializeWhitelist(ctx, authority, cfg.Id, 0)
	require.ErrorIs(t, err, types.ErrInvalidWhitelist)

	_, err = k.AddHookProgram(ctx, stranger, cfg.Id, "hook-a")
	require.ErrorIs(t, err, types.ErrUnauthorized)

	for i := 0; i < 2; i++ {
		wl, err = k.AddHookProgram(ctx, authority, cfg.Id, "hook-a")
		require.NoError(t, err)
		require.Equal(t, []string{"hook-a"}, wl.AllowedPrograms)
	}

	_, err = k.RemoveHookProgram(ctx, stranger, cfg.Id, "hook-a")
	require.ErrorIs(t, err, types.ErrUnauthorized)

	for i := 0; i < 2; i++ {
		wl, err = k.RemoveHookProgram(ctx, authority, cfg.Id, "hook-a")
		require.NoError(t, err)
		require.Empty(t, wl.AllowedPrograms)
	}

	stored, found := k.GetWhitelist(ctx, cfg.Id)
	require.True(t, found)
	require.Empty(t, stored.AllowedPrograms)

	// the market authority is never replaced
	got, err := k.GetMarket(ctx, cfg.Id)
	require.NoError(t, err)
	require.Equal(t, authority.String(), got.Authority)

	_, err = k.AddHookProgram(ctx, authority, 99, "hook-a")
	require.ErrorIs(t, err, types.ErrMarketNotFound)
}

func TestWhitelistCapacity(t *testing.T) {
	k, ctx, _ := keepertest.AmmKeeper(t)
	authority := keepertest.TestAddr("authority")
	cfg := keepertest.CreateTestMarket(t, k, ctx, authority, denomAtom, denomUsdc)

	_, err := k.InitializeWhitelist(ctx, authority, cfg.Id, types.MaxWhitelistCapacity+1)
	require.ErrorIs(t, err, types.ErrInvalidWhitelist)

	_, err = k.InitializeWhitelist(ctx, authority, cfg.Id, 2)
	require.NoError(t, err)

	_, err = k.AddHookProgram(ctx, authority, cfg.Id, "hook-a")
	require.NoError(t, err)
	_, err = k.AddHookProgram(ctx, authority, cfg.Id, "hook-b")
	require.NoError(t, err)
	_, err = k.AddHookProgram(ctx, authority, cfg.Id, "hook-c")
	require.ErrorIs(t, err, types.ErrWhitelistFull)

	wl, _ := k.GetWhitelist(ctx, cfg.Id)
	require.Equal(t, []string{"hook-a", "hook-b"}, wl.AllowedPrograms)
}
