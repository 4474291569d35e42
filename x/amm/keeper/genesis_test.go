package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/TanmayDhobale/token22AMM/testutil/keeper"
	"github.com/TanmayDhobale/token22AMM/x/amm/keeper"
	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

func TestGenesisExportImport(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	authority := keepertest.TestAddr("authority")

	cfg, _ := keepertest.CreateTestPool(t, k, ctx, bank, denomAtom, denomUsdc, 1_000, 500)
	keepertest.CreateTestMarket(t, k, ctx, authority, denomAtom, "uosmo")
	require.NoError(t, k.SetAssetMetadata(ctx, types.AssetMetadata{Denom: denomUsdc, Decimals: 6, TransferHookProgram: hookProgram}))
	_, err := k.InitializeWhitelist(ctx, authority, cfg.Id, 4)
	require.NoError(t, err)
	_, err = k.AddHookProgram(ctx, authority, cfg.Id, hookProgram)
	require.NoError(t, err)

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Markets, 2)
	require.Equal(t, uint64(3), exported.NextMarketId)
	require.NotNil(t, exported.Markets[0].Pool)
	require.NotNil(t, exported.Markets[0].Whitelist)
	require.Nil(t, exported.Markets[1].Pool)

	fresh, freshCtx, _ := keepertest.AmmKeeper(t)
	require.NoError(t, fresh.InitGenesis(freshCtx, *exported))

	reexported, err := fresh.ExportGenesis(freshCtx)
	require.NoError(t, err)
	require.Equal(t, exported, reexported)

	// the id counter survives, so a new market never collides with an imported one
	next, err := fresh.InitializeMarket(freshCtx, authority, denomUsdc, "uosmo", 0, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(3), next.Id)
}

func TestInitGenesisRejectsForeignVault(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	keepertest.CreateTestPool(t, k, ctx, bank, denomAtom, denomUsdc, 1_000, 500)

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	exported.Markets[0].Config.Vault = keeper.VaultAddress(42).String()

	fresh, freshCtx, _ := keepertest.AmmKeeper(t)
	require.ErrorIs(t, fresh.InitGenesis(freshCtx, *exported), types.ErrInvalidGenesis)
}
