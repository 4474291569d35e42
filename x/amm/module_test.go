package amm_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/TanmayDhobale/token22AMM/testutil/keeper"
	"github.com/TanmayDhobale/token22AMM/x/amm"
	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

type invariantRegistry struct {
	routes map[string]sdk.Invariant
}

func (r *invariantRegistry) RegisterRoute(moduleName, route string, invar sdk.Invariant) {
	r.routes[moduleName+"/"+route] = invar
}

func TestAppModuleGenesis(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	keepertest.CreateTestPool(t, k, ctx, bank, "uatom", "uusdc", 1_000, 500)
	am := amm.NewAppModule(*k)

	require.NoError(t, am.ValidateGenesis(nil, nil, am.DefaultGenesis(nil)))

	exported := am.ExportGenesis(ctx, nil)
	require.NoError(t, am.ValidateGenesis(nil, nil, exported))

	fresh, freshCtx, _ := keepertest.AmmKeeper(t)
	freshModule := amm.NewAppModule(*fresh)
	freshModule.InitGenesis(freshCtx, nil, exported)
	require.JSONEq(t, string(exported), string(freshModule.ExportGenesis(freshCtx, nil)))

	require.Error(t, am.ValidateGenesis(nil, nil, []byte(`{"next_market_id":0}`)))
	require.Panics(t, func() { freshModule.InitGenesis(freshCtx, nil, []byte(`not json`)) })
}

func TestAppModuleInvariants(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	keepertest.CreateTestPool(t, k, ctx, bank, "uatom", "uusdc", 1_000, 500)

	reg := &invariantRegistry{routes: map[string]sdk.Invariant{}}
	amm.NewAppModule(*k).RegisterInvariants(reg)
	require.Len(t, reg.routes, 4)

	for route, inv := range reg.routes {
		msg, broken := inv(ctx)
		require.False(t, broken, "%s: %s", route, msg)
	}
	require.Contains(t, reg.routes, types.ModuleName+"/lp-supply")
}
