package app_test

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/TanmayDhobale/token22AMM/app"
	ammtypes "github.com/TanmayDhobale/token22AMM/x/amm/types"
)

func newChain(t *testing.T) *app.Chain {
	t.Helper()
	chain, err := app.NewChain(log.NewNopLogger(), cmtproto.Header{ChainID: "test"}, nil)
	require.NoError(t, err)
	return chain
}

func coins(denom string, amount int64) sdk.Coins {
	return sdk.NewCoins(sdk.NewInt64Coin(denom, amount))
}

func TestFundAccountMintsThroughAmmModule(t *testing.T) {
	chain := newChain(t)
	alice := sdk.AccAddress("alice_______________")

	require.NoError(t, app.FundAccount(chain.Ctx, chain.BankKeeper, alice, coins("uatom", 100)))
	require.NoError(t, app.FundAccount(chain.Ctx, chain.BankKeeper, alice, sdk.NewCoins()))

	require.Equal(t, math.NewInt(100), chain.BankKeeper.GetBalance(chain.Ctx, alice, "uatom").Amount)
	require.Equal(t, math.NewInt(100), chain.BankKeeper.GetSupply(chain.Ctx, "uatom").Amount)
	require.True(t, chain.BankKeeper.GetBalance(chain.Ctx, authtypes.NewModuleAddress(ammtypes.ModuleName), "uatom").IsZero())
}

func TestModulePermissions(t *testing.T) {
	chain := newChain(t)

	perms := app.GetMaccPerms()
	require.ElementsMatch(t, []string{authtypes.Minter, authtypes.Burner}, perms[ammtypes.ModuleName])
	perms[ammtypes.ModuleName] = nil
	require.Len(t, app.GetMaccPerms()[ammtypes.ModuleName], 2, "returned map is a copy")

	require.NoError(t, chain.BankKeeper.MintCoins(chain.Ctx, ammtypes.ModuleName, coins("ulp", 500)))
	require.NoError(t, chain.BankKeeper.BurnCoins(chain.Ctx, ammtypes.ModuleName, coins("ulp", 200)))
	require.Equal(t, math.NewInt(300), chain.BankKeeper.GetSupply(chain.Ctx, "ulp").Amount)

	require.Panics(t, func() {
		_ = chain.BankKeeper.MintCoins(chain.Ctx, govtypes.ModuleName, coins("ulp", 1))
	})
}

func TestVaultAddressesReceiveCoins(t *testing.T) {
	chain := newChain(t)
	alice := sdk.AccAddress("alice_______________")
	vault := authtypes.NewModuleAddress("amm/vault/1")
	require.NoError(t, app.FundAccount(chain.Ctx, chain.BankKeeper, alice, coins("uatom", 10)))

	require.NoError(t, chain.BankKeeper.SendCoins(chain.Ctx, alice, vault, coins("uatom", 4)))
	require.NoError(t, chain.BankKeeper.SendCoins(chain.Ctx, vault, alice, coins("uatom", 1)))
	require.Equal(t, math.NewInt(3), chain.BankKeeper.GetBalance(chain.Ctx, vault, "uatom").Amount)
}

func TestCacheContextDiscardsMovements(t *testing.T) {
	chain := newChain(t)
	alice := sdk.AccAddress("alice_______________")
	bob := sdk.AccAddress("bob_________________")
	require.NoError(t, app.FundAccount(chain.Ctx, chain.BankKeeper, alice, coins("uatom", 10)))

	cacheCtx, _ := chain.Ctx.CacheContext()
	require.NoError(t, chain.BankKeeper.SendCoins(cacheCtx, alice, bob, coins("uatom", 10)))
	require.True(t, chain.BankKeeper.GetBalance(cacheCtx, alice, "uatom").IsZero())
	require.Equal(t, math.NewInt(10), chain.BankKeeper.GetBalance(chain.Ctx, alice, "uatom").Amount)

	cacheCtx, write := chain.Ctx.CacheContext()
	require.NoError(t, chain.BankKeeper.SendCoins(cacheCtx, alice, bob, coins("uatom", 3)))
	write()
	require.Equal(t, math.NewInt(7), chain.BankKeeper.GetBalance(chain.Ctx, alice, "uatom").Amount)
	require.Equal(t, math.NewInt(3), chain.BankKeeper.GetBalance(chain.Ctx, bob, "uatom").Amount)
}

func TestNewChainWiresAmmKeeper(t *testing.T) {
	chain := newChain(t)
	require.NoError(t, chain.AmmKeeper.InitGenesis(chain.Ctx, *ammtypes.DefaultGenesis()))
	require.Equal(t, app.Authority().String(), chain.AmmKeeper.GetAuthority())
}
