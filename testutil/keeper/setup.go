package keeper

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	"github.com/stretchr/testify/require"

	"github.com/TanmayDhobale/token22AMM/app"
	"github.com/TanmayDhobale/token22AMM/x/amm/keeper"
	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

// FundAccount mints amount of each denom to addr.
func FundAccount(t testing.TB, ctx sdk.Context, bank bankkeeper.Keeper, addr sdk.AccAddress, amount uint64, denoms ...string) {
	coins := sdk.NewCoins()
	for _, denom := range denoms {
		coins = coins.Add(sdk.NewCoin(denom, math.NewIntFromUint64(amount)))
	}
	require.NoError(t, app.FundAccount(ctx, bank, addr, coins))
}

// CreateTestMarket initializes a market owned by authority with the default
// fee tier.
func CreateTestMarket(t testing.TB, k *keeper.Keeper, ctx sdk.Context, authority sdk.AccAddress, denomX, denomY string) types.PoolConfig {
	cfg, err := k.InitializeMarket(ctx, authority, denomX, denomY, 0, 0)
	require.NoError(t, err)
	return cfg
}

// CreateTestPool initializes a market and seeds it from a freshly funded
// creator. Amounts are in (denomX, denomY) order.
func CreateTestPool(t testing.TB, k *keeper.Keeper, ctx sdk.Context, bank bankkeeper.Keeper, denomX, denomY string, amountX, amountY uint64) (types.PoolConfig, sdk.AccAddress) {
	authority := TestAddr("authority")
	creator := TestAddr("creator")

	cfg := CreateTestMarket(t, k, ctx, authority, denomX, denomY)
	require.NoError(t, app.FundAccount(ctx, bank, creator, sdk.NewCoins(
		sdk.NewCoin(denomX, math.NewIntFromUint64(amountX)),
		sdk.NewCoin(denomY, math.NewIntFromUint64(amountY)),
	)))

	_, _, err := k.CreatePool(ctx, creator, denomX, denomY, amountX, amountY, nil)
	require.NoError(t, err)
	return cfg, creator
}
