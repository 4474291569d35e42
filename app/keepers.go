package app

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdkstd "github.com/cosmos/cosmos-sdk/std"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	ammkeeper "github.com/TanmayDhobale/token22AMM/x/amm/keeper"
	ammtypes "github.com/TanmayDhobale/token22AMM/x/amm/types"
)

// maccPerms are the module account permissions of the in-memory chain. The
// amm module mints and burns LP units; funding helpers mint through it too.
var maccPerms = map[string][]string{
	authtypes.FeeCollectorName: nil,
	govtypes.ModuleName:        {authtypes.Burner},
	ammtypes.ModuleName:        {authtypes.Minter, authtypes.Burner},
}

// GetMaccPerms returns a copy of the module account permissions.
func GetMaccPerms() map[string][]string {
	dup := make(map[string][]string, len(maccPerms))
	for name, perms := range maccPerms {
		dup[name] = append([]string(nil), perms...)
	}
	return dup
}

// Authority is the module params authority.
func Authority() sdk.AccAddress {
	return authtypes.NewModuleAddress(govtypes.ModuleName)
}

// Chain is an in-memory multistore with the auth, bank and amm keepers
// mounted on it.
type Chain struct {
	AccountKeeper authkeeper.AccountKeeper
	BankKeeper    bankkeeper.BaseKeeper
	AmmKeeper     *ammkeeper.Keeper
	Ctx           sdk.Context
}

// NewChain mounts the auth, bank and amm stores on a fresh memdb and wires
// the keepers. Hook programs are served by router.
func NewChain(logger log.Logger, header cmtproto.Header, router *ammtypes.TransferHookRouter) (*Chain, error) {
	ammKey := storetypes.NewKVStoreKey(ammtypes.StoreKey)
	authKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	ms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	ms.MountStoreWithDB(ammKey, storetypes.StoreTypeIAVL, db)
	ms.MountStoreWithDB(authKey, storetypes.StoreTypeIAVL, db)
	ms.MountStoreWithDB(bankKey, storetypes.StoreTypeIAVL, db)
	if err := ms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("load stores: %w", err)
	}

	registry := codectypes.NewInterfaceRegistry()
	sdkstd.RegisterInterfaces(registry)
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)
	authority := Authority().String()

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authKey),
		authtypes.ProtoBaseAccount,
		GetMaccPerms(),
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		authority,
	)

	// Vaults are plain accounts and must stay reachable by SendCoins.
	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankKey),
		accountKeeper,
		map[string]bool{},
		authority,
		logger,
	)

	if router == nil {
		router = ammtypes.NewTransferHookRouter()
	}
	ammKeeper := ammkeeper.NewKeeper(ammKey, bankKeeper, router, authority)

	return &Chain{
		AccountKeeper: accountKeeper,
		BankKeeper:    bankKeeper,
		AmmKeeper:     ammKeeper,
		Ctx:           sdk.NewContext(ms, header, false, logger),
	}, nil
}

// FundAccount mints amounts through the amm module account and sends them to
// addr.
func FundAccount(ctx context.Context, bk bankkeeper.Keeper, addr sdk.AccAddress, amounts sdk.Coins) error {
	if amounts.IsZero() {
		return nil
	}
	if err := bk.MintCoins(ctx, ammtypes.ModuleName, amounts); err != nil {
		return err
	}
	return bk.SendCoinsFromModuleToAccount(ctx, ammtypes.ModuleName, addr, amounts)
}
