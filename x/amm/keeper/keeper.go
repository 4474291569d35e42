package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

// Keeper of the amm store
type Keeper struct {
	storeKey   storetypes.StoreKey
	bankKeeper types.BankKeeper
	hookRouter *types.TransferHookRouter
	hooks      types.AmmHooks
	guard      *ReentrancyGuard
	metrics    *AMMMetrics

	// authority may update module params
	authority string
}

// NewKeeper creates a new amm Keeper instance. The transfer hook router is
// sealed on construction.
func NewKeeper(
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	hookRouter *types.TransferHookRouter,
	authority string,
) *Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Errorf("invalid amm authority address: %w", err))
	}
	if hookRouter == nil {
		hookRouter = types.NewTransferHookRouter()
	}
	hookRouter.Seal()

	return &Keeper{
		storeKey:   key,
		bankKeeper: bankKeeper,
		hookRouter: hookRouter,
		guard:      NewReentrancyGuard(),
		metrics:    NewAMMMetrics(),
		authority:  authority,
	}
}

// SetHooks sets the observer hooks. It may be called once.
func (k *Keeper) SetHooks(h types.AmmHooks) *Keeper {
	if k.hooks != nil {
		panic("cannot set amm hooks twice")
	}
	k.hooks = h
	return k
}

// GetAuthority returns the module's params authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the address that mints and burns LP units.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the amm module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

func (k Keeper) getJSON(ctx context.Context, key []byte, v any) (bool, error) {
	bz := k.getStore(ctx).Get(key)
	if bz == nil {
		return false, nil
	}
	if err := json.Unmarshal(bz, v); err != nil {
		return false, fmt.Errorf("decode %X: %w", key, err)
	}
	return true, nil
}

func (k Keeper) setJSON(ctx context.Context, key []byte, v any) error {
	bz, err := json.Marshal(v)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(key, bz)
	return nil
}

// iterateJSON decodes every record under prefix until cb returns true.
func iterateJSON[T any](store storetypes.KVStore, prefix []byte, cb func(T) (stop bool)) error {
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var v T
		if err := json.Unmarshal(iterator.Value(), &v); err != nil {
			return fmt.Errorf("decode %X: %w", iterator.Key(), err)
		}
		if cb(v) {
			break
		}
	}
	return nil
}
