package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

// GetWhitelist returns the hook whitelist of a market.
func (k Keeper) GetWhitelist(ctx context.Context, marketID uint64) (types.HookWhitelist, bool) {
	var wl types.HookWhitelist
	found, err := k.getJSON(ctx, types.WhitelistKey(marketID), &wl)
	if err != nil {
		panic(err)
	}
	return wl, found
}

// SetWhitelist stores a hook whitelist.
func (k Keeper) SetWhitelist(ctx context.Context, wl types.HookWhitelist) error {
	if err := wl.Validate(); err != nil {
		return err
	}
	k.metrics.WhitelistSize.WithLabelValues(strconv.FormatUint(wl.MarketId, 10)).Set(float64(len(wl.AllowedPrograms)))
	return k.setJSON(ctx, types.WhitelistKey(wl.MarketId), wl)
}

// InitializeWhitelist creates the empty whitelist of a market. A zero capacity
// selects the params default.
func (k Keeper) InitializeWhitelist(ctx context.Context, authority sdk.AccAddress, marketID uint64, capacity uint32) (types.HookWhitelist, error) {
	var wl types.HookWhitelist
	err := k.withMarketLock(ctx, marketID, "initialize_whitelist", func(ctx sdk.Context) error {
		cfg, err := k.GetMarket(ctx, marketID)
		if err != nil {
			return err
		}
		if err := checkAuthority(cfg, authority); err != nil {
			return err
		}
		if _, exists := k.GetWhitelist(ctx, marketID); exists {
			return types.ErrInvalidWhitelist.Wrapf("market %d already has a whitelist", marketID)
		}

		params := k.GetParams(ctx)
		if capacity == 0 {
			capacity = params.DefaultWhitelistCapacity
		}
		if capacity > params.MaxWhitelistCapacity {
			return types.ErrInvalidWhitelist.Wrapf("capacity %d exceeds maximum %d", capacity, params.MaxWhitelistCapacity)
		}

		wl = types.NewHookWhitelist(marketID, capacity)
		if err := k.SetWhitelist(ctx, wl); err != nil {
			return err
		}
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeWhitelistInitialized,
				sdk.NewAttribute(types.AttributeKeyMarketID, strconv.FormatUint(marketID, 10)),
				sdk.NewAttribute(types.AttributeKeyAuthority, authority.String()),
			),
		)
		return nil
	})
	return wl, err
}

// AddHookProgram whitelists programID. Adding a present program is a no-op.
func (k Keeper) AddHookProgram(ctx context.Context, authority sdk.AccAddress, marketID uint64, programID string) (types.HookWhitelist, error) {
	return k.mutateWhitelist(ctx, authority, marketID, "add_hook_program", types.EventTypeHookProgramAdded, programID,
		func(wl *types.HookWhitelist) (bool, error) { return wl.Add(programID) })
}

// RemoveHookProgram removes programID. Removing an absent program is a no-op.
func (k Keeper) RemoveHookProgram(ctx context.Context, authority sdk.AccAddress, marketID uint64, programID string) (types.HookWhitelist, error) {
	return k.mutateWhitelist(ctx, authority, marketID, "remove_hook_program", types.EventTypeHookProgramRemoved, programID,
		func(wl *types.HookWhitelist) (bool, error) { return wl.Remove(programID), nil })
}

func (k Keeper) mutateWhitelist(
	ctx context.Context,
	authority sdk.AccAddress,
	marketID uint64,
	operation, eventType, programID string,
	mutate func(wl *types.HookWhitelist) (bool, error),
) (types.HookWhitelist, error) {
	if err := types.ValidateProgramID(programID); err != nil {
		return types.HookWhitelist{}, err
	}

	var wl types.HookWhitelist
	err := k.withMarketLock(ctx, marketID, operation, func(ctx sdk.Context) error {
		cfg, err := k.GetMarket(ctx, marketID)
		if err != nil {
			return err
		}
		if err := checkAuthority(cfg, authority); err != nil {
			return err
		}
		var found bool
		wl, found = k.GetWhitelist(ctx, marketID)
		if !found {
			return types.ErrInvalidWhitelist.Wrapf("market %d whitelist is not initialized", marketID)
		}

		changed, err := mutate(&wl)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		if err := k.SetWhitelist(ctx, wl); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				eventType,
				sdk.NewAttribute(types.AttributeKeyMarketID, strconv.FormatUint(marketID, 10)),
				sdk.NewAttribute(types.AttributeKeyProgram, programID),
			),
		)
		k.Logger(ctx).Info("hook whitelist updated", "market_id", marketID, "operation", operation, "program", programID)
		return nil
	})
	if err != nil {
		return types.HookWhitelist{}, err
	}
	return wl, nil
}

// checkAuthority verifies the caller is the market's authority.
func checkAuthority(cfg types.PoolConfig, caller sdk.AccAddress) error {
	if caller.Empty() || caller.String() != cfg.Authority {
		return types.ErrUnauthorized.Wrapf("%s is not the authority of market %d", caller, cfg.Id)
	}
	return nil
}
