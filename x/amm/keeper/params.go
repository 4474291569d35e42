package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

// GetParams returns the module params, or the defaults when unset.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	var params types.Params
	found, err := k.getJSON(ctx, types.ParamsKey, &params)
	if err != nil {
		panic(err)
	}
	if !found {
		return types.DefaultParams()
	}
	return params
}

// SetParams validates and stores the module params.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	return k.setJSON(ctx, types.ParamsKey, params)
}

// UpdateParams replaces the params on behalf of the module authority.
func (k Keeper) UpdateParams(ctx context.Context, authority string, params types.Params) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeParamsUpdated, sdk.NewAttribute(types.AttributeKeyAuthority, authority)),
	)
	return nil
}
