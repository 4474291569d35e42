package keeper

import (
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

const (
	legIn  = "in"
	legOut = "out"
)

// transferRequest describes one movement of an asset between an account and a
// market vault.
type transferRequest struct {
	market       types.PoolConfig
	leg          string
	denom        string
	from         sdk.AccAddress
	to           sdk.AccAddress
	authority    sdk.AccAddress
	amount       uint64
	hookAccounts []string
}

// transfer moves coins and, when the asset declares a transfer hook, invokes
// the hook as part of the same movement. It must run inside an atomic scope:
// a rejecting hook leaves the coins moved in the uncommitted cache.
func (k Keeper) transfer(ctx sdk.Context, req transferRequest) error {
	coins := sdk.NewCoins(sdk.NewCoin(req.denom, math.NewIntFromUint64(req.amount)))
	if err := k.bankKeeper.SendCoins(ctx, req.from, req.to, coins); err != nil {
		return errorsmod.Wrapf(types.ErrTransferFailed, "%s leg of %s: %s", req.leg, coins, err)
	}

	meta, _ := k.GetAssetMetadata(ctx, req.denom)
	program, hooked := meta.HookProgram()
	if !hooked {
		return nil
	}

	hook, ok := k.hookRouter.GetRoute(program)
	if !ok {
		return types.ErrTransferFailed.Wrapf("transfer hook program %s is not registered", program)
	}

	tc := types.TransferContext{
		MarketId:     req.market.Id,
		Program:      program,
		Denom:        req.denom,
		From:         req.from.String(),
		To:           req.to.String(),
		Authority:    req.authority.String(),
		Amount:       req.amount,
		Decimals:     meta.Decimals,
		HookAccounts: k.ResolveHookAccounts(ctx, req.denom, req.hookAccounts),
	}
	if err := hook.OnTransfer(ctx, tc); err != nil {
		k.metrics.HookRejections.WithLabelValues(program, "rejected").Inc()
		k.Logger(ctx).Error("transfer hook rejected transfer", "program", program, "market_id", req.market.Id, "leg", req.leg, "error", err)
		return types.ErrTransferNotAllowed.Wrapf("program %s on %s leg: %s", program, req.leg, err)
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeHookInvoked,
			sdk.NewAttribute(types.AttributeKeyMarketID, strconv.FormatUint(req.market.Id, 10)),
			sdk.NewAttribute(types.AttributeKeyProgram, program),
			sdk.NewAttribute(types.AttributeKeyDenom, req.denom),
			sdk.NewAttribute(types.AttributeKeyLeg, req.leg),
		),
	)
	return nil
}
