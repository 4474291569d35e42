package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

type msgServer struct {
	Keeper
}

var _ types.MsgServer = msgServer{}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// InitializeMarket handles MsgInitializeMarket.
func (ms msgServer) InitializeMarket(goCtx context.Context, msg *types.MsgInitializeMarket) (*types.MsgInitializeMarketResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	cfg, err := ms.Keeper.InitializeMarket(goCtx, msg.GetSigners()[0], msg.DenomX, msg.DenomY, msg.FeeNumerator, msg.FeeDenominator)
	if err != nil {
		return nil, err
	}
	return &types.MsgInitializeMarketResponse{MarketId: cfg.Id}, nil
}

// CreatePool handles MsgCreatePool.
func (ms msgServer) CreatePool(goCtx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	pool, minted, err := ms.Keeper.CreatePool(goCtx, msg.GetSigners()[0], msg.DenomX, msg.DenomY, msg.AmountX, msg.AmountY, msg.HookAccounts)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreatePoolResponse{MarketId: pool.MarketId, LpMinted: minted}, nil
}

// Swap handles MsgSwap.
func (ms msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	out, err := ms.Keeper.Swap(goCtx, msg.GetSigners()[0], msg.DenomIn, msg.DenomOut, msg.AmountIn, msg.MinAmountOut, msg.HookAccounts)
	if err != nil {
		return nil, err
	}
	return &types.MsgSwapResponse{AmountOut: out}, nil
}

// AddLiquidity handles MsgAddLiquidity.
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	minted, err := ms.Keeper.AddLiquidity(goCtx, msg.GetSigners()[0], msg.DenomX, msg.DenomY, msg.AmountX, msg.AmountY, msg.HookAccounts)
	if err != nil {
		return nil, err
	}
	return &types.MsgAddLiquidityResponse{LpMinted: minted}, nil
}

// RemoveLiquidity handles MsgRemoveLiquidity.
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	x, y, err := ms.Keeper.RemoveLiquidity(goCtx, msg.GetSigners()[0], msg.DenomX, msg.DenomY, msg.LpAmount, msg.MinAmountX, msg.MinAmountY, msg.HookAccounts)
	if err != nil {
		return nil, err
	}
	return &types.MsgRemoveLiquidityResponse{AmountX: x, AmountY: y}, nil
}

// InitializeWhitelist handles MsgInitializeWhitelist.
func (ms msgServer) InitializeWhitelist(goCtx context.Context, msg *types.MsgInitializeWhitelist) (*types.MsgWhitelistResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	wl, err := ms.Keeper.InitializeWhitelist(goCtx, msg.GetSigners()[0], msg.MarketId, msg.Capacity)
	if err != nil {
		return nil, err
	}
	return &types.MsgWhitelistResponse{AllowedPrograms: wl.AllowedPrograms}, nil
}

// AddHookProgram handles MsgAddHookProgram.
func (ms msgServer) AddHookProgram(goCtx context.Context, msg *types.MsgAddHookProgram) (*types.MsgWhitelistResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	wl, err := ms.Keeper.AddHookProgram(goCtx, msg.GetSigners()[0], msg.MarketId, msg.ProgramId)
	if err != nil {
		return nil, err
	}
	return &types.MsgWhitelistResponse{AllowedPrograms: wl.AllowedPrograms}, nil
}

// RemoveHookProgram handles MsgRemoveHookProgram.
func (ms msgServer) RemoveHookProgram(goCtx context.Context, msg *types.MsgRemoveHookProgram) (*types.MsgWhitelistResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	wl, err := ms.Keeper.RemoveHookProgram(goCtx, msg.GetSigners()[0], msg.MarketId, msg.ProgramId)
	if err != nil {
		return nil, err
	}
	return &types.MsgWhitelistResponse{AllowedPrograms: wl.AllowedPrograms}, nil
}

// UpdateParams handles MsgUpdateParams.
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.UpdateParams(sdk.UnwrapSDKContext(goCtx), msg.Authority, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
