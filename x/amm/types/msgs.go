package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgInitializeMarket creates a market config for an unordered denom pair.
// Zero fee fields select the params fee tier.
type MsgInitializeMarket struct {
	Authority      string `json:"authority"`
	DenomX         string `json:"denom_x"`
	DenomY         string `json:"denom_y"`
	FeeNumerator   uint64 `json:"fee_numerator"`
	FeeDenominator uint64 `json:"fee_denominator"`
}

type MsgInitializeMarketResponse struct {
	MarketId uint64 `json:"market_id"`
}

// MsgCreatePool seeds a market's pool with its first deposit.
type MsgCreatePool struct {
	Creator      string   `json:"creator"`
	DenomX       string   `json:"denom_x"`
	DenomY       string   `json:"denom_y"`
	AmountX      uint64   `json:"amount_x"`
	AmountY      uint64   `json:"amount_y"`
	HookAccounts []string `json:"hook_accounts,omitempty"`
}

type MsgCreatePoolResponse struct {
	MarketId uint64 `json:"market_id"`
	LpMinted uint64 `json:"lp_minted"`
}

// MsgSwap swaps AmountIn of DenomIn for at least MinAmountOut of DenomOut.
type MsgSwap struct {
	Trader       string   `json:"trader"`
	DenomIn      string   `json:"denom_in"`
	DenomOut     string   `json:"denom_out"`
	AmountIn     uint64   `json:"amount_in"`
	MinAmountOut uint64   `json:"min_amount_out"`
	HookAccounts []string `json:"hook_accounts,omitempty"`
}

type MsgSwapResponse struct {
	AmountOut uint64 `json:"amount_out"`
}

// MsgAddLiquidity deposits both assets of a market.
type MsgAddLiquidity struct {
	Provider     string   `json:"provider"`
	DenomX       string   `json:"denom_x"`
	DenomY       string   `json:"denom_y"`
	AmountX      uint64   `json:"amount_x"`
	AmountY      uint64   `json:"amount_y"`
	HookAccounts []string `json:"hook_accounts,omitempty"`
}

type MsgAddLiquidityResponse struct {
	LpMinted uint64 `json:"lp_minted"`
}

// MsgRemoveLiquidity burns LP units for a proportional share of both reserves.
type MsgRemoveLiquidity struct {
	Provider     string   `json:"provider"`
	DenomX       string   `json:"denom_x"`
	DenomY       string   `json:"denom_y"`
	LpAmount     uint64   `json:"lp_amount"`
	MinAmountX   uint64   `json:"min_amount_x"`
	MinAmountY   uint64   `json:"min_amount_y"`
	HookAccounts []string `json:"hook_accounts,omitempty"`
}

type MsgRemoveLiquidityResponse struct {
	AmountX uint64 `json:"amount_x"`
	AmountY uint64 `json:"amount_y"`
}

// MsgInitializeWhitelist creates an empty hook whitelist for a market.
type MsgInitializeWhitelist struct {
	Authority string `json:"authority"`
	MarketId  uint64 `json:"market_id"`
	Capacity  uint32 `json:"capacity"`
}

// MsgAddHookProgram whitelists a transfer-hook program.
type MsgAddHookProgram struct {
	Authority string `json:"authority"`
	MarketId  uint64 `json:"market_id"`
	ProgramId string `json:"program_id"`
}

// MsgRemoveHookProgram removes a transfer-hook program from the whitelist.
type MsgRemoveHookProgram struct {
	Authority string `json:"authority"`
	MarketId  uint64 `json:"market_id"`
	ProgramId string `json:"program_id"`
}

type MsgWhitelistResponse struct {
	AllowedPrograms []string `json:"allowed_programs"`
}

// MsgUpdateParams replaces the module params. Only the module authority may send it.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

func validateAddress(field, addr string) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return ErrInvalidAddress.Wrapf("invalid %s address (%s)", field, err)
	}
	return nil
}

func signer(addr string) []sdk.AccAddress {
	acc, err := sdk.AccAddressFromBech32(addr)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{acc}
}

// ValidateBasic performs stateless validation.
func (msg MsgInitializeMarket) ValidateBasic() error {
	if err := validateAddress("authority", msg.Authority); err != nil {
		return err
	}
	if err := ValidatePair(msg.DenomX, msg.DenomY); err != nil {
		return err
	}
	if msg.FeeNumerator == 0 && msg.FeeDenominator == 0 {
		return nil
	}
	return ValidateFee(msg.FeeNumerator, msg.FeeDenominator)
}

// GetSigners returns the expected signers.
func (msg MsgInitializeMarket) GetSigners() []sdk.AccAddress { return signer(msg.Authority) }

// ValidateBasic performs stateless validation.
func (msg MsgCreatePool) ValidateBasic() error {
	if err := validateAddress("creator", msg.Creator); err != nil {
		return err
	}
	if err := ValidatePair(msg.DenomX, msg.DenomY); err != nil {
		return err
	}
	if msg.AmountX == 0 || msg.AmountY == 0 {
		return ErrInvalidAmount.Wrap("initial deposits must be positive")
	}
	return nil
}

// GetSigners returns the expected signers.
func (msg MsgCreatePool) GetSigners() []sdk.AccAddress { return signer(msg.Creator) }

// ValidateBasic performs stateless validation.
func (msg MsgSwap) ValidateBasic() error {
	if err := validateAddress("trader", msg.Trader); err != nil {
		return err
	}
	if err := ValidatePair(msg.DenomIn, msg.DenomOut); err != nil {
		return err
	}
	if msg.AmountIn == 0 {
		return ErrInvalidAmount.Wrap("amount in must be positive")
	}
	return nil
}

// GetSigners returns the expected signers.
func (msg MsgSwap) GetSigners() []sdk.AccAddress { return signer(msg.Trader) }

// ValidateBasic performs stateless validation.
func (msg MsgAddLiquidity) ValidateBasic() error {
	if err := validateAddress("provider", msg.Provider); err != nil {
		return err
	}
	if err := ValidatePair(msg.DenomX, msg.DenomY); err != nil {
		return err
	}
	if msg.AmountX == 0 || msg.AmountY == 0 {
		return ErrInvalidAmount.Wrap("deposit amounts must be positive")
	}
	return nil
}

// GetSigners returns the expected signers.
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress { return signer(msg.Provider) }

// ValidateBasic performs stateless validation.
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if err := validateAddress("provider", msg.Provider); err != nil {
		return err
	}
	if err := ValidatePair(msg.DenomX, msg.DenomY); err != nil {
		return err
	}
	if msg.LpAmount == 0 {
		return ErrInvalidAmount.Wrap("lp amount must be positive")
	}
	return nil
}

// GetSigners returns the expected signers.
func (msg MsgRemoveLiquidity) GetSigners() []sdk.AccAddress { return signer(msg.Provider) }

// ValidateBasic performs stateless validation.
func (msg MsgInitializeWhitelist) ValidateBasic() error {
	if err := validateAddress("authority", msg.Authority); err != nil {
		return err
	}
	if msg.MarketId == 0 {
		return ErrMarketNotFound.Wrap("market id must be positive")
	}
	return nil
}

// GetSigners returns the expected signers.
func (msg MsgInitializeWhitelist) GetSigners() []sdk.AccAddress { return signer(msg.Authority) }

// ValidateBasic performs stateless validation.
func (msg MsgAddHookProgram) ValidateBasic() error {
	if err := validateAddress("authority", msg.Authority); err != nil {
		return err
	}
	if msg.MarketId == 0 {
		return ErrMarketNotFound.Wrap("market id must be positive")
	}
	return ValidateProgramID(msg.ProgramId)
}

// GetSigners returns the expected signers.
func (msg MsgAddHookProgram) GetSigners() []sdk.AccAddress { return signer(msg.Authority) }

// ValidateBasic performs stateless validation.
func (msg MsgRemoveHookProgram) ValidateBasic() error {
	if err := validateAddress("authority", msg.Authority); err != nil {
		return err
	}
	if msg.MarketId == 0 {
		return ErrMarketNotFound.Wrap("market id must be positive")
	}
	return ValidateProgramID(msg.ProgramId)
}

// GetSigners returns the expected signers.
func (msg MsgRemoveHookProgram) GetSigners() []sdk.AccAddress { return signer(msg.Authority) }

// ValidateBasic performs stateless validation.
func (msg MsgUpdateParams) ValidateBasic() error {
	if err := validateAddress("authority", msg.Authority); err != nil {
		return err
	}
	return msg.Params.Validate()
}

// GetSigners returns the expected signers.
func (msg MsgUpdateParams) GetSigners() []sdk.AccAddress { return signer(msg.Authority) }

// MsgServer is the AMM message service.
type MsgServer interface {
	InitializeMarket(context.Context, *MsgInitializeMarket) (*MsgInitializeMarketResponse, error)
	CreatePool(context.Context, *MsgCreatePool) (*MsgCreatePoolResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	InitializeWhitelist(context.Context, *MsgInitializeWhitelist) (*MsgWhitelistResponse, error)
	AddHookProgram(context.Context, *MsgAddHookProgram) (*MsgWhitelistResponse, error)
	RemoveHookProgram(context.Context, *MsgRemoveHookProgram) (*MsgWhitelistResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}
