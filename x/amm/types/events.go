package types

// Event types for the AMM module
const (
	EventTypeMarketInitialized    = "market_initialized"
	EventTypePoolCreated          = "pool_created"
	EventTypeSwap                 = "swap"
	EventTypeAddLiquidity         = "add_liquidity"
	EventTypeRemoveLiquidity      = "remove_liquidity"
	EventTypeWhitelistInitialized = "whitelist_initialized"
	EventTypeHookProgramAdded     = "hook_program_added"
	EventTypeHookProgramRemoved   = "hook_program_removed"
	EventTypeHookInvoked          = "transfer_hook_invoked"
	EventTypeParamsUpdated        = "params_updated"
)

// Event attribute keys
const (
	AttributeKeyMarketID  = "market_id"
	AttributeKeyAuthority = "authority"
	AttributeKeyAssetA    = "asset_a"
	AttributeKeyAssetB    = "asset_b"
	AttributeKeyFee       = "fee"
	AttributeKeyCreator   = "creator"
	AttributeKeyTrader    = "trader"
	AttributeKeyProvider  = "provider"
	AttributeKeyDenomIn   = "denom_in"
	AttributeKeyDenomOut  = "denom_out"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyAmountA   = "amount_a"
	AttributeKeyAmountB   = "amount_b"
	AttributeKeyLpAmount  = "lp_amount"
	AttributeKeyReserveA  = "reserve_a"
	AttributeKeyReserveB  = "reserve_b"
	AttributeKeyProgram   = "program"
	AttributeKeyDenom     = "denom"
	AttributeKeyLeg       = "leg"
)
