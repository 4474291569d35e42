package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrInvalidAmount            = errors.Register(ModuleName, 2, "invalid amount")
	ErrInsufficientLiquidity    = errors.Register(ModuleName, 3, "insufficient liquidity in pool")
	ErrInsufficientOutputAmount = errors.Register(ModuleName, 4, "output amount less than minimum required")
	ErrMathOverflow             = errors.Register(ModuleName, 5, "arithmetic overflow")
	ErrHookNotWhitelisted       = errors.Register(ModuleName, 6, "transfer hook program not whitelisted")
	ErrTransferFailed           = errors.Register(ModuleName, 7, "transfer failed")
	ErrTransferNotAllowed       = errors.Register(ModuleName, 8, "transfer rejected by hook program")
	ErrUnauthorized             = errors.Register(ModuleName, 9, "unauthorized")
	ErrInvalidFee               = errors.Register(ModuleName, 10, "invalid fee")
	ErrInvalidTokenPair         = errors.Register(ModuleName, 11, "invalid token pair")
	ErrMarketNotFound           = errors.Register(ModuleName, 12, "market not found")
	ErrMarketAlreadyExists      = errors.Register(ModuleName, 13, "market already exists")
	ErrPoolNotInitialized       = errors.Register(ModuleName, 14, "pool not initialized")
	ErrPoolAlreadyInitialized   = errors.Register(ModuleName, 15, "pool already initialized")
	ErrInvalidWhitelist         = errors.Register(ModuleName, 16, "invalid whitelist")
	ErrWhitelistFull            = errors.Register(ModuleName, 17, "whitelist capacity reached")
	ErrReentrancy               = errors.Register(ModuleName, 18, "reentrancy detected")
	ErrInvalidAddress           = errors.Register(ModuleName, 19, "invalid address")
	ErrInvalidGenesis           = errors.Register(ModuleName, 20, "invalid genesis state")
	ErrInvalidParams            = errors.Register(ModuleName, 21, "invalid params")
	ErrInvalidHookProgram       = errors.Register(ModuleName, 22, "invalid hook program")
)
