package types

import (
	"context"
	"fmt"
	"sort"
)

// TransferContext is what a transfer-hook program observes for one transfer.
type TransferContext struct {
	MarketId uint64
	Program  string
	Denom    string
	From     string
	To       string
	// Authority is the account that authorised the movement: the trader on
	// the in-leg, the market vault on the out-leg.
	Authority    string
	Amount       uint64
	Decimals     uint32
	HookAccounts []string
}

// TransferHook is an external callback program attached to an asset type. It
// is untrusted and runs only after the market whitelist admitted it; returning
// an error rejects the transfer.
type TransferHook interface {
	OnTransfer(ctx context.Context, tc TransferContext) error
}

// TransferHookFunc adapts a function to the TransferHook interface.
type TransferHookFunc func(ctx context.Context, tc TransferContext) error

// OnTransfer implements TransferHook.
func (f TransferHookFunc) OnTransfer(ctx context.Context, tc TransferContext) error {
	return f(ctx, tc)
}

// TransferHookRouter resolves program identifiers to their implementation.
type TransferHookRouter struct {
	routes map[string]TransferHook
	sealed bool
}

// NewTransferHookRouter creates an empty router.
func NewTransferHookRouter() *TransferHookRouter {
	return &TransferHookRouter{routes: make(map[string]TransferHook)}
}

// AddRoute registers a program. It panics on a sealed router or a duplicate id.
func (r *TransferHookRouter) AddRoute(programID string, hook TransferHook) *TransferHookRouter {
	if r.sealed {
		panic("transfer hook router is sealed")
	}
	if err := ValidateProgramID(programID); err != nil {
		panic(err)
	}
	if _, exists := r.routes[programID]; exists {
		panic(fmt.Sprintf("transfer hook program %s already registered", programID))
	}
	r.routes[programID] = hook
	return r
}

// GetRoute returns the hook registered for programID.
func (r *TransferHookRouter) GetRoute(programID string) (TransferHook, bool) {
	hook, ok := r.routes[programID]
	return hook, ok
}

// Programs lists registered program ids in sorted order.
func (r *TransferHookRouter) Programs() []string {
	out := make([]string, 0, len(r.routes))
	for id := range r.routes {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Seal prevents further registration.
func (r *TransferHookRouter) Seal() {
	r.sealed = true
}

// Sealed reports whether the router is sealed.
func (r *TransferHookRouter) Sealed() bool {
	return r.sealed
}

// AmmHooks lets other modules observe committed AMM state changes. A hook
// error voids the operation that triggered it.
type AmmHooks interface {
	AfterPoolCreated(ctx context.Context, marketID uint64, creator string, pool Pool) error
	AfterSwap(ctx context.Context, marketID uint64, trader, denomIn, denomOut string, amountIn, amountOut uint64) error
	AfterLiquidityChanged(ctx context.Context, marketID uint64, provider string, deltaA, deltaB uint64, isAdd bool) error
}

// MultiAmmHooks combines multiple AMM hooks into a single hook that calls all of them.
type MultiAmmHooks []AmmHooks

// NewMultiAmmHooks creates a new MultiAmmHooks from a list of hooks.
func NewMultiAmmHooks(hooks ...AmmHooks) MultiAmmHooks {
	return hooks
}

// AfterPoolCreated calls AfterPoolCreated on all registered hooks.
func (h MultiAmmHooks) AfterPoolCreated(ctx context.Context, marketID uint64, creator string, pool Pool) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterPoolCreated(ctx, marketID, creator, pool); err != nil {
			return err
		}
	}
	return nil
}

// AfterSwap calls AfterSwap on all registered hooks.
func (h MultiAmmHooks) AfterSwap(ctx context.Context, marketID uint64, trader, denomIn, denomOut string, amountIn, amountOut uint64) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterSwap(ctx, marketID, trader, denomIn, denomOut, amountIn, amountOut); err != nil {
			return err
		}
	}
	return nil
}

// AfterLiquidityChanged calls AfterLiquidityChanged on all registered hooks.
func (h MultiAmmHooks) AfterLiquidityChanged(ctx context.Context, marketID uint64, provider string, deltaA, deltaB uint64, isAdd bool) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterLiquidityChanged(ctx, marketID, provider, deltaA, deltaB, isAdd); err != nil {
			return err
		}
	}
	return nil
}
