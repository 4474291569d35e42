package keeper

import (
	"context"
	"fmt"
	"sync"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

// ReentrancyGuard holds in-memory locks keyed by market.
type ReentrancyGuard struct {
	mu    sync.Mutex
	locks map[string]string
}

// NewReentrancyGuard creates a new guard instance.
func NewReentrancyGuard() *ReentrancyGuard {
	return &ReentrancyGuard{locks: make(map[string]string)}
}

// Lock acquires a named lock or returns ErrReentrancy if already held.
func (g *ReentrancyGuard) Lock(key, operation string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if holder, exists := g.locks[key]; exists {
		return types.ErrReentrancy.Wrapf("%s on %s while %s is in progress", operation, key, holder)
	}

	g.locks[key] = operation
	return nil
}

// Unlock releases a named lock.
func (g *ReentrancyGuard) Unlock(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.locks, key)
}

// Held reports whether key is locked.
func (g *ReentrancyGuard) Held(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.locks[key]
	return ok
}

func marketLockKey(marketID uint64) string {
	return fmt.Sprintf("market/%d", marketID)
}

// withMarketLock runs fn as one atomic unit against a market. The market lock
// is held for the whole invocation, so a transfer hook cannot re-enter any
// mutating operation on the same market. State written by fn, coin movements
// included, is committed only when fn returns nil.
func (k Keeper) withMarketLock(ctx context.Context, marketID uint64, operation string, fn func(ctx sdk.Context) error) error {
	key := marketLockKey(marketID)
	if err := k.guard.Lock(key, operation); err != nil {
		return err
	}
	defer k.guard.Unlock(key)

	return k.executeAtomic(ctx, fn)
}

// executeAtomic runs fn in a cache context that is written back only on success.
func (k Keeper) executeAtomic(ctx context.Context, fn func(ctx sdk.Context) error) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeFn := sdkCtx.CacheContext()

	if err := fn(cacheCtx); err != nil {
		return err
	}

	writeFn()
	return nil
}
