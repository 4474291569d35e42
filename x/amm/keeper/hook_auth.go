package keeper

import (
	"context"

	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

// IsHookRequired returns the transfer-hook program registered for denom.
func (k Keeper) IsHookRequired(ctx context.Context, denom string) (string, bool) {
	meta, _ := k.GetAssetMetadata(ctx, denom)
	return meta.HookProgram()
}

// AuthorizeHook checks programID against the market whitelist. A market without
// a whitelist admits nothing.
func (k Keeper) AuthorizeHook(ctx context.Context, marketID uint64, programID string) error {
	wl, found := k.GetWhitelist(ctx, marketID)
	if !found {
		wl = types.NewHookWhitelist(marketID, 0)
	}
	if err := wl.Authorize(programID); err != nil {
		k.metrics.HookRejections.WithLabelValues(programID, "not_whitelisted").Inc()
		return err
	}
	return nil
}

// authorizeAssets checks every asset independently. Plain assets pass.
func (k Keeper) authorizeAssets(ctx context.Context, cfg types.PoolConfig, denoms ...string) error {
	for _, denom := range denoms {
		program, required := k.IsHookRequired(ctx, denom)
		if !required {
			continue
		}
		if err := k.AuthorizeHook(ctx, cfg.Id, program); err != nil {
			return err
		}
	}
	return nil
}

// ResolveHookAccounts returns the accounts passed to denom's hook: its
// registered extra accounts followed by the caller supplied ones, without
// duplicates. Plain assets need none.
func (k Keeper) ResolveHookAccounts(ctx context.Context, denom string, callerAccounts []string) []string {
	meta, _ := k.GetAssetMetadata(ctx, denom)
	if _, ok := meta.HookProgram(); !ok {
		return nil
	}

	seen := make(map[string]struct{}, len(meta.ExtraAccounts)+len(callerAccounts))
	resolved := make([]string, 0, len(meta.ExtraAccounts)+len(callerAccounts))
	for _, list := range [][]string{meta.ExtraAccounts, callerAccounts} {
		for _, acc := range list {
			if _, dup := seen[acc]; dup {
				continue
			}
			seen[acc] = struct{}{}
			resolved = append(resolved, acc)
		}
	}
	return resolved
}
