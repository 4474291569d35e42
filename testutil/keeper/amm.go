package keeper

import (
	"context"
	"sync"
	"testing"

	"cosmossdk.io/log"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	"github.com/stretchr/testify/require"

	"github.com/TanmayDhobale/token22AMM/app"
	"github.com/TanmayDhobale/token22AMM/x/amm/keeper"
	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

// AmmKeeper creates a test keeper for the AMM module backed by x/bank and
// no transfer hook programs.
func AmmKeeper(t testing.TB) (*keeper.Keeper, sdk.Context, bankkeeper.BaseKeeper) {
	return AmmKeeperWithHooks(t, nil)
}

// AmmKeeperWithHooks creates a test keeper whose transfer hook router serves
// the given programs.
func AmmKeeperWithHooks(t testing.TB, programs map[string]types.TransferHook) (*keeper.Keeper, sdk.Context, bankkeeper.BaseKeeper) {
	router := types.NewTransferHookRouter()
	for id, hook := range programs {
		router.AddRoute(id, hook)
	}

	chain, err := app.NewChain(log.NewNopLogger(), cmtproto.Header{}, router)
	require.NoError(t, err)
	require.NoError(t, chain.AmmKeeper.InitGenesis(chain.Ctx, *types.DefaultGenesis()))

	return chain.AmmKeeper, chain.Ctx, chain.BankKeeper
}

// Authority returns the module params authority used by test keepers.
func Authority() sdk.AccAddress {
	return app.Authority()
}

// TestAddr returns a deterministic 20 byte address derived from name.
func TestAddr(name string) sdk.AccAddress {
	bz := make([]byte, 20)
	copy(bz, name)
	return sdk.AccAddress(bz)
}

// RecordingHook is a transfer hook program that records every invocation.
// Reject, when set, is returned from every call; OnCall overrides it.
type RecordingHook struct {
	mu     sync.Mutex
	calls  []types.TransferContext
	Reject error
	OnCall func(ctx context.Context, tc types.TransferContext) error
}

// OnTransfer implements types.TransferHook.
func (h *RecordingHook) OnTransfer(ctx context.Context, tc types.TransferContext) error {
	h.mu.Lock()
	h.calls = append(h.calls, tc)
	h.mu.Unlock()

	if h.OnCall != nil {
		return h.OnCall(ctx, tc)
	}
	return h.Reject
}

// Calls returns a copy of the recorded invocations.
func (h *RecordingHook) Calls() []types.TransferContext {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]types.TransferContext(nil), h.calls...)
}

// Reset forgets recorded invocations.
func (h *RecordingHook) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = nil
}
