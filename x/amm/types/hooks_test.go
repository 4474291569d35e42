package types_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

func TestTransferHookRouter(t *testing.T) {
	router := types.NewTransferHookRouter()
	noop := types.TransferHookFunc(func(context.Context, types.TransferContext) error { return nil })

	router.AddRoute("hook-b", noop).AddRoute("hook-a", noop)
	require.Equal(t, []string{"hook-a", "hook-b"}, router.Programs())

	_, ok := router.GetRoute("hook-a")
	require.True(t, ok)
	_, ok = router.GetRoute("missing")
	require.False(t, ok)

	require.Panics(t, func() { router.AddRoute("hook-a", noop) })
	require.Panics(t, func() { router.AddRoute("", noop) })

	router.Seal()
	require.True(t, router.Sealed())
	require.Panics(t, func() { router.AddRoute("hook-c", noop) })
}

type countingHooks struct {
	swaps int
	err   error
}

func (h *countingHooks) AfterPoolCreated(context.Context, uint64, string, types.Pool) error {
	return h.err
}

func (h *countingHooks) AfterSwap(context.Context, uint64, string, string, string, uint64, uint64) error {
	h.swaps++
	return h.err
}

func (h *countingHooks) AfterLiquidityChanged(context.Context, uint64, string, uint64, uint64, bool) error {
	return h.err
}

func TestMultiAmmHooks(t *testing.T) {
	first, second := &countingHooks{}, &countingHooks{}
	hooks := types.NewMultiAmmHooks(first, nil, second)

	require.NoError(t, hooks.AfterSwap(context.Background(), 1, "t", "a", "b", 1, 1))
	require.Equal(t, 1, first.swaps)
	require.Equal(t, 1, second.swaps)

	first.err = errors.New("stop")
	require.Error(t, hooks.AfterSwap(context.Background(), 1, "t", "a", "b", 1, 1))
	require.Equal(t, 1, second.swaps)
}
