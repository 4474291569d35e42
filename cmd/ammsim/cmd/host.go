package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"

	"github.com/TanmayDhobale/token22AMM/app"
	"github.com/TanmayDhobale/token22AMM/x/amm/keeper"
	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

// genesisHolder owns the LP units that back genesis pools.
var genesisHolder = authtypes.NewModuleAddress("ammsim/genesis")

// HookCall is one transfer hook invocation observed by the simulator.
type HookCall struct {
	Program      string   `json:"program"`
	Denom        string   `json:"denom"`
	From         string   `json:"from"`
	To           string   `json:"to"`
	Amount       uint64   `json:"amount"`
	HookAccounts []string `json:"hook_accounts,omitempty"`
}

// allowAllHook approves every transfer and records it.
type allowAllHook struct {
	mu    sync.Mutex
	calls []HookCall
}

func (h *allowAllHook) OnTransfer(_ context.Context, tc types.TransferContext) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, HookCall{
		Program:      tc.Program,
		Denom:        tc.Denom,
		From:         tc.From,
		To:           tc.To,
		Amount:       tc.Amount,
		HookAccounts: tc.HookAccounts,
	})
	return nil
}

func (h *allowAllHook) Calls() []HookCall {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]HookCall(nil), h.calls...)
}

// Host is an in-memory chain holding one amm keeper and the bank it settles
// through.
type Host struct {
	Keeper *keeper.Keeper
	Bank   bankkeeper.BaseKeeper
	Ctx    sdk.Context

	hook *allowAllHook
}

// ReadGenesis decodes and validates a genesis file.
func ReadGenesis(path string) (types.GenesisState, error) {
	var gs types.GenesisState
	bz, err := os.ReadFile(path)
	if err != nil {
		return gs, err
	}
	if err := json.Unmarshal(bz, &gs); err != nil {
		return gs, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := gs.Validate(); err != nil {
		return gs, err
	}
	return gs, nil
}

// NewHost boots a host from gs. Vaults and LP supplies are funded to match the
// genesis pools, and every hook program named by an asset is served by an
// allow-all hook.
func NewHost(logger log.Logger, gs types.GenesisState) (*Host, error) {
	hook := &allowAllHook{}
	router := types.NewTransferHookRouter()
	seen := make(map[string]struct{})
	for _, asset := range gs.Assets {
		program, ok := asset.HookProgram()
		if !ok {
			continue
		}
		if _, dup := seen[program]; dup {
			continue
		}
		seen[program] = struct{}{}
		router.AddRoute(program, hook)
	}

	chain, err := app.NewChain(logger, cmtproto.Header{ChainID: "ammsim", Time: time.Now().UTC()}, router)
	if err != nil {
		return nil, err
	}
	k, bank, ctx := chain.AmmKeeper, chain.BankKeeper, chain.Ctx

	if err := k.InitGenesis(ctx, gs); err != nil {
		return nil, err
	}
	for _, m := range gs.Markets {
		if m.Pool == nil || !m.Pool.IsActive() {
			continue
		}
		vault, err := sdk.AccAddressFromBech32(m.Config.Vault)
		if err != nil {
			return nil, fmt.Errorf("market %d vault: %w", m.Config.Id, err)
		}
		reserves := sdk.NewCoins(
			sdk.NewCoin(m.Pool.AssetA, math.NewIntFromUint64(m.Pool.ReserveA)),
			sdk.NewCoin(m.Pool.AssetB, math.NewIntFromUint64(m.Pool.ReserveB)),
		)
		if err := app.FundAccount(ctx, bank, vault, reserves); err != nil {
			return nil, fmt.Errorf("fund market %d vault: %w", m.Config.Id, err)
		}
		lp := sdk.NewCoins(sdk.NewCoin(m.Config.LpDenom, math.NewIntFromUint64(m.Pool.LpSupply)))
		if err := app.FundAccount(ctx, bank, genesisHolder, lp); err != nil {
			return nil, fmt.Errorf("issue market %d lp: %w", m.Config.Id, err)
		}
	}

	if msg, broken := keeper.AllInvariants(*k)(ctx); broken {
		return nil, fmt.Errorf("genesis breaks invariants: %s", msg)
	}
	logger.Info("host booted", "markets", len(gs.Markets), "hook_programs", len(seen))

	return &Host{Keeper: k, Bank: bank, Ctx: ctx, hook: hook}, nil
}

// HookCalls returns the transfer hook invocations seen so far.
func (h *Host) HookCalls() []HookCall {
	return h.hook.Calls()
}
