package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"cosmossdk.io/log"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/TanmayDhobale/token22AMM/x/amm/keeper"
	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

const complianceHook = "usdc-compliance-hook"

func writeGenesis(t *testing.T) string {
	t.Helper()

	gs := types.DefaultGenesis()
	gs.Assets = []types.AssetMetadata{
		{Denom: "uusdc", Decimals: 6, TransferHookProgram: complianceHook},
	}
	gs.Markets = []types.GenesisMarket{{
		Config: types.PoolConfig{
			Id:             1,
			Authority:      authtypes.NewModuleAddress("market-authority").String(),
			FeeNumerator:   25,
			FeeDenominator: 10_000,
			AssetA:         "uatom",
			AssetB:         "uusdc",
			Vault:          keeper.VaultAddress(1).String(),
			LpDenom:        types.LpDenom(1),
		},
		Pool: &types.Pool{
			MarketId: 1,
			AssetA:   "uatom",
			AssetB:   "uusdc",
			ReserveA: 1_000_000_000,
			ReserveB: 500_000_000,
			LpSupply: 1_000_000_000,
		},
		Whitelist: &types.HookWhitelist{MarketId: 1, Capacity: 4, AllowedPrograms: []string{complianceHook}},
	}}
	gs.NextMarketId = 2

	bz, err := json.Marshal(gs)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "genesis.json")
	require.NoError(t, os.WriteFile(path, bz, 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()
	return out.String(), err
}

func TestNewHostFundsGenesisPools(t *testing.T) {
	gs, err := ReadGenesis(writeGenesis(t))
	require.NoError(t, err)

	host, err := NewHost(log.NewNopLogger(), gs)
	require.NoError(t, err)

	vault := keeper.VaultAddress(1)
	require.Equal(t, uint64(1_000_000_000), host.Bank.GetBalance(host.Ctx, vault, "uatom").Amount.Uint64())
	require.Equal(t, uint64(500_000_000), host.Bank.GetBalance(host.Ctx, vault, "uusdc").Amount.Uint64())
	require.Equal(t, uint64(1_000_000_000), host.Bank.GetSupply(host.Ctx, types.LpDenom(1)).Amount.Uint64())
	require.Equal(t, uint64(1_000_000_000), host.Bank.GetBalance(host.Ctx, genesisHolder, types.LpDenom(1)).Amount.Uint64())
}

func TestValidateGenesis(t *testing.T) {
	out, err := run(t, "validate-genesis", writeGenesis(t))
	require.NoError(t, err)
	require.Contains(t, out, "genesis valid: 1 markets, 1 pools, 1 assets")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"params":{},"next_market_id":1}`), 0o600))
	_, err = run(t, "validate-genesis", bad)
	require.ErrorIs(t, err, types.ErrInvalidParams)
}

func TestQuote(t *testing.T) {
	genesis := writeGenesis(t)

	for _, pair := range [][2]string{{"uatom", "uusdc"}, {"uusdc", "uatom"}} {
		out, err := run(t, "quote", pair[0], pair[1], "1000000", "--genesis", genesis)
		require.NoError(t, err)

		var q quoteOutput
		require.NoError(t, json.Unmarshal([]byte(out), &q))
		require.Equal(t, uint64(1), q.MarketId)
		if pair[0] == "uatom" {
			require.Equal(t, uint64(498_252), q.AmountOut)
		} else {
			require.Equal(t, uint64(1_991_027), q.AmountOut)
		}
	}

	_, err := run(t, "quote", "uatom", "uusdc", "1000000")
	require.Error(t, err)
}

func TestSwap(t *testing.T) {
	out, err := run(t, "swap", "uatom", "uusdc", "1000000",
		"--genesis", writeGenesis(t),
		"--min-out", "498252",
		"--hook-accounts", "kyc-registry")
	require.NoError(t, err)

	var res swapOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, uint64(498_252), res.AmountOut)
	require.Equal(t, uint64(1_001_000_000), res.Pool.ReserveA)
	require.Equal(t, uint64(500_000_000-498_252), res.Pool.ReserveB)

	require.Len(t, res.HookCalls, 1)
	require.Equal(t, complianceHook, res.HookCalls[0].Program)
	require.Equal(t, "uusdc", res.HookCalls[0].Denom)
	require.Equal(t, []string{"kyc-registry"}, res.HookCalls[0].HookAccounts)
}

func TestSwapMinOutFromEnvironment(t *testing.T) {
	t.Setenv("AMMSIM_MIN_OUT", "498253")
	_, err := run(t, "swap", "uatom", "uusdc", "1000000", "--genesis", writeGenesis(t))
	require.ErrorIs(t, err, types.ErrInsufficientOutputAmount)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ammsim.toml")
	require.NoError(t, os.WriteFile(path, []byte("genesis = \"/tmp/g.json\"\nmin-out = 7\nlog-level = \"debug\"\n"), 0o600))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	require.Equal(t, "/tmp/g.json", cfg.Genesis)
	require.Equal(t, uint64(7), cfg.MinOut)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "ammsim-trader", cfg.Trader)

	_, err = Config{LogLevel: "loud"}.NewLogger()
	require.Error(t, err)
}
