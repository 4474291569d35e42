package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/TanmayDhobale/token22AMM/testutil/keeper"
	"github.com/TanmayDhobale/token22AMM/x/amm/keeper"
	"github.com/TanmayDhobale/token22AMM/x/amm/types"
)

func (s *KeeperTestSuite) TestSwapMovesFundsAndReserves() {
	cfg := s.seedPool()
	keepertest.FundAccount(s.T(), s.ctx, s.bank, s.trader, 1_000_000, denomAtom)

	out, err := s.keeper.Swap(s.ctx, s.trader, denomAtom, denomUsdc, 1_000_000, 0, nil)
	s.Require().NoError(err)
	s.Require().Equal(uint64(498_252), out)

	s.Require().Equal(uint64(0), s.balance(s.trader, denomAtom))
	s.Require().Equal(uint64(498_252), s.balance(s.trader, denomUsdc))

	pool := s.pool(cfg)
	s.Require().Equal(uint64(1_001_000_000), pool.ReserveA)
	s.Require().Equal(uint64(500_000_000-498_252), pool.ReserveB)

	vault := keeper.VaultAddress(cfg.Id)
	s.Require().Equal(pool.ReserveA, s.balance(vault, denomAtom))
	s.Require().Equal(pool.ReserveB, s.balance(vault, denomUsdc))

	var found bool
	for _, ev := range s.ctx.EventManager().Events() {
		if ev.Type != types.EventTypeSwap {
			continue
		}
		for _, attr := range ev.Attributes {
			if attr.Key == types.AttributeKeyAmountOut && attr.Value == "498252" {
				found = true
			}
		}
	}
	s.Require().True(found, "swap event not emitted")
}

func (s *KeeperTestSuite) TestQuoteIsOrderIndependent() {
	s.seedPool()

	q1, err := s.keeper.Quote(s.ctx, denomAtom, denomUsdc, 1_000_000)
	s.Require().NoError(err)
	s.Require().Equal(uint64(498_252), q1)

	// same market whichever way the caller names it
	q2, err := s.keeper.Quote(s.ctx, denomUsdc, denomAtom, 1_000_000)
	s.Require().NoError(err)
	s.Require().Equal(uint64(1_991_027), q2)

	keepertest.FundAccount(s.T(), s.ctx, s.bank, s.trader, 1_000_000, denomUsdc)
	out, err := s.keeper.Swap(s.ctx, s.trader, denomUsdc, denomAtom, 1_000_000, 0, nil)
	s.Require().NoError(err)
	s.Require().Equal(q2, out)
}

func (s *KeeperTestSuite) TestSwapSlippageBoundary() {
	cfg := s.seedPool()
	keepertest.FundAccount(s.T(), s.ctx, s.bank, s.trader, 2_000_000, denomAtom)

	_, err := s.keeper.Swap(s.ctx, s.trader, denomAtom, denomUsdc, 1_000_000, 498_253, nil)
	s.Require().ErrorIs(err, types.ErrInsufficientOutputAmount)
	s.Require().Equal(uint64(1_000_000_000), s.pool(cfg).ReserveA)
	s.Require().Equal(uint64(2_000_000), s.balance(s.trader, denomAtom))

	out, err := s.keeper.Swap(s.ctx, s.trader, denomAtom, denomUsdc, 1_000_000, 498_252, nil)
	s.Require().NoError(err)
	s.Require().Equal(uint64(498_252), out)
}

func (s *KeeperTestSuite) TestSwapFailsWithoutFunds() {
	cfg := s.seedPool()
	before := s.pool(cfg)

	_, err := s.keeper.Swap(s.ctx, s.trader, denomAtom, denomUsdc, 1_000_000, 0, nil)
	s.Require().ErrorIs(err, types.ErrTransferFailed)
	s.Require().Equal(before, s.pool(cfg))
	s.Require().Equal(uint64(0), s.balance(s.trader, denomUsdc))
}

func (s *KeeperTestSuite) TestSwapInputValidation() {
	s.seedPool()

	_, err := s.keeper.Swap(s.ctx, s.trader, denomAtom, denomUsdc, 0, 0, nil)
	s.Require().ErrorIs(err, types.ErrInvalidAmount)

	_, err = s.keeper.Swap(s.ctx, s.trader, denomAtom, denomAtom, 10, 0, nil)
	s.Require().ErrorIs(err, types.ErrInvalidTokenPair)

	_, err = s.keeper.Swap(s.ctx, s.trader, denomAtom, "uosmo", 10, 0, nil)
	s.Require().ErrorIs(err, types.ErrMarketNotFound)

	_, err = s.keeper.InitializeMarket(s.ctx, s.authority, denomAtom, "uosmo", 0, 0)
	s.Require().NoError(err)
	_, err = s.keeper.Swap(s.ctx, s.trader, denomAtom, "uosmo", 10, 0, nil)
	s.Require().ErrorIs(err, types.ErrPoolNotInitialized)
}

func TestSwapOverflowIsRejected(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	cfg, _ := keepertest.CreateTestPool(t, k, ctx, bank, denomAtom, denomUsdc, 1, ^uint64(0))
	trader := keepertest.TestAddr("trader")
	keepertest.FundAccount(t, ctx, bank, trader, ^uint64(0), denomAtom)

	_, err := k.Swap(ctx, trader, denomAtom, denomUsdc, ^uint64(0), 0, nil)
	require.ErrorIs(t, err, types.ErrMathOverflow)

	pool, found := k.GetPool(ctx, cfg.Id)
	require.True(t, found)
	require.Equal(t, uint64(1), pool.ReserveA)
}
