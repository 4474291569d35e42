package types

// Pool is the mutable reserve state of one market. AssetA < AssetB always.
type Pool struct {
	MarketId uint64 `json:"market_id"`
	AssetA   string `json:"asset_a"`
	AssetB   string `json:"asset_b"`
	ReserveA uint64 `json:"reserve_a"`
	ReserveB uint64 `json:"reserve_b"`
	LpSupply uint64 `json:"lp_supply"`
}

// NewPool seeds a pool from its first deposit. LP supply starts equal to the
// asset A deposit.
func NewPool(cfg PoolConfig, reserveA, reserveB uint64) (Pool, error) {
	if reserveA == 0 || reserveB == 0 {
		return Pool{}, ErrInvalidAmount.Wrap("initial reserves must be positive")
	}
	return Pool{
		MarketId: cfg.Id,
		AssetA:   cfg.AssetA,
		AssetB:   cfg.AssetB,
		ReserveA: reserveA,
		ReserveB: reserveB,
		LpSupply: reserveA,
	}, nil
}

// Validate checks the reserve invariants of the pool.
func (p Pool) Validate() error {
	if !IsCanonical(p.AssetA, p.AssetB) {
		return ErrInvalidTokenPair.Wrapf("pool %d assets %s/%s are not in canonical order", p.MarketId, p.AssetA, p.AssetB)
	}
	if p.LpSupply > 0 && (p.ReserveA == 0 || p.ReserveB == 0) {
		return ErrInsufficientLiquidity.Wrapf("pool %d has lp supply %d with reserves %d/%d", p.MarketId, p.LpSupply, p.ReserveA, p.ReserveB)
	}
	if p.LpSupply == 0 && (p.ReserveA != 0 || p.ReserveB != 0) {
		return ErrInsufficientLiquidity.Wrapf("pool %d holds reserves without lp supply", p.MarketId)
	}
	return nil
}

// IsActive reports whether the pool holds liquidity.
func (p Pool) IsActive() bool {
	return p.LpSupply > 0
}

// Reserves returns (reserve of denomIn, reserve of the other side).
func (p Pool) Reserves(denomIn string) (reserveIn, reserveOut uint64, inIsA bool, err error) {
	switch denomIn {
	case p.AssetA:
		return p.ReserveA, p.ReserveB, true, nil
	case p.AssetB:
		return p.ReserveB, p.ReserveA, false, nil
	default:
		return 0, 0, false, ErrInvalidTokenPair.Wrapf("%s is not traded in pool %d", denomIn, p.MarketId)
	}
}

// QuoteSwap prices a swap against the pool without mutating it.
func (p Pool) QuoteSwap(cfg PoolConfig, denomIn string, amountIn uint64) (uint64, error) {
	reserveIn, reserveOut, _, err := p.Reserves(denomIn)
	if err != nil {
		return 0, err
	}
	if !p.IsActive() {
		return 0, ErrInsufficientLiquidity.Wrapf("pool %d is empty", p.MarketId)
	}
	amountOut, err := ComputeOutput(amountIn, reserveIn, reserveOut, cfg.FeeNumerator, cfg.FeeDenominator)
	if err != nil {
		return 0, err
	}
	if amountOut >= reserveOut {
		return 0, ErrInsufficientLiquidity.Wrapf("output %d would drain reserve %d", amountOut, reserveOut)
	}
	return amountOut, nil
}

// ApplySwap returns the pool after swapping amountIn of denomIn, and the amount
// paid out. The receiver is not modified.
func (p Pool) ApplySwap(cfg PoolConfig, denomIn string, amountIn, minAmountOut uint64) (Pool, uint64, error) {
	reserveIn, reserveOut, inIsA, err := p.Reserves(denomIn)
	if err != nil {
		return p, 0, err
	}
	if !p.IsActive() {
		return p, 0, ErrInsufficientLiquidity.Wrapf("pool %d is empty", p.MarketId)
	}

	amountOut, err := ComputeOutput(amountIn, reserveIn, reserveOut, cfg.FeeNumerator, cfg.FeeDenominator)
	if err != nil {
		return p, 0, err
	}
	if amountOut < minAmountOut {
		return p, 0, ErrInsufficientOutputAmount.Wrapf("got %d, minimum %d", amountOut, minAmountOut)
	}
	if amountOut >= reserveOut {
		return p, 0, ErrInsufficientLiquidity.Wrapf("output %d would drain reserve %d", amountOut, reserveOut)
	}
	if amountOut == 0 {
		return p, 0, ErrInsufficientOutputAmount.Wrapf("input %d rounds to zero output", amountIn)
	}

	newIn, err := SafeAdd(reserveIn, amountIn)
	if err != nil {
		return p, 0, err
	}
	newOut, err := SafeSub(reserveOut, amountOut)
	if err != nil {
		return p, 0, err
	}

	next := p
	if inIsA {
		next.ReserveA, next.ReserveB = newIn, newOut
	} else {
		next.ReserveB, next.ReserveA = newIn, newOut
	}
	return next, amountOut, nil
}

// ApplyAddLiquidity returns the pool after depositing (amountA, amountB) in
// canonical order, and the LP units minted for it. An imbalanced deposit mints
// the smaller of the two proportional shares.
func (p Pool) ApplyAddLiquidity(amountA, amountB uint64) (Pool, uint64, error) {
	if amountA == 0 || amountB == 0 {
		return p, 0, ErrInvalidAmount.Wrap("both deposit amounts must be positive")
	}

	var minted uint64
	if p.LpSupply == 0 {
		minted = amountA
	} else {
		shareA, err := wideShare(amountA, p.LpSupply, p.ReserveA)
		if err != nil {
			return p, 0, err
		}
		shareB, err := wideShare(amountB, p.LpSupply, p.ReserveB)
		if err != nil {
			return p, 0, err
		}
		// only the binding share is minted, so only it has to fit
		if shareB.Cmp(shareA) < 0 {
			shareA = shareB
		}
		if minted, err = narrow(shareA, "minted lp units"); err != nil {
			return p, 0, err
		}
	}
	if minted == 0 {
		return p, 0, ErrInvalidAmount.Wrap("deposit too small to mint lp units")
	}

	next := p
	var err error
	if next.ReserveA, err = SafeAdd(p.ReserveA, amountA); err != nil {
		return p, 0, err
	}
	if next.ReserveB, err = SafeAdd(p.ReserveB, amountB); err != nil {
		return p, 0, err
	}
	if next.LpSupply, err = SafeAdd(p.LpSupply, minted); err != nil {
		return p, 0, err
	}
	return next, minted, nil
}

// ApplyRemoveLiquidity returns the pool after burning lpAmount units and the
// canonical-order payouts. Burning the whole supply empties the pool.
func (p Pool) ApplyRemoveLiquidity(lpAmount, minA, minB uint64) (Pool, uint64, uint64, error) {
	if lpAmount == 0 {
		return p, 0, 0, ErrInvalidAmount.Wrap("lp amount must be positive")
	}
	if lpAmount > p.LpSupply {
		return p, 0, 0, ErrInsufficientLiquidity.Wrapf("lp amount %d exceeds supply %d", lpAmount, p.LpSupply)
	}

	outA, err := ProportionalShare(lpAmount, p.ReserveA, p.LpSupply)
	if err != nil {
		return p, 0, 0, err
	}
	outB, err := ProportionalShare(lpAmount, p.ReserveB, p.LpSupply)
	if err != nil {
		return p, 0, 0, err
	}
	if outA == 0 || outB == 0 {
		return p, 0, 0, ErrInvalidAmount.Wrapf("burning %d lp units pays nothing", lpAmount)
	}
	if outA < minA || outB < minB {
		return p, 0, 0, ErrInsufficientOutputAmount.Wrapf("got %d/%d, minimum %d/%d", outA, outB, minA, minB)
	}

	next := p
	if next.ReserveA, err = SafeSub(p.ReserveA, outA); err != nil {
		return p, 0, 0, err
	}
	if next.ReserveB, err = SafeSub(p.ReserveB, outB); err != nil {
		return p, 0, 0, err
	}
	if next.LpSupply, err = SafeSub(p.LpSupply, lpAmount); err != nil {
		return p, 0, 0, err
	}
	if next.LpSupply > 0 && (next.ReserveA == 0 || next.ReserveB == 0) {
		return p, 0, 0, ErrInsufficientLiquidity.Wrap("withdrawal would drain a reserve")
	}
	return next, outA, outB, nil
}
