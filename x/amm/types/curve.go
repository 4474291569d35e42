package types

import (
	"lukechampine.com/uint128"
)

// ComputeOutput prices a constant-product swap:
//
//	in_eff = amount_in * (fee_den - fee_num)
//	out    = floor(in_eff * reserve_out / (reserve_in * fee_den + in_eff))
//
// Intermediates are 128 bits wide; any step that does not fit fails with
// ErrMathOverflow. The caller enforces out < reserve_out.
func ComputeOutput(amountIn, reserveIn, reserveOut, feeNum, feeDen uint64) (uint64, error) {
	if amountIn == 0 {
		return 0, ErrInvalidAmount.Wrap("amount in must be positive")
	}
	if reserveIn == 0 || reserveOut == 0 {
		return 0, ErrInsufficientLiquidity.Wrap("pool reserves must be positive")
	}
	if feeDen == 0 || feeNum >= feeDen {
		return 0, ErrInvalidFee.Wrapf("fee %d/%d", feeNum, feeDen)
	}

	amountInEff, err := checkedMul(uint128.From64(amountIn), uint128.From64(feeDen-feeNum))
	if err != nil {
		return 0, err
	}
	numerator, err := checkedMul(amountInEff, uint128.From64(reserveOut))
	if err != nil {
		return 0, err
	}
	scaledReserve, err := checkedMul(uint128.From64(reserveIn), uint128.From64(feeDen))
	if err != nil {
		return 0, err
	}
	denominator, err := checkedAdd(scaledReserve, amountInEff)
	if err != nil {
		return 0, err
	}

	out := numerator.Div(denominator)
	if out.Hi != 0 {
		return 0, ErrMathOverflow.Wrap("amount out exceeds 64 bits")
	}
	return out.Lo, nil
}

// ProportionalShare returns floor(amount * numerator / denominator) with a
// 128-bit intermediate.
func ProportionalShare(amount, numerator, denominator uint64) (uint64, error) {
	share, err := wideShare(amount, numerator, denominator)
	if err != nil {
		return 0, err
	}
	return narrow(share, "share of %d * %d / %d", amount, numerator, denominator)
}

// wideShare is amount * numerator / denominator without narrowing. The
// product of two 64 bit values always fits 128 bits.
func wideShare(amount, numerator, denominator uint64) (uint128.Uint128, error) {
	if denominator == 0 {
		return uint128.Zero, ErrInsufficientLiquidity.Wrap("zero denominator")
	}
	return uint128.From64(amount).Mul64(numerator).Div64(denominator), nil
}

func narrow(v uint128.Uint128, format string, args ...any) (uint64, error) {
	if v.Hi != 0 {
		return 0, ErrMathOverflow.Wrapf(format+" exceeds 64 bits", args...)
	}
	return v.Lo, nil
}

// SafeAdd returns a + b or ErrMathOverflow.
func SafeAdd(a, b uint64) (uint64, error) {
	s := a + b
	if s < a {
		return 0, ErrMathOverflow.Wrapf("%d + %d", a, b)
	}
	return s, nil
}

// SafeSub returns a - b or ErrMathOverflow when b > a.
func SafeSub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, ErrMathOverflow.Wrapf("%d - %d", a, b)
	}
	return a - b, nil
}

func checkedAdd(a, b uint128.Uint128) (uint128.Uint128, error) {
	s := a.AddWrap(b)
	if s.Cmp(a) < 0 {
		return uint128.Zero, ErrMathOverflow.Wrapf("%s + %s", a, b)
	}
	return s, nil
}

func checkedMul(a, b uint128.Uint128) (uint128.Uint128, error) {
	if a.IsZero() || b.IsZero() {
		return uint128.Zero, nil
	}
	p := a.MulWrap(b)
	if !p.Div(a).Equals(b) {
		return uint128.Zero, ErrMathOverflow.Wrapf("%s * %s", a, b)
	}
	return p, nil
}
