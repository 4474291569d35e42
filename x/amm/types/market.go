package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PoolConfig is the immutable per-market configuration. Pool and HookWhitelist
// refer to it by Id.
type PoolConfig struct {
	Id             uint64 `json:"id"`
	Authority      string `json:"authority"`
	FeeNumerator   uint64 `json:"fee_numerator"`
	FeeDenominator uint64 `json:"fee_denominator"`
	AssetA         string `json:"asset_a"`
	AssetB         string `json:"asset_b"`
	Vault          string `json:"vault"`
	LpDenom        string `json:"lp_denom"`
}

// Validate checks the stateless invariants of a market config.
func (c PoolConfig) Validate() error {
	if _, err := sdk.AccAddressFromBech32(c.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(c.Vault); err != nil {
		return ErrInvalidAddress.Wrapf("vault: %s", err)
	}
	if err := ValidateFee(c.FeeNumerator, c.FeeDenominator); err != nil {
		return err
	}
	if err := ValidatePair(c.AssetA, c.AssetB); err != nil {
		return err
	}
	if !IsCanonical(c.AssetA, c.AssetB) {
		return ErrInvalidTokenPair.Wrapf("assets %s/%s are not in canonical order", c.AssetA, c.AssetB)
	}
	if c.LpDenom != LpDenom(c.Id) {
		return ErrInvalidTokenPair.Wrapf("lp denom %q does not match market %d", c.LpDenom, c.Id)
	}
	return nil
}

// HasAsset reports whether denom is one of the market's two assets.
func (c PoolConfig) HasAsset(denom string) bool {
	return denom == c.AssetA || denom == c.AssetB
}

// Counterpart returns the other asset of the market.
func (c PoolConfig) Counterpart(denom string) (string, error) {
	switch denom {
	case c.AssetA:
		return c.AssetB, nil
	case c.AssetB:
		return c.AssetA, nil
	default:
		return "", ErrInvalidTokenPair.Wrapf("%s is not traded in market %d", denom, c.Id)
	}
}

// ValidateFee enforces fee_numerator < fee_denominator.
func ValidateFee(numerator, denominator uint64) error {
	if denominator == 0 {
		return ErrInvalidFee.Wrap("fee denominator must be positive")
	}
	if numerator >= denominator {
		return ErrInvalidFee.Wrapf("fee numerator %d must be below denominator %d", numerator, denominator)
	}
	return nil
}

// ValidatePair rejects empty, malformed and identical denoms.
func ValidatePair(denomX, denomY string) error {
	if err := sdk.ValidateDenom(denomX); err != nil {
		return ErrInvalidTokenPair.Wrap(err.Error())
	}
	if err := sdk.ValidateDenom(denomY); err != nil {
		return ErrInvalidTokenPair.Wrap(err.Error())
	}
	if denomX == denomY {
		return ErrInvalidTokenPair.Wrapf("cannot pair %s with itself", denomX)
	}
	return nil
}

func (c PoolConfig) String() string {
	return fmt.Sprintf("market %d (%s/%s, fee %d/%d)", c.Id, c.AssetA, c.AssetB, c.FeeNumerator, c.FeeDenominator)
}
