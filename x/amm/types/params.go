package types

const (
	// DefaultFeeNumerator and DefaultFeeDenominator set a 0.25% fee.
	DefaultFeeNumerator   uint64 = 25
	DefaultFeeDenominator uint64 = 10_000

	DefaultWhitelistCapacity uint32 = 16
	MaxWhitelistCapacity     uint32 = 256
)

// Params holds the fee tier of the pool family and whitelist sizing.
type Params struct {
	DefaultFeeNumerator      uint64 `json:"default_fee_numerator"`
	DefaultFeeDenominator    uint64 `json:"default_fee_denominator"`
	DefaultWhitelistCapacity uint32 `json:"default_whitelist_capacity"`
	MaxWhitelistCapacity     uint32 `json:"max_whitelist_capacity"`
}

// DefaultParams returns default module parameters.
func DefaultParams() Params {
	return Params{
		DefaultFeeNumerator:      DefaultFeeNumerator,
		DefaultFeeDenominator:    DefaultFeeDenominator,
		DefaultWhitelistCapacity: DefaultWhitelistCapacity,
		MaxWhitelistCapacity:     MaxWhitelistCapacity,
	}
}

// Validate validates the params.
func (p Params) Validate() error {
	if err := ValidateFee(p.DefaultFeeNumerator, p.DefaultFeeDenominator); err != nil {
		return ErrInvalidParams.Wrap(err.Error())
	}
	if p.MaxWhitelistCapacity == 0 {
		return ErrInvalidParams.Wrap("max whitelist capacity must be positive")
	}
	if p.DefaultWhitelistCapacity == 0 || p.DefaultWhitelistCapacity > p.MaxWhitelistCapacity {
		return ErrInvalidParams.Wrapf("default whitelist capacity %d must be in [1, %d]", p.DefaultWhitelistCapacity, p.MaxWhitelistCapacity)
	}
	return nil
}
