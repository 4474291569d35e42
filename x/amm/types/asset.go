package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AssetMetadata describes an asset type. A non-empty TransferHookProgram means
// every transfer of the asset invokes that program.
type AssetMetadata struct {
	Denom               string   `json:"denom"`
	Decimals            uint32   `json:"decimals"`
	TransferHookProgram string   `json:"transfer_hook_program,omitempty"`
	ExtraAccounts       []string `json:"extra_accounts,omitempty"`
}

// HookProgram returns the registered transfer-hook program, if any.
func (m AssetMetadata) HookProgram() (string, bool) {
	return m.TransferHookProgram, m.TransferHookProgram != ""
}

// Validate checks the asset metadata.
func (m AssetMetadata) Validate() error {
	if err := sdk.ValidateDenom(m.Denom); err != nil {
		return ErrInvalidTokenPair.Wrap(err.Error())
	}
	if m.TransferHookProgram != "" {
		if err := ValidateProgramID(m.TransferHookProgram); err != nil {
			return err
		}
	} else if len(m.ExtraAccounts) > 0 {
		return ErrInvalidHookProgram.Wrapf("asset %s lists extra accounts without a hook program", m.Denom)
	}
	return nil
}

// PlainAsset returns metadata for an asset without a transfer hook.
func PlainAsset(denom string, decimals uint32) AssetMetadata {
	return AssetMetadata{Denom: denom, Decimals: decimals}
}
