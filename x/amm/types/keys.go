package types

import (
	"encoding/binary"
	"fmt"
)

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// LpDenomPrefix prefixes the denom of every market's LP unit.
	LpDenomPrefix = ModuleName + "/lp/"
)

// Store key prefixes
var (
	ParamsKey              = []byte{0x01}
	NextMarketIDKey        = []byte{0x02}
	MarketKeyPrefix        = []byte{0x03}
	MarketByPairKeyPrefix  = []byte{0x04}
	PoolKeyPrefix          = []byte{0x05}
	WhitelistKeyPrefix     = []byte{0x06}
	AssetMetadataKeyPrefix = []byte{0x07}
)

// MarketKey returns the store key of a market config.
func MarketKey(marketID uint64) []byte {
	return append(cloneBytes(MarketKeyPrefix), uint64ToBytes(marketID)...)
}

// MarketByPairKey returns the index key of a market keyed by its canonical pair.
// Denoms are length prefixed so that distinct pairs never share a key.
func MarketByPairKey(denomX, denomY string) []byte {
	low, high := PairKey(denomX, denomY)
	key := cloneBytes(MarketByPairKeyPrefix)
	key = append(key, byte(len(low)))
	key = append(key, low...)
	key = append(key, byte(len(high)))
	return append(key, high...)
}

// PoolKey returns the store key of a market's pool ledger.
func PoolKey(marketID uint64) []byte {
	return append(cloneBytes(PoolKeyPrefix), uint64ToBytes(marketID)...)
}

// WhitelistKey returns the store key of a market's hook whitelist.
func WhitelistKey(marketID uint64) []byte {
	return append(cloneBytes(WhitelistKeyPrefix), uint64ToBytes(marketID)...)
}

// AssetMetadataKey returns the store key of an asset's metadata.
func AssetMetadataKey(denom string) []byte {
	return append(cloneBytes(AssetMetadataKeyPrefix), denom...)
}

// LpDenom returns the LP unit denom of a market.
func LpDenom(marketID uint64) string {
	return fmt.Sprintf("%s%d", LpDenomPrefix, marketID)
}

// VaultModuleName returns the name from which a market's reserve account is derived.
func VaultModuleName(marketID uint64) string {
	return fmt.Sprintf("%s/vault/%d", ModuleName, marketID)
}

func uint64ToBytes(v uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, v)
	return bz
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b), len(b)+16)
	copy(out, b)
	return out
}
