package types

// PairKey returns the canonical ordering of an unordered denom pair. The
// byte-wise smaller denom is always returned first.
func PairKey(denomX, denomY string) (low, high string) {
	if denomX <= denomY {
		return denomX, denomY
	}
	return denomY, denomX
}

// IsCanonical reports whether (denomA, denomB) is already in canonical order.
func IsCanonical(denomA, denomB string) bool {
	return denomA < denomB
}
