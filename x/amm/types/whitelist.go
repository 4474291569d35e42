package types

import (
	"slices"
	"strings"
)

// HookWhitelist is the set of transfer-hook programs a market admits.
// AllowedPrograms is kept sorted and free of duplicates.
type HookWhitelist struct {
	MarketId        uint64   `json:"market_id"`
	Capacity        uint32   `json:"capacity"`
	AllowedPrograms []string `json:"allowed_programs"`
}

// NewHookWhitelist returns an empty whitelist for a market.
func NewHookWhitelist(marketID uint64, capacity uint32) HookWhitelist {
	return HookWhitelist{
		MarketId:        marketID,
		Capacity:        capacity,
		AllowedPrograms: []string{},
	}
}

// Contains reports whether programID is whitelisted.
func (w HookWhitelist) Contains(programID string) bool {
	_, found := slices.BinarySearch(w.AllowedPrograms, programID)
	return found
}

// Authorize fails with ErrHookNotWhitelisted unless programID is present.
func (w HookWhitelist) Authorize(programID string) error {
	if !w.Contains(programID) {
		return ErrHookNotWhitelisted.Wrapf("program %s is not whitelisted for market %d", programID, w.MarketId)
	}
	return nil
}

// Add inserts programID. Adding a present program is a no-op. The returned
// bool reports whether the set changed.
func (w *HookWhitelist) Add(programID string) (bool, error) {
	if err := ValidateProgramID(programID); err != nil {
		return false, err
	}
	idx, found := slices.BinarySearch(w.AllowedPrograms, programID)
	if found {
		return false, nil
	}
	if uint32(len(w.AllowedPrograms)) >= w.Capacity {
		return false, ErrWhitelistFull.Wrapf("market %d whitelist holds %d programs", w.MarketId, w.Capacity)
	}
	w.AllowedPrograms = slices.Insert(w.AllowedPrograms, idx, programID)
	return true, nil
}

// Remove deletes programID. Removing an absent program is a no-op.
func (w *HookWhitelist) Remove(programID string) bool {
	idx, found := slices.BinarySearch(w.AllowedPrograms, programID)
	if !found {
		return false
	}
	w.AllowedPrograms = slices.Delete(w.AllowedPrograms, idx, idx+1)
	return true
}

// Validate checks ordering, uniqueness and capacity.
func (w HookWhitelist) Validate() error {
	if uint32(len(w.AllowedPrograms)) > w.Capacity {
		return ErrInvalidWhitelist.Wrapf("market %d: %d programs exceed capacity %d", w.MarketId, len(w.AllowedPrograms), w.Capacity)
	}
	for i, program := range w.AllowedPrograms {
		if err := ValidateProgramID(program); err != nil {
			return err
		}
		if i > 0 && w.AllowedPrograms[i-1] >= program {
			return ErrInvalidWhitelist.Wrapf("market %d: programs must be sorted and unique", w.MarketId)
		}
	}
	return nil
}

// ValidateProgramID rejects blank program identifiers.
func ValidateProgramID(programID string) error {
	if strings.TrimSpace(programID) == "" || programID != strings.TrimSpace(programID) {
		return ErrInvalidHookProgram.Wrapf("program id %q", programID)
	}
	return nil
}
