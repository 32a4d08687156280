package slots

import (
	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/utils"
)

// Spinner produces one spin result per call
type Spinner interface {
	Spin() domain.SpinResult
}

// ReelSpinner draws each reel independently and uniformly, with replacement,
// from a paytable's symbol set.
type ReelSpinner struct {
	symbols []domain.Symbol
	rng     func(int) int // Injectable for testing; returns a value in [0, n)
}

// NewReelSpinner creates a spinner over the table's symbols.
// A nil rng selects the crypto/rand source.
func NewReelSpinner(table *Paytable, rng func(int) int) *ReelSpinner {
	if rng == nil {
		rng = utils.SecureIntn
	}
	return &ReelSpinner{
		symbols: table.Symbols(),
		rng:     rng,
	}
}

// Spin draws one symbol per reel
func (s *ReelSpinner) Spin() domain.SpinResult {
	var result domain.SpinResult
	for i := range result {
		result[i] = s.symbols[s.rng(len(s.symbols))]
	}
	return result
}
