package slots

import (
	"github.com/osse101/SlotMachine_Go/internal/domain"
)

// scriptedSpinner returns its results in order, repeating the last one
type scriptedSpinner struct {
	results []domain.SpinResult
	calls   int
}

func newScriptedSpinner(results ...domain.SpinResult) *scriptedSpinner {
	return &scriptedSpinner{results: results}
}

func (s *scriptedSpinner) Spin() domain.SpinResult {
	i := s.calls
	if i >= len(s.results) {
		i = len(s.results) - 1
	}
	s.calls++
	return s.results[i]
}

// sequenceRNG replays fixed indices and records the n it was asked for
type sequenceRNG struct {
	values []int
	next   int
	seenN  []int
}

func (r *sequenceRNG) Intn(n int) int {
	r.seenN = append(r.seenN, n)
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

func triple(s domain.Symbol) domain.SpinResult {
	return domain.SpinResult{s, s, s}
}

var (
	cherryTriple = triple(domain.SymbolCherry)
	noMatch      = domain.SpinResult{domain.SymbolCherry, domain.SymbolLemon, domain.SymbolOrange}
	barPair      = domain.SpinResult{domain.SymbolBar, domain.SymbolBar, domain.SymbolLemon}
)
