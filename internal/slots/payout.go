package slots

import (
	"fmt"

	"github.com/osse101/SlotMachine_Go/internal/domain"
)

// Classify reports whether all three reels match, exactly two match, or none do.
// Reel order does not matter.
func Classify(result domain.SpinResult) domain.MatchType {
	a, b, c := result[0], result[1], result[2]
	switch {
	case a == b && b == c:
		return domain.MatchTriple
	case a == b || b == c || a == c:
		return domain.MatchPair
	default:
		return domain.MatchNone
	}
}

// CalculatePayout scores a spin result:
//   - three of a kind pays the symbol's paytable value
//   - exactly two of a kind pays TwoMatchPrize
//   - otherwise 0
//
// Every symbol must exist in the table; an unknown symbol returns
// domain.ErrUnknownSymbol instead of a default payout.
func (p *Paytable) CalculatePayout(result domain.SpinResult) (int, error) {
	for _, s := range result {
		if _, ok := p.payouts[s]; !ok {
			return 0, fmt.Errorf("%w: %q", domain.ErrUnknownSymbol, s)
		}
	}

	switch Classify(result) {
	case domain.MatchTriple:
		return p.payouts[result[0]], nil
	case domain.MatchPair:
		return TwoMatchPrize, nil
	default:
		return 0, nil
	}
}

// Score builds the outcome record for a spin result
func (p *Paytable) Score(index int, result domain.SpinResult) (domain.SpinOutcome, error) {
	payout, err := p.CalculatePayout(result)
	if err != nil {
		return domain.SpinOutcome{}, err
	}
	return domain.SpinOutcome{
		Index:  index,
		Result: result,
		Payout: payout,
		Match:  Classify(result),
	}, nil
}
