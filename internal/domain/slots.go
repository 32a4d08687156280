package domain

// Symbol is a slot-reel icon
type Symbol string

// Reel symbols, lowest to highest three-of-a-kind payout
const (
	SymbolCherry Symbol = "Cherry"
	SymbolLemon  Symbol = "Lemon"
	SymbolOrange Symbol = "Orange"
	SymbolPlum   Symbol = "Plum"
	SymbolBell   Symbol = "Bell"
	SymbolBar    Symbol = "Bar"
	SymbolSeven  Symbol = "Seven"
)

// ReelCount is the number of reels on the machine
const ReelCount = 3

// SpinResult is the ordered symbols shown on each reel after one spin
type SpinResult [ReelCount]Symbol

// Strings returns the symbols as plain strings in reel order
func (r SpinResult) Strings() []string {
	out := make([]string, len(r))
	for i, s := range r {
		out[i] = string(s)
	}
	return out
}

// MatchType describes how many reels agree in a spin result
type MatchType string

const (
	MatchNone   MatchType = "none"
	MatchPair   MatchType = "pair"
	MatchTriple MatchType = "triple"
)

// SpinOutcome represents one scored spin
type SpinOutcome struct {
	Index  int        `json:"index"`  // 1-based position within a batch or session
	Result SpinResult `json:"result"` // Symbols in reel order
	Payout int        `json:"payout"` // Credits won (0 if loss)
	Match  MatchType  `json:"match"`
}
