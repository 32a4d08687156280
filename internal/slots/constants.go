package slots

import "github.com/osse101/SlotMachine_Go/internal/domain"

// TwoMatchPrize is paid when exactly two reels agree, whatever the symbol
const TwoMatchPrize = 2

// DefaultPaytableEntries defines the three-of-a-kind payout for each symbol
var DefaultPaytableEntries = []PaytableEntry{
	{Symbol: domain.SymbolCherry, Payout: 5},
	{Symbol: domain.SymbolLemon, Payout: 10},
	{Symbol: domain.SymbolOrange, Payout: 15},
	{Symbol: domain.SymbolPlum, Payout: 20},
	{Symbol: domain.SymbolBell, Payout: 25},
	{Symbol: domain.SymbolBar, Payout: 50},
	{Symbol: domain.SymbolSeven, Payout: 100},
}

// Player answers that start a spin; comparison is case-insensitive after trimming
var affirmativeInputs = map[string]bool{
	"y":   true,
	"yes": true,
}

// Reasons a game session ends
const (
	EndReasonInsufficientCredits = "insufficient_credits"
	EndReasonDeclined            = "declined"
	EndReasonCancelled           = "cancelled"
	EndReasonError               = "error"
)

// Reel separator used in text reports
const reelSeparator = " | "
