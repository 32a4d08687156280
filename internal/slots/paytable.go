package slots

import (
	"fmt"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/utils"
	"github.com/osse101/SlotMachine_Go/internal/validation"
)

// PaytableEntry pairs a symbol with its three-of-a-kind payout
type PaytableEntry struct {
	Symbol domain.Symbol `json:"symbol"`
	Payout int           `json:"payout"`
}

// Paytable is the immutable symbol set and three-of-a-kind payouts.
// It is shared by the spinner and the payout calculator so both see one symbol set.
type Paytable struct {
	symbols []domain.Symbol
	payouts map[domain.Symbol]int
}

// NewPaytable builds a paytable, preserving entry order for display and reel indexing.
func NewPaytable(entries []PaytableEntry) (*Paytable, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no symbols", domain.ErrInvalidPaytable)
	}

	p := &Paytable{
		symbols: make([]domain.Symbol, 0, len(entries)),
		payouts: make(map[domain.Symbol]int, len(entries)),
	}
	for _, e := range entries {
		if e.Symbol == "" {
			return nil, fmt.Errorf("%w: empty symbol name", domain.ErrInvalidPaytable)
		}
		if e.Payout <= 0 {
			return nil, fmt.Errorf("%w: payout for %s must be positive, got %d", domain.ErrInvalidPaytable, e.Symbol, e.Payout)
		}
		if _, dup := p.payouts[e.Symbol]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %s", domain.ErrInvalidPaytable, e.Symbol)
		}
		p.symbols = append(p.symbols, e.Symbol)
		p.payouts[e.Symbol] = e.Payout
	}
	return p, nil
}

// DefaultPaytable returns the built-in Cherry..Seven paytable
func DefaultPaytable() *Paytable {
	p, err := NewPaytable(DefaultPaytableEntries)
	if err != nil {
		panic("slots: default paytable is invalid: " + err.Error())
	}
	return p
}

type paytableFile struct {
	Symbols []PaytableEntry `json:"symbols"`
}

// LoadPaytable reads a paytable JSON file after checking it against the JSON schema at schemaPath.
func LoadPaytable(path, schemaPath string, schemas validation.SchemaValidator) (*Paytable, error) {
	if err := schemas.ValidateFile(path, schemaPath); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidPaytable, path, err)
	}

	var file paytableFile
	if err := utils.LoadJSON(path, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPaytable, err)
	}
	return NewPaytable(file.Symbols)
}

// Symbols returns a copy of the symbol set in table order
func (p *Paytable) Symbols() []domain.Symbol {
	out := make([]domain.Symbol, len(p.symbols))
	copy(out, p.symbols)
	return out
}

// Entries returns a copy of the table in order
func (p *Paytable) Entries() []PaytableEntry {
	out := make([]PaytableEntry, len(p.symbols))
	for i, s := range p.symbols {
		out[i] = PaytableEntry{Symbol: s, Payout: p.payouts[s]}
	}
	return out
}

// Len returns the number of symbols
func (p *Paytable) Len() int {
	return len(p.symbols)
}

// Payout returns the three-of-a-kind payout for a symbol
func (p *Paytable) Payout(symbol domain.Symbol) (int, bool) {
	v, ok := p.payouts[symbol]
	return v, ok
}
