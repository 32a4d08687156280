package slots

import (
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/SlotMachine_Go/internal/domain"
)

// Printer writes the human-readable game and simulation reports.
// Numbers are formatted for English, so 1000 credits prints as "1,000".
type Printer struct {
	w io.Writer
	p *message.Printer
}

// NewPrinter creates a printer writing to w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w: w,
		p: message.NewPrinter(language.English),
	}
}

// FormatResult joins the reel symbols with the reel separator
func FormatResult(result domain.SpinResult) string {
	return strings.Join(result.Strings(), reelSeparator)
}

func (pr *Printer) Welcome(credits, cost int) {
	pr.p.Fprintf(pr.w, "Welcome to the Simple Slot Machine Game!\n")
	pr.p.Fprintf(pr.w, "You start with %d credits. Each spin costs %d credits.\n\n", credits, cost)
}

func (pr *Printer) Prompt() {
	pr.p.Fprintf(pr.w, "Do you want to spin the slot machine? (y/n): ")
}

// Spin reports one interactive spin and the balance after it
func (pr *Printer) Spin(outcome domain.SpinOutcome, credits int) {
	pr.p.Fprintf(pr.w, "\nSpin result: %s\n", FormatResult(outcome.Result))
	if outcome.Payout > 0 {
		pr.p.Fprintf(pr.w, "Congratulations! You won %d credits!\n", outcome.Payout)
	} else {
		pr.p.Fprintf(pr.w, "Sorry, you didn't win this time.\n")
	}
	pr.p.Fprintf(pr.w, "Credits remaining: %d\n\n", credits)
}

func (pr *Printer) GameOver(credits int) {
	pr.p.Fprintf(pr.w, "\nGame Over!\n\n")
	pr.p.Fprintf(pr.w, "Final credits: %d\n", credits)
}

func (pr *Printer) SimulationHeader(count int) {
	pr.p.Fprintf(pr.w, "Simulating %d slot machine spins...\n\n", count)
}

func (pr *Printer) SimulatedSpin(outcome domain.SpinOutcome) {
	pr.p.Fprintf(pr.w, "Spin %d: %s -> Payout: %d\n", outcome.Index, FormatResult(outcome.Result), outcome.Payout)
}

// SimulationSummary prints totals and the return-to-player at the given nominal cost
func (pr *Printer) SimulationSummary(s Summary, costPerSpin int) {
	pr.p.Fprintf(pr.w, "\n%d spins: %d triples, %d pairs, %d credits paid (hit rate %.1f%%, RTP %.1f%% at %d per spin)\n",
		s.Spins, s.Triples, s.Pairs, s.TotalPayout, s.HitRate()*100, s.ReturnToPlayer(costPerSpin)*100, costPerSpin)
}

func (pr *Printer) StartingGame() {
	pr.p.Fprintf(pr.w, "\nNow starting the interactive game. You can skip by pressing 'n'.\n\n")
}
