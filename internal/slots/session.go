package slots

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/metrics"
)

// State is a game session state
type State int

const (
	// StateAwaitingInput has credits >= cost and waits for the spin decision
	StateAwaitingInput State = iota
	// StateSpinning is transient: cost charged, reels drawn, payout credited
	StateSpinning
	// StateEnded is terminal
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting_input"
	case StateSpinning:
		return "spinning"
	case StateEnded:
		return "ended"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// SessionConfig is the starting balance and the price of one spin
type SessionConfig struct {
	StartingCredits int `validate:"gte=0"`
	CostPerSpin     int `validate:"gt=0"`
}

var validate = validator.New()

// Validate rejects negative starting credits and a non-positive spin cost
func (c SessionConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: %s=%v violates %s=%s", domain.ErrInvalidConfig, fe.Field(), fe.Value(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return nil
}

// Report is what one transition emits
type Report struct {
	State     State
	Outcome   *domain.SpinOutcome // nil when the transition did not spin
	Credits   int
	EndReason string // set once State is StateEnded
}

// Session is the credit-tracking state machine behind the interactive game.
// It does no I/O; callers feed it one input line per Step.
type Session struct {
	cfg     SessionConfig
	table   *Paytable
	spinner Spinner

	state     State
	credits   int
	spins     int
	endReason string
}

// NewSession validates cfg and opens a session. A session whose starting
// credits cannot cover one spin is already ended.
func NewSession(cfg SessionConfig, spinner Spinner, table *Paytable) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if spinner == nil || table == nil {
		return nil, fmt.Errorf("%w: session needs a spinner and a paytable", domain.ErrInvalidConfig)
	}

	s := &Session{
		cfg:     cfg,
		table:   table,
		spinner: spinner,
		state:   StateAwaitingInput,
		credits: cfg.StartingCredits,
	}
	s.checkCredits()
	return s, nil
}

// IsAffirmative reports whether a line of player input asks for a spin
func IsAffirmative(input string) bool {
	return affirmativeInputs[strings.ToLower(strings.TrimSpace(input))]
}

// Step applies one player decision. An affirmative input spins once and
// returns to AwaitingInput (or Ended when credits no longer cover a spin);
// anything else ends the session.
func (s *Session) Step(input string) (Report, error) {
	if s.state == StateEnded {
		return s.report(nil), domain.ErrSessionEnded
	}

	if !IsAffirmative(input) {
		s.end(EndReasonDeclined)
		return s.report(nil), nil
	}

	s.state = StateSpinning
	s.credits -= s.cfg.CostPerSpin
	metrics.RecordWager(s.cfg.CostPerSpin)

	outcome, err := s.table.Score(s.spins+1, s.spinner.Spin())
	if err != nil {
		s.end(EndReasonError)
		return s.report(nil), err
	}

	s.spins++
	s.credits += outcome.Payout
	metrics.RecordSpin(metrics.ModeGame, string(outcome.Match), outcome.Payout)

	s.state = StateAwaitingInput
	s.checkCredits()
	return s.report(&outcome), nil
}

// Cancel ends the session without a player decision
func (s *Session) Cancel() {
	if s.state != StateEnded {
		s.end(EndReasonCancelled)
	}
}

func (s *Session) checkCredits() {
	if s.credits < s.cfg.CostPerSpin {
		s.end(EndReasonInsufficientCredits)
	}
}

func (s *Session) end(reason string) {
	s.state = StateEnded
	s.endReason = reason
	metrics.RecordSessionEnd(reason)
}

func (s *Session) report(outcome *domain.SpinOutcome) Report {
	return Report{
		State:     s.state,
		Outcome:   outcome,
		Credits:   s.credits,
		EndReason: s.endReason,
	}
}

func (s *Session) State() State          { return s.state }
func (s *Session) Credits() int          { return s.credits }
func (s *Session) Spins() int            { return s.spins }
func (s *Session) EndReason() string     { return s.endReason }
func (s *Session) Config() SessionConfig { return s.cfg }
