package handler

import (
	"encoding/json"
	"net/http"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/logger"
	"github.com/osse101/SlotMachine_Go/internal/slots"
)

// MaxSimulateCount caps a single simulate request. Keep in step with the
// lte bound on SimulateRequest.Count.
const MaxSimulateCount = 10000

// SimulateRequest is the body of POST /api/v1/slots/simulate
type SimulateRequest struct {
	Count       int `json:"count" validate:"gte=0,lte=10000"` // lte = MaxSimulateCount
	CostPerSpin int `json:"cost_per_spin" validate:"gte=0"`
}

// SimulateResponse carries the outcomes and their summary
type SimulateResponse struct {
	Outcomes       []domain.SpinOutcome `json:"outcomes"`
	Summary        slots.Summary        `json:"summary"`
	HitRate        float64              `json:"hit_rate"`
	ReturnToPlayer float64              `json:"return_to_player,omitempty"`
}

// PaytableResponse lists the symbols and their triple payouts
type PaytableResponse struct {
	Symbols       []slots.PaytableEntry `json:"symbols"`
	TwoMatchPrize int                   `json:"two_match_prize"`
}

// SpinnerFactory builds a fresh spinner per request
type SpinnerFactory func(table *slots.Paytable) slots.Spinner

// SlotsHandler serves read-only views of the machine
type SlotsHandler struct {
	table      *slots.Paytable
	newSpinner SpinnerFactory
}

// NewSlotsHandler creates a handler. A nil factory uses the crypto-backed reel spinner.
func NewSlotsHandler(table *slots.Paytable, newSpinner SpinnerFactory) *SlotsHandler {
	if newSpinner == nil {
		newSpinner = func(t *slots.Paytable) slots.Spinner {
			return slots.NewReelSpinner(t, nil)
		}
	}
	return &SlotsHandler{table: table, newSpinner: newSpinner}
}

// HandleGetPaytable returns the active paytable
func (h *SlotsHandler) HandleGetPaytable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, PaytableResponse{
			Symbols:       h.table.Entries(),
			TwoMatchPrize: slots.TwoMatchPrize,
		})
	}
}

// HandleSimulate runs a batch of spins without credit tracking
func (h *SlotsHandler) HandleSimulate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SimulateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Failed to decode simulate request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid simulate request", "error", err)
			respondJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:  ErrMsgInvalidRequestError,
				Fields: FormatValidationError(err),
			})
			return
		}

		outcomes := make([]domain.SpinOutcome, 0, req.Count)
		sim := slots.NewSimulator(h.newSpinner(h.table), h.table)
		summary, err := sim.Simulate(r.Context(), req.Count, func(o domain.SpinOutcome) {
			outcomes = append(outcomes, o)
		})
		if err != nil {
			log.Error("Simulation failed", "error", err)
			status, msg := statusForError(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Simulation served", "count", req.Count, "total_payout", summary.TotalPayout)
		respondJSON(w, http.StatusOK, SimulateResponse{
			Outcomes:       outcomes,
			Summary:        summary,
			HitRate:        summary.HitRate(),
			ReturnToPlayer: summary.ReturnToPlayer(req.CostPerSpin),
		})
	}
}
