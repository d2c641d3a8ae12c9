// Package scenario exposes HTTP handlers for running a simulation scenario
// and fetching its Markdown report. Grounded on cmd/api/main.go's handler
// wiring pattern: a Handler struct holding dependencies, CORS headers set
// per request, manual encoding/json request/response bodies.
package scenario

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"zngsim/pkg/config"
	"zngsim/pkg/core/engine"
	"zngsim/pkg/core/finance"
	"zngsim/pkg/core/report"
	"zngsim/pkg/core/sensitivity"
	"zngsim/pkg/core/store"
	"zngsim/pkg/core/utils"
	"zngsim/pkg/models"
)

// Handler holds dependencies for scenario endpoints.
type Handler struct {
	Cache *store.RunCache
}

// NewHandler creates a scenario handler. cache may be nil, in which case
// results are simply recomputed on every request.
func NewHandler(cache *store.RunCache) *Handler {
	return &Handler{Cache: cache}
}

// SimulateRequest is the POST body for /api/scenario/simulate.
type SimulateRequest struct {
	ScenarioID     string          `json:"scenario_id"`
	Scenario       config.Scenario `json:"scenario"`
	ChargerIndex   int             `json:"charger_index"`
	RunSensitivity bool            `json:"run_sensitivity"`
}

// SimulateResponse is the JSON response for a simulation run.
type SimulateResponse struct {
	Result      models.SimulationResult   `json:"result"`
	DCF         models.DCFResult          `json:"dcf"`
	Sensitivity *models.SensitivityResult `json:"sensitivity,omitempty"`
	Cached      bool                      `json:"cached"`
}

func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// decodeSimulateRequest reads the request body and unmarshals it as a
// SimulateRequest. Hand-edited scenario payloads occasionally arrive with
// small JSON mistakes (trailing commas, stray quotes); a first unmarshal
// failure is retried once after running the body through
// utils.RepairJSON before giving up.
func decodeSimulateRequest(r *http.Request) (SimulateRequest, error) {
	var req SimulateRequest

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return req, fmt.Errorf("failed to read request body: %w", err)
	}

	if err := json.Unmarshal(body, &req); err == nil {
		return req, nil
	}

	repaired, repairErr := utils.RepairJSON(string(body))
	if repairErr != nil {
		return req, fmt.Errorf("invalid JSON and repair failed: %w", repairErr)
	}
	if err := json.Unmarshal([]byte(repaired), &req); err != nil {
		return req, fmt.Errorf("invalid JSON even after repair: %w", err)
	}
	return req, nil
}

// HandleSimulate runs (or fetches a cached copy of) a scenario's simulation
// and returns the result alongside its DCF table.
func (h *Handler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	req, err := decodeSimulateRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := req.Scenario.Validate(); err != nil {
		http.Error(w, fmt.Sprintf("invalid scenario: %v", err), http.StatusBadRequest)
		return
	}
	if req.ChargerIndex < 0 || req.ChargerIndex >= len(req.Scenario.ChargerVariants) {
		http.Error(w, "charger_index out of range", http.StatusBadRequest)
		return
	}
	charger := req.Scenario.ChargerVariants[req.ChargerIndex]

	ctx := context.Background()
	result, dcf, cached := h.runOrFetch(ctx, req.Scenario, charger)

	resp := SimulateResponse{Result: result, DCF: dcf, Cached: cached}
	if req.RunSensitivity {
		sens := sensitivity.Run(req.Scenario, charger)
		resp.Sensitivity = &sens
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		fmt.Printf("[WARNING] failed to encode simulate response: %v\n", err)
	}
}

// HandleReport runs a scenario and renders it as a Markdown investor report.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	req, err := decodeSimulateRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := req.Scenario.Validate(); err != nil {
		http.Error(w, fmt.Sprintf("invalid scenario: %v", err), http.StatusBadRequest)
		return
	}
	if req.ChargerIndex < 0 || req.ChargerIndex >= len(req.Scenario.ChargerVariants) {
		http.Error(w, "charger_index out of range", http.StatusBadRequest)
		return
	}
	charger := req.Scenario.ChargerVariants[req.ChargerIndex]

	ctx := context.Background()
	result, dcf, _ := h.runOrFetch(ctx, req.Scenario, charger)

	name := req.ScenarioID
	if name == "" {
		name = "scenario"
	}
	md := report.BuildReport(name, result, dcf, report.Options{})

	w.Header().Set("Content-Type", "text/markdown")
	fmt.Fprint(w, md)
}

func (h *Handler) runOrFetch(ctx context.Context, s config.Scenario, charger config.ChargerVariant) (models.SimulationResult, models.DCFResult, bool) {
	cached := false
	var result models.SimulationResult

	if h.Cache != nil {
		if key, err := store.Key(s, charger, s.Simulation.Engine); err == nil {
			if hit, err := h.Cache.Get(ctx, key); err == nil && hit != nil {
				result = *hit
				cached = true
			}
		}
	}

	if !cached {
		result = engine.Run(s, charger)
		if h.Cache != nil {
			if key, err := store.Key(s, charger, s.Simulation.Engine); err == nil {
				if err := h.Cache.Save(ctx, key, "", result); err != nil {
					fmt.Printf("[WARNING] failed to cache run: %v\n", err)
				}
			}
		}
	}

	salvage := float64(result.Derived.TotalPacks) * s.Pack.SecondLifeSalvageValue
	dcf := finance.BuildDCFTable(result.Months, s.Finance, s.Simulation.DiscountRateAnnual, salvage)
	return result, dcf, cached
}
