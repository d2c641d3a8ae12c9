package scenario

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"zngsim/pkg/config"
)

func TestHandleSimulateReturnsResultAndDCF(t *testing.T) {
	h := NewHandler(nil)

	body, err := json.Marshal(SimulateRequest{
		ScenarioID:   "pilot",
		Scenario:     config.DefaultScenario(),
		ChargerIndex: 0,
	})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/scenario/simulate", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.HandleSimulate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp SimulateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Result.EngineType == "" {
		t.Error("expected a non-empty engine type in the result")
	}
}

func TestHandleSimulateRejectsInvalidChargerIndex(t *testing.T) {
	h := NewHandler(nil)

	body, _ := json.Marshal(SimulateRequest{
		Scenario:     config.DefaultScenario(),
		ChargerIndex: 99,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/scenario/simulate", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.HandleSimulate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for an out-of-range charger index, got %d", w.Code)
	}
}

func TestHandleReportReturnsMarkdown(t *testing.T) {
	h := NewHandler(nil)

	body, _ := json.Marshal(SimulateRequest{
		ScenarioID: "pilot",
		Scenario:   config.DefaultScenario(),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/scenario/report", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.HandleReport(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Body.Len() == 0 {
		t.Error("expected non-empty markdown body")
	}
}
