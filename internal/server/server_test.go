package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sovrenmirror/sovrenai-workbench/internal/engine"
	"github.com/Sovrenmirror/sovrenai-workbench/internal/model"
)

func newTestServer(t *testing.T, cacheEnabled bool) *Server {
	t.Helper()

	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = cacheEnabled

	eng, err := engine.NewWithClient(cfg, nil)
	if err != nil {
		t.Fatalf("create engine: %v", err)
	}
	return New(eng, cfg)
}

func doRequest(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestRootEndpoint(t *testing.T) {
	s := newTestServer(t, false)
	w := doRequest(t, s, http.MethodGet, "/", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp["name"] != "Sovereign Reasoning Engine API" {
		t.Errorf("unexpected name: %v", resp["name"])
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, false)
	w := doRequest(t, s, http.MethodGet, "/health", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Status           string `json:"status"`
		TruthFloorVerify bool   `json:"truth_floor_verified"`
		TruthFloorAxioms int    `json:"truth_floor_axioms"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %s", resp.Status)
	}
	if !resp.TruthFloorVerify {
		t.Error("expected truth floor verified")
	}
	if resp.TruthFloorAxioms != 12 {
		t.Errorf("expected 12 axioms, got %d", resp.TruthFloorAxioms)
	}
}

func TestTruthFloorEndpoint(t *testing.T) {
	s := newTestServer(t, false)
	w := doRequest(t, s, http.MethodGet, "/truth-floor", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Axioms    []string `json:"axioms"`
		Count     int      `json:"count"`
		Integrity bool     `json:"integrity_verified"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Count != 12 || len(resp.Axioms) != 12 {
		t.Errorf("expected 12 axioms, got count=%d len=%d", resp.Count, len(resp.Axioms))
	}
	if !resp.Integrity {
		t.Error("expected integrity verified")
	}
	if resp.Axioms[0] != "This statement exists" {
		t.Errorf("unexpected first axiom: %s", resp.Axioms[0])
	}
}

func TestTiersEndpoint(t *testing.T) {
	s := newTestServer(t, false)
	w := doRequest(t, s, http.MethodGet, "/tiers", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Tiers []struct {
			Tier       int     `json:"tier"`
			Name       string  `json:"name"`
			Resistance float64 `json:"resistance"`
		} `json:"tiers"`
		Count  int    `json:"count"`
		Thesis string `json:"thesis"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Count != 13 {
		t.Errorf("expected 13 tiers, got %d", resp.Count)
	}
	if resp.Tiers[0].Resistance != 0.0 || resp.Tiers[12].Resistance != 1.0 {
		t.Errorf("unexpected resistance bounds: %f..%f", resp.Tiers[0].Resistance, resp.Tiers[12].Resistance)
	}
	if resp.Thesis == "" {
		t.Error("expected thesis string")
	}
}

func TestClassifyEndpoint(t *testing.T) {
	s := newTestServer(t, false)
	w := doRequest(t, s, http.MethodPost, "/classify", ClassifyRequest{Text: "2 + 2 = 4"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Text           string               `json:"text"`
		Classification model.Classification `json:"classification"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Classification.Symbol != "MathematicalTT" {
		t.Errorf("expected MathematicalTT, got %s", resp.Classification.Symbol)
	}
	if resp.Classification.Tier != model.TierMathematical {
		t.Errorf("expected tier T1, got %d", int(resp.Classification.Tier))
	}
}

func TestClassifyEndpointRequiresText(t *testing.T) {
	s := newTestServer(t, false)
	w := doRequest(t, s, http.MethodPost, "/classify", map[string]string{})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing text, got %d", w.Code)
	}
}

func TestReasonEndpoint(t *testing.T) {
	s := newTestServer(t, false)
	w := doRequest(t, s, http.MethodPost, "/reason", ReasonRequest{Input: "2 + 2 = 4"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ReasonResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.RequestID == "" {
		t.Error("expected request id")
	}
	if resp.Cached {
		t.Error("first request should not be cached")
	}
	if resp.Result == nil || resp.Result.Input != "2 + 2 = 4" {
		t.Fatalf("unexpected result: %+v", resp.Result)
	}
	if resp.Result.Stages.Solve.Method != "mathematical_pattern" {
		t.Errorf("expected mathematical_pattern, got %s", resp.Result.Stages.Solve.Method)
	}
}

func TestReasonEndpointRequiresInput(t *testing.T) {
	s := newTestServer(t, false)
	w := doRequest(t, s, http.MethodPost, "/reason", map[string]string{})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing input, got %d", w.Code)
	}
}

func TestReasonEndpointCaching(t *testing.T) {
	s := newTestServer(t, true)

	first := doRequest(t, s, http.MethodPost, "/reason", ReasonRequest{Input: "ENERGY IS CONSERVED"})
	if first.Code != http.StatusOK {
		t.Fatalf("first request failed: %d", first.Code)
	}
	var firstResp ReasonResponse
	if err := json.Unmarshal(first.Body.Bytes(), &firstResp); err != nil {
		t.Fatalf("unmarshal first response: %v", err)
	}
	if firstResp.Cached {
		t.Error("first request should miss the cache")
	}

	second := doRequest(t, s, http.MethodPost, "/reason", ReasonRequest{Input: "ENERGY IS CONSERVED"})
	if second.Code != http.StatusOK {
		t.Fatalf("second request failed: %d", second.Code)
	}
	var secondResp ReasonResponse
	if err := json.Unmarshal(second.Body.Bytes(), &secondResp); err != nil {
		t.Fatalf("unmarshal second response: %v", err)
	}
	if !secondResp.Cached {
		t.Error("second identical request should hit the cache")
	}
	if secondResp.RequestID == firstResp.RequestID {
		t.Error("request ids must be unique even for cached responses")
	}
	if secondResp.Result.Stages.Recognize.TruthFloorMatch != firstResp.Result.Stages.Recognize.TruthFloorMatch {
		t.Error("cached result should round-trip intact")
	}
}
