package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/astroscan/astroscan/internal/config"
	"github.com/astroscan/astroscan/internal/db"
	"github.com/astroscan/astroscan/internal/reading"
	"github.com/astroscan/astroscan/internal/tarot"
)

// testHandlers wires a fresh manager, the builtin deck, and a temp archive.
func testHandlers(t *testing.T) *Handlers {
	t.Helper()

	database, err := db.Init(t.TempDir())
	if err != nil {
		t.Fatalf("failed to init db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	deck := tarot.BuiltinDeck()
	manager := reading.NewManager(deck, database, nil)
	return NewHandlers(manager, deck, database)
}

// makeRequest creates a CallToolRequest with the given arguments.
func makeRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

func resultJSON(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	if len(result.Content) == 0 {
		t.Fatal("no content in result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("content is not TextContent")
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
		t.Fatalf("failed to unmarshal result: %v", err)
	}
	return payload
}

func assertErrorCode(t *testing.T, result *mcp.CallToolResult, expectedCode string) {
	t.Helper()

	payload := resultJSON(t, result)
	errorObj, ok := payload["error"].(map[string]any)
	if !ok {
		t.Fatalf("no error object in payload: %v", payload)
	}
	code, _ := errorObj["code"].(string)
	if code != expectedCode {
		t.Errorf("error code = %q, want %q", code, expectedCode)
	}
}

func extractErrorMessage(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return "<no content>"
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		return "<not text content>"
	}
	return text.Text
}

func TestSessionFlow(t *testing.T) {
	h := testHandlers(t)
	ctx := context.Background()

	startResult, err := h.HandleSessionStart(ctx, makeRequest(nil))
	if err != nil {
		t.Fatalf("session_start: %v", err)
	}
	start := resultJSON(t, startResult)
	sessionID, _ := start["session_id"].(string)
	if sessionID == "" {
		t.Fatalf("no session id in %v", start)
	}

	birthResult, err := h.HandleSessionBirth(ctx, makeRequest(map[string]any{
		"session_id": sessionID,
		"date":       "1990-06-15",
		"time":       "14:30",
		"location":   "Paris",
	}))
	if err != nil {
		t.Fatalf("session_birth: %v", err)
	}
	if birthResult.IsError {
		t.Fatalf("session_birth failed: %v", extractErrorMessage(birthResult))
	}
	birth := resultJSON(t, birthResult)
	if birth["step"] != "initial" {
		t.Errorf("step = %v, want initial", birth["step"])
	}

	respondResult, err := h.HandleSessionRespond(ctx, makeRequest(map[string]any{
		"session_id": sessionID,
		"text":       "I am worried about my relationship.",
	}))
	if err != nil {
		t.Fatalf("session_respond: %v", err)
	}
	respond := resultJSON(t, respondResult)
	if respond["step"] != "cards" {
		t.Errorf("step = %v, want cards", respond["step"])
	}

	cardsResult, err := h.HandleSessionCards(ctx, makeRequest(map[string]any{
		"session_id": sessionID,
	}))
	if err != nil {
		t.Fatalf("session_cards: %v", err)
	}
	cards := resultJSON(t, cardsResult)
	if cards["step"] != "deeper" {
		t.Errorf("step = %v, want deeper", cards["step"])
	}
	drawn, _ := cards["cards"].([]any)
	if len(drawn) != 3 {
		t.Errorf("drew %d cards, want 3", len(drawn))
	}

	for _, text := range []string{"My gut says I already know.", "I feel ready to decide."} {
		respondResult, err = h.HandleSessionRespond(ctx, makeRequest(map[string]any{
			"session_id": sessionID,
			"text":       text,
		}))
		if err != nil {
			t.Fatalf("session_respond: %v", err)
		}
		if respondResult.IsError {
			t.Fatalf("session_respond failed: %v", extractErrorMessage(respondResult))
		}
	}
	final := resultJSON(t, respondResult)
	if final["step"] != "clarifying" {
		t.Errorf("step = %v, want clarifying", final["step"])
	}
	message, _ := final["message"].(string)
	if !strings.Contains(message, "**Technical Energies**") {
		t.Errorf("final message missing technical block: %q", message)
	}

	clarifyResult, err := h.HandleSessionClarify(ctx, makeRequest(map[string]any{
		"session_id": sessionID,
		"question":   "What should I do?",
	}))
	if err != nil {
		t.Fatalf("session_clarify: %v", err)
	}
	if clarifyResult.IsError {
		t.Fatalf("session_clarify failed: %v", extractErrorMessage(clarifyResult))
	}

	// The completed reading is visible through the archive tools.
	listResult, err := h.HandleReadingList(ctx, makeRequest(nil))
	if err != nil {
		t.Fatalf("reading_list: %v", err)
	}
	list := resultJSON(t, listResult)
	if count, _ := list["count"].(float64); count != 1 {
		t.Errorf("archived count = %v, want 1", list["count"])
	}

	fetchResult, err := h.HandleReadingFetch(ctx, makeRequest(map[string]any{"id": sessionID}))
	if err != nil {
		t.Fatalf("reading_fetch: %v", err)
	}
	fetched := resultJSON(t, fetchResult)
	if fetched["sun_sign"] != "Gemini" {
		t.Errorf("sun_sign = %v, want Gemini", fetched["sun_sign"])
	}
}

func TestSessionErrors(t *testing.T) {
	h := testHandlers(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		call      func(mcp.CallToolRequest) (*mcp.CallToolResult, error)
		args      map[string]any
		errorCode string
	}{
		{
			name:      "birth for unknown session",
			call:      func(r mcp.CallToolRequest) (*mcp.CallToolResult, error) { return h.HandleSessionBirth(ctx, r) },
			args:      map[string]any{"session_id": "nope", "date": "1990-06-15", "time": "14:30", "location": "Paris"},
			errorCode: "NOT_FOUND",
		},
		{
			name:      "malformed birth date",
			call:      func(r mcp.CallToolRequest) (*mcp.CallToolResult, error) { return h.HandleSessionBirth(ctx, r) },
			args:      map[string]any{"session_id": "nope", "date": "15/06/1990", "time": "14:30", "location": "Paris"},
			errorCode: "INVALID_INPUT",
		},
		{
			name:      "respond to unknown session",
			call:      func(r mcp.CallToolRequest) (*mcp.CallToolResult, error) { return h.HandleSessionRespond(ctx, r) },
			args:      map[string]any{"session_id": "nope", "text": "hello"},
			errorCode: "NOT_FOUND",
		},
		{
			name:      "fetch unknown reading",
			call:      func(r mcp.CallToolRequest) (*mcp.CallToolResult, error) { return h.HandleReadingFetch(ctx, r) },
			args:      map[string]any{"id": "missing"},
			errorCode: "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.call(makeRequest(tt.args))
			if err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if !result.IsError {
				t.Fatal("expected error result, got success")
			}
			assertErrorCode(t, result, tt.errorCode)
		})
	}
}

func TestCardsBeforeBirth(t *testing.T) {
	h := testHandlers(t)
	ctx := context.Background()

	startResult, err := h.HandleSessionStart(ctx, makeRequest(nil))
	start := resultJSON(t, mustResult(t, startResult, err))
	sessionID := start["session_id"].(string)

	result, err := h.HandleSessionCards(ctx, makeRequest(map[string]any{"session_id": sessionID}))
	if err != nil {
		t.Fatalf("session_cards: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}
	assertErrorCode(t, result, "SESSION_STATE")
}

func TestHandleEnergyAnalyze(t *testing.T) {
	h := testHandlers(t)

	result, err := h.HandleEnergyAnalyze(context.Background(), makeRequest(map[string]any{
		"text": "I crave transformation and deep mystery",
	}))
	if err != nil {
		t.Fatalf("energy_analyze: %v", err)
	}
	payload := resultJSON(t, result)
	if payload["primary_sign"] != "Scorpio" {
		t.Errorf("primary_sign = %v, want Scorpio", payload["primary_sign"])
	}
}

func TestHandleEnergyCumulative(t *testing.T) {
	h := testHandlers(t)

	result, err := h.HandleEnergyCumulative(context.Background(), makeRequest(map[string]any{
		"responses": []any{"I want freedom and adventure", "more travel and exploring"},
	}))
	if err != nil {
		t.Fatalf("energy_cumulative: %v", err)
	}
	payload := resultJSON(t, result)
	if payload["primary_sign"] != "Sagittarius" {
		t.Errorf("primary_sign = %v, want Sagittarius", payload["primary_sign"])
	}
}

func TestHandleDepthAnalyze(t *testing.T) {
	h := testHandlers(t)

	result, err := h.HandleDepthAnalyze(context.Background(), makeRequest(map[string]any{
		"text": "I feel scared because my work changed recently",
	}))
	if err != nil {
		t.Fatalf("depth_analyze: %v", err)
	}
	payload := resultJSON(t, result)
	if depth, _ := payload["depth"].(float64); depth <= 0.3 {
		t.Errorf("depth = %v, want > 0.3", payload["depth"])
	}
}

func TestHandleChartCalculate(t *testing.T) {
	h := testHandlers(t)

	result, err := h.HandleChartCalculate(context.Background(), makeRequest(map[string]any{
		"date":     "1990-06-15",
		"time":     "14:30",
		"location": "Paris",
	}))
	if err != nil {
		t.Fatalf("chart_calculate: %v", err)
	}
	payload := resultJSON(t, result)
	chart, _ := payload["chart"].(map[string]any)
	if chart["sun_sign"] != "Gemini" {
		t.Errorf("sun_sign = %v, want Gemini", chart["sun_sign"])
	}
	transits, _ := payload["current_transits"].([]any)
	if len(transits) == 0 {
		t.Error("no current transits")
	}
}

func TestHandleDeepAnalyze(t *testing.T) {
	h := testHandlers(t)

	result, err := h.HandleDeepAnalyze(context.Background(), makeRequest(map[string]any{
		"responses":  []any{"I am ready to transform my life purpose"},
		"date":       "1990-06-15",
		"time":       "14:30",
		"location":   "Paris",
		"card_names": []any{"The Fool", "The Magician", "The World"},
	}))
	if err != nil {
		t.Fatalf("deep_analyze: %v", err)
	}
	if result.IsError {
		t.Fatalf("deep_analyze failed: %v", extractErrorMessage(result))
	}
	payload := resultJSON(t, result)
	if _, ok := payload["analysis"].(map[string]any); !ok {
		t.Errorf("no analysis object in %v", payload)
	}
	if _, ok := payload["energy_update"].(map[string]any); !ok {
		t.Errorf("no energy_update object in %v", payload)
	}
}

func TestHandleDeepAnalyzeEmptyResponses(t *testing.T) {
	h := testHandlers(t)

	// An empty history is not an error: the engine produces its neutral
	// baseline analysis.
	result, err := h.HandleDeepAnalyze(context.Background(), makeRequest(map[string]any{}))
	payload := resultJSON(t, mustResult(t, result, err))

	da, _ := payload["analysis"].(map[string]any)
	if da == nil {
		t.Fatalf("no analysis object in %v", payload)
	}
	if sync, _ := da["synchronicity_level"].(float64); sync != 0.5 {
		t.Errorf("synchronicity_level = %v, want baseline 0.5", da["synchronicity_level"])
	}
	sig, _ := da["energetic_signature"].(map[string]any)
	if sig["primary_frequency"] != "Sagittarius" {
		t.Errorf("primary_frequency = %v, want Sagittarius", sig["primary_frequency"])
	}
}

func TestHandleDeepAnalyzeErrors(t *testing.T) {
	h := testHandlers(t)

	result, _ := h.HandleDeepAnalyze(context.Background(), makeRequest(map[string]any{
		"responses":  []any{"something"},
		"card_names": []any{"The Card Of Nothing"},
	}))
	assertErrorCode(t, result, "INVALID_INPUT")
}

func TestHandleDeckDraw(t *testing.T) {
	h := testHandlers(t)
	ctx := context.Background()

	result, err := h.HandleDeckDraw(ctx, makeRequest(nil))
	if err != nil {
		t.Fatalf("deck_draw: %v", err)
	}
	payload := resultJSON(t, result)
	cards, _ := payload["cards"].([]any)
	if len(cards) != 3 {
		t.Errorf("drew %d cards, want 3 by default", len(cards))
	}

	result, _ = h.HandleDeckDraw(ctx, makeRequest(map[string]any{"count": float64(100)}))
	assertErrorCode(t, result, "INVALID_INPUT")
}

func TestNewServerDisabledTools(t *testing.T) {
	h := testHandlers(t)

	cfg := config.DefaultConfig()
	cfg.DisabledTools = []string{"deck_draw", "reading_list"}

	s := NewServer(h, cfg, "test")
	if s == nil {
		t.Fatal("nil server")
	}
}

func TestValidateDisabledTools(t *testing.T) {
	unknown := ValidateDisabledTools([]string{"deck_draw", "bogus_tool"})
	if len(unknown) != 1 || unknown[0] != "bogus_tool" {
		t.Errorf("unknown = %v, want [bogus_tool]", unknown)
	}
}

func TestAllToolNames(t *testing.T) {
	names := AllToolNames()
	if len(names) != len(toolRegistry) {
		t.Errorf("got %d names, want %d", len(names), len(toolRegistry))
	}
}

func mustResult(t *testing.T, result *mcp.CallToolResult, err error) *mcp.CallToolResult {
	t.Helper()
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %v", extractErrorMessage(result))
	}
	return result
}
