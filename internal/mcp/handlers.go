package mcp

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/astroscan/astroscan/internal/analysis"
	"github.com/astroscan/astroscan/internal/astro"
	"github.com/astroscan/astroscan/internal/db"
	"github.com/astroscan/astroscan/internal/energy"
	"github.com/astroscan/astroscan/internal/errors"
	"github.com/astroscan/astroscan/internal/reading"
	"github.com/astroscan/astroscan/internal/tarot"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	manager  *reading.Manager
	deck     tarot.Deck
	database *sql.DB
}

// NewHandlers creates a new Handlers instance. database may be nil when no
// archive is configured; the reading_* tools then report an invalid request.
func NewHandlers(manager *reading.Manager, deck tarot.Deck, database *sql.DB) *Handlers {
	return &Handlers{manager: manager, deck: deck, database: database}
}

// Request types for each tool

// BirthRequest carries birth data, with or without a session.
type BirthRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Location  string `json:"location"`
}

// SessionRequest identifies a session.
type SessionRequest struct {
	SessionID string `json:"session_id"`
}

// RespondRequest carries one conversational turn.
type RespondRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

// ClarifyRequest carries a question about a completed reading.
type ClarifyRequest struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
}

// TextRequest carries free text for the analyzers.
type TextRequest struct {
	Text string `json:"text"`
}

// ResponsesRequest carries a response history.
type ResponsesRequest struct {
	Responses []string `json:"responses"`
}

// DeepAnalyzeRequest carries everything the deep engine can consume.
type DeepAnalyzeRequest struct {
	Responses []string `json:"responses"`
	Date      string   `json:"date,omitempty"`
	Time      string   `json:"time,omitempty"`
	Location  string   `json:"location,omitempty"`
	CardNames []string `json:"card_names,omitempty"`
}

// DrawRequest asks for a number of cards.
type DrawRequest struct {
	Count int `json:"count,omitempty"`
}

// ListRequest bounds the archive listing.
type ListRequest struct {
	Limit int `json:"limit,omitempty"`
}

// FetchRequest identifies an archived reading.
type FetchRequest struct {
	ID string `json:"id"`
}

// Handler implementations

// HandleSessionStart handles the session_start tool call.
func (h *Handlers) HandleSessionStart(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return successResult(h.manager.Start())
}

// HandleSessionBirth handles the session_birth tool call.
func (h *Handlers) HandleSessionBirth(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, derr := decode[BirthRequest](req)
	if derr != nil {
		return errorResult(derr), nil
	}

	result, err := h.manager.SubmitBirth(input.SessionID, astro.BirthData{
		Date:     input.Date,
		Time:     input.Time,
		Location: input.Location,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleSessionRespond handles the session_respond tool call.
func (h *Handlers) HandleSessionRespond(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, derr := decode[RespondRequest](req)
	if derr != nil {
		return errorResult(derr), nil
	}

	result, err := h.manager.Respond(ctx, input.SessionID, input.Text)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleSessionCards handles the session_cards tool call.
func (h *Handlers) HandleSessionCards(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, derr := decode[SessionRequest](req)
	if derr != nil {
		return errorResult(derr), nil
	}

	result, err := h.manager.DrawCards(input.SessionID)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleSessionClarify handles the session_clarify tool call.
func (h *Handlers) HandleSessionClarify(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, derr := decode[ClarifyRequest](req)
	if derr != nil {
		return errorResult(derr), nil
	}

	result, err := h.manager.Clarify(input.SessionID, input.Question)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleEnergyAnalyze handles the energy_analyze tool call.
func (h *Handlers) HandleEnergyAnalyze(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, derr := decode[TextRequest](req)
	if derr != nil {
		return errorResult(derr), nil
	}
	return successResult(energy.Analyze(input.Text))
}

// HandleEnergyCumulative handles the energy_cumulative tool call.
func (h *Handlers) HandleEnergyCumulative(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, derr := decode[ResponsesRequest](req)
	if derr != nil {
		return errorResult(derr), nil
	}
	return successResult(energy.AnalyzeCumulative(input.Responses))
}

// HandleDepthAnalyze handles the depth_analyze tool call.
func (h *Handlers) HandleDepthAnalyze(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, derr := decode[TextRequest](req)
	if derr != nil {
		return errorResult(derr), nil
	}
	return successResult(energy.AnalyzeDepth(input.Text))
}

// ChartResult pairs a chart with the transit lines in effect right now.
type ChartResult struct {
	Chart           *astro.Chart `json:"chart"`
	CurrentTransits []string     `json:"current_transits"`
}

// HandleChartCalculate handles the chart_calculate tool call.
func (h *Handlers) HandleChartCalculate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, derr := decode[BirthRequest](req)
	if derr != nil {
		return errorResult(derr), nil
	}

	chart, err := astro.Calculate(astro.BirthData{
		Date:     input.Date,
		Time:     input.Time,
		Location: input.Location,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(ChartResult{Chart: chart, CurrentTransits: astro.CurrentTransits(timeNow())})
}

// DeepAnalyzeResult is the deep analysis plus its derived energy update.
type DeepAnalyzeResult struct {
	Analysis analysis.DeepAnalysis `json:"analysis"`
	Update   analysis.EnergyUpdate `json:"energy_update"`
}

// HandleDeepAnalyze handles the deep_analyze tool call.
func (h *Handlers) HandleDeepAnalyze(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, derr := decode[DeepAnalyzeRequest](req)
	if derr != nil {
		return errorResult(derr), nil
	}

	var chart *astro.Chart
	if input.Date != "" || input.Time != "" || input.Location != "" {
		c, err := astro.Calculate(astro.BirthData{
			Date:     input.Date,
			Time:     input.Time,
			Location: input.Location,
		})
		if err != nil {
			return errorResult(err), nil
		}
		chart = c
	}

	cards, err := h.cardsByName(input.CardNames)
	if err != nil {
		return errorResult(err), nil
	}

	da := analysis.Perform(input.Responses, chart, cards)
	return successResult(DeepAnalyzeResult{Analysis: da, Update: analysis.DeriveEnergyUpdate(da)})
}

// HandleDeckDraw handles the deck_draw tool call.
func (h *Handlers) HandleDeckDraw(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, derr := decode[DrawRequest](req)
	if derr != nil {
		return errorResult(derr), nil
	}
	if input.Count == 0 {
		input.Count = 3
	}

	cards, err := h.deck.Draw(input.Count)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(map[string]any{"cards": cards})
}

// HandleReadingList handles the reading_list tool call.
func (h *Handlers) HandleReadingList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, derr := decode[ListRequest](req)
	if derr != nil {
		return errorResult(derr), nil
	}
	if h.database == nil {
		return errorResult(errors.NewInvalidInput("no reading archive configured")), nil
	}

	readings, err := db.ListReadings(h.database, input.Limit)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(map[string]any{"readings": readings, "count": len(readings)})
}

// HandleReadingFetch handles the reading_fetch tool call.
func (h *Handlers) HandleReadingFetch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, derr := decode[FetchRequest](req)
	if derr != nil {
		return errorResult(derr), nil
	}
	if h.database == nil {
		return errorResult(errors.NewInvalidInput("no reading archive configured")), nil
	}

	r, err := db.GetReading(h.database, input.ID)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(r)
}

// cardsByName resolves card names against the deck, case-insensitively.
func (h *Handlers) cardsByName(names []string) ([]tarot.Card, error) {
	cards := make([]tarot.Card, 0, len(names))
	for _, name := range names {
		found := false
		for _, c := range h.deck {
			if strings.EqualFold(c.Name, name) {
				cards = append(cards, c)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.NewInvalidInput("unknown card: " + name)
		}
	}
	return cards, nil
}

func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if readingErr, ok := err.(*errors.ReadingError); ok {
		errorObj := map[string]any{
			"code":    readingErr.Code,
			"message": readingErr.Message,
			"status":  readingErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if readingErr.Code != errors.ErrInternal && readingErr.Details != nil {
			errorObj["details"] = readingErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
