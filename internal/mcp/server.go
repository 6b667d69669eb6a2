package mcp

import (
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/astroscan/astroscan/internal/config"
)

// timeNow is swapped in tests.
var timeNow = time.Now

var sessionStartToolDef = mcp.NewTool("session_start",
	mcp.WithDescription("Open a new guided reading session. Returns the session id and the opening prompt."),
)

var sessionBirthToolDef = mcp.NewTool("session_birth",
	mcp.WithDescription("Submit birth data for a session. Calculates the chart and returns the welcome message."),
	mcp.WithString("session_id", mcp.Required(), mcp.Description("Session id from session_start")),
	mcp.WithString("date", mcp.Required(), mcp.Description("Birth date, YYYY-MM-DD")),
	mcp.WithString("time", mcp.Required(), mcp.Description("Birth time, HH:MM")),
	mcp.WithString("location", mcp.Required(), mcp.Description("Birth place name")),
)

var sessionRespondToolDef = mcp.NewTool("session_respond",
	mcp.WithDescription("Send one conversational response into a session. The reply depends on the session step."),
	mcp.WithString("session_id", mcp.Required(), mcp.Description("Session id")),
	mcp.WithString("text", mcp.Required(), mcp.Description("The response text")),
)

var sessionCardsToolDef = mcp.NewTool("session_cards",
	mcp.WithDescription("Draw three cards for a session and read them against the chart."),
	mcp.WithString("session_id", mcp.Required(), mcp.Description("Session id")),
)

var sessionClarifyToolDef = mcp.NewTool("session_clarify",
	mcp.WithDescription("Ask a clarifying question about a completed reading."),
	mcp.WithString("session_id", mcp.Required(), mcp.Description("Session id")),
	mcp.WithString("question", mcp.Required(), mcp.Description("The clarifying question")),
)

var energyAnalyzeToolDef = mcp.NewTool("energy_analyze",
	mcp.WithDescription("Analyze free text for its dominant zodiacal energy signature."),
	mcp.WithString("text", mcp.Required(), mcp.Description("Text to analyze")),
)

var energyCumulativeToolDef = mcp.NewTool("energy_cumulative",
	mcp.WithDescription("Analyze a whole response history for its cumulative energy signature."),
	mcp.WithArray("responses", mcp.Required(), mcp.Description("Response texts, oldest first"),
		mcp.Items(map[string]any{"type": "string"})),
)

var depthAnalyzeToolDef = mcp.NewTool("depth_analyze",
	mcp.WithDescription("Score a response for depth, authenticity, readiness, and themes."),
	mcp.WithString("text", mcp.Required(), mcp.Description("Text to analyze")),
)

var chartCalculateToolDef = mcp.NewTool("chart_calculate",
	mcp.WithDescription("Derive a symbolic birth chart from birth data, plus current transit lines."),
	mcp.WithString("date", mcp.Required(), mcp.Description("Birth date, YYYY-MM-DD")),
	mcp.WithString("time", mcp.Required(), mcp.Description("Birth time, HH:MM")),
	mcp.WithString("location", mcp.Required(), mcp.Description("Birth place name")),
)

var deepAnalyzeToolDef = mcp.NewTool("deep_analyze",
	mcp.WithDescription("Run the full deep analysis over a response history, optionally with birth data and cards."),
	mcp.WithArray("responses", mcp.Required(), mcp.Description("Response texts, oldest first"),
		mcp.Items(map[string]any{"type": "string"})),
	mcp.WithString("date", mcp.Description("Birth date, YYYY-MM-DD")),
	mcp.WithString("time", mcp.Description("Birth time, HH:MM")),
	mcp.WithString("location", mcp.Description("Birth place name")),
	mcp.WithArray("card_names", mcp.Description("Names of cards already drawn"),
		mcp.Items(map[string]any{"type": "string"})),
)

var deckDrawToolDef = mcp.NewTool("deck_draw",
	mcp.WithDescription("Draw cards from the deck without replacement. Defaults to three."),
	mcp.WithNumber("count", mcp.Description("Number of cards to draw")),
)

var readingListToolDef = mcp.NewTool("reading_list",
	mcp.WithDescription("List archived readings, newest first."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of readings, 0 for all")),
)

var readingFetchToolDef = mcp.NewTool("reading_fetch",
	mcp.WithDescription("Fetch one archived reading by id."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Reading id")),
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"session_start": {
		def:     sessionStartToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSessionStart },
	},
	"session_birth": {
		def:     sessionBirthToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSessionBirth },
	},
	"session_respond": {
		def:     sessionRespondToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSessionRespond },
	},
	"session_cards": {
		def:     sessionCardsToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSessionCards },
	},
	"session_clarify": {
		def:     sessionClarifyToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSessionClarify },
	},
	"energy_analyze": {
		def:     energyAnalyzeToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleEnergyAnalyze },
	},
	"energy_cumulative": {
		def:     energyCumulativeToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleEnergyCumulative },
	},
	"depth_analyze": {
		def:     depthAnalyzeToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleDepthAnalyze },
	},
	"chart_calculate": {
		def:     chartCalculateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleChartCalculate },
	},
	"deep_analyze": {
		def:     deepAnalyzeToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleDeepAnalyze },
	},
	"deck_draw": {
		def:     deckDrawToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleDeckDraw },
	},
	"reading_list": {
		def:     readingListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleReadingList },
	},
	"reading_fetch": {
		def:     readingFetchToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleReadingFetch },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with AstroScan tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(h *Handlers, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"astroscan",
		version,
		server.WithToolCapabilities(true),
	)

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(h *Handlers, cfg *config.Config, version string) error {
	s := NewServer(h, cfg, version)
	return server.ServeStdio(s)
}
