package web

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/astroscan/astroscan/internal/db"
	"github.com/astroscan/astroscan/internal/errors"
	"github.com/astroscan/astroscan/internal/reading"
	"github.com/astroscan/astroscan/internal/tarot"
)

// Handlers contains the HTTP route handlers: live sessions and the readings
// archive.
type Handlers struct {
	db       *sql.DB
	manager  *reading.Manager
	renderer *Renderer
}

// HandleList handles GET /readings, listing archived readings.
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", 20)

	readings, err := db.ListReadings(h.db, limit)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, "list", ListPageData{
		PageData: PageData{
			Title:   "Readings",
			Version: h.renderer.version,
			Nav:     "readings",
		},
		Readings: readings,
		Limit:    limit,
	})
}

// HandleDetail handles GET /readings/{id}: one archived reading with its
// insight rendered from markdown.
func (h *Handlers) HandleDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	reading, err := db.GetReading(h.db, id)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	// The cards blob is written by us; a decode failure means a corrupt row.
	var cards []tarot.Card
	if reading.CardsJSON != "" {
		if err := json.Unmarshal([]byte(reading.CardsJSON), &cards); err != nil {
			h.renderer.renderError(w, r, errors.NewInternal(err))
			return
		}
	}

	h.renderer.renderPage(w, "detail", DetailPageData{
		PageData: PageData{
			Title:   "Reading " + reading.ID,
			Version: h.renderer.version,
			Nav:     "readings",
		},
		Reading:      reading,
		Cards:        cards,
		RenderedHTML: renderMarkdown(reading.Insight),
	})
}

// HandleDelete handles DELETE /readings/{id}.
func (h *Handlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := db.DeleteReading(h.db, id); err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, map[string]any{"deleted": id})
}

// HandlePurge handles POST /readings/purge, deleting the whole archive.
func (h *Handlers) HandlePurge(w http.ResponseWriter, r *http.Request) {
	purged, err := db.PurgeReadings(h.db)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, map[string]any{"purged": purged})
}

// parseIntParam parses an integer query parameter with a default.
func parseIntParam(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}
