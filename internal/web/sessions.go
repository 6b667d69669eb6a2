package web

import (
	"html/template"
	"net/http"

	"github.com/astroscan/astroscan/internal/astro"
	"github.com/astroscan/astroscan/internal/errors"
	"github.com/astroscan/astroscan/internal/reading"
)

// HandleSessionStart handles POST /sessions, opening a new reading session
// and sending the browser to its chat page.
func (h *Handlers) HandleSessionStart(w http.ResponseWriter, r *http.Request) {
	out := h.manager.Start()
	http.Redirect(w, r, "/sessions/"+out.SessionID, http.StatusSeeOther)
}

// HandleSessionPage handles GET /sessions/{id}: the chat page with the
// transcript so far and the form for the step the session is in.
func (h *Handlers) HandleSessionPage(w http.ResponseWriter, r *http.Request) {
	s, err := h.manager.Get(r.PathValue("id"))
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	lines := make([]TranscriptLine, 0, len(s.Transcript))
	for _, msg := range s.Transcript {
		line := TranscriptLine{Role: msg.Role}
		if msg.Role == reading.RoleOracle {
			line.HTML = renderMarkdown(msg.Text)
		} else {
			line.HTML = template.HTML(template.HTMLEscapeString(msg.Text))
		}
		lines = append(lines, line)
	}

	h.renderer.renderPage(w, "session", SessionPageData{
		PageData: PageData{
			Title:   "Session " + s.ID,
			Version: h.renderer.version,
			Nav:     "session",
		},
		Session: s,
		Lines:   lines,
	})
}

// HandleSessionBirth handles POST /sessions/{id}/birth.
func (h *Handlers) HandleSessionBirth(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	birth := astro.BirthData{
		Date:     r.FormValue("date"),
		Time:     r.FormValue("time"),
		Location: r.FormValue("location"),
	}
	if _, err := h.manager.SubmitBirth(id, birth); err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/sessions/"+id, http.StatusSeeOther)
}

// HandleSessionRespond handles POST /sessions/{id}/respond, one
// conversational turn.
func (h *Handlers) HandleSessionRespond(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	text := r.FormValue("text")
	if text == "" {
		h.renderer.renderError(w, r, errors.NewInvalidInput("response text is required"))
		return
	}
	if _, err := h.manager.Respond(r.Context(), id, text); err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/sessions/"+id, http.StatusSeeOther)
}

// HandleSessionCards handles POST /sessions/{id}/cards, drawing the three
// cards for the session.
func (h *Handlers) HandleSessionCards(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if _, err := h.manager.DrawCards(id); err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/sessions/"+id, http.StatusSeeOther)
}

// HandleSessionClarify handles POST /sessions/{id}/clarify, a question about
// the completed reading.
func (h *Handlers) HandleSessionClarify(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	question := r.FormValue("text")
	if question == "" {
		h.renderer.renderError(w, r, errors.NewInvalidInput("question text is required"))
		return
	}
	if _, err := h.manager.Clarify(id, question); err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/sessions/"+id, http.StatusSeeOther)
}
