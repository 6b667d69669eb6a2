// Package reading runs the guided reading conversation: birth data first,
// then an open question, three cards, a deeper exchange, the final insight,
// and a clarifying loop once the reading is complete.
package reading

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/astroscan/astroscan/internal/analysis"
	"github.com/astroscan/astroscan/internal/astro"
	"github.com/astroscan/astroscan/internal/db"
	"github.com/astroscan/astroscan/internal/energy"
	"github.com/astroscan/astroscan/internal/errors"
	"github.com/astroscan/astroscan/internal/tarot"
)

// Step names the phase a session is in. Operations are only legal in the
// step that expects them.
type Step string

const (
	StepBirthdate  Step = "birthdate"
	StepInitial    Step = "initial"
	StepCards      Step = "cards"
	StepDeeper     Step = "deeper"
	StepFinal      Step = "final"
	StepClarifying Step = "clarifying"
)

// Message is one line of the conversation, kept so the session can be
// replayed as a transcript.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Transcript roles.
const (
	RoleSeeker = "seeker"
	RoleOracle = "oracle"
)

// Session holds the full state of one reading conversation.
type Session struct {
	ID         string                 `json:"id"`
	Step       Step                   `json:"step"`
	CreatedAt  time.Time              `json:"created_at"`
	Birth      *astro.BirthData       `json:"birth,omitempty"`
	Chart      *astro.Chart           `json:"chart,omitempty"`
	Transits   []string               `json:"transits,omitempty"`
	Responses  []string               `json:"responses"`
	Cards      []tarot.Card           `json:"cards,omitempty"`
	Analysis   *analysis.DeepAnalysis `json:"analysis,omitempty"`
	Insight    string                 `json:"insight,omitempty"`
	Transcript []Message              `json:"transcript,omitempty"`
}

// Narrator produces free-form prose for a completed reading. Implementations
// may call external services; failures are absorbed by the manager.
type Narrator interface {
	Narrate(ctx context.Context, a analysis.DeepAnalysis, chart *astro.Chart, cards []tarot.Card) (string, error)
}

// narratorApology replaces the collaborator's prose when it cannot deliver.
const narratorApology = "I'm sorry, the cosmic channel is a bit noisy right now. Sit with the reading above; it already holds everything you need."

// Manager owns all live sessions. Completed readings are archived to the
// database if one is configured.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	deck     tarot.Deck
	database *sql.DB
	narrator Narrator
	now      func() time.Time
	question func() string
}

// NewManager builds a session manager. database and narrator may be nil.
func NewManager(deck tarot.Deck, database *sql.DB, narrator Narrator) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		deck:     deck,
		database: database,
		narrator: narrator,
		now:      time.Now,
		question: randomInitialQuestion,
	}
}

// StartOutput is the result of opening a session.
type StartOutput struct {
	SessionID string `json:"session_id"`
	Step      Step   `json:"step"`
	Message   string `json:"message"`
}

// Start opens a new session waiting for birth data.
func (m *Manager) Start() *StartOutput {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := &Session{
		ID:        ulid.Make().String(),
		Step:      StepBirthdate,
		CreatedAt: m.now(),
		Responses: []string{},
	}
	m.sessions[s.ID] = s

	opening := "Before we begin, I need your birth details: date, time, and place. The cosmos is specific about these things."
	s.Transcript = append(s.Transcript, Message{Role: RoleOracle, Text: opening})

	return &StartOutput{
		SessionID: s.ID,
		Step:      s.Step,
		Message:   opening,
	}
}

// Get returns a snapshot of a session.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, errors.NewNotFound("session " + id + " not found")
	}
	snapshot := *s
	snapshot.Responses = append([]string(nil), s.Responses...)
	snapshot.Cards = append([]tarot.Card(nil), s.Cards...)
	snapshot.Transcript = append([]Message(nil), s.Transcript...)
	return &snapshot, nil
}

// List returns snapshots of all live sessions, newest first.
func (m *Manager) List() []*Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		snapshot := *s
		out = append(out, &snapshot)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// BirthOutput is the result of submitting birth data.
type BirthOutput struct {
	Step    Step         `json:"step"`
	Chart   *astro.Chart `json:"chart"`
	Message string       `json:"message"`
}

// SubmitBirth calculates the chart and moves the session to the initial
// question.
func (m *Manager) SubmitBirth(id string, birth astro.BirthData) (*BirthOutput, error) {
	chart, err := astro.Calculate(birth)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, errors.NewNotFound("session " + id + " not found")
	}
	if s.Step != StepBirthdate {
		return nil, errors.NewSessionState(string(s.Step), "submit_birth")
	}

	s.Birth = &birth
	s.Chart = chart
	s.Transits = astro.CurrentTransits(m.now())
	s.Step = StepInitial

	welcome := welcomeMessage(chart, s.Transits, m.question())
	s.Transcript = append(s.Transcript,
		Message{Role: RoleSeeker, Text: birth.Date + " " + birth.Time + ", " + birth.Location},
		Message{Role: RoleOracle, Text: welcome},
	)

	return &BirthOutput{
		Step:    s.Step,
		Chart:   chart,
		Message: welcome,
	}, nil
}

// RespondOutput is the result of a conversational turn.
type RespondOutput struct {
	Step    Step                   `json:"step"`
	Message string                 `json:"message"`
	Energy  energy.Signature       `json:"energy"`
	Depth   energy.DepthProfile    `json:"depth"`
	Result  *analysis.DeepAnalysis `json:"analysis,omitempty"`
}

// Respond feeds one user message into the session. What happens next depends
// on the step: the initial response invites the cards, the deeper response
// earns a follow-up question, the final response produces the full insight,
// and anything after that is treated as a clarifying question.
func (m *Manager) Respond(ctx context.Context, id, text string) (*RespondOutput, error) {
	if text == "" {
		return nil, errors.NewInvalidInput("response text is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, errors.NewNotFound("session " + id + " not found")
	}

	sig := energy.Analyze(text)
	metrics := energy.AnalyzeDepth(text)

	out := &RespondOutput{Energy: sig, Depth: metrics}

	switch s.Step {
	case StepInitial:
		s.Responses = append(s.Responses, text)
		out.Message = cardSelectionMessage(s.Chart, sig, metrics)
		s.Step = StepCards

	case StepDeeper:
		// The follow-up question reaches back to what was shared before
		// this turn, not the turn itself.
		prior := append([]string(nil), s.Responses...)
		s.Responses = append(s.Responses, text)
		out.Message = deeperMessage(s.Chart, s.Cards, prior)
		s.Step = StepFinal

	case StepFinal:
		s.Responses = append(s.Responses, text)
		da := analysis.Perform(s.Responses, s.Chart, s.Cards)
		s.Analysis = &da
		insight := finalInsight(s.Chart, s.Transits, s.Cards, s.Responses, da)
		s.Step = StepClarifying
		if m.narrator != nil {
			// The narrator is an external call with retries. The step is
			// already advanced, so other sessions (and clarifying turns on
			// this one) proceed while the lock is released.
			chart := s.Chart
			cards := append([]tarot.Card(nil), s.Cards...)
			m.mu.Unlock()
			prose, err := m.narrator.Narrate(ctx, da, chart, cards)
			m.mu.Lock()
			if err != nil {
				prose = narratorApology
			}
			insight += "\n\n" + prose
		}
		s.Insight = insight
		out.Message = insight
		out.Result = &da

		if err := m.archiveLocked(s); err != nil {
			return nil, err
		}

	case StepClarifying:
		s.Responses = append(s.Responses, text)
		out.Message = clarifyingResponse(text, s.Cards)

	default:
		return nil, errors.NewSessionState(string(s.Step), "respond")
	}

	s.Transcript = append(s.Transcript,
		Message{Role: RoleSeeker, Text: text},
		Message{Role: RoleOracle, Text: out.Message},
	)

	out.Step = s.Step
	return out, nil
}

// CardsOutput is the result of the three cards choosing the querent.
type CardsOutput struct {
	Step     Step                   `json:"step"`
	Cards    []tarot.Card           `json:"cards"`
	Messages []string               `json:"messages"`
	Update   analysis.EnergyUpdate  `json:"energy_update"`
	Result   *analysis.DeepAnalysis `json:"analysis"`
}

// DrawCards draws three cards for the session and reads them against the
// chart.
func (m *Manager) DrawCards(id string) (*CardsOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, errors.NewNotFound("session " + id + " not found")
	}
	if s.Step != StepCards {
		return nil, errors.NewSessionState(string(s.Step), "draw_cards")
	}

	cards, err := m.deck.Draw(3)
	if err != nil {
		return nil, err
	}
	s.Cards = cards

	da := analysis.Perform(s.Responses, s.Chart, cards)
	s.Analysis = &da
	update := analysis.DeriveEnergyUpdate(da)
	s.Step = StepDeeper

	messages := []string{
		cardsChosenMessage(s.Chart, cards),
		cardAnalysisMessage(s.Chart, cards, da),
	}
	for _, msg := range messages {
		s.Transcript = append(s.Transcript, Message{Role: RoleOracle, Text: msg})
	}

	return &CardsOutput{
		Step:     s.Step,
		Cards:    cards,
		Messages: messages,
		Update:   update,
		Result:   &da,
	}, nil
}

// ClarifyOutput is the answer to a question about a completed reading.
type ClarifyOutput struct {
	Step    Step   `json:"step"`
	Message string `json:"message"`
}

// Clarify answers a follow-up question once the reading is complete.
func (m *Manager) Clarify(id, question string) (*ClarifyOutput, error) {
	if question == "" {
		return nil, errors.NewInvalidInput("question text is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, errors.NewNotFound("session " + id + " not found")
	}
	if s.Step != StepClarifying {
		return nil, errors.NewSessionState(string(s.Step), "clarify")
	}

	answer := clarifyingResponse(question, s.Cards)
	s.Transcript = append(s.Transcript,
		Message{Role: RoleSeeker, Text: question},
		Message{Role: RoleOracle, Text: answer},
	)

	return &ClarifyOutput{
		Step:    s.Step,
		Message: answer,
	}, nil
}

// Close removes a session from the manager.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return errors.NewNotFound("session " + id + " not found")
	}
	delete(m.sessions, id)
	return nil
}

// archiveLocked stores the completed reading. Caller holds the lock.
func (m *Manager) archiveLocked(s *Session) error {
	if m.database == nil {
		return nil
	}

	cardsJSON, err := json.Marshal(s.Cards)
	if err != nil {
		return errors.NewInternal(err)
	}
	responsesJSON, err := json.Marshal(s.Responses)
	if err != nil {
		return errors.NewInternal(err)
	}

	r := &db.Reading{
		ID:            s.ID,
		CreatedAt:     m.now().Unix(),
		CardsJSON:     string(cardsJSON),
		ResponsesJSON: string(responsesJSON),
		Insight:       s.Insight,
	}
	if s.Birth != nil {
		r.BirthDate = s.Birth.Date
		r.BirthTime = s.Birth.Time
		r.BirthLocation = s.Birth.Location
	}
	if s.Chart != nil {
		r.SunSign = string(s.Chart.SunSign)
		r.MoonSign = string(s.Chart.MoonSign)
		r.RisingSign = string(s.Chart.RisingSign)
	}
	if s.Analysis != nil {
		r.Synchronicity = s.Analysis.SynchronicityLevel
	}
	return db.InsertReading(m.database, r)
}

func randomInitialQuestion() string {
	return initialQuestions[rand.IntN(len(initialQuestions))]
}
