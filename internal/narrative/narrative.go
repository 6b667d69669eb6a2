// Package narrative asks a language model for closing prose once a reading
// is complete. The structured reading stays local; the model only embellishes.
package narrative

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"

	"github.com/astroscan/astroscan/internal/analysis"
	"github.com/astroscan/astroscan/internal/astro"
	"github.com/astroscan/astroscan/internal/errors"
	"github.com/astroscan/astroscan/internal/tarot"
)

const instructions = `You are a warm, grounded tarot reader closing out a session.
You are given the technical summary of a completed reading. Write a short
closing note (at most three paragraphs) in a personal, encouraging voice.
Do not repeat the card meanings verbatim and do not invent cards or signs
that are not in the summary.`

const defaultModel = "gpt-4o-mini"

// Generator produces closing prose via the OpenAI responses API. It retries
// transient failures itself, so the SDK's own retry layer is disabled.
type Generator struct {
	client  openai.Client
	model   string
	backoff time.Duration
}

// New builds a generator. An empty model selects the default. Extra options
// are passed through to the SDK client.
func New(apiKey, model string, opts ...option.RequestOption) *Generator {
	if model == "" {
		model = defaultModel
	}
	clientOpts := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)
	return &Generator{
		client:  openai.NewClient(clientOpts...),
		model:   model,
		backoff: time.Second,
	}
}

const maxAttempts = 3

// Narrate renders the reading summary into prose. It tries up to three times
// with a fixed pause between attempts and reports the last failure.
func (g *Generator) Narrate(ctx context.Context, a analysis.DeepAnalysis, chart *astro.Chart, cards []tarot.Card) (string, error) {
	params := responses.ResponseNewParams{
		Model:           g.model,
		MaxOutputTokens: openai.Int(600),
		Instructions:    openai.String(instructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(buildPrompt(a, chart, cards), responses.EasyInputMessageRoleUser),
			},
		},
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", errors.NewExternalService("narrative", ctx.Err())
			case <-time.After(g.backoff):
			}
		}

		resp, err := g.client.Responses.New(ctx, params)
		if err != nil {
			lastErr = err
			continue
		}
		text := strings.TrimSpace(resp.OutputText())
		if text == "" {
			lastErr = fmt.Errorf("empty model output")
			continue
		}
		return text, nil
	}
	return "", errors.NewExternalService("narrative", lastErr)
}

// buildPrompt flattens the reading into a plain-text summary for the model.
func buildPrompt(a analysis.DeepAnalysis, chart *astro.Chart, cards []tarot.Card) string {
	var b strings.Builder

	b.WriteString("Completed reading summary:\n\n")
	if chart != nil {
		fmt.Fprintf(&b, "Chart: %s Sun, %s Moon, %s Rising\n", chart.SunSign, chart.MoonSign, chart.RisingSign)
		fmt.Fprintf(&b, "North Node: %s\n", chart.NorthNode)
	}
	if len(cards) > 0 {
		names := make([]string, len(cards))
		for i, c := range cards {
			names[i] = c.Name
			if kw := firstKeyword(c); kw != "" {
				names[i] = fmt.Sprintf("%s (%s)", c.Name, kw)
			}
		}
		fmt.Fprintf(&b, "Cards: %s\n", strings.Join(names, ", "))
	}

	fmt.Fprintf(&b, "Archetype: %s\n", a.PsychologicalProfile.DominantArchetype)
	fmt.Fprintf(&b, "Consciousness: %.0f%%\n", a.PsychologicalProfile.ConsciousnessLevel*100)
	fmt.Fprintf(&b, "Synchronicity: %.0f%%\n", a.SynchronicityLevel*100)
	fmt.Fprintf(&b, "Evolutionary stage: %s\n", a.EvolutionaryStage.CurrentLevel)
	fmt.Fprintf(&b, "Soul mission: %s\n", a.SoulPurpose.PrimaryMission)

	if len(a.CurrentChallenges) > 0 {
		b.WriteString("Challenges:\n")
		for _, c := range a.CurrentChallenges {
			fmt.Fprintf(&b, "- %s: %s\n", c.Type, c.Description)
		}
	}
	if len(a.ActionableInsights) > 0 {
		b.WriteString("Guidance already given:\n")
		for _, in := range a.ActionableInsights {
			fmt.Fprintf(&b, "- %s\n", in.Action)
		}
	}

	return b.String()
}

func firstKeyword(c tarot.Card) string {
	if len(c.Keywords) == 0 {
		return ""
	}
	return c.Keywords[0]
}
