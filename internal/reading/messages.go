package reading

import (
	"fmt"
	"math"
	"strings"

	"github.com/astroscan/astroscan/internal/analysis"
	"github.com/astroscan/astroscan/internal/astro"
	"github.com/astroscan/astroscan/internal/energy"
	"github.com/astroscan/astroscan/internal/tarot"
)

var initialQuestions = []string{
	"What's going on in your life that you could use some perspective on?",
	"What's been on your mind lately that you'd like to explore?",
	"Tell me what's happening in your world right now.",
	"What situation are you dealing with that could use some clarity?",
	"What's the main thing you're thinking about or working through?",
	"What's going on that brought you here for a reading today?",
}

// firstPart strips a "Theme - elaboration" string down to its theme.
func firstPart(s string) string {
	head, _, _ := strings.Cut(s, " - ")
	return head
}

func percent(v float64) int {
	return int(math.Round(v * 100))
}

func keyword0(c tarot.Card) string {
	if len(c.Keywords) == 0 {
		return ""
	}
	return c.Keywords[0]
}

func welcomeMessage(chart *astro.Chart, transits []string, question string) string {
	return fmt.Sprintf(`Welcome, %s soul! I'm immediately picking up your %s Sun, %s Moon, and %s Rising energy...

Your cosmic blueprint shows %s as your primary evolutionary theme, and with %s, you're here for some serious consciousness work.

The current cosmic weather - %s - is literally designed to support exactly what you're going through right now.

%s`,
		chart.SunSign, chart.SunSign, chart.MoonSign, chart.RisingSign,
		strings.ToLower(firstPart(chart.EvolutionaryTheme)),
		strings.ToLower(chart.GalacticAlignment),
		strings.ToLower(transits[0]),
		question)
}

func cardSelectionMessage(chart *astro.Chart, sig energy.Signature, metrics energy.DepthProfile) string {
	return fmt.Sprintf(`I can feel the %s energy in your response... your soul is ready for some real clarity.

Your %s Sun is resonating at %d%% depth and %d%% authenticity - this tells me you're ready for truth, not just comfort.

Time to let three cards choose you. Your %s Moon knows exactly which ones are meant for your situation. Trust that first instinct - your %s Rising is your cosmic antenna.`,
		sig.PrimarySign, chart.SunSign,
		percent(metrics.Depth), percent(metrics.Authenticity),
		chart.MoonSign, chart.RisingSign)
}

func cardsChosenMessage(chart *astro.Chart, cards []tarot.Card) string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Name
	}
	return fmt.Sprintf(`Perfect... %s chose you. Your %s energy is in complete resonance with these frequencies.

%s is reflecting your %s karmic mastery... %s is illuminating your current %s process... and %s is pointing toward your %s soul growth edge.

The synchronicity level is already off the charts - these cards are speaking directly to your situation.`,
		strings.Join(names, ", "), chart.SunSign,
		cards[0].Name, firstPart(chart.SouthNode),
		cards[1].Name, strings.ToLower(firstPart(chart.EvolutionaryTheme)),
		cards[2].Name, firstPart(chart.NorthNode))
}

func cardAnalysisMessage(chart *astro.Chart, cards []tarot.Card, da analysis.DeepAnalysis) string {
	return fmt.Sprintf(`The cosmic conversation between your cards and your actual situation is incredible...

**SITUATIONAL CARD ANALYSIS:**

%s + your %s past mastery = This %s energy is exactly what you've been drawing from to handle your current situation. Your soul already knows how to navigate this.

%s + your present reality = The %s frequency is what's needed RIGHT NOW for what you're going through. This isn't random - this card is speaking directly to your current experience.

%s + your %s growth edge = This %s energy is your path forward. Instead of trying to control how things unfold, what if you approached your situation with complete %s trust?

**CONSCIOUSNESS ACTIVATION: %d%%**
**SYNCHRONICITY LEVEL: %d%%**

Your %s Moon is asking: When you look at these three cards and think about your actual situation - what's the first insight that hits you? What do these symbols make you realize about what you're really dealing with?`,
		cards[0].Name, firstPart(chart.SouthNode), keyword0(cards[0]),
		cards[1].Name, keyword0(cards[1]),
		cards[2].Name, firstPart(chart.NorthNode), keyword0(cards[2]), keyword0(cards[2]),
		percent(da.PsychologicalProfile.ConsciousnessLevel),
		percent(da.SynchronicityLevel),
		chart.MoonSign)
}

// followUpQuestion turns the present-position card and the situation they
// described into one pointed question.
func followUpQuestion(cards []tarot.Card, responses []string) string {
	situation := ExtractSituation(responses)
	mainCard := cards[1]

	switch situation.Type {
	case "relationship":
		return fmt.Sprintf("So with this relationship thing you mentioned - when you look at the %s, what comes up for you? This card often shows up when we need to trust our gut about someone.", mainCard.Name)
	case "work":
		return fmt.Sprintf("About the work situation - the %s is interesting here. What would it look like if you approached this from a place of complete self-trust instead of trying to please everyone?", mainCard.Name)
	case "decision":
		return fmt.Sprintf("For this decision you're facing, the %s is asking: what would you choose if you knew you couldn't make a wrong choice? What feels most true to who you are?", mainCard.Name)
	case "family":
		return fmt.Sprintf("With your family situation, the %s often appears when we need to set boundaries while staying loving. What would that look like for you?", mainCard.Name)
	case "change":
		return fmt.Sprintf("About the changes happening - the %s suggests this transition is actually preparing you for something better. What part of you is excited about what's coming?", mainCard.Name)
	case "fear":
		return fmt.Sprintf("What you're scared about - the %s often shows up to remind us that fear and excitement feel the same in the body. What if this fear is actually anticipation?", mainCard.Name)
	}
	if situation.KeyPhrase != "" {
		return fmt.Sprintf("You said \"%s\" - the %s is asking: what would change if you completely trusted yourself in this situation?", situation.KeyPhrase, mainCard.Name)
	}
	return fmt.Sprintf("Looking at the %s and what you shared - what's your gut telling you about this situation? What feels most true?", mainCard.Name)
}

func deeperMessage(chart *astro.Chart, cards []tarot.Card, responses []string) string {
	followUp := followUpQuestion(cards, responses)
	if chart != nil {
		return fmt.Sprintf("Your %s North Node is asking: %s", firstPart(chart.NorthNode), followUp)
	}
	return followUp
}

// finalInsight assembles the full reading: the technical snapshot, the
// situation response, the three card interpretations, the personal guidance,
// and the next steps.
func finalInsight(chart *astro.Chart, transits []string, cards []tarot.Card, responses []string, da analysis.DeepAnalysis) string {
	situation := ExtractSituation(responses)

	var b strings.Builder
	b.WriteString("**Technical Energies**\n\n")
	if chart != nil {
		fmt.Fprintf(&b, "• Sun: %s\n", chart.SunSign)
		fmt.Fprintf(&b, "• Moon: %s\n", chart.MoonSign)
		fmt.Fprintf(&b, "• Rising: %s\n", chart.RisingSign)
		if len(transits) > 0 {
			fmt.Fprintf(&b, "• Current Transit: %s\n", transits[0])
		}
	}
	if len(cards) == 3 {
		fmt.Fprintf(&b, "• Past: %s (%s)\n", cards[0].Name, keyword0(cards[0]))
		fmt.Fprintf(&b, "• Present: %s (%s)\n", cards[1].Name, keyword0(cards[1]))
		fmt.Fprintf(&b, "• Guidance: %s (%s)\n", cards[2].Name, keyword0(cards[2]))
	} else {
		for i, c := range cards {
			fmt.Fprintf(&b, "• Card %d: %s (%s)\n", i+1, c.Name, keyword0(c))
		}
	}
	fmt.Fprintf(&b, "• Consciousness: %d%%\n", percent(da.PsychologicalProfile.ConsciousnessLevel))
	fmt.Fprintf(&b, "• Synchronicity: %d%%\n", percent(da.SynchronicityLevel))
	b.WriteString("\n")

	if situation.Type != "" && situation.Details != "" {
		fmt.Fprintf(&b, "**About your %s situation:**\n\n", situation.Type)
		b.WriteString(situationResponse(situation, cards))
		b.WriteString("\n\n")
	}

	b.WriteString("**What your cards are saying:**\n\n")
	b.WriteString(cardReadings(cards, situation))
	b.WriteString("\n\n")

	b.WriteString("**What this means for you:**\n\n")
	b.WriteString(personalGuidance(situation, chart))
	b.WriteString("\n\n")

	b.WriteString("**Moving forward:**\n\n")
	b.WriteString(nextSteps(situation, cards))

	return b.String()
}

func situationResponse(situation Situation, cards []tarot.Card) string {
	mainCard := cards[1]
	switch situation.Type {
	case "relationship":
		return fmt.Sprintf("The %s is really interesting for relationship stuff. This card usually shows up when you need to trust your own feelings about someone instead of overthinking it. What's your gut actually telling you about this person or situation? Sometimes we know the answer but we're scared to admit it to ourselves.", mainCard.Name)
	case "work":
		return fmt.Sprintf("With work situations, the %s often means you're being called to show up more authentically. Instead of trying to be what you think they want, what would happen if you just brought your real self to this? Your authentic energy is actually your biggest professional asset.", mainCard.Name)
	case "family":
		return fmt.Sprintf("Family stuff is always complex, and the %s suggests this situation is asking you to find your own center. You can love your family and still have boundaries. What would it look like to stay true to yourself while still being loving?", mainCard.Name)
	case "decision":
		return fmt.Sprintf("For decisions, the %s is basically saying your intuition already knows the answer. All that mental back-and-forth is just noise. What choice feels most like you? What option makes you feel more expansive rather than contracted?", mainCard.Name)
	case "change":
		return fmt.Sprintf("Change is uncomfortable but the %s suggests this transition is actually aligning you with something better. What part of this change feels exciting, even if it's also scary? Sometimes the universe moves us toward what we need even when we resist it.", mainCard.Name)
	case "fear":
		return fmt.Sprintf("The %s often appears when we're afraid of something that's actually good for us. Fear and excitement feel the same in your body - it's just how your mind interprets the energy. What if this fear is actually anticipation for something amazing?", mainCard.Name)
	}
	return fmt.Sprintf("The %s is speaking to whatever you're going through right now. This card usually shows up when you need to trust yourself more and worry about external validation less. Your inner knowing is stronger than you think.", mainCard.Name)
}

func cardReadings(cards []tarot.Card, situation Situation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**%s** - This is your foundation right now. ", cards[0].Name)
	if situation.Type != "" {
		fmt.Fprintf(&b, "For your %s situation, this %s energy is what's supporting you. You've got more strength here than you realize.", situation.Type, keyword0(cards[0]))
	} else {
		fmt.Fprintf(&b, "This %s energy is your secret strength. It's been building in you and now it's ready to be used.", keyword0(cards[0]))
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "**%s** - This is what's happening right now. ", cards[1].Name)
	if situation.Type != "" {
		fmt.Fprintf(&b, "In your %s situation, %s energy is exactly what's needed. This isn't random - this card chose you because this energy is your answer.", situation.Type, keyword0(cards[1]))
	} else {
		fmt.Fprintf(&b, "The %s frequency is what you need to embody right now. Trust this energy completely.", keyword0(cards[1]))
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "**%s** - This is your path forward. ", cards[2].Name)
	if situation.Type != "" {
		fmt.Fprintf(&b, "For your %s situation, approach it with %s energy. Don't force outcomes - just embody this frequency and let things unfold naturally.", situation.Type, keyword0(cards[2]))
	} else {
		fmt.Fprintf(&b, "%s is your guidance. When you're not sure what to do, ask yourself: what would %s energy do here?", keyword0(cards[2]), keyword0(cards[2]))
	}

	return b.String()
}

func personalGuidance(situation Situation, chart *astro.Chart) string {
	var b strings.Builder

	switch situation.Emotion {
	case "anxious":
		b.WriteString("I can feel the anxiety in what you shared. That's totally normal when you're dealing with something important. ")
	case "frustrated":
		b.WriteString("The frustration you're feeling makes complete sense. Sometimes we get stuck because we're trying to force something instead of flowing with it. ")
	case "confused":
		b.WriteString("Confusion usually means you're in a growth phase. Your old ways of thinking aren't working anymore, which means you're evolving. ")
	}

	b.WriteString("The thing about your cards is they're not telling you what to do - they're reflecting what you already know deep down. ")
	if chart != nil {
		fmt.Fprintf(&b, "Your %s energy gives you the strength to handle this authentically. ", chart.SunSign)
	}
	b.WriteString("Trust your gut. It's been right about everything important in your life, even when your mind tried to talk you out of it.")
	if situation.Type != "" {
		fmt.Fprintf(&b, " With %s stuff, the answer is usually simpler than we make it. What feels most true to who you are?", situation.Type)
	}

	return b.String()
}

func nextSteps(situation Situation, cards []tarot.Card) string {
	guidance := keyword0(cards[2])

	var b strings.Builder
	b.WriteString("Here's what I'd focus on:\n\n")
	fmt.Fprintf(&b, "1. **Embody %s energy** - For the next few days, ask yourself: how would someone with strong %s energy handle this?\n\n", guidance, guidance)

	switch situation.Type {
	case "relationship":
		b.WriteString("2. **Trust your feelings** - Your gut knows if this person is right for you. Stop trying to convince yourself either way.\n\n")
	case "work":
		b.WriteString("2. **Show up authentically** - Stop trying to be what you think they want. Your real self is your competitive advantage.\n\n")
	case "decision":
		b.WriteString("2. **Feel into your options** - Which choice makes you feel expansive? Which one contracts you? Your body knows.\n\n")
	case "":
		b.WriteString("2. **Take one aligned action** - What's one small step that feels authentic to you?\n\n")
	default:
		b.WriteString("2. **Take one small authentic action** - What's one tiny step that feels true to who you are?\n\n")
	}

	b.WriteString("3. **Notice what feels expansive vs. contractive** - Your body is always giving you information about what's right for you.\n\n")
	b.WriteString("4. **Trust the process** - You're exactly where you need to be, even if it doesn't feel like it right now.")

	return b.String()
}

// clarifyingResponse answers a follow-up question about a completed reading.
// Branches are checked in order; the first one that matches the question wins.
func clarifyingResponse(question string, cards []tarot.Card) string {
	q := strings.ToLower(question)

	mentionsCard := strings.Contains(q, "card")
	for _, c := range cards {
		if strings.Contains(q, strings.ToLower(c.Name)) {
			mentionsCard = true
		}
	}
	if mentionsCard {
		card := cards[1]
		for _, c := range cards {
			if strings.Contains(q, strings.ToLower(c.Name)) {
				card = c
				break
			}
		}
		return fmt.Sprintf(`About the %s - this card chose you because %s energy is exactly what you need right now. In your specific situation, this means trusting your %s instincts rather than overthinking.

The %s often appears when we need to stop second-guessing ourselves and just move forward with what feels authentic. What part of your situation would benefit from more %s energy?`,
			card.Name, keyword0(card), keyword0(card), card.Name, keyword0(card))
	}

	if strings.Contains(q, "what") && (strings.Contains(q, "do") || strings.Contains(q, "should")) {
		return fmt.Sprintf(`Based on your reading, the main thing is to trust your %s instincts. Your cards aren't telling you what to do - they're reflecting what you already know deep down.

The %s as your guidance card suggests approaching this with %s energy. Instead of forcing an outcome, what would it look like to embody this energy and let things unfold naturally?

What feels most authentic to who you are in this situation?`,
			keyword0(cards[1]), cards[2].Name, keyword0(cards[2]))
	}

	if strings.Contains(q, "why") || strings.Contains(q, "mean") {
		return fmt.Sprintf(`The deeper meaning here is about your soul's evolution. Your %s shows you have the foundation of %s energy already built within you. The %s is activating this in your current situation.

This isn't just about solving a problem - it's about you stepping into a new level of authenticity and self-trust. Your situation is actually your soul's chosen classroom for developing %s mastery.

What part of this resonates most with what you're experiencing?`,
			cards[0].Name, keyword0(cards[0]), cards[1].Name, keyword0(cards[1]))
	}

	if strings.Contains(q, "how") || strings.Contains(q, "when") {
		return fmt.Sprintf(`Practically speaking, start by embodying the %s energy in small ways. Ask yourself throughout the day: "How would someone with strong %s energy handle this?"

The timing isn't about waiting for the perfect moment - it's about trusting yourself enough to take aligned action. Your %s guidance suggests the path will become clear as you move forward with %s intention.

What's one small step you could take today that would feel authentic to who you are?`,
			keyword0(cards[1]), keyword0(cards[1]), cards[2].Name, keyword0(cards[2]))
	}

	if strings.Contains(q, "relationship") || strings.Contains(q, "love") || strings.Contains(q, "partner") {
		return fmt.Sprintf(`For relationships, your cards are saying trust your gut feelings about this person. The %s often appears when we need to stop analyzing and start feeling into what's actually true.

Your %s foundation gives you the %s strength to be authentic in relationships. Don't dim your light to make someone else comfortable.

What is your intuition telling you about this relationship that your mind keeps trying to talk you out of?`,
			cards[1].Name, cards[0].Name, keyword0(cards[0]))
	}

	return fmt.Sprintf(`Looking at your reading again, the main message is about trusting yourself more deeply. Your %s in the present position is asking you to stop seeking external validation and start honoring your inner knowing.

The situation you're dealing with is actually perfect for developing this self-trust. Every challenge is your soul's way of strengthening your authentic power.

What part of your reading felt most true to you? That's usually where the real guidance is.`,
		cards[1].Name)
}
