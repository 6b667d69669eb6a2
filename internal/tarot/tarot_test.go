package tarot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/astroscan/astroscan/internal/errors"
	"github.com/astroscan/astroscan/internal/zodiac"
)

func TestElementForSuit(t *testing.T) {
	tests := []struct {
		suit string
		want string
	}{
		{"Wands", "Fire"},
		{"wands", "Fire"},
		{"Suit of Rods", "Fire"},
		{"Cups", "Water"},
		{"Chalices", "Water"},
		{"Swords", "Air"},
		{"Pentacles", "Earth"},
		{"Coins", "Earth"},
		{"Major Arcana", "Spirit"},
		{"major", "Spirit"},
		{"", "Spirit"},
	}
	for _, tt := range tests {
		if got := ElementForSuit(tt.suit); got != tt.want {
			t.Errorf("ElementForSuit(%q) = %q, want %q", tt.suit, got, tt.want)
		}
	}
}

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		meaning string
		want    []string
	}{
		{"Folly, mania, extravagance, intoxication", []string{"folly", "mania", "extravagance", "intoxication"}},
		{"VIII. Courage, power, action", []string{"courage", "power", "action"}},
		{"21, completion, reward", []string{"completion", "reward"}},
		{"", nil},
		{"one, two, three, four, five, six", []string{"one", "two", "three", "four"}},
	}
	for _, tt := range tests {
		got := extractKeywords(tt.meaning)
		if len(got) != len(tt.want) {
			t.Errorf("extractKeywords(%q) = %v, want %v", tt.meaning, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("extractKeywords(%q)[%d] = %q, want %q", tt.meaning, i, got[i], tt.want[i])
			}
		}
	}
}

func TestConvert(t *testing.T) {
	card := convert(apiCard{
		Name:      "Ace of Cups",
		NameShort: "cuac",
		Type:      "minor",
		Suit:      "Cups",
		MeaningUp: "Love, joy, contentment",
		MeaningRv: "False love, instability",
		Desc:      "An overflowing chalice.",
	})
	if card.Element != "Water" {
		t.Errorf("Element = %q, want Water", card.Element)
	}
	if card.Image != "https://sacred-texts.com/tarot/pkt/img/cuac.jpg" {
		t.Errorf("Image = %q", card.Image)
	}
	if len(card.Keywords) == 0 || card.Keywords[0] != "love" {
		t.Errorf("Keywords = %v", card.Keywords)
	}
}

func TestConvertMajorUsesType(t *testing.T) {
	card := convert(apiCard{Name: "The Fool", NameShort: "ar00", Type: "major", MeaningUp: ""})
	if card.Suit != "major" {
		t.Errorf("Suit = %q, want type fallback", card.Suit)
	}
	if card.Element != "Spirit" {
		t.Errorf("Element = %q, want Spirit", card.Element)
	}
	if len(card.Keywords) != 1 || card.Keywords[0] != "ar00" {
		t.Errorf("Keywords = %v, want name_short fallback", card.Keywords)
	}
}

func TestBuiltinDeck(t *testing.T) {
	deck := BuiltinDeck()
	if len(deck) != 78 {
		t.Fatalf("len(deck) = %d, want 78", len(deck))
	}
	seen := map[string]bool{}
	majors := 0
	for _, c := range deck {
		if seen[c.Name] {
			t.Errorf("duplicate card %q", c.Name)
		}
		seen[c.Name] = true
		if c.Suit == "Major Arcana" {
			majors++
			if c.Element != "Spirit" {
				t.Errorf("%s element = %q, want Spirit", c.Name, c.Element)
			}
		}
		if len(c.Keywords) != 2 {
			t.Errorf("%s has %d keywords, want 2", c.Name, len(c.Keywords))
		}
	}
	if majors != 22 {
		t.Errorf("major arcana count = %d, want 22", majors)
	}
	if !seen["Ace of Cups"] || !seen["King of Pentacles"] {
		t.Error("expected minor cards missing")
	}
}

func TestBuiltinDeckOverrides(t *testing.T) {
	for _, c := range BuiltinDeck() {
		if c.Name == "Two of Cups" {
			if c.Keywords[0] != "partnership" || c.Keywords[1] != "connection" {
				t.Errorf("Two of Cups keywords = %v", c.Keywords)
			}
			if c.Upright != "Positive energy related to partnership" {
				t.Errorf("Upright = %q", c.Upright)
			}
		}
	}
}

func TestDraw(t *testing.T) {
	deck := BuiltinDeck()
	cards, err := deck.Draw(3)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("drew %d cards, want 3", len(cards))
	}
	seen := map[string]bool{}
	for _, c := range cards {
		if seen[c.Name] {
			t.Errorf("duplicate draw %q", c.Name)
		}
		seen[c.Name] = true
	}
}

func TestDrawInvalid(t *testing.T) {
	deck := BuiltinDeck()
	if _, err := deck.Draw(0); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("Draw(0) error = %v, want INVALID_INPUT", err)
	}
	if _, err := deck.Draw(len(deck) + 1); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("oversized draw error = %v, want INVALID_INPUT", err)
	}
}

func TestCorrespondence(t *testing.T) {
	if sign, ok := Correspondence("Death"); !ok || sign != zodiac.Scorpio {
		t.Errorf("Correspondence(Death) = %v, %v", sign, ok)
	}
	if _, ok := Correspondence("Ace of Cups"); ok {
		t.Error("minor card should have no correspondence")
	}
	for _, m := range majorArcana {
		if _, ok := Correspondence(m.name); !ok {
			t.Errorf("major %q missing correspondence", m.name)
		}
	}
}

func TestClientGetAllCards(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cards" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"nhits":2,"cards":[
			{"name":"The Fool","name_short":"ar00","type":"major","meaning_up":"Folly, extravagance","meaning_rev":"Negligence","desc":"..."},
			{"name":"Ace of Cups","name_short":"cuac","type":"minor","suit":"Cups","meaning_up":"Joy, contentment","meaning_rev":"False love","desc":"..."}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second)
	cards, err := client.GetAllCards(context.Background())
	if err != nil {
		t.Fatalf("GetAllCards: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(cards))
	}
	if cards[1].Element != "Water" {
		t.Errorf("Element = %q, want Water", cards[1].Element)
	}
}

func TestClientErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second)
	if _, err := client.GetAllCards(context.Background()); !errors.Is(err, errors.ErrExternalService) {
		t.Errorf("error = %v, want EXTERNAL_SERVICE", err)
	}
}

func TestLoadDeckFallsBack(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	deck := client.LoadDeck(context.Background())
	if len(deck) != 78 {
		t.Errorf("fallback deck size = %d, want 78", len(deck))
	}
}

func TestClientRandomCards(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cards/random" {
			http.NotFound(w, r)
			return
		}
		calls++
		w.Write([]byte(`{"nhits":1,"cards":[{"name":"The Star","name_short":"ar17","type":"major","meaning_up":"Hope, bright prospects","meaning_rev":"Loss","desc":"..."}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second)
	cards, err := client.GetRandomCards(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetRandomCards: %v", err)
	}
	if len(cards) != 3 || calls != 3 {
		t.Errorf("cards=%d calls=%d, want 3/3", len(cards), calls)
	}
}
