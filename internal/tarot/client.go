package tarot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/astroscan/astroscan/internal/errors"
)

// Client fetches cards from the public tarot API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a catalog client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) get(ctx context.Context, path string) (*apiResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errors.NewExternalService("tarot-api", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.NewExternalService("tarot-api", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewExternalService("tarot-api", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.NewExternalService("tarot-api", err)
	}
	return &body, nil
}

// GetAllCards fetches the full catalog.
func (c *Client) GetAllCards(ctx context.Context) ([]Card, error) {
	body, err := c.get(ctx, "/cards")
	if err != nil {
		return nil, err
	}
	cards := make([]Card, 0, len(body.Cards))
	for _, a := range body.Cards {
		cards = append(cards, convert(a))
	}
	return cards, nil
}

// GetRandomCards fetches n random cards, one request each. The remote random
// endpoint returns a single card per call and draws with replacement.
func (c *Client) GetRandomCards(ctx context.Context, n int) ([]Card, error) {
	if n <= 0 {
		return nil, errors.NewInvalidInput("card count must be positive")
	}
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		body, err := c.get(ctx, "/cards/random")
		if err != nil {
			return nil, err
		}
		if len(body.Cards) == 0 {
			return nil, errors.NewExternalService("tarot-api", fmt.Errorf("empty random draw"))
		}
		cards = append(cards, convert(body.Cards[0]))
	}
	return cards, nil
}

// LoadDeck returns the remote catalog, or the builtin deck when the remote
// is unreachable or returns nothing usable.
func (c *Client) LoadDeck(ctx context.Context) Deck {
	cards, err := c.GetAllCards(ctx)
	if err != nil || len(cards) == 0 {
		return BuiltinDeck()
	}
	return Deck(cards)
}
