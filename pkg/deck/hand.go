package deck

import (
	"fmt"
	"sort"
	"strings"

	"handeval-server/internal/rng"
)

// HandSize is the number of cards in a poker hand
const HandSize = 5

// Hand represents a collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	return h[i].Less(h[j])
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// ParseHand decodes each token into a card
// The first bad token stops parsing, the error identifies it
func ParseHand(tokens []string) (Hand, error) {
	h := make(Hand, len(tokens))
	for i, token := range tokens {
		card, err := ParseCard(token)
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", token, err)
		}

		h[i] = card
	}

	return h, nil
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// Distinct returns the number of unique cards in the hand
func (h Hand) Distinct() int {
	seen := make(map[Card]struct{}, len(h))
	for _, c := range h {
		seen[c] = struct{}{}
	}

	return len(seen)
}

// Sorted returns a sorted copy of the hand
func (h Hand) Sorted() Hand {
	h2 := h.Clone()
	sort.Sort(h2)
	return h2
}

// Strings returns the token of each card
func (h Hand) Strings() []string {
	s := make([]string, len(h))
	for i, c := range h {
		s[i] = c.String()
	}

	return s
}

func (h Hand) String() string {
	return strings.Join(h.Strings(), ",")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// RandomCardValue draws a value uniformly
func RandomCardValue(gen rng.Generator) CardValue {
	return CardValues[gen.Intn(len(CardValues))]
}

// RandomSuit draws a suit uniformly
func RandomSuit(gen rng.Generator) Suit {
	return Suits[gen.Intn(len(Suits))]
}

// NewRandomHand deals five distinct cards
// Cards are drawn independently and redrawn on a collision, the hand is in draw order
func NewRandomHand(gen rng.Generator) Hand {
	seen := make(map[Card]struct{}, HandSize)
	h := make(Hand, 0, HandSize)
	for len(h) < HandSize {
		card := NewCard(RandomCardValue(gen), RandomSuit(gen))
		if _, ok := seen[card]; ok {
			continue
		}

		seen[card] = struct{}{}
		h = append(h, card)
	}

	return h
}
