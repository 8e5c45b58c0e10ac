package deck

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CardError is an error returned when a card token cannot be decoded
type CardError string

func (c CardError) Error() string {
	return string(c)
}

// card parse errors
const (
	ErrUnknownCardValue = CardError("Unknown card value")
	ErrUnknownSuit      = CardError("Unknown suit")
	ErrInvalidCard      = CardError("Invalid card")
)

// CardValue is the rank of a card, Two through Ace
type CardValue int

// card values, the constant is also the ordinal
const (
	Two CardValue = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// CardValues lists every value from lowest to highest
var CardValues = []CardValue{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// ParseCardValue decodes a single character value code
func ParseCardValue(s string) (CardValue, error) {
	switch s {
	case "2", "3", "4", "5", "6", "7", "8", "9":
		return CardValue(s[0] - '0'), nil
	case "t":
		return Ten, nil
	case "j":
		return Jack, nil
	case "q":
		return Queen, nil
	case "k":
		return King, nil
	case "a":
		return Ace, nil
	}

	return 0, ErrUnknownCardValue
}

// Ordinal returns the numeric rank, 2 for Two through 14 for Ace
func (v CardValue) Ordinal() int {
	return int(v)
}

// Valid returns true if v is one of the thirteen values
func (v CardValue) Valid() bool {
	return v >= Two && v <= Ace
}

func (v CardValue) String() string {
	switch v {
	case Ten:
		return "t"
	case Jack:
		return "j"
	case Queen:
		return "q"
	case King:
		return "k"
	case Ace:
		return "a"
	}

	if v >= Two && v <= Nine {
		return string(rune('0' + v))
	}

	panic(fmt.Sprintf("unknown card value: %d", int(v)))
}

// Suit is a card suit
// The order of the constants only exists to make cards sortable, it has no bearing on strength
type Suit int

// suit constants
const (
	Heart Suit = iota
	Spade
	Diamond
	Club
)

// Suits lists every suit in sort order
var Suits = []Suit{Heart, Spade, Diamond, Club}

// ParseSuit decodes a single character suit code
// Diamonds and clubs use "r" and "k" respectively
func ParseSuit(s string) (Suit, error) {
	switch s {
	case "h":
		return Heart, nil
	case "s":
		return Spade, nil
	case "r":
		return Diamond, nil
	case "k":
		return Club, nil
	}

	return 0, ErrUnknownSuit
}

// Valid returns true if s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Heart && s <= Club
}

func (s Suit) String() string {
	switch s {
	case Heart:
		return "h"
	case Spade:
		return "s"
	case Diamond:
		return "r"
	case Club:
		return "k"
	default:
		panic(fmt.Sprintf("unknown suit: %d", int(s)))
	}
}

// Card is an individual playing card
// Cards are comparable and can be used as map keys
type Card struct {
	value CardValue
	suit  Suit
}

// NewCard returns a card of the value and suit
func NewCard(value CardValue, suit Suit) Card {
	return Card{value: value, suit: suit}
}

// ParseCard decodes a two character token such as "kh" (king of hearts)
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, ErrInvalidCard
	}

	value, err := ParseCardValue(s[0:1])
	if err != nil {
		return Card{}, err
	}

	suit, err := ParseSuit(s[1:2])
	if err != nil {
		return Card{}, err
	}

	return Card{value: value, suit: suit}, nil
}

// MustParseCard is like ParseCard, but panics on an invalid token
func MustParseCard(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	return card
}

// Valid returns true if the card is one of the 52 in a standard deck
// Only cards built with NewCard from arbitrary values can be invalid
func (c Card) Valid() bool {
	return c.value.Valid() && c.suit.Valid()
}

// Value returns the card value
func (c Card) Value() CardValue {
	return c.value
}

// Suit returns the card suit
func (c Card) Suit() Suit {
	return c.suit
}

func (c Card) String() string {
	return c.value.String() + c.suit.String()
}

// Compare orders cards by value, then by suit
// Returns -1, 0, or 1
func (c Card) Compare(o Card) int {
	switch {
	case c.value < o.value:
		return -1
	case c.value > o.value:
		return 1
	case c.suit < o.suit:
		return -1
	case c.suit > o.suit:
		return 1
	}

	return 0
}

// Less returns true if c sorts before o
func (c Card) Less(o Card) bool {
	return c.Compare(o) < 0
}

// MarshalJSON encodes the card as its token
func (c Card) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, ErrInvalidCard
	}

	return json.Marshal(c.String())
}

// UnmarshalJSON decodes the card from its token
func (c *Card) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	card, err := ParseCard(s)
	if err != nil {
		return fmt.Errorf("card %q: %w", s, err)
	}

	*c = card
	return nil
}

// CardsFromString returns the cards of a comma separated list of tokens, i.e., "kh,qh,5s"
func CardsFromString(s string) (Hand, error) {
	if s == "" {
		return Hand{}, nil
	}

	return ParseHand(strings.Split(s, ","))
}
