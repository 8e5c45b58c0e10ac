package poker

import (
	"handeval-server/pkg/deck"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Eval classifies a five card hand
// An Eval holds no state beyond the cards it was created with and is safe for concurrent use
type Eval struct {
	hand deck.Hand
}

// NewEval returns an Eval for the cards
// The cards are copied, the caller may reuse the slice
func NewEval(cards []deck.Card) *Eval {
	return &Eval{
		hand: deck.Hand(cards).Clone(),
	}
}

// Evaluate is a shortcut for NewEval(cards).Evaluate()
func Evaluate(cards []deck.Card) (HandRanking, error) {
	return NewEval(cards).Evaluate()
}

// Evaluate returns the strongest ranking the hand satisfies
func (e *Eval) Evaluate() (HandRanking, error) {
	rankings, err := e.Rankings()
	if err != nil {
		return 0, err
	}

	return MaxRanking(rankings), nil
}

// Rankings returns every ranking the hand satisfies, weakest first
// A full house, for example, also satisfies pair and three of a kind
// HighCard is never included, it is what a hand is when nothing else is satisfied
func (e *Eval) Rankings() ([]HandRanking, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}

	a := e.analyze()

	rankings := make([]HandRanking, 0, len(HandRankings))
	for _, p := range predicates {
		if p.matches(a) {
			rankings = append(rankings, p.ranking)
		}
	}

	return rankings, nil
}

func (e *Eval) validate() error {
	switch n := len(e.hand); {
	case n > deck.HandSize:
		return ErrTooManyCards
	case n < deck.HandSize:
		return ErrNotEnoughCards
	}

	for _, card := range e.hand {
		if !card.Valid() {
			return deck.ErrInvalidCard
		}
	}

	if e.hand.Distinct() != deck.HandSize {
		return ErrDuplicateCards
	}

	return nil
}

// analysis holds the views of the hand each predicate works from
type analysis struct {
	// values sorted ascending
	values []deck.CardValue
	// suits sorted, only used for equality
	suits []deck.Suit
	// counts is the multiplicity of each distinct value, in no particular order
	counts []int
}

func (e *Eval) analyze() analysis {
	values := make([]deck.CardValue, len(e.hand))
	suits := make([]deck.Suit, len(e.hand))
	histogram := make(map[deck.CardValue]int)

	for i, card := range e.hand {
		values[i] = card.Value()
		suits[i] = card.Suit()
		histogram[card.Value()]++
	}

	slices.Sort(values)
	slices.Sort(suits)

	return analysis{
		values: values,
		suits:  suits,
		counts: maps.Values(histogram),
	}
}

func (a analysis) hasCount(n int) bool {
	return slices.Contains(a.counts, n)
}

func (a analysis) numCount(n int) int {
	found := 0
	for _, c := range a.counts {
		if c == n {
			found++
		}
	}

	return found
}

func (a analysis) isPair() bool {
	return a.hasCount(2)
}

func (a analysis) isTwoPair() bool {
	return a.numCount(2) == 2
}

func (a analysis) isThreeOfAKind() bool {
	return a.hasCount(3)
}

func (a analysis) isFourOfAKind() bool {
	return a.hasCount(4)
}

func (a analysis) isFlush() bool {
	for _, s := range a.suits {
		if s != a.suits[0] {
			return false
		}
	}

	return true
}

func (a analysis) isStraight() bool {
	return isStraight(a.values)
}

// predicate pairs a ranking with the condition that satisfies it
// Predicates are not exclusive, the strongest satisfied ranking wins
type predicate struct {
	ranking HandRanking
	matches func(a analysis) bool
}

var predicates = []predicate{
	{Pair, analysis.isPair},
	{TwoPair, analysis.isTwoPair},
	{ThreeOfAKind, analysis.isThreeOfAKind},
	{Straight, analysis.isStraight},
	{Flush, analysis.isFlush},
	{FullHouse, func(a analysis) bool {
		return a.isPair() && a.isThreeOfAKind()
	}},
	{FourOfAKind, analysis.isFourOfAKind},
	{StraightFlush, func(a analysis) bool {
		return a.isStraight() && a.isFlush()
	}},
	{RoyalStraightFlush, func(a analysis) bool {
		return isRoyalStraight(a.values) && a.isFlush()
	}},
}
