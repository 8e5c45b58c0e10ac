package poker

import (
	"encoding/json"
	"fmt"
)

// HandRanking is the classification of a five card hand, i.e., flush
type HandRanking int

// Constants for HandRanking
// Compare rankings with Strength, never with the constant values
const (
	HighCard HandRanking = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalStraightFlush
)

// strength is the official order of poker hands, weakest first
var strength = map[HandRanking]int{
	HighCard:           0,
	Pair:               1,
	TwoPair:            2,
	ThreeOfAKind:       3,
	Straight:           4,
	Flush:              5,
	FullHouse:          6,
	FourOfAKind:        7,
	StraightFlush:      8,
	RoyalStraightFlush: 9,
}

// HandRankings lists every ranking from weakest to strongest
var HandRankings = []HandRanking{
	HighCard,
	Pair,
	TwoPair,
	ThreeOfAKind,
	Straight,
	Flush,
	FullHouse,
	FourOfAKind,
	StraightFlush,
	RoyalStraightFlush,
}

// Strength returns the position of the ranking in the order of poker hands
func (h HandRanking) Strength() int {
	s, ok := strength[h]
	if !ok {
		panic(fmt.Sprintf("unknown hand ranking: %d", int(h)))
	}

	return s
}

// Less returns true if h is a weaker hand than o
func (h HandRanking) Less(o HandRanking) bool {
	return h.Strength() < o.Strength()
}

// MaxRanking returns the strongest of the rankings
// HighCard is returned if no rankings are provided
func MaxRanking(rankings []HandRanking) HandRanking {
	best := HighCard
	for _, r := range rankings {
		if best.Less(r) {
			best = r
		}
	}

	return best
}

// String returns the display name of the ranking
func (h HandRanking) String() string {
	switch h {
	case HighCard:
		return "High card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalStraightFlush:
		return "Royal straight flush"
	default:
		panic(fmt.Sprintf("unknown hand ranking: %d", int(h)))
	}
}

// MarshalJSON encodes the ranking as its display name
func (h HandRanking) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}
