package poker

import (
	"handeval-server/pkg/deck"

	"golang.org/x/exp/slices"
)

// wheel is the five-high straight, the ace plays low
var wheel = []deck.CardValue{deck.Two, deck.Three, deck.Four, deck.Five, deck.Ace}

// royalSum is the sum of the ordinals of a ten through ace straight
const royalSum = 10 + 11 + 12 + 13 + 14

// isStraight expects values sorted ascending
func isStraight(values []deck.CardValue) bool {
	return isConsecutive(values) || slices.Equal(values, wheel)
}

func isConsecutive(values []deck.CardValue) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1].Ordinal()+1 != values[i].Ordinal() {
			return false
		}
	}

	return true
}

// isRoyalStraight is only true for ten through ace
// The wheel is also a straight containing an ace, but its ordinals sum to 28
func isRoyalStraight(values []deck.CardValue) bool {
	if !isStraight(values) {
		return false
	}

	sum := 0
	for _, v := range values {
		sum += v.Ordinal()
	}

	return sum == royalSum
}
