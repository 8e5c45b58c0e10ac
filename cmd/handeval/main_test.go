package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"handeval-server/internal/rng"
	"handeval-server/pkg/deck"
	"handeval-server/pkg/poker"
)

func Test_evaluate(t *testing.T) {
	hand, rank, err := evaluate("kh,qh,5s,3r,kr")
	assert.NoError(t, err)
	assert.Equal(t, "kh,qh,5s,3r,kr", hand.String())
	assert.Equal(t, poker.Pair, rank)

	_, rank, err = evaluate("ts js  qs\tks, as")
	assert.NoError(t, err)
	assert.Equal(t, poker.RoyalStraightFlush, rank)

	_, _, err = evaluate("kh,qh,5s,3r")
	assert.Equal(t, poker.ErrNotEnoughCards, err)

	_, _, err = evaluate("kh,qh,5s,3r,kd")
	assert.ErrorIs(t, err, deck.ErrUnknownSuit)
}

func Test_evaluateLines(t *testing.T) {
	assert.True(t, evaluateLines(strings.NewReader("kh,qh,5s,3r,kr\nah ar as ak qs\n"), false))
	assert.True(t, evaluateLines(strings.NewReader("kh,qh,5s,3r,kr"), false))
	assert.False(t, evaluateLines(strings.NewReader("kh,qh,5s,3r,kr\nkh\nah ar as ak qs\n"), false))

	// an empty line ends an interactive session
	assert.True(t, evaluateLines(strings.NewReader("kh,qh,5s,3r,kr\n\nkh\n"), true))
}

func Test_dealHands(t *testing.T) {
	assert.True(t, dealHands(rng.NewSeeded(9), 10))
	assert.True(t, dealHands(rng.NewSeeded(9), 0))
}

func Test_printEvaluation(t *testing.T) {
	assert.True(t, printEvaluation("ts,js,qs,ks,as"))
	assert.False(t, printEvaluation("ts,js,qs,ks,ts"))
	assert.False(t, printEvaluation("ts,js"))
}
