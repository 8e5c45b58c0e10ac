package mux

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"handeval-server/pkg/deck"
	"handeval-server/pkg/poker"
)

type getHandResponse struct {
	Hand []string `json:"hand"`
	Rank string   `json:"rank"`
}

type postHandRequest struct {
	Cards []deck.Card `json:"cards"`
}

type postHandResponse struct {
	Rank string `json:"rank"`
}

// getHand deals a random hand and ranks it
func (m *Mux) getHand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hand := deck.NewRandomHand(m.gen)

		rank, err := poker.Evaluate(hand)
		if err != nil {
			// a dealt hand is always valid
			logger(r).WithField("hand", hand.String()).WithError(err).Error("could not evaluate dealt hand")
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, getHandResponse{
			Hand: hand.Strings(),
			Rank: rank.String(),
		})
	}
}

// postHand ranks the hand in the request body
func (m *Mux) postHand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postHandRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		hand := deck.Hand(payload.Cards)
		eval := poker.NewEval(hand)
		rankings, err := eval.Rankings()
		if err != nil {
			var handErr poker.HandError
			if errors.As(err, &handErr) {
				writeJSONError(w, http.StatusBadRequest, handErr)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		rank := poker.MaxRanking(rankings)
		logger(r).WithFields(logrus.Fields{
			"hand":     hand.String(),
			"rank":     rank.String(),
			"rankings": len(rankings),
		}).Debug("evaluated hand")

		writeJSON(w, http.StatusOK, postHandResponse{
			Rank: rank.String(),
		})
	}
}
