package mux

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"handeval-server/internal/rng"
)

type ctxKey int

const (
	ctxRequestIDKey ctxKey = iota
)

const requestIDHeader = "X-Request-ID"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string

	// gen is used to deal random hands
	gen rng.Generator
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		gen:     rng.Crypto{},
	}

	this.Router.Use(this.requestIDMiddleware)

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	}

	{
		r := this.Router.PathPrefix("/api/v1").Subrouter()
		r.Methods(http.MethodGet).Path("/hand").Handler(this.getHand())
		r.Methods(http.MethodPost).Path("/hand").Handler(this.postHand())
	}

	return this
}

// requestIDMiddleware tags every request with an ID, a client supplied ID is kept
func (m *Mux) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, id)
		newCtx := context.WithValue(r.Context(), ctxRequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

// logger returns a log entry for the request
func logger(r *http.Request) *logrus.Entry {
	entry := logrus.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	})

	if id, ok := r.Context().Value(ctxRequestIDKey).(string); ok {
		entry = entry.WithField("requestID", id)
	}

	return entry
}
