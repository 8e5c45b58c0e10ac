package mux

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_writeJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	writeJSONError(w, http.StatusBadRequest, errors.New("Too many cards"))
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Too many cards","statusCode":400}`, w.Body.String())

	w = httptest.NewRecorder()
	writeJSONError(w, http.StatusInternalServerError, errors.New("secret details"))
	assert.Equal(t, 500, w.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error","statusCode":500}`, w.Body.String())

	w = httptest.NewRecorder()
	writeJSONError(w, http.StatusUnsupportedMediaType, nil)
	assert.JSONEq(t, `{"message":"Unsupported Media Type","statusCode":415}`, w.Body.String())
}

func Test_decodeRequest(t *testing.T) {
	req := func(contentType, body string) *http.Request {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		if contentType != "" {
			r.Header.Set("Content-Type", contentType)
		}
		return r
	}

	var payload struct {
		Name string `json:"name"`
	}

	w := httptest.NewRecorder()
	assert.True(t, decodeRequest(w, req("application/json", `{"name":"x"}`), &payload))
	assert.Equal(t, "x", payload.Name)

	w = httptest.NewRecorder()
	assert.True(t, decodeRequest(w, req("application/json; charset=utf-8", `{"name":"y"}`), &payload))
	assert.Equal(t, "y", payload.Name)

	w = httptest.NewRecorder()
	assert.False(t, decodeRequest(w, req("", `{"name":"x"}`), &payload))
	assert.Equal(t, 415, w.Code)

	w = httptest.NewRecorder()
	assert.False(t, decodeRequest(w, req("text/plain", `{"name":"x"}`), &payload))
	assert.Equal(t, 415, w.Code)

	w = httptest.NewRecorder()
	assert.False(t, decodeRequest(w, req("application/json", `{"name":`), &payload))
	assert.Equal(t, 400, w.Code)

	w = httptest.NewRecorder()
	assert.False(t, decodeRequest(w, req("application/json", `{"name":"x"} trailing`), &payload))
	assert.Equal(t, 400, w.Code)
}
