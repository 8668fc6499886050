// Package httpx holds the JSON response helpers shared by controllers and
// handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	appErrors "github.com/unclebandit/campaign-admin/internal/errors"
)

type Message struct {
	Message string                 `json:"message"`
	Errors  []appErrors.FieldError `json:"errors,omitempty"`
}

var ErrInvalidID = errors.New("invalid id")

// WriteJSON writes payload with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, Message{Message: msg})
}

// Decode reads a JSON body into dst. Unknown fields are ignored.
func Decode(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// ParseID reads a positive integer route parameter.
func ParseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// Fail maps a service error to a response. Validation failures become 400
// with the field list, missing rows 404 with notFound, and everything else
// a 500 carrying only fallback; the cause is logged. An empty notFound marks
// a path that cannot miss a row, so a not-found error there is a 500 too.
func Fail(w http.ResponseWriter, log *zap.Logger, err error, notFound, fallback string) {
	if ve, ok := appErrors.AsValidation(err); ok {
		WriteJSON(w, http.StatusBadRequest, Message{Message: "Validation error", Errors: ve.Fields})
		return
	}
	if notFound != "" && appErrors.IsNotFound(err) {
		WriteMessage(w, http.StatusNotFound, notFound)
		return
	}
	if log != nil {
		log.Error(fallback, zap.Error(err))
	}
	WriteMessage(w, http.StatusInternalServerError, fallback)
}
