package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/katalvlaran/vigcrack/analysis"
	"github.com/katalvlaran/vigcrack/vigenere"
)

// Error codes in the response envelope.
const (
	CodeBadRequest            = "bad_request"
	CodeInvalidSymbol         = "invalid_symbol"
	CodeInvalidRange          = "invalid_range"
	CodeEmptyInput            = "empty_input"
	CodeVocabularyUnavailable = "vocabulary_unavailable"
	CodeInternal              = "internal_error"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// statusFor maps a domain error to an HTTP status and envelope code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, analysis.ErrInvalidSymbol):
		return http.StatusBadRequest, CodeInvalidSymbol
	case errors.Is(err, analysis.ErrInvalidRange):
		return http.StatusBadRequest, CodeInvalidRange
	case errors.Is(err, analysis.ErrEmptyInput):
		return http.StatusBadRequest, CodeEmptyInput
	case errors.Is(err, vigenere.ErrEmptyKey):
		return http.StatusBadRequest, CodeBadRequest
	case errors.Is(err, analysis.ErrVocabularyUnavailable):
		return http.StatusServiceUnavailable, CodeVocabularyUnavailable
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

func writeError(w http.ResponseWriter, err error) {
	status, code := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	writeJSON(w, status, ErrorResponse{Error: code, Message: msg})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: CodeBadRequest, Message: msg})
}
