// internal/server/handlers/respond.go

package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"fashiontrends/internal/domain/trend"
	"fashiontrends/internal/logging"
)

const (
	statusSuccess = "success"
	statusError   = "error"

	internalErrorMessage = "Internal server error"
)

// Endpoints lists the public API routes
var Endpoints = []string{
	"/api/trends",
	"/api/trends/<region>",
	"/api/trending-colors",
	"/api/trending-items",
	"/api/analytics",
	"/api/seasonal-trends",
	"/api/influencer-impact",
	"/api/regional-comparison",
}

// ErrorResponse is the failure envelope
type ErrorResponse struct {
	Status             string   `json:"status"`
	Message            string   `json:"message"`
	AvailableRegions   []string `json:"available_regions,omitempty"`
	AvailableSeasons   []string `json:"available_seasons,omitempty"`
	AvailableEndpoints []string `json:"available_endpoints,omitempty"`
}

// keyedValue is one member of an orderedObject
type keyedValue struct {
	Key   string
	Value any
}

// orderedObject encodes as a JSON object whose members keep slice order
type orderedObject []keyedValue

// MarshalJSON implements json.Marshaler
func (o orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(kv.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(kv.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// statusFor maps a tagged error to an HTTP status code
func statusFor(err error) int {
	switch {
	case errors.Is(err, trend.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Helper for JSON responses
func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal response")
		code = http.StatusInternalServerError
		response = []byte(`{"status":"error","message":"Internal server error"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper for error responses. The status code is derived from err; internal
// errors never leak their text to the client.
func respondWithError(w http.ResponseWriter, err error, response ErrorResponse) {
	code := statusFor(err)
	response.Status = statusError

	if code >= http.StatusInternalServerError {
		logging.Error().Err(err).Int("code", code).Msg("HTTP error")
		response = ErrorResponse{Status: statusError, Message: internalErrorMessage}
	}

	respondWithJSON(w, code, response)
}

// RespondInternalError writes the generic 500 envelope
func RespondInternalError(w http.ResponseWriter) {
	respondWithJSON(w, http.StatusInternalServerError, ErrorResponse{
		Status:  statusError,
		Message: internalErrorMessage,
	})
}

// NotFound writes the unmatched-route envelope
func NotFound(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, trend.ErrNotFound, ErrorResponse{
		Message:            "Endpoint not found",
		AvailableEndpoints: Endpoints,
	})
}

// MethodNotAllowed writes the wrong-method envelope
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
		Status:             statusError,
		Message:            "Method not allowed",
		AvailableEndpoints: Endpoints,
	})
}
