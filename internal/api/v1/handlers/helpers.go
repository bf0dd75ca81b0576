package handlers

import (
	"encoding/json"
	"errors"
	"github.com/rs/zerolog/log"
	"net/http"

	"ulascansenturk/conditions-service/internal/geo"
	"ulascansenturk/conditions-service/internal/geocode"
	"ulascansenturk/conditions-service/internal/providers"
)

type failureMessages struct {
	provider  string
	transport string
}

var (
	weatherFailures = failureMessages{
		provider:  "Weather provider error",
		transport: "Failed to fetch weather",
	}
	geocodeFailures = failureMessages{
		provider:  "Reverse geocode provider error",
		transport: "Failed to reverse geocode",
	}
)

const notFoundMessage = "No location found for coordinates"

// statusFor maps a lookup error to the status code and message returned to the client.
// Provider bodies and transport details stay in the logs.
func statusFor(err error, messages failureMessages) (int, string) {
	var validationErr *geo.ValidationError
	var configErr *providers.ConfigurationError
	var transportErr *providers.TransportError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Message
	case errors.As(err, &configErr):
		return http.StatusInternalServerError, configErr.Error()
	case errors.Is(err, geocode.ErrNotFound):
		return http.StatusNotFound, notFoundMessage
	case errors.As(err, &transportErr):
		return http.StatusInternalServerError, messages.transport
	default:
		return http.StatusInternalServerError, messages.provider
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
