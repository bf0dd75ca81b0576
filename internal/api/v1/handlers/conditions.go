package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/conditions-service/internal/geo"
	"ulascansenturk/conditions-service/internal/service"
)

type ConditionsHandler struct {
	conditionsService service.ConditionsService
	timeout           time.Duration
}

func NewConditionsHandler(conditionsService service.ConditionsService, timeout time.Duration) *ConditionsHandler {
	return &ConditionsHandler{
		conditionsService: conditionsService,
		timeout:           timeout,
	}
}

func (h *ConditionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	switch r.URL.Path {
	case "/api/current-conditions":
		h.GetCurrentConditions(w, r)
	case "/api/reverse-geocode":
		h.GetReverseGeocode(w, r)
	case "/api/conditions":
		h.GetConditions(w, r)
	case "/health":
		respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	default:
		respondWithError(w, http.StatusNotFound, "not found")
	}
}

func (h *ConditionsHandler) GetCurrentConditions(w http.ResponseWriter, r *http.Request) {
	coord, err := parseCoordinate(r)
	if err != nil {
		code, message := statusFor(err, weatherFailures)
		respondWithError(w, code, message)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.conditionsService.GetWeather(ctx, coord)
	if err != nil {
		code, message := statusFor(err, weatherFailures)
		log.Error().Err(err).Float64("lat", coord.Latitude).Float64("lon", coord.Longitude).Int("status", code).Msg("failed to get current conditions")
		respondWithError(w, code, message)
		return
	}

	respondWithJSON(w, http.StatusOK, newWeatherResponse(result))
}

func (h *ConditionsHandler) GetReverseGeocode(w http.ResponseWriter, r *http.Request) {
	coord, err := parseCoordinate(r)
	if err != nil {
		code, message := statusFor(err, geocodeFailures)
		respondWithError(w, code, message)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.conditionsService.GetLocation(ctx, coord)
	if err != nil {
		code, message := statusFor(err, geocodeFailures)
		log.Error().Err(err).Float64("lat", coord.Latitude).Float64("lon", coord.Longitude).Int("status", code).Msg("failed to reverse geocode")
		respondWithError(w, code, message)
		return
	}

	respondWithJSON(w, http.StatusOK, newLocationResponse(result))
}

// GetConditions always answers 200 once the coordinates are valid; a failed half is
// reported through its unavailable marker.
func (h *ConditionsHandler) GetConditions(w http.ResponseWriter, r *http.Request) {
	coord, err := parseCoordinate(r)
	if err != nil {
		code, message := statusFor(err, weatherFailures)
		respondWithError(w, code, message)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	report := h.conditionsService.GetConditions(ctx, coord)

	respondWithJSON(w, http.StatusOK, report)
}

func parseCoordinate(r *http.Request) (geo.Coordinate, error) {
	query := r.URL.Query()
	return geo.ParseCoordinate(query.Get("lat"), query.Get("lon"))
}
