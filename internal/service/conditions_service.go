package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/conditions-service/internal/geo"
	"ulascansenturk/conditions-service/internal/geocode"
	"ulascansenturk/conditions-service/internal/recommendation"
	"ulascansenturk/conditions-service/internal/weather"
)

const (
	WeatherUnavailable  = "Could not auto-detect weather; fill conditions manually."
	LocationUnavailable = "Could not detect location; fill manually."
)

// ConditionsReport merges the weather and location outcomes of one lookup.
// Each half is either populated or carries its unavailable marker.
type ConditionsReport struct {
	RequestID string `json:"request_id"`

	Weather            *weather.CanonicalWeather `json:"weather"`
	ConditionSummary   string                    `json:"condition_summary,omitempty"`
	PatternInputs      *recommendation.Request   `json:"pattern_inputs,omitempty"`
	WeatherUnavailable string                    `json:"weather_unavailable,omitempty"`

	Location            *geocode.CanonicalLocation `json:"location"`
	PrimaryLabel        string                     `json:"primary_label,omitempty"`
	SecondaryLabel      string                     `json:"secondary_label,omitempty"`
	LocationUnavailable string                     `json:"location_unavailable,omitempty"`
}

func (r ConditionsReport) WeatherOK() bool {
	return r.Weather != nil
}

func (r ConditionsReport) LocationOK() bool {
	return r.Location != nil
}

type weatherResult struct {
	weather weather.CanonicalWeather
	err     error
}

type locationResult struct {
	location geocode.CanonicalLocation
	err      error
}

// GetConditions fetches weather and location concurrently. Neither call cancels the other,
// and a failure in one never hides the other's result.
func (s *conditionsService) GetConditions(ctx context.Context, coord geo.Coordinate) ConditionsReport {
	requestID := s.newID()

	weatherCh := make(chan weatherResult, 1)
	locationCh := make(chan locationResult, 1)

	go func() {
		w, err := s.GetWeather(ctx, coord)
		weatherCh <- weatherResult{weather: w, err: err}
	}()

	go func() {
		l, err := s.GetLocation(ctx, coord)
		locationCh <- locationResult{location: l, err: err}
	}()

	report := combine(requestID, <-weatherCh, <-locationCh, s.now)

	s.logLookup(requestID, coord, report.WeatherOK(), report.LocationOK())

	return report
}

func combine(requestID string, w weatherResult, l locationResult, now func() time.Time) ConditionsReport {
	report := ConditionsReport{RequestID: requestID}

	if w.err != nil {
		log.Warn().Err(w.err).Str("request_id", requestID).Msg("weather unavailable")
		report.WeatherUnavailable = WeatherUnavailable
	} else {
		current := w.weather
		inputs := recommendation.FromWeather(current, now())
		report.Weather = &current
		report.ConditionSummary = current.Summary()
		report.PatternInputs = &inputs
	}

	if l.err != nil {
		log.Warn().Err(l.err).Str("request_id", requestID).Msg("location unavailable")
		report.LocationUnavailable = LocationUnavailable
	} else {
		location := l.location
		report.Location = &location
		report.PrimaryLabel = location.PrimaryLabel()
		if secondary, ok := location.SecondaryLabel(); ok {
			report.SecondaryLabel = secondary
		}
	}

	return report
}

func (s *conditionsService) logLookup(requestID string, coord geo.Coordinate, weatherOK, locationOK bool) {
	if s.lookupRepo == nil {
		return
	}

	s.wgBg.Add(1)
	go func() {
		defer s.wgBg.Done()
		if err := s.lookupRepo.LogLookup(requestID, coord, weatherOK, locationOK); err != nil {
			log.Error().Err(err).Str("request_id", requestID).Msg("failed to log condition lookup")
		}
	}()
}
