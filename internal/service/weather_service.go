package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"ulascansenturk/conditions-service/internal/db/lookuplog"
	"ulascansenturk/conditions-service/internal/geo"
	"ulascansenturk/conditions-service/internal/geocode"
	"ulascansenturk/conditions-service/internal/providers"
	"ulascansenturk/conditions-service/internal/weather"
)

type ConditionsService interface {
	GetWeather(ctx context.Context, coord geo.Coordinate) (weather.CanonicalWeather, error)
	GetLocation(ctx context.Context, coord geo.Coordinate) (geocode.CanonicalLocation, error)
	GetConditions(ctx context.Context, coord geo.Coordinate) ConditionsReport
	WaitBackground()
}

type conditionsService struct {
	gateway    providers.Gateway
	lookupRepo lookuplog.Repository
	now        func() time.Time
	newID      func() string

	wgBg sync.WaitGroup
}

// NewConditionsService wires the gateway and an optional lookup repository (nil disables the audit trail).
func NewConditionsService(gateway providers.Gateway, lookupRepo lookuplog.Repository) ConditionsService {
	return &conditionsService{
		gateway:    gateway,
		lookupRepo: lookupRepo,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

func (s *conditionsService) GetWeather(ctx context.Context, coord geo.Coordinate) (weather.CanonicalWeather, error) {
	body, err := s.gateway.Fetch(ctx, providers.Weather, coord)
	if err != nil {
		return weather.CanonicalWeather{}, err
	}

	payload, err := weather.DecodePayload(body)
	if err != nil {
		log.Error().Err(err).Str("body", string(body)).Msg("weather payload has unexpected shape")
		return weather.CanonicalWeather{}, &providers.ProviderError{
			Provider:   providers.Weather,
			StatusCode: 200,
			Body:       string(body),
			Reason:     "unexpected payload shape",
		}
	}

	return weather.Classify(payload), nil
}

func (s *conditionsService) GetLocation(ctx context.Context, coord geo.Coordinate) (geocode.CanonicalLocation, error) {
	body, err := s.gateway.Fetch(ctx, providers.Geocoding, coord)
	if err != nil {
		return geocode.CanonicalLocation{}, err
	}

	payload, err := geocode.DecodePayload(body)
	if err != nil {
		log.Error().Err(err).Str("body", string(body)).Msg("geocode payload has unexpected shape")
		return geocode.CanonicalLocation{}, &providers.ProviderError{
			Provider:   providers.Geocoding,
			StatusCode: 200,
			Body:       string(body),
			Reason:     "unexpected payload shape",
		}
	}

	return geocode.Resolve(payload)
}

// WaitBackground blocks until pending audit writes finish.
func (s *conditionsService) WaitBackground() {
	s.wgBg.Wait()
}
