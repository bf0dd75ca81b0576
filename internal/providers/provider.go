package providers

import (
	"ulascansenturk/conditions-service/internal/geo"
)

// Provider identifies a third-party data source.
type Provider string

const (
	Weather   Provider = "weather"
	Geocoding Provider = "geocoding"
)

const (
	WeatherKeyName   = "WEATHER_API_KEY"
	GeocodingKeyName = "GEOCODING_API_KEY"

	DefaultWeatherBaseURL   = "https://api.openweathermap.org/data/2.5/weather"
	DefaultGeocodingBaseURL = "https://api.opencagedata.com/geocode/v1/json"
)

// Endpoint describes how to call one provider.
type Endpoint struct {
	Provider Provider
	BaseURL  string
	// KeyName is the configuration key holding the provider credential.
	KeyName string
	Query   func(coord geo.Coordinate, apiKey string) map[string]string
}

// WeatherEndpoint returns the current-weather endpoint, reporting in imperial units.
func WeatherEndpoint(baseURL string) Endpoint {
	if baseURL == "" {
		baseURL = DefaultWeatherBaseURL
	}

	return Endpoint{
		Provider: Weather,
		BaseURL:  baseURL,
		KeyName:  WeatherKeyName,
		Query: func(coord geo.Coordinate, apiKey string) map[string]string {
			return map[string]string{
				"lat":   coord.LatString(),
				"lon":   coord.LonString(),
				"units": "imperial",
				"appid": apiKey,
			}
		},
	}
}

// GeocodingEndpoint returns the reverse geocoding endpoint.
func GeocodingEndpoint(baseURL string) Endpoint {
	if baseURL == "" {
		baseURL = DefaultGeocodingBaseURL
	}

	return Endpoint{
		Provider: Geocoding,
		BaseURL:  baseURL,
		KeyName:  GeocodingKeyName,
		Query: func(coord geo.Coordinate, apiKey string) map[string]string {
			return map[string]string{
				"q":              coord.LatString() + "," + coord.LonString(),
				"key":            apiKey,
				"no_annotations": "1",
			}
		},
	}
}
