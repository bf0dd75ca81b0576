package handlers

import (
	"ulascansenturk/conditions-service/internal/geocode"
	"ulascansenturk/conditions-service/internal/weather"
)

type WeatherResponse struct {
	TempF          *float64 `json:"temp_f"`
	WindSpeed      *float64 `json:"wind_speed"`
	SkyCondition   string   `json:"sky_condition"`
	RawDescription string   `json:"raw_description"`
}

func newWeatherResponse(w weather.CanonicalWeather) WeatherResponse {
	return WeatherResponse{
		TempF:          w.TempF,
		WindSpeed:      w.WindSpeed,
		SkyCondition:   string(w.SkyCondition),
		RawDescription: w.RawDescription,
	}
}

type LocationResponse struct {
	WaterName *string `json:"water_name"`
	City      *string `json:"city"`
	County    *string `json:"county"`
	State     *string `json:"state"`
	Country   *string `json:"country"`
	Label     string  `json:"label"`
}

func newLocationResponse(l geocode.CanonicalLocation) LocationResponse {
	return LocationResponse{
		WaterName: l.WaterName,
		City:      l.City,
		County:    l.County,
		State:     l.State,
		Country:   l.Country,
		Label:     l.Label,
	}
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
