package weather

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SkyCondition is the closed sky category consumed by the recommendation engine.
type SkyCondition string

const (
	SkySunny  SkyCondition = "sunny"
	SkyCloudy SkyCondition = "cloudy"
)

// RawWeatherPayload is the subset of the provider's current-weather document we read.
// Every field is optional.
type RawWeatherPayload struct {
	Main    *mainReading  `json:"main"`
	Wind    *windReading  `json:"wind"`
	Weather []description `json:"weather"`
}

type mainReading struct {
	Temp *float64 `json:"temp"`
}

type windReading struct {
	Speed *float64 `json:"speed"`
}

type description struct {
	Description *string `json:"description"`
}

// CanonicalWeather is the provider-independent weather record.
// A nil TempF or WindSpeed means the provider did not report it; zero is a real reading.
type CanonicalWeather struct {
	TempF          *float64     `json:"temp_f"`
	WindSpeed      *float64     `json:"wind_speed"`
	SkyCondition   SkyCondition `json:"sky_condition"`
	RawDescription string       `json:"raw_description"`
}

type skyRule struct {
	matches func(text string) bool
	sky     SkyCondition
}

// skyRules are evaluated in order; the first match wins.
// Precipitation folds into cloudy.
var skyRules = []skyRule{
	{matches: containsAny("clear", "sun"), sky: SkySunny},
	{matches: containsAny("cloud"), sky: SkyCloudy},
	{matches: containsAny("rain", "drizzle", "storm", "thunder"), sky: SkyCloudy},
}

const defaultSky = SkyCloudy

// DecodePayload parses a raw provider body.
func DecodePayload(body []byte) (RawWeatherPayload, error) {
	var payload RawWeatherPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return RawWeatherPayload{}, fmt.Errorf("weather payload: %w", err)
	}
	return payload, nil
}

// Classify reduces a raw payload to a CanonicalWeather. It never fails.
func Classify(payload RawWeatherPayload) CanonicalWeather {
	result := CanonicalWeather{
		RawDescription: firstDescription(payload),
	}

	if payload.Main != nil && payload.Main.Temp != nil {
		temp := *payload.Main.Temp
		result.TempF = &temp
	}

	if payload.Wind != nil && payload.Wind.Speed != nil {
		speed := *payload.Wind.Speed
		result.WindSpeed = &speed
	}

	result.SkyCondition = ClassifySky(result.RawDescription)

	return result
}

// ClassifySky maps a free-text description to a sky category.
func ClassifySky(text string) SkyCondition {
	text = strings.ToLower(text)
	for _, rule := range skyRules {
		if rule.matches(text) {
			return rule.sky
		}
	}
	return defaultSky
}

func firstDescription(payload RawWeatherPayload) string {
	if len(payload.Weather) == 0 || payload.Weather[0].Description == nil {
		return ""
	}
	return strings.ToLower(*payload.Weather[0].Description)
}

func containsAny(subs ...string) func(string) bool {
	return func(s string) bool {
		for _, sub := range subs {
			if strings.Contains(s, sub) {
				return true
			}
		}
		return false
	}
}
