package recommendation

import (
	"math"
	"time"

	"ulascansenturk/conditions-service/internal/weather"
)

// Request is the input accepted by the pattern recommendation engine.
// This service fills only the weather-derived fields and the month; the rest come from the angler.
type Request struct {
	TempF             *float64 `json:"temp_f"`
	Month             int      `json:"month"`
	Clarity           string   `json:"clarity,omitempty"`
	WindSpeed         *float64 `json:"wind_speed"`
	SkyCondition      string   `json:"sky_condition,omitempty"`
	DepthFt           *float64 `json:"depth_ft,omitempty"`
	BottomComposition string   `json:"bottom_composition,omitempty"`
}

// FromWeather pre-fills a request from current conditions. Readings are rounded to whole
// numbers, the precision the engine's form works in.
func FromWeather(w weather.CanonicalWeather, now time.Time) Request {
	return Request{
		TempF:        roundPtr(w.TempF),
		Month:        int(now.Month()),
		WindSpeed:    roundPtr(w.WindSpeed),
		SkyCondition: string(w.SkyCondition),
	}
}

func roundPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := math.Round(*v)
	return &r
}
