package geocode

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound means the provider returned zero candidates for the coordinates.
var ErrNotFound = errors.New("no location found for coordinates")

// RawGeocodePayload is the provider's ranked list of candidates, best first.
type RawGeocodePayload struct {
	Results []Candidate `json:"results"`
}

// Candidate is one ranked result. Components carry arbitrary provider keys.
type Candidate struct {
	Components map[string]interface{} `json:"components"`
	Formatted  string                 `json:"formatted"`
}

// CanonicalLocation is the provider-independent location record.
// Label is always set; the other fields are nil when the provider had no value.
type CanonicalLocation struct {
	WaterName *string `json:"water_name"`
	City      *string `json:"city"`
	County    *string `json:"county"`
	State     *string `json:"state"`
	Country   *string `json:"country"`
	Label     string  `json:"label"`
}

// Candidate tiers, highest priority first.
var (
	waterTier   = []string{"water", "lake", "reservoir", "body_of_water"}
	cityTier    = []string{"city", "town", "village", "hamlet"}
	countyTier  = []string{"county"}
	stateTier   = []string{"state_code", "state"}
	countryTier = []string{"country"}
)

// DecodePayload parses a raw provider body.
func DecodePayload(body []byte) (RawGeocodePayload, error) {
	var payload RawGeocodePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return RawGeocodePayload{}, fmt.Errorf("geocode payload: %w", err)
	}
	return payload, nil
}

// Resolve reads the best-ranked candidate only. It fails with ErrNotFound when there is none.
func Resolve(payload RawGeocodePayload) (CanonicalLocation, error) {
	if len(payload.Results) == 0 {
		return CanonicalLocation{}, ErrNotFound
	}

	best := payload.Results[0]

	return CanonicalLocation{
		WaterName: firstPresent(best.Components, waterTier),
		City:      firstPresent(best.Components, cityTier),
		County:    firstPresent(best.Components, countyTier),
		State:     firstPresent(best.Components, stateTier),
		Country:   firstPresent(best.Components, countryTier),
		Label:     best.Formatted,
	}, nil
}

// firstPresent returns the first key in tier holding a non-empty string.
func firstPresent(components map[string]interface{}, tier []string) *string {
	for _, key := range tier {
		if value, ok := components[key].(string); ok && value != "" {
			return &value
		}
	}
	return nil
}
