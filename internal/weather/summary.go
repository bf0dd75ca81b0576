package weather

import (
	"math"
	"strings"
)

type labelRule struct {
	matches func(text string) bool
	label   string
}

// skyLabelRules recover finer labels than the two-value sky category.
var skyLabelRules = []labelRule{
	{matches: containsAny("sun"), label: "Sunny"},
	{matches: containsAny("clear"), label: "Clear"},
	{matches: containsAny("cloud"), label: "Cloudy"},
	{matches: containsAny("rain", "drizzle"), label: "Rainy"},
	{matches: containsAny("storm", "thunder"), label: "Stormy"},
}

const mixedSkyLabel = "Mixed"

type windBucket struct {
	below float64
	label string
}

// Upper bounds are exclusive, so a boundary value lands in the next bucket.
var windBuckets = []windBucket{
	{below: 3, label: "Calm"},
	{below: 10, label: "Light breeze"},
	{below: 18, label: "Breezy"},
}

const strongestWindLabel = "Windy"

// SkyLabel labels the sky from the raw description, falling back to the canonical category
// when the description says nothing recognisable.
func SkyLabel(sky SkyCondition, rawDescription string) string {
	for _, text := range []string{rawDescription, string(sky)} {
		text = strings.ToLower(text)
		for _, rule := range skyLabelRules {
			if rule.matches(text) {
				return rule.label
			}
		}
	}
	return mixedSkyLabel
}

// WindLabel buckets a wind speed in mph, rounded to the nearest whole mile per hour first.
func WindLabel(mph float64) string {
	rounded := math.Round(mph)
	for _, bucket := range windBuckets {
		if rounded < bucket.below {
			return bucket.label
		}
	}
	return strongestWindLabel
}

// Summarize composes "{sky} · {wind}", or the sky label alone when wind speed is unknown.
func Summarize(sky SkyCondition, windSpeed *float64, rawDescription string) string {
	skyLabel := SkyLabel(sky, rawDescription)
	if windSpeed == nil {
		return skyLabel
	}
	return skyLabel + " · " + WindLabel(*windSpeed)
}

// Summary is Summarize applied to w.
func (w CanonicalWeather) Summary() string {
	return Summarize(w.SkyCondition, w.WindSpeed, w.RawDescription)
}
