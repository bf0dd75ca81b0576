package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ulascansenturk/conditions-service/internal/db/lookuplog"
	"ulascansenturk/conditions-service/internal/service"
	"ulascansenturk/conditions-service/internal/weather"
)

func TestPrintReportText(t *testing.T) {
	temp := 64.2
	report := service.ConditionsReport{
		RequestID: "req-1",
		Weather: &weather.CanonicalWeather{
			TempF:          &temp,
			SkyCondition:   weather.SkyCloudy,
			RawDescription: "overcast clouds",
		},
		ConditionSummary:    "Cloudy",
		LocationUnavailable: service.LocationUnavailable,
	}

	var out bytes.Buffer
	require.NoError(t, printReport(&out, report, "text"))

	text := out.String()
	assert.Contains(t, text, "Conditions lookup req-1")
	assert.Contains(t, text, "Temperature: 64.2°F")
	assert.Contains(t, text, "Wind:        unknown")
	assert.Contains(t, text, "Sky:         cloudy (overcast clouds)")
	assert.Contains(t, text, service.LocationUnavailable)
}

func TestPrintReportJSON(t *testing.T) {
	report := service.ConditionsReport{
		RequestID:           "req-2",
		WeatherUnavailable:  service.WeatherUnavailable,
		LocationUnavailable: service.LocationUnavailable,
	}

	var out bytes.Buffer
	require.NoError(t, printReport(&out, report, "json"))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "req-2", decoded["request_id"])
	assert.Nil(t, decoded["weather"])
	assert.Equal(t, service.WeatherUnavailable, decoded["weather_unavailable"])
}

func TestPrintHistory(t *testing.T) {
	var out bytes.Buffer
	printHistory(&out, nil)
	assert.Equal(t, "No lookups recorded\n", out.String())

	out.Reset()
	printHistory(&out, []lookuplog.ConditionLookup{
		{
			RequestID:  "req-3",
			Latitude:   33.4718,
			Longitude:  -83.2455,
			WeatherOK:  true,
			LocationOK: false,
			CreatedAt:  time.Date(2024, 5, 4, 6, 30, 0, 0, time.UTC),
		},
	})
	assert.Contains(t, out.String(), "2024-05-04 06:30:00  req-3")
	assert.Contains(t, out.String(), "weather=ok location=unavailable")
}
