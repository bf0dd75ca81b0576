package weather_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"ulascansenturk/conditions-service/internal/weather"
)

type SummaryTestSuite struct {
	suite.Suite
}

func speed(v float64) *float64 {
	return &v
}

func (s *SummaryTestSuite) TestWindLabelThresholds() {
	cases := []struct {
		mph      float64
		expected string
	}{
		{0, "Calm"},
		{2, "Calm"},
		{2.4, "Calm"},
		{2.6, "Light breeze"},
		{3, "Light breeze"},
		{9, "Light breeze"},
		{10, "Breezy"},
		{17, "Breezy"},
		{18, "Windy"},
		{20, "Windy"},
	}

	for _, tc := range cases {
		s.Equal(tc.expected, weather.WindLabel(tc.mph), "wind %.1f", tc.mph)
	}
}

func (s *SummaryTestSuite) TestSkyLabelPrefersRawDescription() {
	s.Equal("Clear", weather.SkyLabel(weather.SkySunny, "clear sky"))
	s.Equal("Sunny", weather.SkyLabel(weather.SkySunny, "sunny intervals"))
	s.Equal("Cloudy", weather.SkyLabel(weather.SkyCloudy, "broken clouds"))
	s.Equal("Rainy", weather.SkyLabel(weather.SkyCloudy, "light rain"))
	s.Equal("Rainy", weather.SkyLabel(weather.SkyCloudy, "drizzle"))
	s.Equal("Stormy", weather.SkyLabel(weather.SkyCloudy, "thunderstorm"))
}

func (s *SummaryTestSuite) TestSkyLabelFallsBackToCategory() {
	s.Equal("Cloudy", weather.SkyLabel(weather.SkyCloudy, "mist"))
	s.Equal("Sunny", weather.SkyLabel(weather.SkySunny, ""))
	s.Equal("Mixed", weather.SkyLabel("", "haze"))
}

func (s *SummaryTestSuite) TestSummarizeWithWind() {
	s.Equal("Sunny · Breezy", weather.Summarize(weather.SkySunny, speed(12), ""))
	s.Equal("Rainy · Windy", weather.Summarize(weather.SkyCloudy, speed(22.3), "moderate rain"))
	s.Equal("Cloudy · Calm", weather.Summarize(weather.SkyCloudy, speed(0), "overcast clouds"))
}

func (s *SummaryTestSuite) TestSummarizeWithoutWind() {
	s.Equal("Clear", weather.Summarize(weather.SkySunny, nil, "clear sky"))
}

func (s *SummaryTestSuite) TestCanonicalWeatherSummary() {
	w := weather.CanonicalWeather{
		SkyCondition:   weather.SkyCloudy,
		WindSpeed:      speed(5),
		RawDescription: "few clouds",
	}

	s.Equal("Cloudy · Light breeze", w.Summary())
}

func TestSummarySuite(t *testing.T) {
	suite.Run(t, new(SummaryTestSuite))
}
