package weather_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"ulascansenturk/conditions-service/internal/weather"
)

type ClassifierTestSuite struct {
	suite.Suite
}

func (s *ClassifierTestSuite) TestClassifySkyFirstMatchWins() {
	cases := map[string]weather.SkyCondition{
		"clear sky":             weather.SkySunny,
		"sunny":                 weather.SkySunny,
		"sunny with clouds":     weather.SkySunny,
		"clear, rain later":     weather.SkySunny,
		"Clear Sky":             weather.SkySunny,
		"few clouds":            weather.SkyCloudy,
		"overcast clouds":       weather.SkyCloudy,
		"light rain":            weather.SkyCloudy,
		"drizzle":               weather.SkyCloudy,
		"thunderstorm":          weather.SkyCloudy,
		"thunderstorm with sun": weather.SkySunny,
		"mist":                  weather.SkyCloudy,
		"haze":                  weather.SkyCloudy,
		"":                      weather.SkyCloudy,
	}

	for text, expected := range cases {
		s.Run(text, func() {
			s.Equal(expected, weather.ClassifySky(text))
		})
	}
}

func (s *ClassifierTestSuite) TestClassifyFullPayload() {
	payload, err := weather.DecodePayload([]byte(`{
		"main": {"temp": 71.6},
		"wind": {"speed": 8.05},
		"weather": [{"description": "Scattered Clouds"}, {"description": "clear sky"}]
	}`))
	s.Require().NoError(err)

	result := weather.Classify(payload)

	s.Require().NotNil(result.TempF)
	s.Require().NotNil(result.WindSpeed)
	s.Equal(71.6, *result.TempF)
	s.Equal(8.05, *result.WindSpeed)
	s.Equal(weather.SkyCloudy, result.SkyCondition)
	s.Equal("scattered clouds", result.RawDescription)
}

func (s *ClassifierTestSuite) TestClassifyEmptyPayload() {
	payload, err := weather.DecodePayload([]byte(`{}`))
	s.Require().NoError(err)

	result := weather.Classify(payload)

	s.Nil(result.TempF)
	s.Nil(result.WindSpeed)
	s.Equal(weather.SkyCloudy, result.SkyCondition)
	s.Empty(result.RawDescription)
}

func (s *ClassifierTestSuite) TestClassifyKeepsZeroReadings() {
	payload, err := weather.DecodePayload([]byte(`{"main": {"temp": 0}, "wind": {"speed": 0}}`))
	s.Require().NoError(err)

	result := weather.Classify(payload)

	s.Require().NotNil(result.TempF)
	s.Require().NotNil(result.WindSpeed)
	s.Equal(0.0, *result.TempF)
	s.Equal(0.0, *result.WindSpeed)
}

func (s *ClassifierTestSuite) TestClassifyMissingNestedFields() {
	payload, err := weather.DecodePayload([]byte(`{"main": {}, "wind": null, "weather": [{}]}`))
	s.Require().NoError(err)

	result := weather.Classify(payload)

	s.Nil(result.TempF)
	s.Nil(result.WindSpeed)
	s.Empty(result.RawDescription)
	s.Equal(weather.SkyCloudy, result.SkyCondition)
}

func (s *ClassifierTestSuite) TestClassifyEmptyDescriptionList() {
	payload, err := weather.DecodePayload([]byte(`{"weather": []}`))
	s.Require().NoError(err)

	s.Equal(weather.SkyCloudy, weather.Classify(payload).SkyCondition)
}

func (s *ClassifierTestSuite) TestDecodeMalformedPayload() {
	_, err := weather.DecodePayload([]byte(`{"main": "hot"}`))

	s.Error(err)
	s.Contains(err.Error(), "weather payload")
}

func TestClassifierSuite(t *testing.T) {
	suite.Run(t, new(ClassifierTestSuite))
}
