package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"ulascansenturk/conditions-service/config"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) TestDefaults() {
	s.T().Setenv("HTTP_TIMEOUT", "")
	s.T().Setenv("DATABASE_HOST", "")

	conf, err := config.LoadConfig()
	s.Require().NoError(err)

	s.Equal("conditions-service", conf.ServiceName)
	s.Equal("0.0.0.0:3000", conf.ServerAddress)
	s.Equal(10*time.Second, conf.ProviderTimeout)
	s.Equal("https://api.openweathermap.org/data/2.5/weather", conf.WeatherBaseURL)
	s.Equal("https://api.opencagedata.com/geocode/v1/json", conf.GeocodingBaseURL)
	s.False(conf.AuditEnabled())
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("HTTP_TIMEOUT", "3")
	s.T().Setenv("PROVIDER_TIMEOUT", "250ms")
	s.T().Setenv("DATABASE_HOST", "localhost")

	conf, err := config.LoadConfig()
	s.Require().NoError(err)

	s.Equal(3*time.Second, conf.HTTPTimeoutDuration())
	s.Equal(250*time.Millisecond, conf.ProviderTimeout)
	s.True(conf.AuditEnabled())
}

func (s *ConfigTestSuite) TestCredentialsAreReadOnEveryCall() {
	s.T().Setenv("WEATHER_API_KEY", "")

	conf, err := config.LoadConfig()
	s.Require().NoError(err)

	creds := conf.Credentials()
	s.Empty(creds.APIKey("WEATHER_API_KEY"))

	s.T().Setenv("WEATHER_API_KEY", "rotated-key")
	s.Equal("rotated-key", creds.APIKey("WEATHER_API_KEY"))
}

func (s *ConfigTestSuite) TestZeroCredentials() {
	s.Empty(config.Credentials{}.APIKey("WEATHER_API_KEY"))
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
