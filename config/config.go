package config

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"time"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	ProviderTimeout  time.Duration
	WeatherBaseURL   string
	GeocodingBaseURL string

	v *viper.Viper
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "conditions-service")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("HTTP_TIMEOUT", 15)
	v.SetDefault("PROVIDER_TIMEOUT", 10*time.Second)
	v.SetDefault("WEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5/weather")
	v.SetDefault("GEOCODING_BASE_URL", "https://api.opencagedata.com/geocode/v1/json")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:      v.GetString("SERVICE_NAME"),
		ServerAddress:    v.GetString("SERVER_ADDRESS"),
		DBName:           v.GetString("DATABASE_NAME"),
		DBPassword:       v.GetString("DATABASE_PASSWORD"),
		DBUser:           v.GetString("DATABASE_USER"),
		DBPort:           v.GetString("DATABASE_PORT"),
		DBHost:           v.GetString("DATABASE_HOST"),
		Env:              v.GetString("ENV"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		HTTPTimeout:      v.GetInt32("HTTP_TIMEOUT"),
		ProviderTimeout:  v.GetDuration("PROVIDER_TIMEOUT"),
		WeatherBaseURL:   v.GetString("WEATHER_BASE_URL"),
		GeocodingBaseURL: v.GetString("GEOCODING_BASE_URL"),
		v:                v,
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// AuditEnabled reports whether a database is configured for the lookup audit trail.
func (c *Config) AuditEnabled() bool {
	return c.DBHost != ""
}

// Credentials exposes provider API keys. Keys are looked up on every call, so a key
// set or rotated in the environment after startup is picked up without a restart.
func (c *Config) Credentials() Credentials {
	return Credentials{v: c.v}
}

type Credentials struct {
	v *viper.Viper
}

func (c Credentials) APIKey(name string) string {
	if c.v == nil {
		return ""
	}
	return c.v.GetString(name)
}
