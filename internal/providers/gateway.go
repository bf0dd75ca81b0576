package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"ulascansenturk/conditions-service/internal/geo"
)

// KeySource resolves a provider credential by its configuration key.
// It is consulted on every call, so a rotated key takes effect without a restart.
type KeySource interface {
	APIKey(name string) string
}

// Gateway issues exactly one outbound request per call. It knows nothing about payload schemas.
type Gateway interface {
	Fetch(ctx context.Context, provider Provider, coord geo.Coordinate) (json.RawMessage, error)
}

type gateway struct {
	client    *resty.Client
	keys      KeySource
	endpoints map[Provider]Endpoint
}

func NewGateway(keys KeySource, timeout time.Duration, endpoints ...Endpoint) Gateway {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetLogger(discardLogger{})

	byProvider := make(map[Provider]Endpoint, len(endpoints))
	for _, e := range endpoints {
		byProvider[e.Provider] = e
	}

	return &gateway{
		client:    client,
		keys:      keys,
		endpoints: byProvider,
	}
}

func (g *gateway) Fetch(ctx context.Context, provider Provider, coord geo.Coordinate) (json.RawMessage, error) {
	endpoint, ok := g.endpoints[provider]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}

	apiKey := g.keys.APIKey(endpoint.KeyName)
	if apiKey == "" {
		log.Error().Str("provider", string(provider)).Str("key_name", endpoint.KeyName).Msg("provider credential is not configured")
		return nil, &ConfigurationError{KeyName: endpoint.KeyName}
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(endpoint.Query(coord, apiKey)).
		Get(endpoint.BaseURL)
	if err != nil {
		// url.Error embeds the request URL, which carries the credential.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		log.Error().Err(err).Str("provider", string(provider)).Msg("provider request failed")
		return nil, &TransportError{Provider: provider, Err: err}
	}

	if !resp.IsSuccess() {
		log.Error().
			Str("provider", string(provider)).
			Int("status", resp.StatusCode()).
			Str("body", resp.String()).
			Msg("provider returned non-success status")
		return nil, &ProviderError{
			Provider:   provider,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}

	body := resp.Body()
	if !json.Valid(body) {
		log.Error().
			Str("provider", string(provider)).
			Int("status", resp.StatusCode()).
			Str("body", resp.String()).
			Msg("provider returned malformed JSON")
		return nil, &ProviderError{
			Provider:   provider,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
			Reason:     "malformed JSON",
		}
	}

	return json.RawMessage(body), nil
}

// discardLogger keeps resty quiet; failures are logged by Fetch without the URL.
type discardLogger struct{}

func (discardLogger) Errorf(string, ...interface{}) {}
func (discardLogger) Warnf(string, ...interface{})  {}
func (discardLogger) Debugf(string, ...interface{}) {}
