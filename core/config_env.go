package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type envConfig struct {
	ServiceName         string        `env:"SERVICE_NAME"`
	APIBaseURL          string        `env:"API_BASE_URL"`
	APIKey              string        `env:"API_KEY"`
	APIToken            string        `env:"API_TOKEN"`
	APITimeout          time.Duration `env:"API_TIMEOUT"`
	WebhookMaxBodyBytes int64         `env:"WEBHOOK_MAX_BODY_BYTES"`
}

// EnvConfigLoader reads raw configuration from prefixed environment
// variables, e.g. TRELLO_API_KEY. Unset variables are omitted from the
// raw map so lower layers keep their values.
type EnvConfigLoader struct {
	Prefix string
	// Environment overrides the process environment when set.
	Environment map[string]string
}

func NewEnvConfigLoader() *EnvConfigLoader {
	return &EnvConfigLoader{Prefix: "TRELLO_"}
}

func (l *EnvConfigLoader) LoadRaw(context.Context) (map[string]any, error) {
	options := env.Options{}
	if l != nil {
		options.Prefix = l.Prefix
		if l.Environment != nil {
			options.Environment = l.Environment
		}
	}
	var parsed envConfig
	if err := env.ParseWithOptions(&parsed, options); err != nil {
		return nil, fmt.Errorf("core: parse env: %w", err)
	}

	raw := map[string]any{}
	if value := strings.TrimSpace(parsed.ServiceName); value != "" {
		raw["service_name"] = value
	}
	api := map[string]any{}
	if value := strings.TrimSpace(parsed.APIBaseURL); value != "" {
		api["base_url"] = value
	}
	if value := strings.TrimSpace(parsed.APIKey); value != "" {
		api["key"] = value
	}
	if value := strings.TrimSpace(parsed.APIToken); value != "" {
		api["token"] = value
	}
	if parsed.APITimeout > 0 {
		api["timeout"] = parsed.APITimeout
	}
	if len(api) > 0 {
		raw["api"] = api
	}
	if parsed.WebhookMaxBodyBytes > 0 {
		raw["webhook"] = map[string]any{"max_body_bytes": parsed.WebhookMaxBodyBytes}
	}
	return raw, nil
}

var _ RawConfigLoader = (*EnvConfigLoader)(nil)
