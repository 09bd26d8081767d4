package core

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultAPIBaseURL          = "https://api.trello.com/1"
	DefaultAPITimeout          = 30 * time.Second
	DefaultWebhookMaxBodyBytes = 1 << 20 // 1 MiB
)

type APIConfig struct {
	BaseURL string        `koanf:"base_url" mapstructure:"base_url"`
	Key     string        `koanf:"key" mapstructure:"key"`
	Token   string        `koanf:"token" mapstructure:"token"`
	Timeout time.Duration `koanf:"timeout" mapstructure:"timeout"`
}

type WebhookConfig struct {
	MaxBodyBytes int64 `koanf:"max_body_bytes" mapstructure:"max_body_bytes"`
}

type Config struct {
	ServiceName string        `koanf:"service_name" mapstructure:"service_name"`
	API         APIConfig     `koanf:"api" mapstructure:"api"`
	Webhook     WebhookConfig `koanf:"webhook" mapstructure:"webhook"`
}

func DefaultConfig() Config {
	return Config{
		ServiceName: "trello",
		API: APIConfig{
			BaseURL: DefaultAPIBaseURL,
			Timeout: DefaultAPITimeout,
		},
		Webhook: WebhookConfig{
			MaxBodyBytes: DefaultWebhookMaxBodyBytes,
		},
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ServiceName) == "" {
		return fmt.Errorf("core: service_name is required")
	}
	baseURL := strings.TrimSpace(c.API.BaseURL)
	if baseURL == "" {
		return fmt.Errorf("core: api.base_url is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("core: api.base_url %q is invalid", baseURL)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("core: api.timeout must be >= 0")
	}
	if c.Webhook.MaxBodyBytes < 0 {
		return fmt.Errorf("core: webhook.max_body_bytes must be >= 0")
	}
	return nil
}
