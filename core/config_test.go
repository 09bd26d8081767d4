package core

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("expected default config to be valid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "service name", mutate: func(c *Config) { c.ServiceName = " " }, want: "service_name"},
		{name: "base url", mutate: func(c *Config) { c.API.BaseURL = "" }, want: "api.base_url"},
		{name: "relative base url", mutate: func(c *Config) { c.API.BaseURL = "/1" }, want: "invalid"},
		{name: "timeout", mutate: func(c *Config) { c.API.Timeout = -time.Second }, want: "api.timeout"},
		{name: "body limit", mutate: func(c *Config) { c.Webhook.MaxBodyBytes = -1 }, want: "max_body_bytes"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestNewService_LayersRuntimeOverLoadedConfig(t *testing.T) {
	loader := StaticConfigLoader(map[string]any{
		"service_name": "boards",
		"api": map[string]any{
			"key":   "loaded-key",
			"token": "loaded-token",
		},
	})
	svc, err := NewService(
		Config{API: APIConfig{Token: "runtime-token"}},
		WithTransport(&stubTransport{}),
		WithConfigProvider(NewCfgxConfigProvider(loader)),
	)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	cfg := svc.Config()
	if cfg.ServiceName != "boards" {
		t.Fatalf("expected loaded service name, got %q", cfg.ServiceName)
	}
	if cfg.API.Key != "loaded-key" {
		t.Fatalf("expected loaded key, got %q", cfg.API.Key)
	}
	if cfg.API.Token != "runtime-token" {
		t.Fatalf("expected runtime token to win, got %q", cfg.API.Token)
	}
	if cfg.API.BaseURL != DefaultAPIBaseURL || cfg.API.Timeout != DefaultAPITimeout {
		t.Fatalf("expected defaults preserved, got %#v", cfg.API)
	}
	if cfg.Webhook.MaxBodyBytes != DefaultWebhookMaxBodyBytes {
		t.Fatalf("expected default body limit, got %d", cfg.Webhook.MaxBodyBytes)
	}
}

func TestNewService_InvalidRuntimeConfig(t *testing.T) {
	_, err := NewService(
		Config{API: APIConfig{BaseURL: "not a url"}},
		WithTransport(&stubTransport{}),
	)
	if err == nil {
		t.Fatalf("expected invalid config error")
	}
}

type failingLoader struct{}

func (failingLoader) LoadRaw(context.Context) (map[string]any, error) {
	return nil, errors.New("config source unavailable")
}

func TestNewService_ConfigLoadFailureIsMapped(t *testing.T) {
	_, err := NewService(DefaultConfig(),
		WithTransport(&stubTransport{}),
		WithConfigProvider(NewCfgxConfigProvider(failingLoader{})),
	)
	if err == nil {
		t.Fatalf("expected load error")
	}
	if MapError(err) == nil {
		t.Fatalf("expected mapped error envelope")
	}
}

func TestEnvConfigLoader_ReadsPrefixedVariables(t *testing.T) {
	loader := NewEnvConfigLoader()
	loader.Environment = map[string]string{
		"TRELLO_API_KEY":                "env-key",
		"TRELLO_API_TOKEN":              "env-token",
		"TRELLO_API_TIMEOUT":            "5s",
		"TRELLO_WEBHOOK_MAX_BODY_BYTES": "2048",
		"API_KEY":                       "unprefixed",
	}

	raw, err := loader.LoadRaw(context.Background())
	if err != nil {
		t.Fatalf("load raw: %v", err)
	}
	api, ok := raw["api"].(map[string]any)
	if !ok {
		t.Fatalf("expected api section, got %#v", raw)
	}
	if api["key"] != "env-key" || api["token"] != "env-token" {
		t.Fatalf("unexpected credentials: %#v", api)
	}
	if api["timeout"] != 5*time.Second {
		t.Fatalf("expected parsed timeout, got %#v", api["timeout"])
	}
	if _, ok := api["base_url"]; ok {
		t.Fatalf("expected unset base url to be omitted")
	}
	if _, ok := raw["service_name"]; ok {
		t.Fatalf("expected unset service name to be omitted")
	}
	webhook, _ := raw["webhook"].(map[string]any)
	if webhook["max_body_bytes"] != int64(2048) {
		t.Fatalf("expected body limit, got %#v", raw["webhook"])
	}

	svc, err := NewService(Config{},
		WithTransport(&stubTransport{}),
		WithConfigProvider(NewCfgxConfigProvider(loader)),
	)
	if err != nil {
		t.Fatalf("new service from env: %v", err)
	}
	if svc.Config().API.Key != "env-key" || svc.Config().Webhook.MaxBodyBytes != 2048 {
		t.Fatalf("unexpected resolved config: %#v", svc.Config())
	}
}

func TestEnvConfigLoader_InvalidValue(t *testing.T) {
	loader := &EnvConfigLoader{
		Prefix:      "TRELLO_",
		Environment: map[string]string{"TRELLO_API_TIMEOUT": "soon"},
	}
	if _, err := loader.LoadRaw(context.Background()); err == nil {
		t.Fatalf("expected parse error")
	}
}
