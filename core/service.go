package core

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"
)

// Service fetches Trello resources by id over a TransportAdapter.
type Service struct {
	config          Config
	logger          Logger
	loggerProvider  LoggerProvider
	metricsRecorder MetricsRecorder
	errorMapper     ErrorMapper
	transport       TransportAdapter
}

func NewService(cfg Config, opts ...Option) (*Service, error) {
	builder := defaultServiceBuilder(cfg)
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&builder)
	}

	provider, logger := glog.Resolve("trello", builder.loggerProvider, builder.logger)
	logger = glog.Ensure(logger)
	if provider != nil {
		if named := provider.GetLogger("trello"); named != nil {
			logger = glog.Ensure(named)
		}
	}

	if builder.metricsRecorder == nil {
		builder.metricsRecorder = NopMetricsRecorder{}
	}
	if builder.errorMapper == nil {
		builder.errorMapper = MapError
	}
	if builder.configProvider == nil {
		builder.configProvider = NewCfgxConfigProvider(nil)
	}
	if builder.optionsResolver == nil {
		builder.optionsResolver = GoOptionsResolver{}
	}
	if builder.transport == nil {
		return nil, NewError("core: transport adapter is required", goerrors.CategoryInternal, ErrorInternal, nil)
	}

	defaults := DefaultConfig()
	loaded, err := builder.configProvider.Load(context.Background(), defaults)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}
	finalConfig, err := builder.optionsResolver.Resolve(defaults, loaded, builder.runtimeConfig)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}

	return &Service{
		config:          finalConfig,
		logger:          logger,
		loggerProvider:  provider,
		metricsRecorder: builder.metricsRecorder,
		errorMapper:     builder.errorMapper,
		transport:       builder.transport,
	}, nil
}

func mapBuildError(mapper ErrorMapper, err error) error {
	if err == nil {
		return nil
	}
	if mapper == nil {
		return err
	}
	mapped := mapper(err)
	if mapped == nil {
		return err
	}
	return mapped
}

func (s *Service) Config() Config {
	if s == nil {
		return Config{}
	}
	return s.config
}

func (s *Service) Logger() Logger {
	if s == nil || s.logger == nil {
		return glog.Nop()
	}
	return s.logger
}

func (s *Service) LoggerProvider() LoggerProvider {
	if s == nil {
		return nil
	}
	return s.loggerProvider
}

func (s *Service) MetricsRecorder() MetricsRecorder {
	if s == nil || s.metricsRecorder == nil {
		return NopMetricsRecorder{}
	}
	return s.metricsRecorder
}

func (s *Service) GetCard(ctx context.Context, id string) (Card, error) {
	var card Card
	if err := s.fetch(ctx, "get_card", "cards", id, &card); err != nil {
		return Card{}, err
	}
	return card, nil
}

func (s *Service) GetMember(ctx context.Context, id string) (Member, error) {
	var member Member
	if err := s.fetch(ctx, "get_member", "members", id, &member); err != nil {
		return Member{}, err
	}
	return member, nil
}

func (s *Service) GetBoard(ctx context.Context, id string) (Board, error) {
	var board Board
	if err := s.fetch(ctx, "get_board", "boards", id, &board); err != nil {
		return Board{}, err
	}
	return board, nil
}

func (s *Service) fetch(ctx context.Context, operation string, resource string, id string, target any) (err error) {
	if s == nil || s.transport == nil {
		return NewError("core: service is not configured", goerrors.CategoryInternal, ErrorInternal, nil)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	id = strings.TrimSpace(id)
	obs := fetchObservation{
		operation:  operation,
		resource:   resource,
		resourceID: id,
		startedAt:  time.Now(),
	}
	defer func() {
		s.observeFetch(ctx, obs, err)
	}()

	if id == "" {
		return NewError(
			fmt.Sprintf("core: %s id is required", strings.TrimSuffix(resource, "s")),
			goerrors.CategoryBadInput,
			ErrorBadInput,
			map[string]any{"resource": resource},
		)
	}

	res, err := s.transport.Do(ctx, TransportRequest{
		Method:  http.MethodGet,
		URL:     s.resourceURL(resource, id),
		Headers: map[string]string{"Accept": "application/json"},
		Query:   s.credentialQuery(),
		Timeout: s.config.API.Timeout,
	})
	if err != nil {
		return err
	}
	obs.statusCode = res.StatusCode
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return responseStatusError(resource, id, res)
	}
	if err := json.Unmarshal(res.Body, target); err != nil {
		return WrapError(
			err,
			goerrors.CategoryExternal,
			fmt.Sprintf("core: decode %s response", resource),
			ErrorExternalFailure,
			map[string]any{"resource": resource, "resource_id": id},
		)
	}
	return nil
}

func (s *Service) resourceURL(resource string, id string) string {
	base := strings.TrimRight(strings.TrimSpace(s.config.API.BaseURL), "/")
	if base == "" {
		base = DefaultAPIBaseURL
	}
	return base + "/" + resource + "/" + url.PathEscape(id)
}

func (s *Service) credentialQuery() map[string]string {
	query := map[string]string{}
	if key := strings.TrimSpace(s.config.API.Key); key != "" {
		query["key"] = key
	}
	if token := strings.TrimSpace(s.config.API.Token); token != "" {
		query["token"] = token
	}
	return query
}

func responseStatusError(resource string, id string, res TransportResponse) error {
	metadata := map[string]any{
		"resource":    resource,
		"resource_id": id,
		"status_code": res.StatusCode,
	}
	message := fmt.Sprintf("core: fetch %s %q returned status %d", strings.TrimSuffix(resource, "s"), id, res.StatusCode)
	switch {
	case res.StatusCode == http.StatusNotFound:
		return NewError(message, goerrors.CategoryNotFound, ErrorNotFound, metadata)
	case res.StatusCode == http.StatusUnauthorized, res.StatusCode == http.StatusForbidden:
		return NewError(message, goerrors.CategoryAuth, ErrorUnauthorized, metadata)
	case res.StatusCode == http.StatusTooManyRequests:
		return NewError(message, goerrors.CategoryRateLimit, ErrorRateLimited, metadata)
	default:
		err := NewError(message, goerrors.CategoryExternal, ErrorExternalFailure, metadata)
		err.Code = http.StatusBadGateway
		return err
	}
}
