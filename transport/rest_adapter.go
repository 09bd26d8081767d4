package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-trello/core"
)

const KindREST = "rest"

const (
	defaultRESTClientTimeout           = 30 * time.Second
	defaultRESTResponseBodyLimit int64 = 10 << 20 // 10 MiB
	defaultUserAgent                   = "go-trello"
)

// Query parameters that carry credentials and never appear in error metadata.
var redactedQueryKeys = []string{"key", "token"}

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RESTAdapter performs single, unretried HTTP calls against the Trello API.
type RESTAdapter struct {
	Client               HTTPDoer
	DefaultHeaders       map[string]string
	MaxResponseBodyBytes int64
}

func NewRESTAdapter(client HTTPDoer) *RESTAdapter {
	if client == nil {
		client = &http.Client{Timeout: defaultRESTClientTimeout}
	}
	return &RESTAdapter{
		Client: client,
		DefaultHeaders: map[string]string{
			"User-Agent": defaultUserAgent,
		},
		MaxResponseBodyBytes: defaultRESTResponseBodyLimit,
	}
}

func (*RESTAdapter) Kind() string {
	return KindREST
}

func (a *RESTAdapter) Do(ctx context.Context, req core.TransportRequest) (core.TransportResponse, error) {
	if a == nil || a.Client == nil {
		return core.TransportResponse{}, transportError(
			"transport: rest adapter requires an http client",
			goerrors.CategoryInternal,
			http.StatusInternalServerError,
			map[string]any{"adapter": KindREST},
		)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	target, err := resolveURL(req.URL, req.Query)
	if err != nil {
		return core.TransportResponse{}, err
	}
	method := strings.TrimSpace(strings.ToUpper(req.Method))
	if method == "" {
		method = http.MethodGet
	}
	metadata := map[string]any{"adapter": KindREST, "method": method, "url": redactURL(target)}

	requestCtx := ctx
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		requestCtx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(requestCtx, method, target.String(), bytes.NewReader(req.Body))
	if err != nil {
		return core.TransportResponse{}, transportWrapError(
			err,
			goerrors.CategoryBadInput,
			"transport: create http request",
			http.StatusBadRequest,
			metadata,
		)
	}
	applyHeaders(httpReq.Header, a.DefaultHeaders)
	applyHeaders(httpReq.Header, req.Headers)

	startedAt := time.Now()
	httpRes, err := a.Client.Do(httpReq)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = redactURL(target)
		}
		return core.TransportResponse{}, transportWrapError(
			err,
			goerrors.CategoryExternal,
			"transport: execute http request",
			http.StatusBadGateway,
			metadata,
		)
	}
	defer httpRes.Body.Close()

	limit := resolveResponseBodyLimit(req.MaxResponseBodyBytes, a.MaxResponseBodyBytes)
	body, err := readLimited(httpRes.Body, limit)
	if err != nil {
		metadata["status_code"] = httpRes.StatusCode
		metadata["response_limit_b"] = limit
		return core.TransportResponse{}, transportWrapError(
			err,
			goerrors.CategoryExternal,
			"transport: read response body",
			http.StatusBadGateway,
			metadata,
		)
	}

	return core.TransportResponse{
		StatusCode: httpRes.StatusCode,
		Headers:    flattenHeaders(httpRes.Header),
		Body:       body,
		Metadata: map[string]any{
			"duration_ms": time.Since(startedAt).Milliseconds(),
			"kind":        KindREST,
			"url":         redactURL(target),
		},
	}, nil
}

func resolveURL(raw string, query map[string]string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, transportError(
			"transport: request url is required",
			goerrors.CategoryBadInput,
			http.StatusBadRequest,
			map[string]any{"adapter": KindREST},
		)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, transportWrapError(
			err,
			goerrors.CategoryBadInput,
			"transport: invalid request url",
			http.StatusBadRequest,
			map[string]any{"adapter": KindREST},
		)
	}
	values := parsed.Query()
	for key, value := range query {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		values.Set(key, strings.TrimSpace(value))
	}
	parsed.RawQuery = values.Encode()
	return parsed, nil
}

func redactURL(target *url.URL) string {
	if target == nil {
		return ""
	}
	clone := *target
	values := clone.Query()
	for _, key := range redactedQueryKeys {
		if values.Has(key) {
			values.Set(key, "REDACTED")
		}
	}
	clone.RawQuery = values.Encode()
	return clone.String()
}

func applyHeaders(dst http.Header, headers map[string]string) {
	for key, value := range headers {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		dst.Set(key, strings.TrimSpace(value))
	}
}

func readLimited(body io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("transport: response body exceeds limit of %d bytes", limit)
	}
	return data, nil
}

func flattenHeaders(headers http.Header) map[string]string {
	flat := make(map[string]string, len(headers))
	for key, values := range headers {
		flat[key] = strings.Join(values, ",")
	}
	return flat
}

func resolveResponseBodyLimit(requestLimit int64, adapterLimit int64) int64 {
	if requestLimit > 0 {
		return requestLimit
	}
	if adapterLimit > 0 {
		return adapterLimit
	}
	return defaultRESTResponseBodyLimit
}

var _ core.TransportAdapter = (*RESTAdapter)(nil)
