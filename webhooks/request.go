package webhooks

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goliatone/go-trello/core"
)

// RequestSource exposes the inbound request of the host environment.
type RequestSource interface {
	CurrentRequest(ctx context.Context) (core.InboundRequest, bool)
}

type requestContextKey struct{}

// WithRequest stores req on ctx for ContextRequestSource.
func WithRequest(ctx context.Context, req core.InboundRequest) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestContextKey{}, req)
}

func RequestFromContext(ctx context.Context) (core.InboundRequest, bool) {
	if ctx == nil {
		return core.InboundRequest{}, false
	}
	req, ok := ctx.Value(requestContextKey{}).(core.InboundRequest)
	return req, ok
}

// ContextRequestSource reads the request stored by WithRequest.
type ContextRequestSource struct{}

func (ContextRequestSource) CurrentRequest(ctx context.Context) (core.InboundRequest, bool) {
	return RequestFromContext(ctx)
}

// RequestFromHTTP snapshots r into an InboundRequest. Bodies larger than
// maxBodyBytes are rejected.
func RequestFromHTTP(r *http.Request, maxBodyBytes int64) (core.InboundRequest, error) {
	if r == nil {
		return core.InboundRequest{}, webhookInternalError("webhooks: http request is nil", nil)
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = core.DefaultWebhookMaxBodyBytes
	}

	var body []byte
	if r.Body != nil {
		data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
		if err != nil {
			return core.InboundRequest{}, invalidPayloadError(
				fmt.Sprintf("webhooks: read request body: %v", err),
				http.StatusBadRequest,
				nil,
			)
		}
		if int64(len(data)) > maxBodyBytes {
			return core.InboundRequest{}, invalidPayloadError(
				fmt.Sprintf("webhooks: request body exceeds limit of %d bytes", maxBodyBytes),
				http.StatusRequestEntityTooLarge,
				map[string]any{"limit_b": maxBodyBytes},
			)
		}
		body = data
	}

	headers := make(map[string]string, len(r.Header))
	for key, values := range r.Header {
		headers[key] = strings.Join(values, ",")
	}
	query := map[string]string{}
	if r.URL != nil {
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				query[key] = values[0]
			}
		}
	}
	metadata := map[string]any{"remote_addr": r.RemoteAddr}
	if r.URL != nil {
		metadata["path"] = r.URL.Path
	}

	return core.InboundRequest{
		Method:   r.Method,
		Headers:  headers,
		Query:    query,
		Body:     body,
		Metadata: metadata,
	}, nil
}
