package webhooks

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	glog "github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-trello/core"
	"github.com/goliatone/go-trello/events"
)

// EventDispatcher broadcasts an event to the listeners registered for kind.
type EventDispatcher interface {
	Dispatch(ctx context.Context, kind events.Kind, event events.Event) error
}

// Handler is the webhook dispatcher. It never retries and does not wrap
// errors from the resource accessor or from listeners.
type Handler struct {
	resources    core.ResourceAccessor
	dispatcher   EventDispatcher
	source       RequestSource
	logger       core.Logger
	metrics      core.MetricsRecorder
	newID        func() string
	maxBodyBytes int64
}

type HandlerOption func(*Handler)

func WithRequestSource(source RequestSource) HandlerOption {
	return func(h *Handler) {
		h.source = source
	}
}

func WithLogger(logger core.Logger) HandlerOption {
	return func(h *Handler) {
		h.logger = logger
	}
}

func WithMetricsRecorder(recorder core.MetricsRecorder) HandlerOption {
	return func(h *Handler) {
		h.metrics = recorder
	}
}

// WithDispatchIDGenerator overrides the id attached to dispatch log lines.
func WithDispatchIDGenerator(fn func() string) HandlerOption {
	return func(h *Handler) {
		h.newID = fn
	}
}

func WithMaxBodyBytes(limit int64) HandlerOption {
	return func(h *Handler) {
		h.maxBodyBytes = limit
	}
}

func NewHandler(resources core.ResourceAccessor, dispatcher EventDispatcher, opts ...HandlerOption) (*Handler, error) {
	if resources == nil {
		return nil, webhookInternalError("webhooks: resource accessor is required", nil)
	}
	if dispatcher == nil {
		return nil, webhookInternalError("webhooks: event dispatcher is required", nil)
	}
	_, logger := glog.Resolve("trello.webhooks", nil, nil)
	h := &Handler{
		resources:    resources,
		dispatcher:   dispatcher,
		source:       ContextRequestSource{},
		logger:       logger,
		metrics:      core.NopMetricsRecorder{},
		newID:        uuid.NewString,
		maxBodyBytes: core.DefaultWebhookMaxBodyBytes,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(h)
	}
	h.logger = glog.Ensure(h.logger)
	if h.metrics == nil {
		h.metrics = core.NopMetricsRecorder{}
	}
	if h.newID == nil {
		h.newID = uuid.NewString
	}
	if h.maxBodyBytes <= 0 {
		h.maxBodyBytes = core.DefaultWebhookMaxBodyBytes
	}
	return h, nil
}

// Handle interprets req and broadcasts the resulting event. Requests that
// are not webhooks or carry no action return nil without fetching or
// dispatching anything.
func (h *Handler) Handle(ctx context.Context, req core.InboundRequest) error {
	if h == nil || h.resources == nil || h.dispatcher == nil {
		return webhookInternalError("webhooks: handler is not configured", nil)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if !IsWebhook(req) {
		return nil
	}
	action, ok, err := ParseAction(req.Body)
	if err != nil {
		h.log(ctx, "warn", "webhook rejected", map[string]any{"error": err.Error()})
		return err
	}
	if !ok {
		return nil
	}

	dispatchID := h.newID()
	fields := map[string]any{
		"dispatch_id": dispatchID,
		"action_id":   action.ID,
		"action_type": action.Type,
	}
	event, err := h.buildEvent(ctx, action)
	if err != nil {
		fields["error"] = err.Error()
		h.record(ctx, action.Type, "failure")
		h.log(ctx, "error", "webhook event build failed", fields)
		return err
	}
	if err := h.dispatcher.Dispatch(ctx, events.Kind(action.Type), event); err != nil {
		fields["error"] = err.Error()
		h.record(ctx, action.Type, "failure")
		h.log(ctx, "error", "webhook listener failed", fields)
		return err
	}
	h.record(ctx, action.Type, "success")
	h.log(ctx, "info", "webhook dispatched", fields)
	return nil
}

// HandleCurrent handles the request exposed by the configured RequestSource.
func (h *Handler) HandleCurrent(ctx context.Context) error {
	if h == nil {
		return webhookInternalError("webhooks: handler is not configured", nil)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if h.source == nil {
		return webhookInternalError("webhooks: request source is not configured", nil)
	}
	req, ok := h.source.CurrentRequest(ctx)
	if !ok {
		return webhookInternalError("webhooks: no current request available", nil)
	}
	return h.Handle(ctx, req)
}

// HandleHTTP reads r, bounded by the configured body limit, and handles it.
func (h *Handler) HandleHTTP(r *http.Request) error {
	if h == nil {
		return webhookInternalError("webhooks: handler is not configured", nil)
	}
	req, err := RequestFromHTTP(r, h.maxBodyBytes)
	if err != nil {
		return err
	}
	return h.Handle(r.Context(), req)
}

func (h *Handler) buildEvent(ctx context.Context, action Action) (events.Event, error) {
	kind := events.Kind(action.Type)
	switch kind {
	case events.KindCardUpdate:
		cardID, err := action.requireString("card.id")
		if err != nil {
			return nil, err
		}
		card, err := h.resources.GetCard(ctx, cardID)
		if err != nil {
			return nil, err
		}
		event := events.NewCardEvent(card)
		event.SetRequestData(action.Data)
		return event, nil
	case events.KindCardAddMember:
		cardID, err := action.requireString("card.id")
		if err != nil {
			return nil, err
		}
		memberID, err := action.requireString("idMember")
		if err != nil {
			return nil, err
		}
		card, err := h.resources.GetCard(ctx, cardID)
		if err != nil {
			return nil, err
		}
		member, err := h.resources.GetMember(ctx, memberID)
		if err != nil {
			return nil, err
		}
		event := events.NewCardMemberEvent(card, member)
		event.SetRequestData(action.Data)
		return event, nil
	default:
		return events.Unrecognized{Type: kind}, nil
	}
}

func (h *Handler) record(ctx context.Context, actionType string, status string) {
	h.metrics.IncCounter(ctx, "trello.webhook.dispatch.total", 1, map[string]string{
		"action_type": actionType,
		"status":      status,
	})
}

func (h *Handler) log(ctx context.Context, level string, message string, fields map[string]any) {
	core.LogWithFields(ctx, h.logger, level, message, fields)
}
