package trello

import (
	"context"
	"net/http"

	"github.com/goliatone/go-trello/core"
	"github.com/goliatone/go-trello/events"
	"github.com/goliatone/go-trello/query"
	"github.com/goliatone/go-trello/transport"
	"github.com/goliatone/go-trello/webhooks"
)

// Facade wires the resource accessor, the listener registry and the webhook
// handler around a single configuration.
type Facade struct {
	service    *core.Service
	dispatcher *events.Dispatcher
	webhooks   *webhooks.Handler
	queries    query.Queries
}

type FacadeOption func(*facadeOptions)

type facadeOptions struct {
	httpClient     transport.HTTPDoer
	dispatcher     *events.Dispatcher
	serviceOptions []core.Option
	handlerOptions []webhooks.HandlerOption
}

// WithHTTPClient sets the client behind the default REST transport.
func WithHTTPClient(client transport.HTTPDoer) FacadeOption {
	return func(options *facadeOptions) {
		options.httpClient = client
	}
}

// WithDispatcher shares an existing listener registry.
func WithDispatcher(dispatcher *events.Dispatcher) FacadeOption {
	return func(options *facadeOptions) {
		options.dispatcher = dispatcher
	}
}

func WithServiceOptions(opts ...core.Option) FacadeOption {
	return func(options *facadeOptions) {
		options.serviceOptions = append(options.serviceOptions, opts...)
	}
}

func WithHandlerOptions(opts ...webhooks.HandlerOption) FacadeOption {
	return func(options *facadeOptions) {
		options.handlerOptions = append(options.handlerOptions, opts...)
	}
}

// New builds every collaborator with defaults. Service options run after the
// default REST transport, so core.WithTransport replaces it.
func New(cfg core.Config, opts ...FacadeOption) (*Facade, error) {
	options := facadeOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&options)
	}

	serviceOptions := append([]core.Option{
		core.WithTransport(transport.NewRESTAdapter(options.httpClient)),
	}, options.serviceOptions...)
	service, err := core.NewService(cfg, serviceOptions...)
	if err != nil {
		return nil, err
	}

	dispatcher := options.dispatcher
	if dispatcher == nil {
		dispatcher = events.NewDispatcher()
	}

	handlerOptions := []webhooks.HandlerOption{
		webhooks.WithMetricsRecorder(service.MetricsRecorder()),
		webhooks.WithMaxBodyBytes(service.Config().Webhook.MaxBodyBytes),
	}
	if provider := service.LoggerProvider(); provider != nil {
		handlerOptions = append(handlerOptions, webhooks.WithLogger(provider.GetLogger("trello.webhooks")))
	}
	handler, err := webhooks.NewHandler(service, dispatcher, append(handlerOptions, options.handlerOptions...)...)
	if err != nil {
		return nil, err
	}

	return &Facade{
		service:    service,
		dispatcher: dispatcher,
		webhooks:   handler,
		queries:    query.NewQueries(service),
	}, nil
}

// NewFromEnv is New with configuration read from TRELLO_* variables.
func NewFromEnv(opts ...FacadeOption) (*Facade, error) {
	envProvider := core.WithConfigProvider(core.NewCfgxConfigProvider(core.NewEnvConfigLoader()))
	return New(core.Config{}, append([]FacadeOption{WithServiceOptions(envProvider)}, opts...)...)
}

func (f *Facade) Service() *core.Service {
	if f == nil {
		return nil
	}
	return f.service
}

func (f *Facade) Dispatcher() *events.Dispatcher {
	if f == nil {
		return nil
	}
	return f.dispatcher
}

func (f *Facade) Webhooks() *webhooks.Handler {
	if f == nil {
		return nil
	}
	return f.webhooks
}

func (f *Facade) Queries() query.Queries {
	if f == nil {
		return query.Queries{}
	}
	return f.queries
}

func (f *Facade) AddListener(kind events.Kind, listener events.Listener, priority int) error {
	return f.Dispatcher().AddListener(kind, listener, priority)
}

func (f *Facade) AddSubscriber(subscriber events.Subscriber) error {
	return f.Dispatcher().AddSubscriber(subscriber)
}

func (f *Facade) Handle(ctx context.Context, req core.InboundRequest) error {
	return f.Webhooks().Handle(ctx, req)
}

func (f *Facade) HandleCurrent(ctx context.Context) error {
	return f.Webhooks().HandleCurrent(ctx)
}

func (f *Facade) HTTPHandler() http.Handler {
	return webhooks.NewHTTPHandler(f.Webhooks())
}
