package gocommand

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-command"
	commanddispatcher "github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
	"github.com/goliatone/go-trello/events"
	"github.com/goliatone/go-trello/query"
)

// ValidateMessageContract enforces Type() plus optional Validate() contract.
func ValidateMessageContract(msg any) error {
	if err := command.ValidateMessage(msg); err != nil {
		return err
	}
	m, ok := msg.(command.Message)
	if !ok {
		return fmt.Errorf("gocommand: message must implement Type() string")
	}
	if strings.TrimSpace(m.Type()) == "" {
		return fmt.Errorf("gocommand: message type is required")
	}
	return nil
}

type RegistryAdapter struct {
	registry *command.Registry
}

func NewRegistryAdapter(registry *command.Registry) *RegistryAdapter {
	if registry == nil {
		registry = command.NewRegistry()
	}
	return &RegistryAdapter{registry: registry}
}

func (a *RegistryAdapter) Registry() *command.Registry {
	if a == nil {
		return nil
	}
	return a.registry
}

func (a *RegistryAdapter) RegisterCommand(cmd any) error {
	if a == nil || a.registry == nil {
		return fmt.Errorf("gocommand: registry is not configured")
	}
	return a.registry.RegisterCommand(cmd)
}

func (a *RegistryAdapter) RegisterQuery(qry any) error {
	if a == nil || a.registry == nil {
		return fmt.Errorf("gocommand: registry is not configured")
	}
	return a.registry.RegisterCommand(qry)
}

func (a *RegistryAdapter) Initialize() error {
	if a == nil || a.registry == nil {
		return fmt.Errorf("gocommand: registry is not configured")
	}
	return a.registry.Initialize()
}

func SubscribeCommand[T any](cmd command.Commander[T], runnerOpts ...runner.Option) commanddispatcher.Subscription {
	return commanddispatcher.SubscribeCommand(cmd, runnerOpts...)
}

func SubscribeQuery[T any, R any](qry command.Querier[T, R], runnerOpts ...runner.Option) commanddispatcher.Subscription {
	return commanddispatcher.SubscribeQuery(qry, runnerOpts...)
}

func Dispatch[T any](ctx context.Context, msg T) error {
	return commanddispatcher.Dispatch(ctx, msg)
}

func Query[T any, R any](ctx context.Context, msg T) (R, error) {
	return commanddispatcher.Query[T, R](ctx, msg)
}

func RegisterAndSubscribeQuery[T any, R any](
	adapter *RegistryAdapter,
	qry command.Querier[T, R],
	runnerOpts ...runner.Option,
) (commanddispatcher.Subscription, error) {
	if adapter == nil || adapter.registry == nil {
		return nil, fmt.Errorf("gocommand: registry is not configured")
	}
	if qry == nil {
		return nil, fmt.Errorf("gocommand: query is required")
	}
	subscription := SubscribeQuery(qry, runnerOpts...)
	if err := adapter.RegisterQuery(qry); err != nil {
		if subscription != nil {
			subscription.Unsubscribe()
		}
		return nil, err
	}
	return subscription, nil
}

// RegisterResourceQueries subscribes the card, member and board queries so
// Query[GetCardMessage, core.Card] and friends resolve through go-command.
// On failure, subscriptions made so far are removed.
func RegisterResourceQueries(
	adapter *RegistryAdapter,
	queries query.Queries,
	runnerOpts ...runner.Option,
) ([]commanddispatcher.Subscription, error) {
	if queries.Card == nil || queries.Member == nil || queries.Board == nil {
		return nil, fmt.Errorf("gocommand: resource queries are required")
	}
	subscriptions := make([]commanddispatcher.Subscription, 0, 3)
	rollback := func() {
		for _, sub := range subscriptions {
			sub.Unsubscribe()
		}
	}

	sub, err := RegisterAndSubscribeQuery(adapter, queries.Card, runnerOpts...)
	if err != nil {
		rollback()
		return nil, err
	}
	subscriptions = append(subscriptions, sub)

	sub, err = RegisterAndSubscribeQuery(adapter, queries.Member, runnerOpts...)
	if err != nil {
		rollback()
		return nil, err
	}
	subscriptions = append(subscriptions, sub)

	sub, err = RegisterAndSubscribeQuery(adapter, queries.Board, runnerOpts...)
	if err != nil {
		rollback()
		return nil, err
	}
	return append(subscriptions, sub), nil
}

// CommandListener returns an event listener that turns each event into a
// command message and dispatches it. Events for which build reports false are
// skipped.
func CommandListener[T any](build func(events.Event) (T, bool)) events.Listener {
	return func(ctx context.Context, event events.Event) error {
		if build == nil {
			return fmt.Errorf("gocommand: command builder is required")
		}
		msg, ok := build(event)
		if !ok {
			return nil
		}
		return Dispatch(ctx, msg)
	}
}
