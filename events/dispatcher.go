package events

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-trello/core"
)

// ErrStopPropagation may be returned by a listener to skip the listeners
// after it. Dispatch then returns nil.
var ErrStopPropagation = errors.New("events: stop propagation")

type Listener func(ctx context.Context, event Event) error

type Subscription struct {
	Listener Listener
	Priority int
}

// Subscriber declares a static set of listener registrations.
type Subscriber interface {
	SubscribedEvents() map[Kind][]Subscription
}

type listenerEntry struct {
	listener Listener
	priority int
	seq      uint64
}

// Dispatcher is the listener registry. Higher priorities run first; equal
// priorities run in registration order.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners map[Kind][]listenerEntry
	seq       uint64
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: map[Kind][]listenerEntry{}}
}

func (d *Dispatcher) AddListener(kind Kind, listener Listener, priority int) error {
	if d == nil {
		return dispatcherError("events: dispatcher is nil", goerrors.CategoryInternal, nil)
	}
	if strings.TrimSpace(string(kind)) == "" {
		return dispatcherError("events: event kind is required", goerrors.CategoryBadInput, nil)
	}
	if listener == nil {
		return dispatcherError("events: listener is nil", goerrors.CategoryBadInput, map[string]any{"kind": string(kind)})
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.listeners == nil {
		d.listeners = map[Kind][]listenerEntry{}
	}
	d.seq++
	entries := append(d.listeners[kind], listenerEntry{listener: listener, priority: priority, seq: d.seq})
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].seq < entries[j].seq
	})
	d.listeners[kind] = entries
	return nil
}

// AddSubscriber registers every subscription the subscriber declares. Kinds
// are applied in sorted order so registration sequence is deterministic.
func (d *Dispatcher) AddSubscriber(subscriber Subscriber) error {
	if subscriber == nil {
		return dispatcherError("events: subscriber is nil", goerrors.CategoryBadInput, nil)
	}
	subscribed := subscriber.SubscribedEvents()
	kinds := make([]Kind, 0, len(subscribed))
	for kind := range subscribed {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	for _, kind := range kinds {
		for _, sub := range subscribed[kind] {
			if err := d.AddListener(kind, sub.Listener, sub.Priority); err != nil {
				return err
			}
		}
	}
	return nil
}

// Dispatch calls the listeners for kind in order. The first listener error
// aborts the dispatch and is returned unchanged.
func (d *Dispatcher) Dispatch(ctx context.Context, kind Kind, event Event) error {
	if d == nil {
		return dispatcherError("events: dispatcher is nil", goerrors.CategoryInternal, nil)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	for _, listener := range d.Listeners(kind) {
		if err := listener(ctx, event); err != nil {
			if errors.Is(err, ErrStopPropagation) {
				return nil
			}
			return err
		}
	}
	return nil
}

// Listeners returns a snapshot of the listeners for kind in call order.
func (d *Dispatcher) Listeners(kind Kind) []Listener {
	if d == nil {
		return nil
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	entries := d.listeners[kind]
	out := make([]Listener, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.listener)
	}
	return out
}

func (d *Dispatcher) HasListeners(kind Kind) bool {
	if d == nil {
		return false
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners[kind]) > 0
}

func dispatcherError(message string, category goerrors.Category, metadata map[string]any) error {
	return core.NewError(message, category, "", metadata)
}

// ListenerFunc adapts a typed handler into a Listener. Events of another
// variant are ignored.
func ListenerFunc[T Event](fn func(ctx context.Context, event T) error) Listener {
	return func(ctx context.Context, event Event) error {
		typed, ok := event.(T)
		if !ok {
			return nil
		}
		return fn(ctx, typed)
	}
}
