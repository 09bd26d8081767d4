package gocommand

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-command"
	"github.com/goliatone/go-trello/core"
	"github.com/goliatone/go-trello/events"
	"github.com/goliatone/go-trello/query"
)

type okMessage struct{}

func (okMessage) Type() string { return "trello.command.ok" }

type invalidMessage struct{}

func (invalidMessage) Type() string { return "" }

type failingMessage struct{}

func (failingMessage) Type() string { return "trello.command.fail" }

func (failingMessage) Validate() error { return errors.New("invalid payload") }

type cardMovedMessage struct {
	CardID string
	ListID string
}

func (cardMovedMessage) Type() string { return "trello.command.card_moved" }

type fakeReader struct{}

func (fakeReader) GetCard(_ context.Context, id string) (core.Card, error) {
	return core.Card{ID: id, Name: "Write docs"}, nil
}

func (fakeReader) GetMember(_ context.Context, id string) (core.Member, error) {
	return core.Member{ID: id, Username: "ada"}, nil
}

func (fakeReader) GetBoard(_ context.Context, id string) (core.Board, error) {
	return core.Board{ID: id, Name: "Roadmap"}, nil
}

func TestValidateMessageContract(t *testing.T) {
	if err := ValidateMessageContract(okMessage{}); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}
	if err := ValidateMessageContract(invalidMessage{}); err == nil {
		t.Fatalf("expected empty type to fail contract validation")
	}
	if err := ValidateMessageContract(failingMessage{}); err == nil {
		t.Fatalf("expected Validate() failure to bubble")
	}
}

func TestRegisterResourceQueries_ResolvesThroughDispatcher(t *testing.T) {
	adapter := NewRegistryAdapter(command.NewRegistry())
	subscriptions, err := RegisterResourceQueries(adapter, query.NewQueries(fakeReader{}))
	if err != nil {
		t.Fatalf("register resource queries: %v", err)
	}
	defer func() {
		for _, sub := range subscriptions {
			sub.Unsubscribe()
		}
	}()
	if len(subscriptions) != 3 {
		t.Fatalf("expected three subscriptions, got %d", len(subscriptions))
	}
	if err := adapter.Initialize(); err != nil {
		t.Fatalf("initialize registry: %v", err)
	}

	card, err := Query[query.GetCardMessage, core.Card](context.Background(), query.GetCardMessage{CardID: "C1"})
	if err != nil {
		t.Fatalf("query card: %v", err)
	}
	if card.ID != "C1" {
		t.Fatalf("unexpected card: %#v", card)
	}

	board, err := Query[query.GetBoardMessage, core.Board](context.Background(), query.GetBoardMessage{BoardID: "B1"})
	if err != nil {
		t.Fatalf("query board: %v", err)
	}
	if board.Name != "Roadmap" {
		t.Fatalf("unexpected board: %#v", board)
	}
}

func TestRegisterResourceQueries_RequiresQueries(t *testing.T) {
	if _, err := RegisterResourceQueries(NewRegistryAdapter(nil), query.Queries{}); err == nil {
		t.Fatalf("expected error for empty queries")
	}
}

func TestCommandListener_DispatchesBuiltCommand(t *testing.T) {
	received := []cardMovedMessage{}
	subscription := SubscribeCommand[cardMovedMessage](command.CommandFunc[cardMovedMessage](
		func(_ context.Context, msg cardMovedMessage) error {
			received = append(received, msg)
			return nil
		},
	))
	defer subscription.Unsubscribe()

	listener := CommandListener(func(event events.Event) (cardMovedMessage, bool) {
		cardEvent, ok := event.(*events.CardEvent)
		if !ok {
			return cardMovedMessage{}, false
		}
		listAfter, _ := cardEvent.RequestData()["listAfter"].(map[string]any)
		listID, _ := listAfter["id"].(string)
		return cardMovedMessage{CardID: cardEvent.Card.ID, ListID: listID}, listID != ""
	})

	dispatcher := events.NewDispatcher()
	if err := dispatcher.AddListener(events.KindCardUpdate, listener, 0); err != nil {
		t.Fatalf("add listener: %v", err)
	}

	moved := events.NewCardEvent(core.Card{ID: "C1"})
	moved.SetRequestData(map[string]any{"listAfter": map[string]any{"id": "L2"}})
	if err := dispatcher.Dispatch(context.Background(), events.KindCardUpdate, moved); err != nil {
		t.Fatalf("dispatch moved card: %v", err)
	}

	renamed := events.NewCardEvent(core.Card{ID: "C2"})
	renamed.SetRequestData(map[string]any{"old": map[string]any{"name": "Docs"}})
	if err := dispatcher.Dispatch(context.Background(), events.KindCardUpdate, renamed); err != nil {
		t.Fatalf("dispatch renamed card: %v", err)
	}

	if len(received) != 1 || received[0].CardID != "C1" || received[0].ListID != "L2" {
		t.Fatalf("unexpected commands: %#v", received)
	}
}
