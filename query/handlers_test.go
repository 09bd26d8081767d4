package query

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-trello/core"
)

type stubReader struct {
	cardFn   func(ctx context.Context, id string) (core.Card, error)
	memberFn func(ctx context.Context, id string) (core.Member, error)
	boardFn  func(ctx context.Context, id string) (core.Board, error)
}

func (s stubReader) GetCard(ctx context.Context, id string) (core.Card, error) {
	return s.cardFn(ctx, id)
}

func (s stubReader) GetMember(ctx context.Context, id string) (core.Member, error) {
	return s.memberFn(ctx, id)
}

func (s stubReader) GetBoard(ctx context.Context, id string) (core.Board, error) {
	return s.boardFn(ctx, id)
}

func TestGetCardQuery_QueryDelegates(t *testing.T) {
	called := false
	reader := stubReader{
		cardFn: func(_ context.Context, id string) (core.Card, error) {
			called = true
			if id != "C1" {
				t.Fatalf("unexpected card id %q", id)
			}
			return core.Card{ID: "C1", Name: "Write docs"}, nil
		},
	}

	card, err := NewQueries(reader).Card.Query(context.Background(), GetCardMessage{CardID: " C1 "})
	if err != nil {
		t.Fatalf("query card: %v", err)
	}
	if !called {
		t.Fatalf("expected card fetcher invocation")
	}
	if card.Name != "Write docs" {
		t.Fatalf("unexpected card: %#v", card)
	}
}

func TestGetMemberQuery_QueryDelegates(t *testing.T) {
	reader := stubReader{
		memberFn: func(_ context.Context, id string) (core.Member, error) {
			return core.Member{ID: id, Username: "ada"}, nil
		},
	}

	member, err := NewGetMemberQuery(reader).Query(context.Background(), GetMemberMessage{MemberID: "M1"})
	if err != nil {
		t.Fatalf("query member: %v", err)
	}
	if member.ID != "M1" || member.Username != "ada" {
		t.Fatalf("unexpected member: %#v", member)
	}
}

func TestGetBoardQuery_PropagatesFetchError(t *testing.T) {
	fetchErr := errors.New("board fetch failed")
	reader := stubReader{
		boardFn: func(context.Context, string) (core.Board, error) {
			return core.Board{}, fetchErr
		},
	}

	_, err := NewGetBoardQuery(reader).Query(context.Background(), GetBoardMessage{BoardID: "B1"})
	if !errors.Is(err, fetchErr) {
		t.Fatalf("expected fetch error, got %v", err)
	}
}

func TestQueries_ValidateBeforeFetch(t *testing.T) {
	reader := stubReader{
		cardFn: func(context.Context, string) (core.Card, error) {
			t.Fatalf("card fetcher must not be called")
			return core.Card{}, nil
		},
		memberFn: func(context.Context, string) (core.Member, error) {
			t.Fatalf("member fetcher must not be called")
			return core.Member{}, nil
		},
		boardFn: func(context.Context, string) (core.Board, error) {
			t.Fatalf("board fetcher must not be called")
			return core.Board{}, nil
		},
	}
	queries := NewQueries(reader)

	if _, err := queries.Card.Query(context.Background(), GetCardMessage{}); err == nil {
		t.Fatalf("expected card validation error")
	}
	if _, err := queries.Member.Query(context.Background(), GetMemberMessage{MemberID: "  "}); err == nil {
		t.Fatalf("expected member validation error")
	}
	if _, err := queries.Board.Query(context.Background(), GetBoardMessage{}); err == nil {
		t.Fatalf("expected board validation error")
	}
}

func TestMessageTypes(t *testing.T) {
	if (GetCardMessage{}).Type() != TypeGetCard {
		t.Fatalf("unexpected card message type")
	}
	if (GetMemberMessage{}).Type() != TypeGetMember {
		t.Fatalf("unexpected member message type")
	}
	if (GetBoardMessage{}).Type() != TypeGetBoard {
		t.Fatalf("unexpected board message type")
	}
}
