package query

import (
	"context"
	"strings"

	"github.com/goliatone/go-trello/core"
)

type GetCardQuery struct {
	fetcher core.CardFetcher
}

func NewGetCardQuery(fetcher core.CardFetcher) *GetCardQuery {
	return &GetCardQuery{fetcher: fetcher}
}

func (q *GetCardQuery) Query(ctx context.Context, msg GetCardMessage) (core.Card, error) {
	if q == nil || q.fetcher == nil {
		return core.Card{}, queryDependencyError("query: card fetcher is required")
	}
	if err := msg.Validate(); err != nil {
		return core.Card{}, err
	}
	return q.fetcher.GetCard(ctx, strings.TrimSpace(msg.CardID))
}

type GetMemberQuery struct {
	fetcher core.MemberFetcher
}

func NewGetMemberQuery(fetcher core.MemberFetcher) *GetMemberQuery {
	return &GetMemberQuery{fetcher: fetcher}
}

func (q *GetMemberQuery) Query(ctx context.Context, msg GetMemberMessage) (core.Member, error) {
	if q == nil || q.fetcher == nil {
		return core.Member{}, queryDependencyError("query: member fetcher is required")
	}
	if err := msg.Validate(); err != nil {
		return core.Member{}, err
	}
	return q.fetcher.GetMember(ctx, strings.TrimSpace(msg.MemberID))
}

type GetBoardQuery struct {
	fetcher core.BoardFetcher
}

func NewGetBoardQuery(fetcher core.BoardFetcher) *GetBoardQuery {
	return &GetBoardQuery{fetcher: fetcher}
}

func (q *GetBoardQuery) Query(ctx context.Context, msg GetBoardMessage) (core.Board, error) {
	if q == nil || q.fetcher == nil {
		return core.Board{}, queryDependencyError("query: board fetcher is required")
	}
	if err := msg.Validate(); err != nil {
		return core.Board{}, err
	}
	return q.fetcher.GetBoard(ctx, strings.TrimSpace(msg.BoardID))
}

// Queries groups the read-side handlers backed by a single resource client.
type Queries struct {
	Card   *GetCardQuery
	Member *GetMemberQuery
	Board  *GetBoardQuery
}

type ResourceReader interface {
	core.CardFetcher
	core.MemberFetcher
	core.BoardFetcher
}

func NewQueries(reader ResourceReader) Queries {
	return Queries{
		Card:   NewGetCardQuery(reader),
		Member: NewGetMemberQuery(reader),
		Board:  NewGetBoardQuery(reader),
	}
}
