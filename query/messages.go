package query

import (
	"strings"
)

const (
	TypeGetCard   = "trello.query.card.get"
	TypeGetMember = "trello.query.member.get"
	TypeGetBoard  = "trello.query.board.get"
)

type GetCardMessage struct {
	CardID string
}

func (GetCardMessage) Type() string { return TypeGetCard }

func (m GetCardMessage) Validate() error {
	if strings.TrimSpace(m.CardID) == "" {
		return queryValidationError("card_id", "card id is required")
	}
	return nil
}

type GetMemberMessage struct {
	MemberID string
}

func (GetMemberMessage) Type() string { return TypeGetMember }

func (m GetMemberMessage) Validate() error {
	if strings.TrimSpace(m.MemberID) == "" {
		return queryValidationError("member_id", "member id is required")
	}
	return nil
}

type GetBoardMessage struct {
	BoardID string
}

func (GetBoardMessage) Type() string { return TypeGetBoard }

func (m GetBoardMessage) Validate() error {
	if strings.TrimSpace(m.BoardID) == "" {
		return queryValidationError("board_id", "board id is required")
	}
	return nil
}
