package query

import (
	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-trello/core"
)

var (
	_ gocmd.Querier[GetCardMessage, core.Card]     = (*GetCardQuery)(nil)
	_ gocmd.Querier[GetMemberMessage, core.Member] = (*GetMemberQuery)(nil)
	_ gocmd.Querier[GetBoardMessage, core.Board]   = (*GetBoardQuery)(nil)
)
