package events

import "github.com/goliatone/go-trello/core"

// Kind names an event; it matches the Trello action type verbatim.
type Kind string

const (
	KindCardUpdate    Kind = "updateCard"
	KindCardAddMember Kind = "addMemberToCard"
)

// Kinds lists the action types that produce a typed event.
func Kinds() []Kind {
	return []Kind{KindCardUpdate, KindCardAddMember}
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) Typed() bool {
	switch k {
	case KindCardUpdate, KindCardAddMember:
		return true
	default:
		return false
	}
}

// Event is a closed set: CardEvent, CardMemberEvent and Unrecognized.
type Event interface {
	Kind() Kind
	// RequestData returns the raw action data the event was built from.
	RequestData() map[string]any
	isEvent()
}

type requestData struct {
	data map[string]any
}

func (r *requestData) RequestData() map[string]any {
	if r == nil {
		return nil
	}
	return r.data
}

func (r *requestData) SetRequestData(data map[string]any) {
	r.data = data
}

type CardEvent struct {
	requestData
	Card core.Card
}

func NewCardEvent(card core.Card) *CardEvent {
	return &CardEvent{Card: card}
}

func (*CardEvent) Kind() Kind { return KindCardUpdate }

func (*CardEvent) isEvent() {}

type CardMemberEvent struct {
	requestData
	Card   core.Card
	Member core.Member
}

func NewCardMemberEvent(card core.Card, member core.Member) *CardMemberEvent {
	return &CardMemberEvent{Card: card, Member: member}
}

func (*CardMemberEvent) Kind() Kind { return KindCardAddMember }

func (*CardMemberEvent) isEvent() {}

// Unrecognized is dispatched for action types without a typed event. It
// carries no typed fields and no request data.
type Unrecognized struct {
	Type Kind
}

func (u Unrecognized) Kind() Kind { return u.Type }

func (Unrecognized) RequestData() map[string]any { return nil }

func (Unrecognized) isEvent() {}

var (
	_ Event = (*CardEvent)(nil)
	_ Event = (*CardMemberEvent)(nil)
	_ Event = Unrecognized{}
)
