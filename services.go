package trello

import (
	"github.com/goliatone/go-trello/core"
	"github.com/goliatone/go-trello/events"
	"github.com/goliatone/go-trello/webhooks"
)

type Config = core.Config
type Option = core.Option
type Service = core.Service

type Card = core.Card
type Member = core.Member
type Board = core.Board
type Label = core.Label

type InboundRequest = core.InboundRequest

type Event = events.Event
type Kind = events.Kind
type Listener = events.Listener
type Subscriber = events.Subscriber
type Subscription = events.Subscription
type CardEvent = events.CardEvent
type CardMemberEvent = events.CardMemberEvent

const (
	KindCardUpdate    = events.KindCardUpdate
	KindCardAddMember = events.KindCardAddMember
)

var (
	DefaultConfig       = core.DefaultConfig
	NewService          = core.NewService
	WithLogger          = core.WithLogger
	WithLoggerProvider  = core.WithLoggerProvider
	WithMetricsRecorder = core.WithMetricsRecorder
	WithConfigProvider  = core.WithConfigProvider
	WithTransport       = core.WithTransport

	ErrStopPropagation = events.ErrStopPropagation

	IsWebhook          = webhooks.IsWebhook
	IsInvalidEventType = webhooks.IsInvalidEventType
	IsInvalidEventData = webhooks.IsInvalidEventData
)
