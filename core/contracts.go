package core

import (
	"context"
	"time"

	glog "github.com/goliatone/go-logger/glog"
)

type CardFetcher interface {
	GetCard(ctx context.Context, id string) (Card, error)
}

type MemberFetcher interface {
	GetMember(ctx context.Context, id string) (Member, error)
}

type BoardFetcher interface {
	GetBoard(ctx context.Context, id string) (Board, error)
}

// ResourceAccessor is the narrow contract the webhook dispatcher depends on.
type ResourceAccessor interface {
	CardFetcher
	MemberFetcher
}

type TransportRequest struct {
	Method               string
	URL                  string
	Headers              map[string]string
	Query                map[string]string
	Body                 []byte
	Metadata             map[string]any
	Timeout              time.Duration
	MaxResponseBodyBytes int64
}

type TransportResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Metadata   map[string]any
}

type TransportAdapter interface {
	Kind() string
	Do(ctx context.Context, req TransportRequest) (TransportResponse, error)
}

type InboundRequest struct {
	Method   string
	Headers  map[string]string
	Query    map[string]string
	Body     []byte
	Metadata map[string]any
}

type MetricsRecorder interface {
	IncCounter(ctx context.Context, name string, value int64, tags map[string]string)
	ObserveHistogram(ctx context.Context, name string, value float64, tags map[string]string)
}

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger
