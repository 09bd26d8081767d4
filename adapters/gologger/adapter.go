package gologger

import (
	glog "github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-trello/core"
	"github.com/goliatone/go-trello/webhooks"
)

const (
	ServiceLoggerName = "trello"
	WebhookLoggerName = "trello.webhooks"
)

// Resolve uses deterministic precedence provider > logger > nop.
func Resolve(name string, provider glog.LoggerProvider, logger glog.Logger) (glog.LoggerProvider, glog.Logger) {
	return glog.Resolve(name, provider, logger)
}

// ServiceOptions binds the resolved provider and logger to core.NewService.
func ServiceOptions(provider glog.LoggerProvider, logger glog.Logger) []core.Option {
	resolvedProvider, resolvedLogger := Resolve(ServiceLoggerName, provider, logger)
	return []core.Option{
		core.WithLoggerProvider(resolvedProvider),
		core.WithLogger(resolvedLogger),
	}
}

// HandlerOption gives the webhook handler its own named logger from the
// same provider.
func HandlerOption(provider glog.LoggerProvider, logger glog.Logger) webhooks.HandlerOption {
	_, resolvedLogger := Resolve(WebhookLoggerName, provider, logger)
	return webhooks.WithLogger(resolvedLogger)
}
