// Package webhooks turns inbound Trello webhook requests into typed events.
//
// A request flows validator -> action parsing -> event construction (which
// may fetch cards and members) -> broadcast to the event dispatcher. Requests
// that are not webhooks, or that carry no action, are ignored without error.
package webhooks
