// Package events defines the typed events produced from Trello webhook
// actions and the priority-ordered listener registry that broadcasts them.
//
// Listeners run synchronously on the caller's goroutine. Registration is
// expected to happen during setup; dispatch only reads the registry.
package events
