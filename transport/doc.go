// Package transport provides the HTTP adapter the resource accessor uses to
// reach the Trello REST API.
package transport
