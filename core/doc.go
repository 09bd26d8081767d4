// Package core contains the Trello domain entities, the contracts shared by
// the webhook and transport packages, and the REST-backed resource accessor.
// Lower-level adapters depend on this package; core must not depend on
// transport-specific or host-framework adapters.
package core
