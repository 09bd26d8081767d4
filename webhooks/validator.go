package webhooks

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-trello/core"
)

// HeaderWebhook is set by Trello on every webhook delivery.
const HeaderWebhook = "X-Trello-Webhook"

// IsWebhook reports whether req is a Trello webhook call: the method is
// exactly POST and the X-Trello-Webhook header is present. The header value
// is not inspected.
func IsWebhook(req core.InboundRequest) bool {
	if req.Method != http.MethodPost {
		return false
	}
	return hasHeader(req.Headers, HeaderWebhook)
}

func hasHeader(headers map[string]string, key string) bool {
	key = strings.TrimSpace(key)
	for existing := range headers {
		if strings.EqualFold(strings.TrimSpace(existing), key) {
			return true
		}
	}
	return false
}
