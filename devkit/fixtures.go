package devkit

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/goliatone/go-trello/core"
	"github.com/goliatone/go-trello/webhooks"
)

// JSONResponse scripts a response whose body is value encoded as JSON.
func JSONResponse(status int, value any) TransportScript {
	body, err := json.Marshal(value)
	if err != nil {
		return TransportScript{Err: err}
	}
	return TransportScript{Response: core.TransportResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}}
}

func CardResponse(card core.Card) TransportScript {
	return JSONResponse(http.StatusOK, card)
}

func MemberResponse(member core.Member) TransportScript {
	return JSONResponse(http.StatusOK, member)
}

func BoardResponse(board core.Board) TransportScript {
	return JSONResponse(http.StatusOK, board)
}

func StatusResponse(status int, body string) TransportScript {
	return TransportScript{Response: core.TransportResponse{
		StatusCode: status,
		Headers:    map[string]string{},
		Body:       []byte(body),
	}}
}

// WebhookBody encodes a delivery payload carrying a single action. It panics
// when data cannot be encoded as JSON.
func WebhookBody(actionType string, data map[string]any) []byte {
	payload := map[string]any{
		"action": map[string]any{
			"id":   "fixture-action",
			"type": actionType,
			"data": data,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		panic(fmt.Sprintf("devkit: encode webhook body: %v", err))
	}
	return body
}

// WebhookRequest builds an inbound POST that passes the webhook check.
func WebhookRequest(body []byte) core.InboundRequest {
	return core.InboundRequest{
		Method:   http.MethodPost,
		Headers:  map[string]string{webhooks.HeaderWebhook: "fixture"},
		Query:    map[string]string{},
		Body:     append([]byte(nil), body...),
		Metadata: map[string]any{},
	}
}

func UpdateCardRequest(cardID string) core.InboundRequest {
	return WebhookRequest(WebhookBody("updateCard", map[string]any{
		"card": map[string]any{"id": cardID},
	}))
}

func AddMemberToCardRequest(cardID string, memberID string) core.InboundRequest {
	return WebhookRequest(WebhookBody("addMemberToCard", map[string]any{
		"card":     map[string]any{"id": cardID},
		"idMember": memberID,
	}))
}
