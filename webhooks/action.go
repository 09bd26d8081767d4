package webhooks

import (
	"bytes"
	"strings"

	"github.com/tidwall/gjson"
)

// Action is the webhook payload's description of what changed.
type Action struct {
	ID              string
	Type            string
	Date            string
	IDMemberCreator string
	Data            map[string]any

	data gjson.Result
}

// ParseAction extracts the top-level action from a webhook body. ok is false
// when the body carries no action at all; that is not an error.
func ParseAction(body []byte) (action Action, ok bool, err error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Action{}, false, nil
	}
	if !gjson.ValidBytes(body) {
		return Action{}, false, invalidPayloadError("webhooks: request body is not valid json", 0, nil)
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return Action{}, false, nil
	}
	raw := root.Get("action")
	if isEmptyAction(raw) {
		return Action{}, false, nil
	}

	actionType := raw.Get("type")
	if actionType.Type != gjson.String || strings.TrimSpace(actionType.Str) == "" {
		return Action{}, false, invalidEventTypeError(nil)
	}
	kind := actionType.Str

	data := raw.Get("data")
	if !data.Exists() || data.Type == gjson.Null {
		return Action{}, false, invalidEventDataError("", map[string]any{"type": kind})
	}
	values, isMap := data.Value().(map[string]any)
	if !data.IsObject() || !isMap {
		return Action{}, false, invalidEventDataError(
			"webhooks: action data must be an object",
			map[string]any{"type": kind},
		)
	}

	return Action{
		ID:              raw.Get("id").String(),
		Type:            kind,
		Date:            raw.Get("date").String(),
		IDMemberCreator: raw.Get("idMemberCreator").String(),
		Data:            values,
		data:            data,
	}, true, nil
}

// String returns the non-blank string found at path inside data.
func (a Action) String(path string) (string, bool) {
	value := a.data.Get(path)
	if value.Type != gjson.String {
		return "", false
	}
	trimmed := strings.TrimSpace(value.Str)
	return trimmed, trimmed != ""
}

func (a Action) requireString(path string) (string, error) {
	value, ok := a.String(path)
	if !ok {
		return "", invalidEventDataError(
			"webhooks: action data is missing "+path,
			map[string]any{"type": a.Type, "field": path},
		)
	}
	return value, nil
}

// Falsy actions are treated as absent: null, false, 0, "", "0" and empty
// objects or arrays.
func isEmptyAction(raw gjson.Result) bool {
	if !raw.Exists() {
		return true
	}
	switch raw.Type {
	case gjson.Null, gjson.False:
		return true
	case gjson.Number:
		return raw.Num == 0
	case gjson.String:
		return raw.Str == "" || raw.Str == "0"
	case gjson.JSON:
		if raw.IsObject() {
			return len(raw.Map()) == 0
		}
		return len(raw.Array()) == 0
	}
	return false
}
