package webhooks

import (
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-trello/core"
)

func invalidEventTypeError(metadata map[string]any) error {
	return core.NewError(
		"webhooks: unable to determine event from request",
		goerrors.CategoryBadInput,
		core.ErrorInvalidEventType,
		metadata,
	)
}

func invalidEventDataError(message string, metadata map[string]any) error {
	if message == "" {
		message = "webhooks: unable to retrieve data from request"
	}
	return core.NewError(message, goerrors.CategoryBadInput, core.ErrorInvalidEventData, metadata)
}

func invalidPayloadError(message string, code int, metadata map[string]any) error {
	err := core.NewError(message, goerrors.CategoryBadInput, core.ErrorInvalidPayload, metadata)
	if code > 0 {
		err.Code = code
	}
	return err
}

func webhookInternalError(message string, metadata map[string]any) error {
	return core.NewError(message, goerrors.CategoryInternal, core.ErrorInternal, metadata)
}

// IsInvalidEventType reports an action without a usable type.
func IsInvalidEventType(err error) bool {
	return core.HasTextCode(err, core.ErrorInvalidEventType)
}

// IsInvalidEventData reports an action whose data is missing or does not
// have the shape its type requires.
func IsInvalidEventData(err error) bool {
	return core.HasTextCode(err, core.ErrorInvalidEventData)
}

func IsInvalidPayload(err error) bool {
	return core.HasTextCode(err, core.ErrorInvalidPayload)
}
