package core

import (
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ErrorBadInput         = "TRELLO_BAD_INPUT"
	ErrorNotFound         = "TRELLO_NOT_FOUND"
	ErrorUnauthorized     = "TRELLO_UNAUTHORIZED"
	ErrorRateLimited      = "TRELLO_RATE_LIMITED"
	ErrorExternalFailure  = "TRELLO_EXTERNAL_FAILURE"
	ErrorInternal         = "TRELLO_INTERNAL_ERROR"
	ErrorInvalidEventType = "TRELLO_INVALID_EVENT_TYPE"
	ErrorInvalidEventData = "TRELLO_INVALID_EVENT_DATA"
	ErrorInvalidPayload   = "TRELLO_INVALID_PAYLOAD"
)

// NewError builds a go-errors envelope with the HTTP code and text code
// derived from category when not given explicitly.
func NewError(message string, category goerrors.Category, textCode string, metadata map[string]any) *goerrors.Error {
	err := goerrors.New(message, category)
	return finishError(err, textCode, metadata)
}

func WrapError(source error, category goerrors.Category, message string, textCode string, metadata map[string]any) *goerrors.Error {
	if source == nil {
		return NewError(message, category, textCode, metadata)
	}
	err := goerrors.Wrap(source, category, message)
	return finishError(err, textCode, metadata)
}

// MapError converts any error into the package envelope. Rich errors keep
// their fields; plain errors go through the go-errors default mappers.
func MapError(err error) *goerrors.Error {
	if err == nil {
		return nil
	}
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return ensureErrorEnvelope(richErr)
	}
	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	if strings.Contains(msg, "required") || strings.Contains(msg, "invalid") {
		return NewError(err.Error(), goerrors.CategoryBadInput, ErrorBadInput, nil)
	}
	return ensureErrorEnvelope(goerrors.MapToError(err, goerrors.DefaultErrorMappers()))
}

// HasTextCode reports whether err carries a go-errors envelope with code.
func HasTextCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		return false
	}
	return richErr.TextCode == code
}

func finishError(err *goerrors.Error, textCode string, metadata map[string]any) *goerrors.Error {
	if strings.TrimSpace(textCode) != "" {
		err = err.WithTextCode(textCode)
	}
	if len(metadata) > 0 {
		err = err.WithMetadata(metadata)
	}
	return ensureErrorEnvelope(err)
}

func ensureErrorEnvelope(err *goerrors.Error) *goerrors.Error {
	if err == nil {
		return nil
	}
	if err.Code == 0 {
		err.Code = HTTPStatus(err.Category)
	}
	if strings.TrimSpace(err.TextCode) == "" {
		err.TextCode = defaultTextCode(err.Category)
	}
	if err.Category == goerrors.CategoryInternal && strings.TrimSpace(err.Message) == "" {
		err.Message = "An unexpected error occurred"
	}
	return err
}

func defaultTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return ErrorBadInput
	case goerrors.CategoryNotFound:
		return ErrorNotFound
	case goerrors.CategoryAuth, goerrors.CategoryAuthz:
		return ErrorUnauthorized
	case goerrors.CategoryRateLimit:
		return ErrorRateLimited
	case goerrors.CategoryExternal:
		return ErrorExternalFailure
	default:
		return ErrorInternal
	}
}

func HTTPStatus(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return http.StatusBadRequest
	case goerrors.CategoryNotFound:
		return http.StatusNotFound
	case goerrors.CategoryAuth:
		return http.StatusUnauthorized
	case goerrors.CategoryAuthz:
		return http.StatusForbidden
	case goerrors.CategoryRateLimit:
		return http.StatusTooManyRequests
	case goerrors.CategoryExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
