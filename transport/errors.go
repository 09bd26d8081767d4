package transport

import (
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-trello/core"
)

func transportError(
	message string,
	category goerrors.Category,
	code int,
	metadata map[string]any,
) error {
	err := core.NewError(message, category, transportTextCode(category), metadata)
	err.Code = code
	return err
}

func transportWrapError(
	source error,
	category goerrors.Category,
	message string,
	code int,
	metadata map[string]any,
) error {
	err := core.WrapError(source, category, message, transportTextCode(category), metadata)
	err.Code = code
	return err
}

func transportTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return core.ErrorBadInput
	case goerrors.CategoryAuth, goerrors.CategoryAuthz:
		return core.ErrorUnauthorized
	case goerrors.CategoryRateLimit:
		return core.ErrorRateLimited
	case goerrors.CategoryExternal:
		return core.ErrorExternalFailure
	default:
		return core.ErrorInternal
	}
}
