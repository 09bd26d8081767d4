package webhooks

import (
	"encoding/json"
	"net/http"

	"github.com/goliatone/go-trello/core"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	TextCode string `json:"text_code"`
	Message  string `json:"message"`
}

type httpHandler struct {
	handler *Handler
}

// NewHTTPHandler exposes h as a net/http endpoint. HEAD requests, which
// Trello sends when a webhook is registered, get 200.
func NewHTTPHandler(h *Handler) http.Handler {
	return httpHandler{handler: h}
}

func (a httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	if err := a.handler.HandleHTTP(r); err != nil {
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// StatusCode picks the response status for a Handle error. Failures of the
// upstream API surface as 502 regardless of their own code.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	rich := core.MapError(err)
	switch rich.TextCode {
	case core.ErrorNotFound, core.ErrorUnauthorized, core.ErrorRateLimited, core.ErrorExternalFailure:
		return http.StatusBadGateway
	}
	if rich.Code >= http.StatusBadRequest {
		return rich.Code
	}
	return http.StatusInternalServerError
}

func WriteError(w http.ResponseWriter, err error) {
	rich := core.MapError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusCode(err))
	_ = json.NewEncoder(w).Encode(errorBody{Error: errorDetail{
		TextCode: rich.TextCode,
		Message:  rich.Message,
	}})
}
