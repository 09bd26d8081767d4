package gingonic

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goliatone/go-trello/core"
	"github.com/goliatone/go-trello/webhooks"
)

type ErrorResponse struct {
	Error Error `json:"error"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebhookHandler serves Trello deliveries on a gin route. HEAD requests,
// sent when a webhook is registered, get 200.
func WebhookHandler(h *webhooks.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodHead {
			c.Status(http.StatusOK)
			return
		}
		if err := h.HandleHTTP(c.Request); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusOK)
	}
}

// CaptureRequest snapshots the inbound request into the request context so
// handlers further down the chain can call Handler.HandleCurrent. The body
// is restored for them.
func CaptureRequest(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := webhooks.RequestFromHTTP(c.Request, maxBodyBytes)
		if err != nil {
			writeError(c, err)
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(req.Body))
		c.Request = c.Request.WithContext(webhooks.WithRequest(c.Request.Context(), req))
		c.Next()
	}
}

// CurrentRequestHandler handles the request captured by CaptureRequest.
func CurrentRequestHandler(h *webhooks.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodHead {
			c.Status(http.StatusOK)
			return
		}
		if err := h.HandleCurrent(c.Request.Context()); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusOK)
	}
}

// Register mounts the webhook endpoint on path for both HEAD and POST.
func Register(router gin.IRoutes, path string, h *webhooks.Handler) {
	handler := WebhookHandler(h)
	router.HEAD(path, handler)
	router.POST(path, handler)
}

func writeError(c *gin.Context, err error) {
	rich := core.MapError(err)
	c.JSON(webhooks.StatusCode(err), ErrorResponse{
		Error: Error{
			Code:    rich.TextCode,
			Message: rich.Message,
		},
	})
}
