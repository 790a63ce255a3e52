package internal

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-Id"
	requestIDKey    = "request_id"
)

// requestID keeps a caller-supplied X-Request-Id or mints one, and echoes it
// on the response.
func (h *Handler) requestID(ctx context.Context, c *app.RequestContext) {
	id := string(c.GetHeader(requestIDHeader))
	if id == "" || len(id) > 128 {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	c.Response.Header.Set(requestIDHeader, id)
	c.Next(ctx)
}

func (h *Handler) accessLog(ctx context.Context, c *app.RequestContext) {
	start := time.Now()
	c.Next(ctx)

	status := c.Response.StatusCode()
	attrs := []any{
		"method", string(c.Method()),
		"path", string(c.Path()),
		"route", c.FullPath(),
		"status", status,
		"elapsed", time.Since(start),
		"request_id", c.GetString(requestIDKey),
	}
	if status >= 500 {
		h.logger.Warn("request", attrs...)
		return
	}
	h.logger.Info("request", attrs...)
}
