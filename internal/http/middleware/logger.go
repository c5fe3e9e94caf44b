package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

// Logger logs one line per HTTP request with request_id, method, path,
// status and latency in milliseconds.
//
// A request scoped logger carrying request_id (and trace_id when a span is
// active) is stored in the user context, so handlers can log through
// zerolog.Ctx(c.UserContext()). Register it after RequestID and otelfiber.
func Logger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		lc := log.With().Str("request_id", rid)
		if sc := trace.SpanContextFromContext(c.UserContext()); sc.HasTraceID() {
			lc = lc.Str("trace_id", sc.TraceID().String())
		}
		reqLog := lc.Logger()
		c.SetUserContext(reqLog.WithContext(c.UserContext()))

		err := c.Next()

		status := statusOf(c, err)
		ev := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			ev = reqLog.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Float64("latency", float64(time.Since(start).Microseconds())/1000).
			Msg("http_request")

		return err
	}
}

// LoggerWithWriter is Logger over a bare JSON logger writing to w.
func LoggerWithWriter(w io.Writer) fiber.Handler {
	return Logger(zerolog.New(w).With().Timestamp().Logger())
}

// statusOf returns the status the response will carry once the global error
// handler has run for err.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	if fe, ok := err.(*fiber.Error); ok {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
