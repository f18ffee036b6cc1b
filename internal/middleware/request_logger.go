package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// echoのリクエストログをslogに流す
func RequestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
			}
			if actor, ok := c.Get(CtxActorKey).(string); ok {
				attrs = append(attrs, "actor", actor)
			}
			if v.Error != nil {
				log.Error("http_request", append(attrs, "error", v.Error.Error())...)
				return nil
			}
			log.Info("http_request", attrs...)
			return nil
		},
	})
}
