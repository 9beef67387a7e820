package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// healthPaths are probed every few seconds by the kubelet and would
// otherwise dominate the log stream.
var healthPaths = map[string]bool{
	"/healthz": true,
	"/readyz":  true,
}

// RequestLog returns Echo middleware that logs requests with structured
// fields. It generates a request ID if none is provided and propagates it
// through the response header and echo context.
//
// Health probe requests are deduplicated: a successful probe is logged
// once per status transition, a failing probe is logged every time at
// WARN.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var probeMu sync.Mutex
	lastProbeStatus := make(map[string]int)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status

			level := slog.LevelInfo
			if healthPaths[path] {
				if status < 400 {
					probeMu.Lock()
					last, seen := lastProbeStatus[path]
					lastProbeStatus[path] = status
					probeMu.Unlock()
					if seen && last == status {
						return err
					}
				} else {
					probeMu.Lock()
					lastProbeStatus[path] = status
					probeMu.Unlock()
					level = slog.LevelWarn
				}
			}

			log.Log(c.Request().Context(), level, "request",
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
				"remote_ip", c.RealIP(),
			)

			return err
		}
	}
}
