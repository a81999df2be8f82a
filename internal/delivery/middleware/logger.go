package middleware

import (
	"log/slog"

	"venmito/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// LoggerMiddleware writes one access-log line per request through slog-echo.
// Health and metrics probes are left out unless debug is on.
type LoggerMiddleware struct {
	handler echo.MiddlewareFunc
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	filters := []slogecho.Filter{}
	if !cfg.Env.Debug {
		filters = append(filters, slogecho.IgnorePath(probePaths(cfg)...))
	}

	return &LoggerMiddleware{
		handler: slogecho.NewWithConfig(logger, slogecho.Config{
			DefaultLevel:     slog.LevelInfo,
			ClientErrorLevel: slog.LevelWarn,
			ServerErrorLevel: slog.LevelError,
			WithRequestID:    true,
			WithUserAgent:    cfg.Env.Debug,
			Filters:          filters,
		}),
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return m.handler(next)
}

func probePaths(cfg *config.Config) []string {
	paths := []string{"/health"}
	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		paths = append(paths, cfg.Metrics.Path)
	}

	return paths
}
