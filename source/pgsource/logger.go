package pgsource

import (
	"context"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// pgxLogger adapts zerolog.Logger to pgx's tracelog interface so pool
// traffic shows up in the caller's log stream with the rest of the module.
type pgxLogger struct {
	logger zerolog.Logger
}

func newPgxLogger(logger zerolog.Logger) *pgxLogger {
	// Tagging the component keeps SQL noise filterable downstream.
	return &pgxLogger{logger: logger.With().Str("component", "pgx").Logger()}
}

// Log maps tracelog levels onto zerolog events. SQL text and args are
// promoted to named fields at trace level; everything else passes through.
func (l *pgxLogger) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	var event *zerolog.Event
	switch level {
	case tracelog.LogLevelNone:
		return
	case tracelog.LogLevelTrace:
		event = l.logger.Trace()
		if sql, ok := data["sql"].(string); ok {
			event = event.Str("sql", sql)
			delete(data, "sql")
		}
		if args, ok := data["args"]; ok {
			event = event.Interface("args", args)
			delete(data, "args")
		}
	case tracelog.LogLevelDebug:
		event = l.logger.Debug()
	case tracelog.LogLevelInfo:
		event = l.logger.Info()
	case tracelog.LogLevelWarn:
		event = l.logger.Warn()
	case tracelog.LogLevelError:
		event = l.logger.Error()
	default:
		// Unknown levels land at info with the original level preserved.
		event = l.logger.Info().Str("pgx_log_level", level.String())
	}
	if len(data) > 0 {
		event = event.Fields(data)
	}
	event.Msg(msg)
}

// traceLevel picks the tracelog threshold matching the zerolog level, so
// the pool never formats messages the logger would drop anyway.
func traceLevel(logger zerolog.Logger) tracelog.LogLevel {
	switch {
	case logger.GetLevel() <= zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case logger.GetLevel() <= zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case logger.GetLevel() <= zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case logger.GetLevel() <= zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	default:
		return tracelog.LogLevelError
	}
}
