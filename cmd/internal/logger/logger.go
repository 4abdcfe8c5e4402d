package logger

import (
	"os"
	"strings"
	"sync/atomic"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger 는 애플리케이션 전역에서 사용하는 최소 로거 인터페이스다.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Fields 는 구조화 로그를 위한 공통 필드 타입이다.
type Fields map[string]any

// Log 는 전역 로거 인스턴스다. Init 전에도 info 레벨로 동작한다.
var Log Logger = NewLogger("info")

var serviceName atomic.Value

// SetServiceName 은 모든 *WithFields 로그에 붙는 service_name 을 정한다.
func SetServiceName(name string) {
	serviceName.Store(name)
}

// InitFromEnv 는 envKey 의 로그 레벨로 전역 로거를 다시 만든다.
// 값이 비어 있으면 fallback, 그것도 비어 있으면 info.
func InitFromEnv(envKey, fallback string) {
	level := os.Getenv(envKey)
	if level == "" {
		level = fallback
	}
	if level == "" {
		level = "info"
	}
	Log = NewLogger(strings.ToLower(level))
}

// NewLogger 는 level 이상(더 심각한 쪽 포함)만 내보내는 JSON 콘솔 로거다.
func NewLogger(level string) Logger {
	h := handler.NewConsoleHandler(levelsUpTo(slog.LevelByName(level)))
	h.SetFormatter(jsonFormatter())
	return slog.NewWithHandlers(h)
}

// gookit 레벨은 숫자가 작을수록 심각하다.
func levelsUpTo(max slog.Level) []slog.Level {
	levels := make([]slog.Level, 0, len(slog.AllLevels))
	for _, lv := range slog.AllLevels {
		if lv <= max {
			levels = append(levels, lv)
		}
	}
	return levels
}

// 기본 필드는 datetime/level/message 만 두고 나머지는 Fields 로 싣는다.
func jsonFormatter() *slog.JSONFormatter {
	return slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{slog.FieldKeyDatetime, slog.FieldKeyLevel, slog.FieldKeyMessage}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "datetime",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	})
}

func withService(fields Fields) slog.M {
	out := make(slog.M, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	if name, _ := serviceName.Load().(string); name != "" {
		if _, ok := out["service_name"]; !ok {
			out["service_name"] = name
		}
	}
	return out
}

func logFields(level slog.Level, msg string, fields Fields) {
	if lg, ok := Log.(*slog.Logger); ok {
		lg.WithFields(withService(fields)).Log(level, msg)
		return
	}
	switch level {
	case slog.DebugLevel:
		Log.Debug(msg)
	case slog.WarnLevel:
		Log.Warn(msg)
	case slog.ErrorLevel:
		Log.Error(msg)
	default:
		Log.Info(msg)
	}
}

// InfoWithFields 는 request_id, span_id 같은 구조화 필드를 함께 남긴다.
func InfoWithFields(msg string, fields Fields) { logFields(slog.InfoLevel, msg, fields) }

func DebugWithFields(msg string, fields Fields) { logFields(slog.DebugLevel, msg, fields) }

func WarnWithFields(msg string, fields Fields) { logFields(slog.WarnLevel, msg, fields) }

func ErrorWithFields(msg string, fields Fields) { logFields(slog.ErrorLevel, msg, fields) }
