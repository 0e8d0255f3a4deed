package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	DEBUG = "DEBUG"
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
)

// New 创建 JSON 结构化日志，默认写到 stderr，stdout 只留给搜索结果
func New(level string, dest io.Writer) *slog.Logger {
	if dest == nil {
		dest = os.Stderr
	}
	handler := slog.NewJSONHandler(dest, &slog.HandlerOptions{
		Level: ParseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "timestamp"
			}
			return a
		},
	})
	return slog.New(handler)
}

// ParseLevel 把级别名转为 slog.Level，无法识别时返回 Info
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case DEBUG:
		return slog.LevelDebug
	case WARN, "WARNING":
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsLevel 判断级别名能否被识别 (大小写不敏感)
func IsLevel(level string) bool {
	switch strings.ToUpper(level) {
	case DEBUG, INFO, WARN, "WARNING", ERROR:
		return true
	}
	return false
}

// Discard 返回丢弃所有输出的日志
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
