package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	LogDirEnv    = "LOG_DIR"    // default "log"
	LogOutputEnv = "LOG_OUTPUT" // "console" disables rotated files
)

func logDir() string {
	dir := strings.TrimSpace(os.Getenv(LogDirEnv))
	if dir == "" {
		dir = "log"
	}
	_ = os.MkdirAll(dir, 0o755)
	return dir
}

func consoleOnly() bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv(LogOutputEnv)), "console")
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// NewLog tees JSON lines to stdout and to a rotated file named n under LOG_DIR.
func NewLog(n string) *zap.Logger {
	if consoleOnly() {
		return NewConsoleLog()
	}
	cfg := encoderConfig()

	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(logDir(), n),
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	})

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(cfg), w, zap.InfoLevel),
		zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.Lock(os.Stdout), zap.InfoLevel),
	)
	return zap.New(core)
}

// NewConsoleLog writes JSON lines to stdout only (Lambda, CLI).
func NewConsoleLog() *zap.Logger {
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.Lock(os.Stdout), zap.InfoLevel)
	return zap.New(core)
}

var (
	accessMu     sync.Mutex
	accessLogger *zap.Logger
)

// SetAccessLogger lets tests/CLIs override the access logger.
func SetAccessLogger(l *zap.Logger) {
	if l == nil {
		return
	}
	accessMu.Lock()
	accessLogger = l
	accessMu.Unlock()
}

func httpAccessLogger() *zap.Logger {
	accessMu.Lock()
	defer accessMu.Unlock()
	if accessLogger == nil {
		accessLogger = NewLog("http-access.log")
	}
	return accessLogger
}
