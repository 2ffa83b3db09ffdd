package outstream

import (
	"strings"

	"github.com/caser789/outstream/internal/utils/env"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogLevel = zapcore.Level

const (
	DebugLvl = zapcore.DebugLevel
	InfoLvl  = zapcore.InfoLevel
	WarnLvl  = zapcore.WarnLevel
	ErrorLvl = zapcore.ErrorLevel
)

const customTimeLayout = "2006-01-02 15:04:05.999999-07:00"

var (
	logLevel = atomic.NewInt32(int32(defaultLevel()))

	levelMap = map[string]LogLevel{"debug": DebugLvl, "info": InfoLvl, "warn": WarnLvl, "error": ErrorLvl}
)

// NewLogger returns a console logger that writes its entries into s.
// Syncing the logger flushes s. The logger serializes access to s, so once
// it is handed over s must only be written through the logger.
func NewLogger(s *Stream, opts ...zap.Option) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(customTimeLayout)
	encCfg.EncodeDuration = zapcore.MillisDurationEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encCfg.ConsoleSeparator = "|"

	lv := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= GetLevel()
	})
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(s), lv)

	opts = append([]zap.Option{zap.AddCaller(), zap.AddStacktrace(zap.PanicLevel)}, opts...)
	return zap.New(core, opts...)
}

// InitLevel sets the level of loggers built with NewLogger from cfg.Level.
// An empty level restores the environment default.
func InitLevel(cfg *Config) error {
	if cfg == nil || cfg.Level == "" {
		SetLevel(defaultLevel())
		return nil
	}
	lvl, err := parseLevel(cfg.Level)
	if err != nil {
		return err
	}
	SetLevel(lvl)
	return nil
}

// SetLevel - Dynamically set the level of every logger built with NewLogger.
func SetLevel(level LogLevel) {
	logLevel.Store(int32(level))
}

func GetLevel() LogLevel {
	return zapcore.Level(int8(logLevel.Load()))
}

func defaultLevel() LogLevel {
	if env.IsLive() {
		return zap.InfoLevel
	}
	return zap.DebugLevel
}

func parseLevel(s string) (LogLevel, error) {
	if lvl, ok := levelMap[strings.ToLower(strings.TrimSpace(s))]; ok {
		return lvl, nil
	}
	return 0, errors.Errorf("unknown log level %q", s)
}
