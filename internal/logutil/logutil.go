package logutil

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig - Configuration of the command line logger
//   - Level is one of debug, info, warn or error
//   - Format is either console or json
//   - Filename is the log file, if empty the log goes to stderr
//   - MaxSize is the size in megabytes at which the log file is rotated
//   - MaxDays is the number of days to keep rotated log files
//   - MaxBackups is the number of rotated log files to keep
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"maxSize"`
	MaxDays    int    `toml:"maxDays"`
	MaxBackups int    `toml:"maxBackups"`
}

// DefaultLogConfig - Returns a LogConfig logging info and above to stderr in console format
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:      zapcore.InfoLevel.String(),
		Format:     "console",
		MaxSize:    64,
		MaxDays:    7,
		MaxBackups: 3,
	}
}

// NewLogger - Returns a zap logger built from the configuration
func NewLogger(cfg LogConfig) (logger *zap.Logger, err error) {
	level, err := cfg.getLevel()
	if err != nil {
		return
	}

	encoder, err := getLoggerEncoder(cfg.Format)
	if err != nil {
		return
	}

	core := zapcore.NewCore(encoder, cfg.getSyncer(), level)
	logger = zap.New(core, cfg.getOptions()...)

	return
}

func (cfg LogConfig) getLevel() (level zap.AtomicLevel, err error) {
	level = zap.NewAtomicLevel()
	if cfg.Level == "" {
		return
	}
	if err = level.UnmarshalText([]byte(cfg.Level)); err != nil {
		err = fmt.Errorf("unsupported log level: %s", cfg.Level)
	}

	return
}

func (cfg LogConfig) getOptions() []zap.Option {
	return []zap.Option{zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller()}
}

// getSyncer - Returns a rotating file writer if a file name is given, otherwise stderr
func (cfg LogConfig) getSyncer() zapcore.WriteSyncer {
	if cfg.Filename == "" {
		return getConsoleSyncer()
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	})
}

func getConsoleSyncer() zapcore.WriteSyncer {
	return zapcore.Lock(os.Stderr)
}

func getLoggerEncoder(format string) (encoder zapcore.Encoder, err error) {
	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		TimeKey:        "time",
		NameKey:        "name",
		CallerKey:      "caller",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05.000000 -0700"),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	switch strings.ToLower(format) {
	case "", "console":
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		err = fmt.Errorf("unsupported log format: %s", format)
	}

	return
}
