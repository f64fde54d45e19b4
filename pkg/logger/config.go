package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//go:generate mockgen -source=config.go -destination=mocks/config_mock.go
type LogConfig struct {
	Config zap.Config
}

type Config interface {
	GetDevelopmentConfig() LogConfig
	GetProductionConfig() LogConfig
}

const DefaultLogFile = "wallet-monitor.log"

type config struct {
	logFile string
}

func NewLoggerConfig(logFile string) Config {
	if logFile == "" {
		logFile = DefaultLogFile
	}
	return &config{logFile: logFile}
}

func (c *config) GetDevelopmentConfig() LogConfig {
	return LogConfig{Config: zap.Config{
		Level:       zap.NewAtomicLevelAt(zap.DebugLevel),
		Development: true,
		Encoding:    "console",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     "message",
			LevelKey:       "level",
			TimeKey:        "time",
			NameKey:        "logger",
			CallerKey:      "caller",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
			EncodeName:     zapcore.FullNameEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}}
}

// GetProductionConfig logs JSON to the log file and stderr. Stdout is left to
// the status line sink.
func (c *config) GetProductionConfig() LogConfig {
	return LogConfig{Config: zap.Config{
		Level:       zap.NewAtomicLevelAt(zap.InfoLevel),
		Development: false,
		Encoding:    "json",
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.EpochTimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{c.logFile, "stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}}
}
