package logger

import (
	"errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=logger.go -destination=mocks/logger_mock.go
type Logger interface {
	SetupZapLogger() (*zap.SugaredLogger, error)
}

type logger struct {
	appEnv  string
	logFile string
}

func NewLogger(appEnv string, logFile string) (Logger, error) {
	if appEnv == "" {
		return nil, errors.New("[logger] invalid app env")
	}

	return &logger{appEnv: appEnv, logFile: logFile}, nil
}

func (l *logger) SetupZapLogger() (*zap.SugaredLogger, error) {
	loggerConfig := NewLoggerConfig(l.logFile)

	var cfg LogConfig
	switch l.appEnv {
	case "production":
		cfg = loggerConfig.GetProductionConfig()
	case "development":
		cfg = loggerConfig.GetDevelopmentConfig()
	default:
		return nil, errors.New("[logger] incorrect app env")
	}

	logger, err := cfg.Config.Build()
	if err != nil {
		return nil, err
	}

	return logger.Named("wallet-monitor").Sugar(), nil
}
