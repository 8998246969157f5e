package log

import (
	"fmt"
	"time"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger builds a production JSON logger named after the process.
func NewZapLogger(name string, level zapcore.Level) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewExample()
	}

	return logger.Named(name).Sugar()
}

// WithSentry tees error level entries of logger into Sentry.
func WithSentry(logger *zap.SugaredLogger, dsn, environment string) (*zap.SugaredLogger, error) {
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	})
	if err != nil {
		return logger, fmt.Errorf("create sentry client: %w", err)
	}

	core, err := zapsentry.NewCore(zapsentry.Configuration{
		Level:             zapcore.ErrorLevel,
		EnableBreadcrumbs: true,
		BreadcrumbLevel:   zapcore.InfoLevel,
		FlushTimeout:      3 * time.Second,
	}, zapsentry.NewSentryClientFromClient(client))
	if err != nil {
		return logger, fmt.Errorf("create sentry core: %w", err)
	}

	return zapsentry.AttachCoreToLogger(core, logger.Desugar()).Sugar(), nil
}
