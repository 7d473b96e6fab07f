package logger

import (
	"context"

	"go-fieldops/internal/config"
	"go-fieldops/internal/database"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewLogger builds the process logger. When LogToDB is set every entry is also
// queued for the "logs" collection; the queue is drained on shutdown.
func NewLogger(lc fx.Lifecycle, cfg *config.Config, mongodb *database.MongodbDB) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.IsProduction() {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	// Important: Enable Caller to get Function Name
	zapConfig.EncoderConfig.FunctionKey = "func"

	baseLogger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	if !cfg.LogToDB {
		return baseLogger, nil
	}

	dbWriter := NewDBLogWriter(mongodb.DB.Collection(database.LogsCollection), cfg.AppId)
	logger := zap.New(NewDBCore(baseLogger.Core(), dbWriter), zap.AddCaller())

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = logger.Sync()
			return dbWriter.Close(ctx)
		},
	})

	return logger, nil
}
