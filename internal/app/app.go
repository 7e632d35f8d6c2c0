package app

import (
	"fmt"
	"io"
	"os"

	"github.com/avc-dev/urlshort/internal/config"
	"github.com/avc-dev/urlshort/internal/handler"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//go:generate mockery --name Database

// Database закрывает соединение с хранилищем, если оно его держит
type Database interface {
	Close() error
}

// App представляет приложение urlshort
type App struct {
	config  *config.Config
	logger  *zap.Logger
	handler *handler.Handler
	db      Database
}

// New создает новый экземпляр приложения
func New(cfg *config.Config) (*App, error) {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	h, db, err := initDependencies(cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, err
	}

	return &App{
		config:  cfg,
		logger:  logger,
		handler: h,
		db:      db,
	}, nil
}

// Run читает конфигурацию, выполняет одну команду и возвращает код завершения
func Run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return handler.ExitUsage
	}

	app, err := New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return handler.ExitUsage
	}
	defer app.Close()

	return app.Execute(args, os.Stdout, os.Stderr)
}

// Execute выполняет команду с аргументами args
func (a *App) Execute(args []string, stdout, stderr io.Writer) int {
	cmd := a.handler.NewRootCommand()
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return handler.Execute(cmd)
}

// Close освобождает ресурсы приложения
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close database", zap.Error(err))
		}
	}
	a.logger.Sync()
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.Encoding = "console"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.DisableStacktrace = true

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}
