package app

import (
	"fmt"

	"github.com/avc-dev/urlshort/internal/config"
	"github.com/avc-dev/urlshort/internal/handler"
	"github.com/avc-dev/urlshort/internal/opener"
	"github.com/avc-dev/urlshort/internal/repository"
	"github.com/avc-dev/urlshort/internal/service"
	"github.com/avc-dev/urlshort/internal/store"
	"github.com/avc-dev/urlshort/internal/usecase"
	"go.uber.org/zap"
)

// initDependencies инициализирует все зависимости приложения.
// Возвращаемый Database не nil только для sqlite.
func initDependencies(cfg *config.Config, logger *zap.Logger) (*handler.Handler, Database, error) {
	storage, db, err := initStorage(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	repo := repository.New(storage)
	urlService := service.NewURLService(repo, cfg)
	urlUsecase := usecase.NewURLUsecase(repo, urlService, opener.New(cfg.Browser, logger), cfg, logger)
	h := handler.New(urlUsecase, logger)

	return h, db, nil
}

// initStorage создает хранилище на основе конфигурации
func initStorage(cfg *config.Config, logger *zap.Logger) (repository.Store, Database, error) {
	path := cfg.StoragePath.String()

	switch cfg.StorageDriver {
	case config.DriverSQLite:
		databaseStore, err := store.NewDatabaseStore(path, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create database store: %w", err)
		}
		logger.Info("Using sqlite storage", zap.String("path", path))
		return databaseStore, databaseStore, nil
	default:
		logger.Info("Using file storage", zap.String("path", path))
		return store.NewFileStore(path, logger), nil, nil
	}
}
