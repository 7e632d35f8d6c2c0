package store

import (
	"fmt"

	"github.com/avc-dev/urlshort/internal/model"
	"go.uber.org/zap"
)

// FileStore хранит ссылки в одном JSON документе.
// Каждая операция перечитывает файл, кэша в памяти нет.
// Блокировок тоже нет: при параллельных процессах побеждает последний писатель.
type FileStore struct {
	fileStorage *FileStorage
	logger      *zap.Logger
}

// NewFileStore создаёт FileStore поверх файла filePath
func NewFileStore(filePath string, logger *zap.Logger) *FileStore {
	return &FileStore{
		fileStorage: NewFileStorage(filePath),
		logger:      logger,
	}
}

// LoadAll возвращает все записи в порядке хранения
func (fs *FileStore) LoadAll() ([]model.Link, error) {
	fs.logger.Debug("Loading links", zap.String("path", fs.fileStorage.Path()))

	doc, err := fs.fileStorage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load links: %w", err)
	}

	return doc.Links, nil
}

// Upsert добавляет запись или заменяет существующую на ее месте
func (fs *FileStore) Upsert(link model.Link) error {
	links, err := fs.LoadAll()
	if err != nil {
		return err
	}

	if err := fs.fileStorage.Save(model.Document{Links: upsertLink(links, link)}); err != nil {
		return fmt.Errorf("failed to save links: %w", err)
	}

	return nil
}

// Remove удаляет запись по коду и сообщает, была ли она
func (fs *FileStore) Remove(code model.Code) (bool, error) {
	links, err := fs.LoadAll()
	if err != nil {
		return false, err
	}

	next, removed := removeLink(links, code)
	if !removed {
		return false, nil
	}

	if err := fs.fileStorage.Save(model.Document{Links: next}); err != nil {
		return false, fmt.Errorf("failed to save links: %w", err)
	}

	return true, nil
}

// Filter возвращает записи, удовлетворяющие предикату, в порядке хранения
func (fs *FileStore) Filter(pred Predicate) ([]model.Link, error) {
	links, err := fs.LoadAll()
	if err != nil {
		return nil, err
	}

	return filterLinks(links, pred), nil
}
