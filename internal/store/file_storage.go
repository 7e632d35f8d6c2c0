package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avc-dev/urlshort/internal/model"
	"github.com/google/uuid"
)

// FileStorage управляет JSON документом со ссылками на диске
type FileStorage struct {
	filePath string
}

// NewFileStorage создаёт новый FileStorage
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{
		filePath: filePath,
	}
}

// Path возвращает путь к документу
func (fs *FileStorage) Path() string {
	return fs.filePath
}

// Load читает документ, создавая пустой при его отсутствии
func (fs *FileStorage) Load() (model.Document, error) {
	if err := fs.ensure(); err != nil {
		return model.Document{}, err
	}

	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to read file: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.Document{}, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	if doc.Links == nil {
		doc.Links = []model.Link{}
	}

	return doc, nil
}

// Save перезаписывает документ целиком через временный файл и rename
func (fs *FileStorage) Save(doc model.Document) error {
	if doc.Links == nil {
		doc.Links = []model.Link{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	dir := filepath.Dir(fs.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmpPath := filepath.Join(dir, "."+filepath.Base(fs.filePath)+"."+uuid.New().String()+".tmp")
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, fs.filePath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace file: %w", err)
	}

	return nil
}

// ensure создает каталог и пустой документ, если их нет
func (fs *FileStorage) ensure() error {
	_, err := os.Stat(fs.filePath)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	return fs.Save(model.Document{Links: []model.Link{}})
}
