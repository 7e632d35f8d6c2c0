package service

import (
	"fmt"

	"github.com/avc-dev/urlshort/internal/config"
	"github.com/avc-dev/urlshort/internal/model"
)

//go:generate mockery --name CodeChecker
//go:generate mockery --name Generator

// CodeChecker проверяет занятость кода в хранилище
type CodeChecker interface {
	// Exists возвращает true если код уже занят
	Exists(code model.Code) (bool, error)
}

// Generator генерирует случайные коды заданной длины
type Generator interface {
	GenerateCode(length int) model.Code
}

// URLService содержит бизнес-логику генерации коротких кодов
type URLService struct {
	repo          CodeChecker
	codeGenerator Generator
	cfg           *config.Config
}

// NewURLService создает новый экземпляр URLService
func NewURLService(repo CodeChecker, cfg *config.Config) *URLService {
	return &URLService{
		repo:          repo,
		codeGenerator: NewCodeGenerator(),
		cfg:           cfg,
	}
}

// GenerateUniqueCode генерирует код, которого еще нет в хранилище.
// Количество попыток ограничено cfg.Retry.MaxAttempts.
func (s *URLService) GenerateUniqueCode(length int) (model.Code, error) {
	for attempt := 0; attempt < s.cfg.Retry.MaxAttempts; attempt++ {
		code := s.codeGenerator.GenerateCode(length)

		exists, err := s.repo.Exists(code)
		if err != nil {
			return "", fmt.Errorf("failed to check code uniqueness: %w", err)
		}
		if !exists {
			return code, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique code of length %d after %d attempts: %w", length, s.cfg.Retry.MaxAttempts, ErrMaxRetriesExceeded)
}
