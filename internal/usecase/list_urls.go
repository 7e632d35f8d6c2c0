package usecase

import (
	"fmt"

	"github.com/avc-dev/urlshort/internal/model"
)

// ListURLs возвращает все записи в порядке хранения
func (u *URLUsecase) ListURLs() ([]model.Link, error) {
	links, err := u.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	return links, nil
}
