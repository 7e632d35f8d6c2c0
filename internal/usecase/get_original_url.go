package usecase

import (
	"errors"
	"fmt"

	"github.com/avc-dev/urlshort/internal/model"
	"github.com/avc-dev/urlshort/internal/store"
)

// GetOriginalURL возвращает оригинальный URL по короткому коду
func (u *URLUsecase) GetOriginalURL(code model.Code) (model.URL, error) {
	link, err := u.findLink(code)
	if err != nil {
		return "", err
	}

	return link.URL, nil
}

func (u *URLUsecase) findLink(code model.Code) (model.Link, error) {
	if code == "" {
		return model.Link{}, ErrEmptyCode
	}

	link, err := u.repo.FindByCode(code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Link{}, fmt.Errorf("code %s: %w", code, ErrURLNotFound)
		}
		return model.Link{}, fmt.Errorf("failed to find link: %w", err)
	}

	return link, nil
}
