package repository

import (
	"errors"
	"fmt"

	"github.com/avc-dev/urlshort/internal/model"
	"github.com/avc-dev/urlshort/internal/store"
)

// FindByCode возвращает запись по коду или store.ErrNotFound
func (r *Repository) FindByCode(code model.Code) (model.Link, error) {
	links, err := r.underlying.Filter(store.ByCode(code))
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to find link: %w", err)
	}

	if len(links) == 0 {
		return model.Link{}, fmt.Errorf("key %s: %w", code, store.ErrNotFound)
	}

	return links[0], nil
}

// Exists проверяет существование кода в хранилище
// Возвращает true если код существует, false если код свободен
// Возвращает ошибку только в случае проблем с хранилищем (не "not found")
func (r *Repository) Exists(code model.Code) (bool, error) {
	_, err := r.FindByCode(code)
	if err != nil {
		// Если ошибка - "not found", значит код свободен
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		// Любая другая ошибка - проблема с хранилищем
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}

	// Код существует
	return true, nil
}
