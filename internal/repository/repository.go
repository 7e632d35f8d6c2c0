package repository

import (
	"fmt"

	"github.com/avc-dev/urlshort/internal/model"
	"github.com/avc-dev/urlshort/internal/store"
)

type Store interface {
	LoadAll() ([]model.Link, error)
	Upsert(link model.Link) error
	Remove(code model.Code) (bool, error)
	Filter(pred store.Predicate) ([]model.Link, error)
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

func (r Repository) Save(link model.Link) error {
	err := r.underlying.Upsert(link)
	if err != nil {
		return fmt.Errorf("failed to save link: %w", err)
	}
	return nil
}

func (r Repository) Delete(code model.Code) (bool, error) {
	removed, err := r.underlying.Remove(code)
	if err != nil {
		return false, fmt.Errorf("failed to delete link: %w", err)
	}
	return removed, nil
}

func (r Repository) List() ([]model.Link, error) {
	links, err := r.underlying.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}
