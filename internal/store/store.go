package store

import (
	"errors"

	"github.com/avc-dev/urlshort/internal/model"
)

var (
	ErrNotFound = errors.New("key not found")
)

// Predicate отбирает записи при линейном просмотре хранилища
type Predicate func(link model.Link) bool

// ByCode возвращает предикат, совпадающий с записью по коду
func ByCode(code model.Code) Predicate {
	return func(link model.Link) bool {
		return link.Code == code
	}
}

// upsertLink заменяет запись с тем же кодом на месте или добавляет ее в конец
func upsertLink(links []model.Link, link model.Link) []model.Link {
	for i := range links {
		if links[i].Code == link.Code {
			links[i] = link
			return links
		}
	}

	return append(links, link)
}

// removeLink удаляет запись по коду, сохраняя порядок остальных
func removeLink(links []model.Link, code model.Code) ([]model.Link, bool) {
	next := make([]model.Link, 0, len(links))
	for _, link := range links {
		if link.Code != code {
			next = append(next, link)
		}
	}

	return next, len(next) != len(links)
}

func filterLinks(links []model.Link, pred Predicate) []model.Link {
	result := make([]model.Link, 0)
	for _, link := range links {
		if pred(link) {
			result = append(result, link)
		}
	}

	return result
}
