package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/avc-dev/urlshort/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// linkStore описывает общий контракт FileStore и DatabaseStore
type linkStore interface {
	LoadAll() ([]model.Link, error)
	Upsert(link model.Link) error
	Remove(code model.Code) (bool, error)
	Filter(pred Predicate) ([]model.Link, error)
}

type storeFactory struct {
	name string
	open func(t *testing.T) linkStore
}

func storeFactories() []storeFactory {
	return []storeFactory{
		{
			name: "file",
			open: func(t *testing.T) linkStore {
				return NewFileStore(filepath.Join(t.TempDir(), "nested", "db.json"), zap.NewNop())
			},
		},
		{
			name: "sqlite",
			open: func(t *testing.T) linkStore {
				ds, err := NewDatabaseStore(filepath.Join(t.TempDir(), "nested", "links.db"), zap.NewNop())
				require.NoError(t, err)
				t.Cleanup(func() { ds.Close() })
				return ds
			},
		},
	}
}

func newLink(code, url string, hits uint64) model.Link {
	return model.Link{
		Code:      model.Code(code),
		URL:       model.URL(url),
		CreatedAt: time.Date(2024, 5, 1, 12, 30, 45, 123000000, time.UTC),
		Hits:      hits,
	}
}

func codes(links []model.Link) []model.Code {
	result := make([]model.Code, 0, len(links))
	for _, link := range links {
		result = append(result, link.Code)
	}
	return result
}

// TestStore_LoadAll_Empty проверяет что отсутствующее хранилище читается как пустое
func TestStore_LoadAll_Empty(t *testing.T) {
	for _, f := range storeFactories() {
		t.Run(f.name, func(t *testing.T) {
			s := f.open(t)

			links, err := s.LoadAll()

			require.NoError(t, err)
			assert.Empty(t, links)

			// повторный вызов безопасен
			links, err = s.LoadAll()
			require.NoError(t, err)
			assert.Empty(t, links)
		})
	}
}

// TestStore_Upsert_AppendsAndReplacesInPlace проверяет порядок хранения после upsert
func TestStore_Upsert_AppendsAndReplacesInPlace(t *testing.T) {
	for _, f := range storeFactories() {
		t.Run(f.name, func(t *testing.T) {
			// Arrange
			s := f.open(t)
			require.NoError(t, s.Upsert(newLink("a", "https://a.example/", 0)))
			require.NoError(t, s.Upsert(newLink("b", "https://b.example/", 0)))
			require.NoError(t, s.Upsert(newLink("c", "https://c.example/", 0)))

			// Act
			require.NoError(t, s.Upsert(newLink("a", "https://a.example/", 3)))
			require.NoError(t, s.Upsert(newLink("d", "https://d.example/", 0)))

			// Assert
			links, err := s.LoadAll()
			require.NoError(t, err)
			assert.Equal(t, []model.Code{"a", "b", "c", "d"}, codes(links))
			assert.Equal(t, uint64(3), links[0].Hits)
			assert.Equal(t, newLink("b", "https://b.example/", 0), links[1])
		})
	}
}

// TestStore_Remove проверяет удаление и идемпотентный результат
func TestStore_Remove(t *testing.T) {
	for _, f := range storeFactories() {
		t.Run(f.name, func(t *testing.T) {
			// Arrange
			s := f.open(t)
			require.NoError(t, s.Upsert(newLink("a", "https://a.example/", 0)))
			require.NoError(t, s.Upsert(newLink("b", "https://b.example/", 0)))

			// Act
			removed, err := s.Remove("a")
			require.NoError(t, err)
			removedAgain, err := s.Remove("a")
			require.NoError(t, err)
			missing, err := s.Remove("zzz")
			require.NoError(t, err)

			// Assert
			assert.True(t, removed)
			assert.False(t, removedAgain)
			assert.False(t, missing)

			links, err := s.LoadAll()
			require.NoError(t, err)
			assert.Equal(t, []model.Code{"b"}, codes(links))
		})
	}
}

// TestStore_Filter проверяет линейный отбор записей в порядке хранения
func TestStore_Filter(t *testing.T) {
	for _, f := range storeFactories() {
		t.Run(f.name, func(t *testing.T) {
			// Arrange
			s := f.open(t)
			require.NoError(t, s.Upsert(newLink("a", "https://a.example/", 1)))
			require.NoError(t, s.Upsert(newLink("b", "https://b.example/", 0)))
			require.NoError(t, s.Upsert(newLink("c", "https://c.example/", 5)))

			// Act
			byCode, err := s.Filter(ByCode("b"))
			require.NoError(t, err)
			hit, err := s.Filter(func(link model.Link) bool { return link.Hits > 0 })
			require.NoError(t, err)
			none, err := s.Filter(ByCode("B"))
			require.NoError(t, err)

			// Assert
			assert.Equal(t, []model.Code{"b"}, codes(byCode))
			assert.Equal(t, []model.Code{"a", "c"}, codes(hit))
			assert.Empty(t, none, "Codes are case-sensitive")
		})
	}
}

// TestStore_Persistence проверяет что данные переживают повторное открытие
func TestStore_Persistence(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "db.json")
		require.NoError(t, NewFileStore(path, zap.NewNop()).Upsert(newLink("abc", "https://example.com/", 2)))

		links, err := NewFileStore(path, zap.NewNop()).LoadAll()

		require.NoError(t, err)
		assert.Equal(t, []model.Link{newLink("abc", "https://example.com/", 2)}, links)
	})

	t.Run("sqlite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "links.db")
		ds1, err := NewDatabaseStore(path, zap.NewNop())
		require.NoError(t, err)
		require.NoError(t, ds1.Upsert(newLink("abc", "https://example.com/", 2)))
		require.NoError(t, ds1.Close())

		ds2, err := NewDatabaseStore(path, zap.NewNop())
		require.NoError(t, err)
		defer ds2.Close()

		links, err := ds2.LoadAll()

		require.NoError(t, err)
		assert.Equal(t, []model.Link{newLink("abc", "https://example.com/", 2)}, links)
	})
}
