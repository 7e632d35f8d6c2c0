package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/avc-dev/urlshort/internal/migrations"
	"github.com/avc-dev/urlshort/internal/model"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // Регистрируем драйвер sqlite для database/sql
)

// DatabaseStore хранит ссылки в файле SQLite.
// Порядок хранения задается id строки, upsert существующего кода не меняет id.
type DatabaseStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewDatabaseStore открывает базу filePath и применяет миграции
func NewDatabaseStore(filePath string, logger *zap.Logger) (*DatabaseStore, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// одно соединение, чтобы не ловить SQLITE_BUSY внутри процесса
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	migrator := migrations.NewMigrator(db, logger)
	if err := migrator.RunUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	version, dirty, err := migrator.GetVersion()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read schema version: %w", err)
	}
	if dirty {
		db.Close()
		return nil, fmt.Errorf("schema version %d is dirty", version)
	}
	logger.Debug("Database schema ready", zap.String("path", filePath), zap.Uint("version", version))

	return &DatabaseStore{
		db:     db,
		logger: logger,
	}, nil
}

// Close закрывает соединение с базой
func (ds *DatabaseStore) Close() error {
	return ds.db.Close()
}

// LoadAll возвращает все записи в порядке хранения
func (ds *DatabaseStore) LoadAll() ([]model.Link, error) {
	query := `
		SELECT code, url, created_at, hits
		FROM links
		ORDER BY id
	`

	rows, err := ds.db.QueryContext(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	links := make([]model.Link, 0)
	for rows.Next() {
		var (
			link      model.Link
			createdAt string
		)

		if err := rows.Scan(&link.Code, &link.URL, &createdAt, &link.Hits); err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}

		link.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for %s: %w", link.Code, err)
		}

		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate links: %w", err)
	}

	return links, nil
}

// Upsert добавляет запись или обновляет существующую на ее месте
func (ds *DatabaseStore) Upsert(link model.Link) error {
	query := `
		INSERT INTO links (code, url, created_at, hits)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (code) DO UPDATE SET
			url = excluded.url,
			created_at = excluded.created_at,
			hits = excluded.hits
	`

	_, err := ds.db.ExecContext(context.Background(), query,
		string(link.Code), string(link.URL), link.CreatedAtString(), int64(link.Hits))
	if err != nil {
		return fmt.Errorf("failed to upsert link %s: %w", link.Code, err)
	}

	return nil
}

// Remove удаляет запись по коду и сообщает, была ли она
func (ds *DatabaseStore) Remove(code model.Code) (bool, error) {
	result, err := ds.db.ExecContext(context.Background(), `DELETE FROM links WHERE code = ?`, string(code))
	if err != nil {
		return false, fmt.Errorf("failed to delete link %s: %w", code, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

// Filter возвращает записи, удовлетворяющие предикату, в порядке хранения
func (ds *DatabaseStore) Filter(pred Predicate) ([]model.Link, error) {
	links, err := ds.LoadAll()
	if err != nil {
		return nil, err
	}

	return filterLinks(links, pred), nil
}
