// Package sqlstore implements the [github.com/notelite/notelite/pkg/store.Store]
// interface on top of GORM.
//
// The backing database is chosen from the DATABASE_URL scheme. A
// postgres:// or postgresql:// URL opens PostgreSQL through the pgx-based
// GORM driver; a sqlite:// URL or a bare filesystem path opens a SQLite
// database file. SQLite is the default deployment: a single-writer,
// file-based database whose consistency guarantees are delegated entirely
// to the storage engine.
//
// Schema migration goes through [SQLStore.Migrate], which delegates to
// GORM's AutoMigrate. AutoMigrate only adds missing tables, columns and
// indexes derived from the model struct tags; it never drops existing data,
// so running it repeatedly is safe.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/notelite/notelite/pkg/models"
	"github.com/notelite/notelite/pkg/store"
)

// SQLStore implements store.Store using GORM.
type SQLStore struct {
	db *gorm.DB
}

// NewStore opens a database connection for the given DATABASE_URL.
func NewStore(databaseURL string) (*SQLStore, error) {
	dialector, isSQLite, err := openDialector(databaseURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if isSQLite {
		// SQLite allows a single writer per database file. Funnel all
		// statements through one connection so concurrent requests queue on
		// the pool instead of failing with SQLITE_BUSY.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return &SQLStore{db: db}, nil
}

// openDialector maps a DATABASE_URL to a GORM dialector.
//
// The sqlite:/// form keeps the relative-path convention used by the
// service's earlier deployments, so sqlite:///notes.db opens ./notes.db.
func openDialector(databaseURL string) (gorm.Dialector, bool, error) {
	switch {
	case databaseURL == "":
		return nil, false, fmt.Errorf("database URL is empty")
	case strings.HasPrefix(databaseURL, "postgres://"),
		strings.HasPrefix(databaseURL, "postgresql://"):
		return postgres.Open(databaseURL), false, nil
	case strings.HasPrefix(databaseURL, "sqlite://"):
		path := strings.TrimPrefix(databaseURL, "sqlite://")
		path = strings.TrimPrefix(path, "/")
		if path == "" {
			return nil, false, fmt.Errorf("sqlite URL %q has no path", databaseURL)
		}
		return sqlite.Open(path), true, nil
	default:
		// Bare paths are SQLite database files.
		return sqlite.Open(databaseURL), true, nil
	}
}

// Migrate performs schema migration using GORM's AutoMigrate.
//
// It creates the note table, adds missing columns and indexes, and leaves
// existing data untouched. Fails if the database is unreachable or the DDL
// cannot be applied; the migrate subcommand turns that into a non-zero exit
// before the server is ever started.
func (s *SQLStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&models.Note{})
}

// Close closes the underlying database connection.
func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *SQLStore) CreateNote(ctx context.Context, note *models.Note) error {
	return s.db.WithContext(ctx).Create(note).Error
}

func (s *SQLStore) GetNote(ctx context.Context, id models.NoteID) (*models.Note, error) {
	var note models.Note
	err := s.db.WithContext(ctx).First(&note, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (s *SQLStore) ListNotes(ctx context.Context) ([]*models.Note, error) {
	notes := make([]*models.Note, 0)
	err := s.db.WithContext(ctx).Order("id").Find(&notes).Error
	return notes, err
}

func (s *SQLStore) UpdateNote(ctx context.Context, note *models.Note) error {
	return s.db.WithContext(ctx).Save(note).Error
}

func (s *SQLStore) DeleteNote(ctx context.Context, id models.NoteID) error {
	res := s.db.WithContext(ctx).Delete(&models.Note{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
