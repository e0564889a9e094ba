// Package store provides the data persistence layer abstraction for the
// notelite application.
//
// The [Store] interface keeps the HTTP layer independent of the backing
// database. The GORM-based implementation lives in the sqlstore subpackage
// and supports both a file-based SQLite deployment and PostgreSQL, selected
// by the DATABASE_URL scheme.
package store

import (
	"context"
	"errors"

	"github.com/notelite/notelite/pkg/models"
)

// ErrNotFound is returned by write operations that target a note ID with no
// matching row. Read operations signal the same condition with a nil note
// instead, so callers can distinguish "missing" from a real storage error.
var ErrNotFound = errors.New("note not found")

// ErrReadOnly is returned by write operations while the application is in
// read-only maintenance mode.
var ErrReadOnly = errors.New("store is in read-only mode")

// Store is the persistence interface for notes.
//
// All data methods take a context so request cancellation propagates to the
// underlying driver. Each operation maps to a single statement against the
// backing store; there is no multi-step transaction logic.
type Store interface {
	// Migrate brings the live database schema up to date with the declared
	// model metadata. Safe to run repeatedly.
	Migrate(ctx context.Context) error

	CreateNote(ctx context.Context, note *models.Note) error
	// GetNote returns (nil, nil) when the ID does not exist.
	GetNote(ctx context.Context, id models.NoteID) (*models.Note, error)
	ListNotes(ctx context.Context) ([]*models.Note, error)
	UpdateNote(ctx context.Context, note *models.Note) error
	// DeleteNote returns ErrNotFound when no row was deleted.
	DeleteNote(ctx context.Context, id models.NoteID) error

	Close() error
}
