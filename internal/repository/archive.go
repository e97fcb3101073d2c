package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/passforge/passforge-go/internal/model"
)

var ErrArchiveNotFound = errors.New("archive not found")

// ArchiveRepository handles sealed-batch persistence operations.
type ArchiveRepository struct {
	db *sql.DB
}

// NewArchiveRepository creates a new ArchiveRepository.
func NewArchiveRepository(db *sql.DB) *ArchiveRepository {
	return &ArchiveRepository{db: db}
}

// Insert stores a new sealed batch.
func (r *ArchiveRepository) Insert(ctx context.Context, archive *model.Archive) error {
	query := `INSERT INTO archives (archive_id, label, sealed_data, password_count)
		VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		archive.ArchiveID,
		archive.Label,
		archive.SealedData,
		archive.Count,
	)
	if err != nil {
		return err
	}

	archive.ID, err = result.LastInsertId()
	return err
}

// GetByArchiveID retrieves a non-deleted archive by its public identifier.
func (r *ArchiveRepository) GetByArchiveID(ctx context.Context, archiveID string) (*model.Archive, error) {
	query := `SELECT id, archive_id, label, sealed_data, password_count, created_at, deleted
		FROM archives WHERE archive_id = ? AND deleted = FALSE`

	archive := &model.Archive{}
	err := r.db.QueryRowContext(ctx, query, archiveID).Scan(
		&archive.ID, &archive.ArchiveID, &archive.Label, &archive.SealedData,
		&archive.Count, &archive.CreatedAt, &archive.Deleted,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArchiveNotFound
		}
		return nil, err
	}

	return archive, nil
}

// List retrieves all non-deleted archives, most recent first. Sealed data is
// not loaded; listings never need the ciphertext.
func (r *ArchiveRepository) List(ctx context.Context) ([]model.Archive, error) {
	query := `SELECT id, archive_id, label, password_count, created_at, deleted
		FROM archives WHERE deleted = FALSE ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var archives []model.Archive
	for rows.Next() {
		var a model.Archive
		if err := rows.Scan(
			&a.ID, &a.ArchiveID, &a.Label, &a.Count, &a.CreatedAt, &a.Deleted,
		); err != nil {
			return nil, err
		}
		archives = append(archives, a)
	}

	return archives, rows.Err()
}

// SoftDelete marks an archive as deleted. The row is kept so identifiers are
// never reused.
func (r *ArchiveRepository) SoftDelete(ctx context.Context, archiveID string) error {
	query := `UPDATE archives SET deleted = TRUE WHERE archive_id = ? AND deleted = FALSE`

	result, err := r.db.ExecContext(ctx, query, archiveID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrArchiveNotFound
	}

	return nil
}
