package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/export"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
)

var (
	ErrPasswordsRequired = errors.New("at least one password is required")
	ErrArchiveNotFound   = errors.New("archive not found")
)

// ArchiveService handles sealed storage of generated batches. Batches are
// encrypted before they reach the repository and only decrypted on export.
type ArchiveService struct {
	repo   *repository.ArchiveRepository
	sealer *crypto.Sealer
}

// NewArchiveService creates a new ArchiveService.
func NewArchiveService(repo *repository.ArchiveRepository, sealer *crypto.Sealer) *ArchiveService {
	return &ArchiveService{repo: repo, sealer: sealer}
}

// Save seals a batch and stores it, returning the stored archive metadata.
func (s *ArchiveService) Save(ctx context.Context, req model.ArchiveRequest) (model.ArchiveResponse, error) {
	if len(req.Passwords) == 0 {
		return model.ArchiveResponse{}, ErrPasswordsRequired
	}

	plaintext, err := json.Marshal(req.Passwords)
	if err != nil {
		return model.ArchiveResponse{}, err
	}

	sealed, err := s.sealer.Seal(plaintext)
	if err != nil {
		return model.ArchiveResponse{}, fmt.Errorf("sealing batch: %w", err)
	}

	archiveID, err := newArchiveID()
	if err != nil {
		return model.ArchiveResponse{}, err
	}

	archive := model.Archive{
		ArchiveID:  archiveID,
		Label:      req.Label,
		SealedData: sealed,
		Count:      len(req.Passwords),
	}

	if err := s.repo.Insert(ctx, &archive); err != nil {
		return model.ArchiveResponse{}, err
	}

	return model.ArchiveResponse{
		ArchiveID: archive.ArchiveID,
		Label:     archive.Label,
		Count:     archive.Count,
		CreatedAt: archive.CreatedAt,
	}, nil
}

// List returns metadata for all stored archives, most recent first.
func (s *ArchiveService) List(ctx context.Context) ([]model.ArchiveResponse, error) {
	archives, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.ArchiveResponse, len(archives))
	for i, a := range archives {
		result[i] = model.ArchiveResponse{
			ArchiveID: a.ArchiveID,
			Label:     a.Label,
			Count:     a.Count,
			CreatedAt: a.CreatedAt,
		}
	}
	return result, nil
}

// Export unseals an archive and writes it in the plain-text report format.
func (s *ArchiveService) Export(ctx context.Context, archiveID string, w io.Writer) error {
	archive, err := s.repo.GetByArchiveID(ctx, archiveID)
	if err != nil {
		if errors.Is(err, repository.ErrArchiveNotFound) {
			return ErrArchiveNotFound
		}
		return err
	}

	plaintext, err := s.sealer.Open(archive.SealedData)
	if err != nil {
		return fmt.Errorf("unsealing archive %s: %w", archiveID, err)
	}

	var passwords []string
	if err := json.Unmarshal(plaintext, &passwords); err != nil {
		return fmt.Errorf("decoding archive %s: %w", archiveID, err)
	}

	return export.Write(w, passwords)
}

// Delete soft-deletes an archive.
func (s *ArchiveService) Delete(ctx context.Context, archiveID string) error {
	err := s.repo.SoftDelete(ctx, archiveID)
	if errors.Is(err, repository.ErrArchiveNotFound) {
		return ErrArchiveNotFound
	}
	return err
}

// newArchiveID returns a random 16-byte hex identifier.
func newArchiveID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating archive id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
