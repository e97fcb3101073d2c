package service

import (
	"context"
	"testing"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
)

func newTestArchiveService() *ArchiveService {
	return NewArchiveService(repository.NewArchiveRepository(nil), crypto.NewSealer("test-master-key"))
}

func TestSave_EmptyBatch(t *testing.T) {
	svc := newTestArchiveService()

	_, err := svc.Save(context.Background(), model.ArchiveRequest{Label: "empty"})
	if err != ErrPasswordsRequired {
		t.Errorf("expected ErrPasswordsRequired, got %v", err)
	}
}

func TestNewArchiveID(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id, err := newArchiveID()
		if err != nil {
			t.Fatalf("newArchiveID() unexpected error: %v", err)
		}
		if len(id) != 32 {
			t.Fatalf("newArchiveID() length = %d, want 32", len(id))
		}
		if seen[id] {
			t.Fatalf("duplicate archive id: %s", id)
		}
		seen[id] = true
	}
}
