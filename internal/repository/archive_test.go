package repository

import (
	"testing"
)

func TestNewArchiveRepository(t *testing.T) {
	repo := NewArchiveRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil ArchiveRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestSentinelErrors(t *testing.T) {
	if ErrArchiveNotFound == nil {
		t.Fatal("ErrArchiveNotFound should not be nil")
	}
	if ErrArchiveNotFound.Error() != "archive not found" {
		t.Fatalf("unexpected error message: %s", ErrArchiveNotFound.Error())
	}
}
