package crypto

import (
	"bytes"
	"testing"
)

func TestSealRoundTrip(t *testing.T) {
	sealer := NewSealer("test-master-key")
	plaintext := []byte(`["kP9#mQ2$","vB7!nR4%"]`)

	sealed, err := sealer.Seal(plaintext)
	if err != nil {
		t.Fatalf("Seal() unexpected error: %v", err)
	}
	if bytes.Contains(sealed, plaintext) {
		t.Error("sealed blob contains plaintext")
	}

	opened, err := sealer.Open(sealed)
	if err != nil {
		t.Fatalf("Open() unexpected error: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Errorf("Open() = %q, want %q", opened, plaintext)
	}
}

func TestSealProducesDistinctBlobs(t *testing.T) {
	sealer := NewSealer("test-master-key")
	plaintext := []byte("same input")

	first, err := sealer.Seal(plaintext)
	if err != nil {
		t.Fatalf("Seal() unexpected error: %v", err)
	}
	second, err := sealer.Seal(plaintext)
	if err != nil {
		t.Fatalf("Seal() unexpected error: %v", err)
	}

	if bytes.Equal(first, second) {
		t.Error("two seals of the same plaintext produced identical blobs")
	}
}

func TestOpenWrongKey(t *testing.T) {
	sealed, err := NewSealer("key-one").Seal([]byte("secret"))
	if err != nil {
		t.Fatalf("Seal() unexpected error: %v", err)
	}

	if _, err := NewSealer("key-two").Open(sealed); err == nil {
		t.Error("Open() with wrong key should fail")
	}
}

func TestOpenTamperedBlob(t *testing.T) {
	sealer := NewSealer("test-master-key")

	sealed, err := sealer.Seal([]byte("secret"))
	if err != nil {
		t.Fatalf("Seal() unexpected error: %v", err)
	}

	sealed[len(sealed)-1] ^= 0x01
	if _, err := sealer.Open(sealed); err == nil {
		t.Error("Open() of tampered blob should fail")
	}
}

func TestOpenTruncatedBlob(t *testing.T) {
	sealer := NewSealer("test-master-key")

	for _, size := range []int{0, 8, 20} {
		if _, err := sealer.Open(make([]byte, size)); err == nil {
			t.Errorf("Open() of %d-byte blob should fail", size)
		}
	}
}
