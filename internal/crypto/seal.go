package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

var ErrCiphertextTooShort = errors.New("ciphertext too short")

// KDFParams configures the Argon2id key derivation.
type KDFParams struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultKDFParams returns recommended Argon2id parameters for deriving the
// at-rest encryption key from the configured master key.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// Sealer encrypts and decrypts archived password batches with AES-256-GCM
// under a key derived from a master passphrase. Each sealed blob carries its
// own random salt and nonce, so two seals of the same plaintext differ.
type Sealer struct {
	masterKey []byte
	params    KDFParams
}

// NewSealer creates a Sealer for the given master passphrase.
func NewSealer(masterKey string) *Sealer {
	return &Sealer{
		masterKey: []byte(masterKey),
		params:    DefaultKDFParams(),
	}
}

// Seal encrypts plaintext. The output layout is salt || nonce || ciphertext.
func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	salt := make([]byte, s.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}

	gcm, err := s.aead(salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}

	out := make([]byte, 0, len(salt)+len(nonce)+len(plaintext)+gcm.Overhead())
	out = append(out, salt...)
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, plaintext, nil), nil
}

// Open decrypts a blob produced by Seal.
func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	saltLen := int(s.params.SaltLength)
	if len(sealed) < saltLen {
		return nil, ErrCiphertextTooShort
	}
	salt := sealed[:saltLen]

	gcm, err := s.aead(salt)
	if err != nil {
		return nil, err
	}

	if len(sealed) < saltLen+gcm.NonceSize() {
		return nil, ErrCiphertextTooShort
	}
	nonce := sealed[saltLen : saltLen+gcm.NonceSize()]

	plaintext, err := gcm.Open(nil, nonce, sealed[saltLen+gcm.NonceSize():], nil)
	if err != nil {
		return nil, fmt.Errorf("opening sealed data: %w", err)
	}
	return plaintext, nil
}

// aead derives the AES key for the given salt and builds the GCM cipher.
func (s *Sealer) aead(salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(s.masterKey, salt, s.params.Iterations, s.params.Memory, s.params.Parallelism, s.params.KeyLength)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	return cipher.NewGCM(block)
}
