package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// Character classes. The four alphabets are pairwise disjoint and together
// form the full symbol alphabet the generator can draw from.
const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	specialChars   = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	MinLength = 4
	MaxLength = 128

	// maxAttempts bounds the regeneration loop when the pattern check keeps
	// rejecting candidates.
	maxAttempts = 50
)

var (
	ErrLengthTooShort      = errors.New("password length must be at least 4")
	ErrLengthTooLong       = errors.New("password length must be at most 128")
	ErrNoCharacterTypes    = errors.New("at least one character type must be selected")
	ErrLengthInsufficient  = errors.New("password length must be at least equal to the number of selected character types")
	ErrCountTooSmall       = errors.New("password count must be at least 1")
	ErrGenerationExhausted = errors.New("could not generate a password without predictable patterns")
)

// Options configures the password generator.
type Options struct {
	Length    int
	Lowercase bool
	Uppercase bool
	Digits    bool
	Special   bool
}

// DefaultOptions returns sensible defaults: 16 characters with all classes enabled.
func DefaultOptions() Options {
	return Options{
		Length:    16,
		Lowercase: true,
		Uppercase: true,
		Digits:    true,
		Special:   true,
	}
}

// Generate creates a cryptographically secure random password based on the
// given options. Every selected character class is guaranteed at least one
// representative in the result. Candidates containing predictable patterns
// (see HasPredictablePattern) are discarded and redrawn, up to maxAttempts.
func Generate(opts Options) (string, error) {
	if opts.Length < MinLength {
		return "", ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}

	// Build the character pool and collect required sets.
	var pool string
	var requiredSets []string

	if opts.Lowercase {
		pool += lowercaseChars
		requiredSets = append(requiredSets, lowercaseChars)
	}
	if opts.Uppercase {
		pool += uppercaseChars
		requiredSets = append(requiredSets, uppercaseChars)
	}
	if opts.Digits {
		pool += digitChars
		requiredSets = append(requiredSets, digitChars)
	}
	if opts.Special {
		pool += specialChars
		requiredSets = append(requiredSets, specialChars)
	}

	if len(requiredSets) == 0 {
		return "", ErrNoCharacterTypes
	}
	// Never truncate the required set: a length shorter than the number of
	// selected classes is rejected rather than producing an oversized result.
	if opts.Length < len(requiredSets) {
		return "", ErrLengthInsufficient
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate, err := drawCandidate(opts.Length, pool, requiredSets)
		if err != nil {
			return "", err
		}
		if !HasPredictablePattern(candidate) {
			return candidate, nil
		}
	}

	return "", ErrGenerationExhausted
}

// GenerateMany produces count independent passwords under the same options.
// A failure in any single generation aborts the whole batch.
func GenerateMany(opts Options, count int) ([]string, error) {
	if count < 1 {
		return nil, ErrCountTooSmall
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		password, err := Generate(opts)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, password)
	}

	return passwords, nil
}

// drawCandidate performs one full draw: one guaranteed character per selected
// class, the remainder from the full pool, then a secure shuffle so the
// guaranteed characters are not predictably placed at the front.
func drawCandidate(length int, pool string, requiredSets []string) (string, error) {
	result := make([]byte, length)

	for i, charset := range requiredSets {
		ch, err := randChar(charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	for i := len(requiredSets); i < length; i++ {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}
