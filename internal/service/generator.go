package service

import (
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	defaultLength int
}

// NewGeneratorService creates a new GeneratorService. defaultLength is used
// when a request leaves the length unset; values below the generator minimum
// fall back to the built-in default.
func NewGeneratorService(defaultLength int) *GeneratorService {
	if defaultLength < crypto.MinLength {
		defaultLength = crypto.DefaultOptions().Length
	}
	return &GeneratorService{defaultLength: defaultLength}
}

// Generate produces a single password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	password, err := crypto.Generate(s.options(req))
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}, nil
}

// GenerateBatch produces count independently sampled passwords under one set
// of options. Any single failure fails the whole batch.
func (s *GeneratorService) GenerateBatch(req model.BatchRequest) (model.BatchResponse, error) {
	passwords, err := crypto.GenerateMany(s.options(req.GenerateRequest), req.Count)
	if err != nil {
		return model.BatchResponse{}, err
	}

	return model.BatchResponse{
		Passwords: passwords,
		Count:     len(passwords),
	}, nil
}

// options maps a request onto generator options, applying defaults for
// unset fields.
func (s *GeneratorService) options(req model.GenerateRequest) crypto.Options {
	opts := crypto.Options{
		Length:    req.Length,
		Lowercase: boolOrDefault(req.Lowercase, true),
		Uppercase: boolOrDefault(req.Uppercase, true),
		Digits:    boolOrDefault(req.Digits, true),
		Special:   boolOrDefault(req.Special, true),
	}

	if opts.Length == 0 {
		opts.Length = s.defaultLength
	}

	return opts
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
