// Package codegen produces candidate short codes.
// Codes are drawn uniformly from a 62 symbol alphanumeric alphabet; uniqueness against
// stored codes is not checked here.
package codegen

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// Alphabet is the set of symbols a short code is made of.
	Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	// DefaultLength is the length of a short code when none is configured.
	DefaultLength = 6
	// MaxLength bounds the length of any short code.
	MaxLength = 32
)

// Generator produces fixed-length random short codes. It is safe for concurrent use.
type Generator struct {
	length int
}

// New returns a Generator for codes of the given length.
// A length outside (0, MaxLength] falls back to DefaultLength.
func New(length int) *Generator {
	if length <= 0 || length > MaxLength {
		length = DefaultLength
	}

	return &Generator{length: length}
}

// Length returns the length of generated codes.
func (g *Generator) Length() int {
	return g.length
}

// Generate returns a new candidate short code.
func (g *Generator) Generate() (string, error) {
	const op = "codegen.Generator.Generate"

	code, err := gonanoid.Generate(Alphabet, g.length)
	if err != nil {
		return "", fmt.Errorf("%s: failed to generate short code: %w", op, err)
	}

	return code, nil
}

// IsValid reports whether code is made only of Alphabet symbols and is at most
// MaxLength long. The configured generator length is not checked.
func IsValid(code string) bool {
	if code == "" || len(code) > MaxLength {
		return false
	}

	for _, c := range code {
		if !strings.ContainsRune(Alphabet, c) {
			return false
		}
	}

	return true
}
