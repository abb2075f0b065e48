// Package tracking issues the public identifiers of aid requests.
//
// A tracking number is the literal prefix "B40-" followed by six uppercase
// hexadecimal characters taken from a random UUID. It is the only identifier
// shared outside the system and never changes once assigned.
package tracking

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"

	domainerrors "foodaid/internal/domain/errors"
	"foodaid/internal/errors"
)

// Prefix is the fixed leading part of every tracking number.
const Prefix = "B40-"

const randomLength = 6

// DefaultMaxAttempts bounds GenerateUnique when no limit is configured.
const DefaultMaxAttempts = 5

var pattern = regexp.MustCompile(`^B40-[0-9A-F]{6}$`)

// Source produces random UUIDs.
type Source func() uuid.UUID

// ExistsFunc reports whether a tracking number is already taken.
type ExistsFunc func(ctx context.Context, trackingNumber string) (bool, error)

// Generator issues tracking numbers.
type Generator struct {
	source      Source
	maxAttempts int
}

// NewGenerator returns a generator drawing entropy from uuid.New.
func NewGenerator(maxAttempts int) *Generator {
	return NewGeneratorWithSource(uuid.New, maxAttempts)
}

// NewGeneratorWithSource returns a generator drawing entropy from source.
func NewGeneratorWithSource(source Source, maxAttempts int) *Generator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	return &Generator{source: source, maxAttempts: maxAttempts}
}

// Generate returns a fresh tracking number. Uniqueness is not checked.
func (g *Generator) Generate() string {
	id := g.source()
	hex := strings.ReplaceAll(id.String(), "-", "")

	return Prefix + strings.ToUpper(hex[:randomLength])
}

// GenerateUnique draws tracking numbers until exists reports a free one.
// The format is the same as Generate; only the collision retry is added.
func (g *Generator) GenerateUnique(ctx context.Context, exists ExistsFunc) (string, error) {
	for range g.maxAttempts {
		candidate := g.Generate()

		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", errors.Wrap(err, "check tracking number")
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", domainerrors.ErrTrackingNumberExhausted
}

// Validate reports whether s has the tracking number format.
func Validate(s string) bool {
	return pattern.MatchString(s)
}
