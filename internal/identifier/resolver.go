package identifier

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// DefaultMaxAttempts bounds the generate-and-check loop.
const DefaultMaxAttempts = 10

var (
	// ErrDuplicateCode means a code conflicts with an existing record,
	// either a manually entered one or a race-condition double claim
	// surfaced by the storage unique constraint at insert time.
	ErrDuplicateCode = errors.New("code already in use")

	// ErrEmptyCode means a manually entered code was blank or
	// whitespace-only.
	ErrEmptyCode = errors.New("code is empty")
)

// ExhaustedError is returned when every generated candidate collided.
// Collisions are vanishingly rare per attempt, so repeated exhaustion points
// at a systemic problem (broken random source) worth surfacing to an
// operator.
type ExhaustedError struct {
	Prefix   string
	Attempts int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("could not generate a unique code for prefix %q after %d attempts", e.Prefix, e.Attempts)
}

// ExistsFunc is the persistence collaborator: an exact-match existence check
// for a code within one entity type. The storage layer must back it with a
// unique constraint on the code column.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// Resolve loops up to maxAttempts times generating candidates and checking
// them against the store, returning the first free one. Attempts run
// sequentially; the store's uniqueness index is the sole authority and no
// "known free" candidate is ever cached across calls. The window between a
// successful check and the eventual insert is unguarded, so the insert site
// must still map a unique-constraint violation onto ErrDuplicateCode.
func (g *Generator) Resolve(ctx context.Context, prefix string, exists ExistsFunc, maxAttempts int) (string, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	for i := 0; i < maxAttempts; i++ {
		candidate := g.Candidate(prefix)
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("code existence check failed: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", &ExhaustedError{Prefix: prefix, Attempts: maxAttempts}
}

// CheckManual validates a user-typed code before submission. It trims
// whitespace and returns the normalized code, ErrEmptyCode for blank input,
// or ErrDuplicateCode when the code is already claimed.
func CheckManual(ctx context.Context, raw string, exists ExistsFunc) (string, error) {
	code := strings.TrimSpace(raw)
	if code == "" {
		return "", ErrEmptyCode
	}
	taken, err := exists(ctx, code)
	if err != nil {
		return "", fmt.Errorf("code existence check failed: %w", err)
	}
	if taken {
		return "", ErrDuplicateCode
	}
	return code, nil
}
