package identifier_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"studio-backoffice/internal/identifier"
)

func fixedClock(ms int64) identifier.Clock {
	return func() time.Time { return time.UnixMilli(ms) }
}

// scriptedRand returns the queued values in order and panics when the script
// runs out, so a test failing to bound its attempts is loud.
func scriptedRand(values ...int) identifier.RandSource {
	i := 0
	return func(n int) int {
		if i >= len(values) {
			panic("scripted random source exhausted")
		}
		v := values[i]
		i++
		return v
	}
}

func TestCandidateFormat(t *testing.T) {
	gen := identifier.NewGeneratorWith(fixedClock(1716123456789), scriptedRand(7))

	code := gen.Candidate("RE")

	assert.Equal(t, "RE-456789-007", code)
	assert.Regexp(t, regexp.MustCompile(`^RE-\d{6}-\d{3}$`), code)
}

func TestCandidateFormatLongPrefix(t *testing.T) {
	gen := identifier.NewGeneratorWith(fixedClock(1716123456789), scriptedRand(42))

	assert.Equal(t, "EDIT-456789-042", gen.Candidate("EDIT"))
}

func TestCandidatePadsShortTimestamp(t *testing.T) {
	// A timestamp under six digits must be left-padded, not shortened.
	gen := identifier.NewGeneratorWith(fixedClock(123), scriptedRand(1))

	assert.Equal(t, "RE-000123-001", gen.Candidate("RE"))
}

func TestCandidateDefaultSourcesMatchFormat(t *testing.T) {
	gen := identifier.NewGenerator()

	for i := 0; i < 50; i++ {
		assert.Regexp(t, regexp.MustCompile(`^WD-\d{6}-\d{3}$`), gen.Candidate("WD"))
	}
}

func TestResolveReturnsFirstFreeCandidate(t *testing.T) {
	gen := identifier.NewGeneratorWith(fixedClock(1716123456789), scriptedRand(1, 2, 3))

	// First two candidates collide, third is free.
	calls := 0
	exists := func(ctx context.Context, code string) (bool, error) {
		calls++
		return calls <= 2, nil
	}

	code, err := gen.Resolve(context.Background(), "RE", exists, identifier.DefaultMaxAttempts)

	assert.NoError(t, err)
	assert.Equal(t, "RE-456789-003", code)
	assert.Equal(t, 3, calls)
}

func TestResolveExhaustsAfterMaxAttempts(t *testing.T) {
	values := make([]int, identifier.DefaultMaxAttempts)
	gen := identifier.NewGeneratorWith(fixedClock(1716123456789), scriptedRand(values...))

	calls := 0
	alwaysTaken := func(ctx context.Context, code string) (bool, error) {
		calls++
		return true, nil
	}

	code, err := gen.Resolve(context.Background(), "RE", alwaysTaken, identifier.DefaultMaxAttempts)

	assert.Empty(t, code)
	assert.Equal(t, identifier.DefaultMaxAttempts, calls)

	var exhausted *identifier.ExhaustedError
	assert.True(t, errors.As(err, &exhausted))
	assert.Equal(t, "RE", exhausted.Prefix)
	assert.Equal(t, identifier.DefaultMaxAttempts, exhausted.Attempts)
}

func TestResolvePropagatesStoreError(t *testing.T) {
	gen := identifier.NewGeneratorWith(fixedClock(1716123456789), scriptedRand(1))

	storeErr := errors.New("connection refused")
	exists := func(ctx context.Context, code string) (bool, error) {
		return false, storeErr
	}

	_, err := gen.Resolve(context.Background(), "RE", exists, identifier.DefaultMaxAttempts)

	assert.ErrorIs(t, err, storeErr)
}

func TestCheckManual(t *testing.T) {
	taken := map[string]bool{"RE-000001-001": true}
	exists := func(ctx context.Context, code string) (bool, error) {
		return taken[code], nil
	}

	code, err := identifier.CheckManual(context.Background(), "  RE-999999-123  ", exists)
	assert.NoError(t, err)
	assert.Equal(t, "RE-999999-123", code)

	_, err = identifier.CheckManual(context.Background(), "RE-000001-001", exists)
	assert.ErrorIs(t, err, identifier.ErrDuplicateCode)

	_, err = identifier.CheckManual(context.Background(), "   ", exists)
	assert.ErrorIs(t, err, identifier.ErrEmptyCode)

	_, err = identifier.CheckManual(context.Background(), "", exists)
	assert.ErrorIs(t, err, identifier.ErrEmptyCode)
}
