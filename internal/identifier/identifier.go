package identifier

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// Clock supplies the current time. Injected so candidate generation is
// deterministic under test.
type Clock func() time.Time

// RandSource returns a random integer in [0, n).
type RandSource func(n int) int

// Generator produces human-readable candidate codes of the form
// PREFIX-######-### where the middle segment is the last six digits of the
// unix-millisecond timestamp and the tail is a random three-digit number.
// A candidate is never guaranteed unique; Resolve handles that.
type Generator struct {
	clock Clock
	rand  RandSource
}

func NewGenerator() *Generator {
	return &Generator{
		clock: time.Now,
		rand:  cryptoRandInt,
	}
}

// NewGeneratorWith builds a generator around explicit time and random
// sources. Used by tests and anywhere retry behavior must be scripted.
func NewGeneratorWith(clock Clock, rand RandSource) *Generator {
	return &Generator{clock: clock, rand: rand}
}

func cryptoRandInt(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failing means the platform entropy source is broken;
		// fall back to the timestamp so generation still terminates.
		return int(time.Now().UnixNano() % int64(n))
	}
	return int(v.Int64())
}

// Candidate composes a single candidate code for the given category prefix.
func (g *Generator) Candidate(prefix string) string {
	ms := fmt.Sprintf("%d", g.clock().UnixMilli())
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	} else {
		ms = strings.Repeat("0", 6-len(ms)) + ms
	}
	return fmt.Sprintf("%s-%s-%03d", prefix, ms, g.rand(1000))
}
