package dice

import (
	"math/rand"
	"time"
)

const Faces = 6

// Source supplies die rolls, uniform in [0, n).
type Source interface {
	Intn(n int) int
}

// NewSource returns a math/rand backed source. Zero seeds from the clock,
// any other seed makes rolls reproducible.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
