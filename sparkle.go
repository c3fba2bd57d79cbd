package signalwall

import "time"

const (
	SparkleCount = 8
	SparkleTTL   = 800 * time.Millisecond

	// sparkleSpread is the width of the square the particles drift within,
	// centred on the click.
	sparkleSpread = 100
)

// SparklePalette holds the particle colors.
var SparklePalette = []string{"#FF0000", "#FFA500", "#FFFF00", "#FFC0CB", "#FFFFFF"}

// Particle is one decorative spark. TX and TY are the drift in pixels.
type Particle struct {
	X, Y   int
	Color  string
	TX, TY float64
	TTL    time.Duration
}

// Rand is the randomness Burst needs; *rand.Rand from math/rand/v2 fits.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Burst spawns SparkleCount particles at (x, y).
func Burst(x, y int, rng Rand) []Particle {
	out := make([]Particle, SparkleCount)
	for i := range out {
		out[i] = Particle{
			X:     x,
			Y:     y,
			Color: SparklePalette[rng.IntN(len(SparklePalette))],
			TX:    (rng.Float64() - 0.5) * sparkleSpread,
			TY:    (rng.Float64() - 0.5) * sparkleSpread,
			TTL:   SparkleTTL,
		}
	}
	return out
}
