package signalwall

import (
	"math/rand/v2"
	"testing"
)

type fixedRand struct {
	i int
	f float64
}

func (r fixedRand) IntN(n int) int { return r.i % n }
func (r fixedRand) Float64() float64 { return r.f }

func TestBurst(t *testing.T) {
	ps := Burst(120, 45, fixedRand{i: 1, f: 1})
	if len(ps) != SparkleCount {
		t.Fatalf("len = %d, want %d", len(ps), SparkleCount)
	}
	for _, p := range ps {
		if p.X != 120 || p.Y != 45 {
			t.Errorf("origin = (%d, %d)", p.X, p.Y)
		}
		if p.Color != "#FFA500" {
			t.Errorf("Color = %q", p.Color)
		}
		if p.TX != 50 || p.TY != 50 {
			t.Errorf("drift = (%v, %v), want (50, 50)", p.TX, p.TY)
		}
		if p.TTL != SparkleTTL {
			t.Errorf("TTL = %v", p.TTL)
		}
	}
}

func TestBurstStaysInPalette(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	palette := map[string]bool{}
	for _, c := range SparklePalette {
		palette[c] = true
	}
	for range 50 {
		for _, p := range Burst(0, 0, rng) {
			if !palette[p.Color] {
				t.Fatalf("color %q not in palette", p.Color)
			}
			if p.TX < -50 || p.TX >= 50 || p.TY < -50 || p.TY >= 50 {
				t.Fatalf("drift (%v, %v) out of range", p.TX, p.TY)
			}
		}
	}
}
