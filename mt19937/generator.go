package mt19937

import (
	"math"
	"math/rand"
)

// Generator draws from a State in place.
type Generator struct {
	state State
}

var _ rand.Source64 = (*Generator)(nil)

func New(seed uint32) *Generator {
	return &Generator{state: Seed(seed)}
}

// Uint32 returns the next 32-bit output.
func (g *Generator) Uint32() uint32 {
	return g.state.next()
}

// State returns a copy of the current state.
func (g *Generator) State() State {
	return g.state
}

// Seed reseeds with the low 32 bits of seed, as an unsigned 32-bit seed conversion would.
func (g *Generator) Seed(seed int64) {
	g.state = Seed(uint32(seed))
}

// Uint64 joins two draws, high word first.
func (g *Generator) Uint64() uint64 {
	hi := uint64(g.Uint32())
	lo := uint64(g.Uint32())
	return hi<<32 | lo
}

func (g *Generator) Int63() int64 {
	return int64(g.Uint64() & math.MaxInt64)
}
