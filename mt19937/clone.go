package mt19937

import (
	"github.com/pkg/errors"
)

var ErrShortOutput = errors.New("mt19937: clone needs 624 consecutive outputs")

// Untemper inverts the output tempering, recovering the state word an output was drawn from.
func Untemper(y uint32) uint32 {
	y = undoRightShift(y, 18)
	y = undoLeftShift(y, 15, temperC)
	y = undoLeftShift(y, 7, temperB)
	y = undoRightShift(y, 11)
	return y
}

func undoRightShift(y uint32, shift uint) uint32 {
	x := y
	for c := y >> shift; c != 0; c >>= shift {
		x ^= c
	}
	return x
}

func undoLeftShift(y uint32, shift uint, mask uint32) uint32 {
	x := y
	// each pass fixes another shift-wide chunk of low bits
	for i := uint(0); i < 32; i += shift {
		x = y ^ ((x << shift) & mask)
	}
	return x
}

// Clone rebuilds a generator from the first 624 values of outputs, which must be consecutive
// draws starting on a twist boundary. The clone continues exactly where the source
// generator was after those draws.
func Clone(outputs []uint32) (*Generator, error) {
	if len(outputs) < n {
		return nil, errors.Wrapf(ErrShortOutput, "got %d", len(outputs))
	}
	g := &Generator{}
	for i := 0; i < n; i++ {
		g.state.mt[i] = Untemper(outputs[i])
	}
	g.state.index = n
	return g, nil
}
