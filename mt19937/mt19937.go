package mt19937

const (
	n          = 624
	m          = 397
	multiplier = 1812433253
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	temperB    = 0x9d2c5680
	temperC    = 0xefc60000
)

// State is the MT19937 internal state: 624 words and the position of the next word to temper.
// It is a value type, copying a State forks the stream.
type State struct {
	mt    [n]uint32
	index int
}

// Seed expands seed into a full state with the reference linear recurrence.
func Seed(seed uint32) State {
	var s State
	s.mt[0] = seed
	for i := 1; i < n; i++ {
		s.mt[i] = multiplier*(s.mt[i-1]^(s.mt[i-1]>>30)) + uint32(i)
	}
	s.index = n
	return s
}

// Next returns the next output and the state that follows it. s is left untouched.
func (s State) Next() (uint32, State) {
	v := s.next()
	return v, s
}

func (s *State) next() uint32 {
	if s.index >= n {
		s.twist()
	}
	y := s.mt[s.index]
	s.index++
	return temper(y)
}

// twist regenerates the whole block of 624 words
func (s *State) twist() {
	for i := 0; i < n; i++ {
		y := (s.mt[i] & upperMask) | (s.mt[(i+1)%n] & lowerMask)
		v := s.mt[(i+m)%n] ^ (y >> 1)
		if y&1 != 0 {
			v ^= matrixA
		}
		s.mt[i] = v
	}
	s.index = 0
}

func temper(y uint32) uint32 {
	y ^= y >> 11
	y ^= (y << 7) & temperB
	y ^= (y << 15) & temperC
	y ^= y >> 18
	return y
}
