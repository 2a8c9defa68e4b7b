package utils

import (
	"strconv"

	"github.com/pkg/errors"
)

var ErrInvalidArgument = errors.New("invalid argument")

// ParseInt32 parses a whole base-10 string into an int32.
// Non-numeric input and out-of-range values are both invalid.
func ParseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidArgument, "parse %q: %v", s, err)
	}
	return int32(v), nil
}

// SeedFromInt32 reinterprets a signed seed as unsigned, so -1 seeds like 0xffffffff.
func SeedFromInt32(seed int32) uint32 {
	return uint32(seed)
}
