package cmds

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/wangstu/pseudorandom/mt19937"
)

// Draw seeds a fresh generator and returns its first count outputs.
// A negative count draws nothing.
func Draw(seed uint32, count int) []uint32 {
	if count < 0 {
		count = 0
	}
	g := mt19937.New(seed)
	values := make([]uint32, count)
	for i := range values {
		values[i] = g.Uint32()
	}
	return values
}

// Generate writes the first count outputs for seed as "[v0, v1, ...]\n".
func Generate(w io.Writer, seed uint32, count int) error {
	if count < 0 {
		logrus.Debugf("negative count %d, generating nothing", count)
	}
	values := Draw(seed, count)
	logrus.Debugf("seed: %d, drew %d values", seed, len(values))

	bw := bufio.NewWriter(w)
	bw.WriteByte('[')
	var buf []byte
	for i, v := range values {
		if i > 0 {
			bw.WriteString(", ")
		}
		buf = strconv.AppendUint(buf[:0], uint64(v), 10)
		bw.Write(buf)
	}
	bw.WriteString("]\n")
	// bufio keeps the first write error, Flush reports it
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "write generated values")
	}
	return nil
}
