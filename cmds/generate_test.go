package cmds

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	cases := []struct {
		seed  uint32
		count int
		want  string
	}{
		{0, 5, "[2357136044, 2546248239, 3071714933, 3626093760, 2588848963]\n"},
		{42, 3, "[1608637542, 3421126067, 4083286876]\n"},
		{42, 1, "[1608637542]\n"},
		{42, 0, "[]\n"},
		{42, -3, "[]\n"},
		{0xffffffff, 2, "[419326371, 479346978]\n"},
	}
	for _, c := range cases {
		var out bytes.Buffer
		require.NoError(t, Generate(&out, c.seed, c.count))
		assert.Equal(t, c.want, out.String(), "seed %d count %d", c.seed, c.count)
	}
}

func TestGenerateLargeCount(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Generate(&out, 5489, 10000))
	s := out.String()
	require.True(t, strings.HasPrefix(s, "[3499211612, "))
	require.True(t, strings.HasSuffix(s, ", 4123659995]\n"))
	assert.Len(t, strings.Split(s, ", "), 10000)
}

func TestDrawPrefix(t *testing.T) {
	assert.Empty(t, Draw(1, 0))
	assert.Empty(t, Draw(1, -1))
	assert.Equal(t, Draw(1, 3), Draw(1, 700)[:3])
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestGenerateWriteError(t *testing.T) {
	err := Generate(failWriter{}, 0, 3)
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}
