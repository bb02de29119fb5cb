package workload

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestSubjects(t *testing.T) {
	for _, name := range Subjects {
		t.Run(name, func(t *testing.T) {
			s, err := NewSubject(name, 16, 3, quiet)
			require.NoError(t, err)
			for _, k := range []int{5, 1, 9, 3} {
				require.True(t, s.Insert(k))
			}
			require.False(t, s.Insert(9))
			require.Equal(t, 4, s.Len())
			require.True(t, s.Contains(3))
			require.True(t, s.Delete(3))
			require.False(t, s.Delete(3))
			require.False(t, s.Contains(3))
			require.Equal(t, 3, s.Len())
			if name == "rb" || name == "treap" {
				require.Positive(t, s.Height())
			} else {
				require.Equal(t, -1, s.Height())
			}
			require.NoError(t, s.Close())
		})
	}
}

func TestNewSubject_Unknown(t *testing.T) {
	_, err := NewSubject("splay", 0, 0, quiet)
	require.ErrorIs(t, err, ErrUnknownSubject)
}

func TestRun(t *testing.T) {
	p := Params{N: 2000, Steps: 4, Seed: 1, Log: quiet}
	results, err := Run(p, Subjects)
	require.NoError(t, err)
	require.Len(t, results, len(Subjects))
	for i, r := range results {
		assert.Equal(t, Subjects[i], r.Subject)
		assert.Equal(t, p.Steps-1, r.Steps())
		assert.Equal(t, 3*(500+1000+1500), r.Ops)
		assert.Equal(t, p.N, r.Size)
		assert.Positive(t, r.Avg)
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, p, results))
	out := buf.String()
	for _, name := range Subjects {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "2,000 keys")
}

func TestSummarize(t *testing.T) {
	avg, stddev := summarize([]time.Duration{2, 4, 4, 4, 5, 5, 7, 9})
	assert.Equal(t, time.Duration(5), avg)
	assert.Equal(t, time.Duration(2), stddev)

	avg, stddev = summarize(nil)
	assert.Zero(t, avg)
	assert.Zero(t, stddev)
}
