package hankel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-hankel/internal/mathutil"
	"github.com/tphakala/go-hankel/internal/testutil"
	"github.com/tphakala/go-hankel/logging"
)

// TestPartition_Coverage tests blocks are contiguous, non-overlapping and
// cover exactly [0, n), with the remainder in the last block.
func TestPartition_Coverage(t *testing.T) {
	for n := 0; n <= 64; n++ {
		for workers := 1; workers <= 12; workers++ {
			blocks := partition(n, workers)
			require.Len(t, blocks, workers, "n=%d workers=%d", n, workers)

			assert.Equal(t, 0, blocks[0].start, "n=%d workers=%d", n, workers)
			for i := 1; i < len(blocks); i++ {
				assert.Equal(t, blocks[i-1].end, blocks[i].start,
					"gap or overlap between blocks %d and %d (n=%d workers=%d)", i-1, i, n, workers)
			}
			assert.Equal(t, n, blocks[len(blocks)-1].end, "n=%d workers=%d", n, workers)

			size := n / workers
			for i, b := range blocks[:len(blocks)-1] {
				assert.Equal(t, size, b.len(), "block %d (n=%d workers=%d)", i, n, workers)
			}
			assert.Equal(t, size+n%workers, blocks[len(blocks)-1].len(), "n=%d workers=%d", n, workers)
		}
	}
}

func TestPartition_EvenSplit(t *testing.T) {
	blocks := partition(12, 4)
	assert.Equal(t, []block{{0, 3}, {3, 6}, {6, 9}, {9, 12}}, blocks)
}

func TestPartition_Remainder(t *testing.T) {
	blocks := partition(10, 3)
	assert.Equal(t, []block{{0, 3}, {3, 6}, {6, 10}}, blocks)
}

func TestPartition_NonPositiveWorkers(t *testing.T) {
	assert.Equal(t, []block{{0, 5}}, partition(5, 0))
	assert.Equal(t, []block{{0, 5}}, partition(5, -3))
}

// TestEvaluateParallel_BlockOrder tests reassembly follows index order
// regardless of which block finishes first.
func TestEvaluateParallel_BlockOrder(t *testing.T) {
	const n = 101
	zeros := mathutil.BesselJ0Zeros(n + 1)
	h := randomInput(n, 21)

	coeffs, err := newCoefficients(h, 1, zeros, 0)
	require.NoError(t, err)

	serial, err := coeffs.evaluateSerial(context.Background())
	require.NoError(t, err)

	for _, workers := range []int{2, 5, 7, 100, 1000} {
		parallel, err := coeffs.evaluateParallel(context.Background(), workers, logging.NoOpLogger{})
		require.NoError(t, err)
		testutil.AssertComplexInDelta(t, serial, parallel,
			testutil.EquivalenceTolerance*(1+testutil.MaxAbs(serial)), "workers=%d", workers)
	}
}

// TestEvaluateParallel_FailureDiscardsOutput tests a failing block aborts
// the whole evaluation.
func TestEvaluateParallel_FailureDiscardsOutput(t *testing.T) {
	const n = 64
	zeros := mathutil.BesselJ0Zeros(n + 1)
	h := randomInput(n, 23)

	coeffs, err := newCoefficients(h, 1, zeros, 0)
	require.NoError(t, err)

	// Poison one row's normalization so only the block holding it fails
	coeffs.jm[50] = 0

	out, err := coeffs.evaluateParallel(context.Background(), 4, logging.NoOpLogger{})
	require.ErrorIs(t, err, ErrNumerical)
	assert.Contains(t, err.Error(), "index 50")
	assert.Contains(t, err.Error(), "block 3")
	assert.Nil(t, out)
}

func BenchmarkTransform(b *testing.B) {
	const n = 512
	zeros := mathutil.BesselJ0Zeros(n + 1)
	h := randomInput(n, 1)

	b.Run("Serial", func(b *testing.B) {
		cfg := &Config{Parallel: false}
		for b.Loop() {
			_, _ = Transform(h, 1, zeros, cfg)
		}
	})

	b.Run("Parallel", func(b *testing.B) {
		cfg := &Config{Parallel: true}
		for b.Loop() {
			_, _ = Transform(h, 1, zeros, cfg)
		}
	})

	b.Run("Truncated", func(b *testing.B) {
		cfg := &Config{Parallel: true, Zeros: n / 4}
		for b.Loop() {
			_, _ = Transform(h, 1, zeros, cfg)
		}
	})
}
