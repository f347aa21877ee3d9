//go:build unit

package probe

import (
	"fmt"
	"testing"

	"github.com/gostonefire/hashsim/crt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestCaseSequence struct {
	crtName   string
	crt       crt.Strategy
	tableSize int64
	hf1Value  int64
	want      []int64
}

func TestSequence(t *testing.T) {
	t.Run("produces probe sequences for all CRTs", func(t *testing.T) {
		// Prepare
		tests := []TestCaseSequence{
			{crtName: "SeparateChaining", crt: crt.SeparateChaining, tableSize: 5, hf1Value: 2, want: []int64{2}},
			{crtName: "LinearProbing", crt: crt.LinearProbing, tableSize: 7, hf1Value: 3, want: []int64{3, 4, 5, 6, 0, 1, 2}},
			{crtName: "QuadraticProbing", crt: crt.QuadraticProbing, tableSize: 7, hf1Value: 3, want: []int64{3, 4, 0, 5, 5, 0, 4}},
			{crtName: "DoubleHashing", crt: crt.DoubleHashing, tableSize: 10, hf1Value: 3, want: []int64{3, 7, 1, 5, 9, 3, 7, 1, 5, 9}},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("sequence for %s", test.crtName), func(t *testing.T) {
				// Prepare
				algorithm, err := New(test.crt, test.tableSize)
				require.NoError(t, err, "creates algorithm")

				// Execute
				sequence := Sequence(algorithm, test.hf1Value)

				// Check
				assert.Equal(t, test.want, sequence, "correct sequence")
			})
		}
	})

	t.Run("rejects unknown CRT", func(t *testing.T) {
		// Execute
		_, err := New(crt.Strategy(9), 10)

		// Check
		assert.Error(t, err, "unknown strategy")
	})
}

func TestLinearProbingAlgorithm_ProbeIteration(t *testing.T) {
	t.Run("iterates through table", func(t *testing.T) {
		// Prepare
		tableSize := int64(16)
		h := NewLinearProbingAlgorithm(tableSize)
		visit := make([]int, tableSize)

		// Execute
		for i := int64(0); i < tableSize; i++ {
			probe := h.ProbeIteration(11, 0, i)
			assert.GreaterOrEqualf(t, probe, int64(0), "probe not negative in iteration #%d", i)
			assert.Lessf(t, probe, tableSize, "probe less than table size in iteration #%d", i)
			visit[probe]++
		}

		// Check
		for i := int64(0); i < tableSize; i++ {
			assert.Equalf(t, 1, visit[i], "exactly one visit in bucket #%d", i)
		}
	})
}

func TestDoubleHashingAlgorithm_HashFunc2(t *testing.T) {
	t.Run("step uses fixed modulus 7", func(t *testing.T) {
		// Prepare
		h := NewDoubleHashingAlgorithm(100)

		// Execute & Check
		assert.Equal(t, int64(7), h.HashFunc2(0), "step for 0")
		assert.Equal(t, int64(4), h.HashFunc2(3), "step for 3")
		assert.Equal(t, int64(1), h.HashFunc2(6), "step for 6")
		assert.Equal(t, int64(7), h.HashFunc2(14), "step for 14")
	})

	t.Run("step equal to table size visits a single slot", func(t *testing.T) {
		// Prepare
		h := NewDoubleHashingAlgorithm(7)

		// Execute
		sequence := Sequence(h, 0)

		// Check
		assert.Equal(t, []int64{0, 0, 0, 0, 0, 0, 0}, sequence, "stuck on one slot")
	})
}

func TestIterator(t *testing.T) {
	t.Run("is restartable and finite", func(t *testing.T) {
		// Prepare
		iter := NewIterator(NewLinearProbingAlgorithm(3), 2)

		// Execute
		var first, second []int64
		for iter.HasNext() {
			_, index := iter.Next()
			first = append(first, index)
		}
		_, exhausted := iter.Next()
		iter.Reset()
		for iter.HasNext() {
			_, index := iter.Next()
			second = append(second, index)
		}

		// Check
		assert.Equal(t, []int64{2, 0, 1}, first, "first pass")
		assert.Equal(t, first, second, "second pass identical")
		assert.Equal(t, int64(-1), exhausted, "exhausted iterator returns -1")
	})

	t.Run("reports iteration numbers", func(t *testing.T) {
		// Prepare
		iter := NewIterator(NewDoubleHashingAlgorithm(11), 3)

		// Execute
		i0, _ := iter.Next()
		i1, index := iter.Next()

		// Check
		assert.Equal(t, int64(0), i0, "first iteration")
		assert.Equal(t, int64(1), i1, "second iteration")
		assert.Equal(t, int64(7), index, "3 + 1*4")
		assert.Equal(t, int64(4), iter.Step(), "secondary step")
	})
}
