package probe

import "github.com/gostonefire/hashsim/internal/conf"

// DoubleHashingAlgorithm - Implements h(k, i) = (h(k) + i*step) mod m where step = 7 - (h(k) mod 7).
// The modulus 7 does not follow the table size, so for table sizes that are multiples of the step the sequence
// cycles over a subset of the slots.
type DoubleHashingAlgorithm struct {
	tableSize int64
}

// NewDoubleHashingAlgorithm - Returns a pointer to a new DoubleHashingAlgorithm instance
func NewDoubleHashingAlgorithm(tableSize int64) *DoubleHashingAlgorithm {
	return &DoubleHashingAlgorithm{tableSize: tableSize}
}

// GetTableSize - Returns the table size the algorithm probes over
func (D *DoubleHashingAlgorithm) GetTableSize() int64 {
	return D.tableSize
}

// HashFunc2 - Returns the step 7 - (h mod 7), always within [1, 7]
func (D *DoubleHashingAlgorithm) HashFunc2(hf1Value int64) int64 {
	return conf.DoubleHashModulus - (hf1Value % conf.DoubleHashModulus)
}

// ProbeIteration - Returns a combined hash value given values from the initial hash and HashFunc2 in iteration.
func (D *DoubleHashingAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return (hf1Value + iteration*hf2Value) % D.tableSize
}
