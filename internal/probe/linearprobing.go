package probe

// LinearProbingAlgorithm - Implements h(k, i) = (h(k) + i) mod m
type LinearProbingAlgorithm struct {
	tableSize int64
}

// NewLinearProbingAlgorithm - Returns a pointer to a new LinearProbingAlgorithm instance
func NewLinearProbingAlgorithm(tableSize int64) *LinearProbingAlgorithm {
	return &LinearProbingAlgorithm{tableSize: tableSize}
}

// GetTableSize - Returns the table size the algorithm probes over
func (L *LinearProbingAlgorithm) GetTableSize() int64 {
	return L.tableSize
}

// HashFunc2 - Not used in linear probing, returns a dummy value
func (L *LinearProbingAlgorithm) HashFunc2(hf1Value int64) int64 {
	return 0
}

// ProbeIteration - Implements Linear Probing
func (L *LinearProbingAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return (hf1Value + iteration) % L.tableSize
}
