package probe

// QuadraticProbingAlgorithm - Implements h(k, i) = (h(k) + i*i) mod m.
// For most table sizes the sequence will not visit every slot, a table may therefore report full while still
// having empty slots.
type QuadraticProbingAlgorithm struct {
	tableSize int64
}

// NewQuadraticProbingAlgorithm - Returns a pointer to a new QuadraticProbingAlgorithm instance
func NewQuadraticProbingAlgorithm(tableSize int64) *QuadraticProbingAlgorithm {
	return &QuadraticProbingAlgorithm{tableSize: tableSize}
}

// GetTableSize - Returns the table size the algorithm probes over
func (Q *QuadraticProbingAlgorithm) GetTableSize() int64 {
	return Q.tableSize
}

// HashFunc2 - Not used in quadratic probing, returns a dummy value
func (Q *QuadraticProbingAlgorithm) HashFunc2(hf1Value int64) int64 {
	return 0
}

// ProbeIteration - Implements Quadratic Probing
func (Q *QuadraticProbingAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return (hf1Value + (iteration*iteration)%Q.tableSize) % Q.tableSize
}
