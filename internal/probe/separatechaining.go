package probe

// SeparateChainingAlgorithm - No probing, the bucket at the initial hash is always the target
type SeparateChainingAlgorithm struct {
	tableSize int64
}

// NewSeparateChainingAlgorithm - Returns a pointer to a new SeparateChainingAlgorithm instance
func NewSeparateChainingAlgorithm(tableSize int64) *SeparateChainingAlgorithm {
	return &SeparateChainingAlgorithm{tableSize: tableSize}
}

// GetTableSize - Returns the table size
func (S *SeparateChainingAlgorithm) GetTableSize() int64 {
	return S.tableSize
}

// HashFunc2 - Not used in separate chaining, returns a dummy value
func (S *SeparateChainingAlgorithm) HashFunc2(hf1Value int64) int64 {
	return 0
}

// ProbeIteration - Always the initial hash
func (S *SeparateChainingAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return hf1Value
}
