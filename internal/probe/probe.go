package probe

import (
	"fmt"

	"github.com/gostonefire/hashsim/crt"
)

// Algorithm - Interface for the probing part of a Collision Resolution Technique.
// HashFunc1 is not part of it since the initial hash always comes from the hash function chosen by the caller.
type Algorithm interface {
	// GetTableSize - Returns the table size the algorithm probes over
	GetTableSize() int64

	// HashFunc2 - Given the initial hash it generates an offset probing value that will be used together with
	// the initial hash in a call to ProbeIteration. Only Double Hashing uses it, others return 0.
	HashFunc2(hf1Value int64) int64

	// ProbeIteration - Returns the index to inspect in iteration i given values from the initial hash and HashFunc2.
	ProbeIteration(hf1Value, hf2Value, iteration int64) int64
}

// New - Returns the probing algorithm for the given strategy
//   - strategy is the Collision Resolution Technique
//   - tableSize is the number of slots in the table, it must be at least 1
func New(strategy crt.Strategy, tableSize int64) (algorithm Algorithm, err error) {
	switch strategy {
	case crt.SeparateChaining:
		algorithm = NewSeparateChainingAlgorithm(tableSize)
	case crt.LinearProbing:
		algorithm = NewLinearProbingAlgorithm(tableSize)
	case crt.QuadraticProbing:
		algorithm = NewQuadraticProbingAlgorithm(tableSize)
	case crt.DoubleHashing:
		algorithm = NewDoubleHashingAlgorithm(tableSize)
	default:
		err = fmt.Errorf("unknown collision resolution technique %d", int(strategy))
	}

	return
}

// Length - Returns the number of indexes a full probe sequence has for the algorithm
func Length(algorithm Algorithm) int64 {
	if _, ok := algorithm.(*SeparateChainingAlgorithm); ok {
		return 1
	}
	return algorithm.GetTableSize()
}

// Sequence - Returns the full probe sequence for an initial hash as a slice
func Sequence(algorithm Algorithm, hf1Value int64) (sequence []int64) {
	iter := NewIterator(algorithm, hf1Value)
	sequence = make([]int64, 0, Length(algorithm))
	for iter.HasNext() {
		_, index := iter.Next()
		sequence = append(sequence, index)
	}

	return
}
