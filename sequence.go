package hashsim

import (
	"github.com/gostonefire/hashsim/crt"
	"github.com/gostonefire/hashsim/internal/conf"
	"github.com/gostonefire/hashsim/internal/probe"
)

// ProbeSequence - Returns the indexes a key with the given initial hash would inspect, in order. The sequence is
// the probing formula applied for i = 0..tableSize-1 and may repeat indexes, for Separate Chaining it only holds
// the initial hash.
//   - strategy is the Collision Resolution Technique
//   - initialHash is the index given by the hash function, within [0, tableSize)
//   - tableSize is the number of slots
//
// It returns:
//   - sequence is the candidate indexes
//   - err is an InvalidArgument status error if any argument is out of range
func ProbeSequence(strategy crt.Strategy, initialHash, tableSize int64) (sequence []int64, err error) {
	if tableSize < 1 || tableSize > conf.MaxTableSize {
		err = invalidArgument("table size must be between 1 and %d, got %d", conf.MaxTableSize, tableSize)
		return
	}
	if initialHash < 0 || initialHash >= tableSize {
		err = invalidArgument("initial hash %d is outside table of size %d", initialHash, tableSize)
		return
	}

	algorithm, err := probe.New(strategy, tableSize)
	if err != nil {
		err = invalidArgument("%s", err)
		return
	}

	sequence = probe.Sequence(algorithm, initialHash)

	return
}
