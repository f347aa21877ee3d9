package probe

// Iterator - Is used to walk a probe sequence index by index. The sequence is computed lazily, is exactly as long
// as the table (one index for Separate Chaining) and can be restarted with Reset.
type Iterator struct {
	algorithm Algorithm
	hf1Value  int64
	hf2Value  int64
	length    int64
	iteration int64
}

// NewIterator - Returns a pointer to a new Iterator struct
//   - algorithm is the probing algorithm to use
//   - hf1Value is the initial hash of the key
func NewIterator(algorithm Algorithm, hf1Value int64) *Iterator {
	return &Iterator{
		algorithm: algorithm,
		hf1Value:  hf1Value,
		hf2Value:  algorithm.HashFunc2(hf1Value),
		length:    Length(algorithm),
	}
}

// HasNext - Returns true if there are more indexes to be fetched from a call to Next.
func (I *Iterator) HasNext() bool {
	return I.iteration < I.length
}

// Next - Returns the next probe.
// It returns:
//   - iteration is the probe iteration i, starting at 0
//   - index is the slot to inspect, or -1 if the sequence is exhausted
func (I *Iterator) Next() (iteration, index int64) {
	if !I.HasNext() {
		iteration, index = I.iteration, -1
		return
	}

	iteration = I.iteration
	index = I.algorithm.ProbeIteration(I.hf1Value, I.hf2Value, iteration)
	I.iteration++

	return
}

// Reset - Restarts the sequence from iteration 0
func (I *Iterator) Reset() {
	I.iteration = 0
}

// Step - Returns the secondary hash value the sequence uses
func (I *Iterator) Step() int64 {
	return I.hf2Value
}
