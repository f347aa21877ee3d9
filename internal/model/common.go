package model

import "github.com/gostonefire/hashsim/crt"

// SlotEmpty - State indicating a slot that holds no key
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot that holds a key
const SlotOccupied uint8 = 1

// Slot - Represents one slot in an Open Addressing table
type Slot struct {
	State uint8
	Key   int64
}

// Bucket - Represents all keys in a Separate Chaining bucket, in insertion order
type Bucket struct {
	Keys []int64
}

// Record - Represents the outcome of locating a key in a table
//   - Index is the slot or bucket the key was found in, or would be placed in
//   - Iteration is the probe iteration at which Index was reached (always 0 for Separate Chaining)
//   - Visited is every index inspected on the way, in order, including Index
type Record struct {
	Key       int64
	Index     int64
	Iteration int64
	Visited   []Visit
}

// Visit - Represents one inspected slot while probing
//   - Iteration is the probe iteration i
//   - Index is the slot inspected
//   - State is the state of the slot when inspected
//   - Key is the key held by the slot, only meaningful if State is SlotOccupied
type Visit struct {
	Iteration int64
	Index     int64
	State     uint8
	Key       int64
}

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	CollisionResolutionTechnique crt.Strategy
	TableSize                    int64
	NumberOfKeys                 int64
}

// CRTConf - Is a struct to be passed in the call to NewXXTable and contains configuration that affects
// table processing.
//   - TableSize is the number of buckets (slots) in the table
//   - CollisionResolutionTechnique is the strategy the table resolves collisions with
type CRTConf struct {
	TableSize                    int64
	CollisionResolutionTechnique crt.Strategy
}
