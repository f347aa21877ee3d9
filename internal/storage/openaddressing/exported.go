package openaddressing

import (
	"fmt"

	"github.com/gostonefire/hashsim/crt"
	"github.com/gostonefire/hashsim/internal/model"
	"github.com/gostonefire/hashsim/internal/probe"
	"github.com/gostonefire/hashsim/internal/storage"
)

// OATable - Represents an implementation of the Open Addressing Collision Resolution Techniques.
// It uses one slot per index where each slot holds at most one key. In case of a collision, it probes through
// the table using a collision resolution algorithm, looking for an empty slot, and assigns the free slot to the key.
// Deleting sets the slot back to empty, no tombstones are kept, so keys placed past a deleted slot may become
// unreachable for Get and Delete.
type OATable struct {
	slots                        []model.Slot
	tableSize                    int64
	algorithm                    probe.Algorithm
	CollisionResolutionTechnique crt.Strategy
	nOccupied                    int64
}

// NewOATable - Returns a pointer to a new instance of Open Addressing table implementation.
//   - crtConf is a model.CRTConf struct providing the table size and which probing technique to use
//
// It returns:
//   - oaTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewOATable(crtConf model.CRTConf) (oaTable *OATable, err error) {
	if !crtConf.CollisionResolutionTechnique.IsProbing() {
		err = fmt.Errorf("%s is not an open addressing collision resolution technique", crtConf.CollisionResolutionTechnique)
		return
	}
	if crtConf.TableSize < 1 {
		err = fmt.Errorf("table size must be a positive value higher than 0 (zero)")
		return
	}

	algorithm, err := probe.New(crtConf.CollisionResolutionTechnique, crtConf.TableSize)
	if err != nil {
		return
	}

	oaTable = &OATable{
		slots:                        make([]model.Slot, crtConf.TableSize),
		tableSize:                    crtConf.TableSize,
		algorithm:                    algorithm,
		CollisionResolutionTechnique: crtConf.CollisionResolutionTechnique,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from OATable
func (Q *OATable) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: Q.CollisionResolutionTechnique,
		TableSize:                    Q.tableSize,
		NumberOfKeys:                 Q.nOccupied,
	}

	return
}

// Get - Walks the probe sequence of key and stops at the key, at the first empty slot or when the sequence is exhausted.
//   - key is the key to look for
//   - hf1Value is the initial hash of the key
//
// It returns:
//   - record holds the index of the key and the slots visited, also when not found.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (Q *OATable) Get(key, hf1Value int64) (record model.Record, err error) {
	if err = storage.CheckHashValue(hf1Value, Q.tableSize); err != nil {
		return
	}

	record, err = Q.probingForGet(key, hf1Value)

	return
}

// Set - Places key in the first empty slot of its probe sequence.
// The whole table is first scanned for the key, a key can only be stored once regardless of where it would hash.
//   - key is the key to add
//   - hf1Value is the initial hash of the key
//
// It returns:
//   - record holds the index the key was placed at (or already lives at) and the slots visited
//   - err is either crt.KeyExists, crt.TableFull or a standard error, if something went wrong
func (Q *OATable) Set(key, hf1Value int64) (record model.Record, err error) {
	if err = storage.CheckHashValue(hf1Value, Q.tableSize); err != nil {
		return
	}

	if index := Q.indexOf(key); index >= 0 {
		record = model.Record{Key: key, Index: index, Iteration: 0}
		err = crt.KeyExists{}
		return
	}

	record, err = Q.probingForSet(key, hf1Value)
	if err != nil {
		return
	}

	Q.slots[record.Index] = model.Slot{State: model.SlotOccupied, Key: key}
	Q.nOccupied++

	return
}

// Delete - Locates key the same way as Get and sets its slot to empty
//   - key is the key to remove
//   - hf1Value is the initial hash of the key
//
// It returns:
//   - record holds the index the key was removed from and the slots visited
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (Q *OATable) Delete(key, hf1Value int64) (record model.Record, err error) {
	record, err = Q.Get(key, hf1Value)
	if err != nil {
		return
	}

	Q.slots[record.Index] = model.Slot{State: model.SlotEmpty}
	Q.nOccupied--

	return
}

// Placement - Replays the probe sequence of key until it reaches index, regardless of slot contents.
// It is used to figure out how many probes a stored key needed when it was placed.
func (Q *OATable) Placement(key, hf1Value, index int64) (record model.Record, err error) {
	if err = storage.CheckHashValue(hf1Value, Q.tableSize); err != nil {
		return
	}

	iter := probe.NewIterator(Q.algorithm, hf1Value)
	for iter.HasNext() {
		i, probeIndex := iter.Next()
		if probeIndex == index {
			record = model.Record{Key: key, Index: index, Iteration: i}
			return
		}
	}

	record = model.Record{Key: key, Index: index, Iteration: Q.tableSize}
	err = crt.NoRecordFound{}
	return
}

// GetBuckets - Returns the slots as buckets holding zero or one key
func (Q *OATable) GetBuckets() (buckets [][]int64) {
	buckets = make([][]int64, Q.tableSize)
	for i, slot := range Q.slots {
		if slot.State == model.SlotOccupied {
			buckets[i] = []int64{slot.Key}
		} else {
			buckets[i] = []int64{}
		}
	}

	return
}

// Load - Replaces all slots given buckets holding zero or one key each
func (Q *OATable) Load(buckets [][]int64) (err error) {
	n, err := storage.ValidateBuckets(buckets, Q.tableSize, true)
	if err != nil {
		return
	}

	slots := make([]model.Slot, Q.tableSize)
	for i, bucket := range buckets {
		if len(bucket) == 1 {
			slots[i] = model.Slot{State: model.SlotOccupied, Key: bucket[0]}
		}
	}

	Q.slots = slots
	Q.nOccupied = n

	return
}

// Reset - Empties all slots
func (Q *OATable) Reset() {
	Q.slots = make([]model.Slot, Q.tableSize)
	Q.nOccupied = 0
}
