package separatechaining

import (
	"fmt"

	"github.com/gostonefire/hashsim/crt"
	"github.com/gostonefire/hashsim/internal/model"
	"github.com/gostonefire/hashsim/internal/storage"
	"github.com/gostonefire/hashsim/internal/utils"
)

// SCTable - Represents an implementation of the Separate Chaining Collision Resolution Technique.
// Each bucket is a list of keys in insertion order, a key is never added twice.
type SCTable struct {
	buckets   []model.Bucket
	tableSize int64
	nKeys     int64
}

// NewSCTable - Returns a pointer to a new instance of Separate Chaining table implementation.
//   - crtConf is a model.CRTConf struct providing the table size
//
// It returns:
//   - scTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSCTable(crtConf model.CRTConf) (scTable *SCTable, err error) {
	if crtConf.CollisionResolutionTechnique != crt.SeparateChaining {
		err = fmt.Errorf("%s is not separate chaining", crtConf.CollisionResolutionTechnique)
		return
	}
	if crtConf.TableSize < 1 {
		err = fmt.Errorf("table size must be a positive value higher than 0 (zero)")
		return
	}

	scTable = &SCTable{
		buckets:   make([]model.Bucket, crtConf.TableSize),
		tableSize: crtConf.TableSize,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from SCTable
func (S *SCTable) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.SeparateChaining,
		TableSize:                    S.tableSize,
		NumberOfKeys:                 S.nKeys,
	}

	return
}

// Get - Looks for key in the bucket given by its initial hash
//   - key is the key to look for
//   - hf1Value is the initial hash of the key
//
// It returns:
//   - record holds the bucket number, also when the key is not found
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (S *SCTable) Get(key, hf1Value int64) (record model.Record, err error) {
	if err = storage.CheckHashValue(hf1Value, S.tableSize); err != nil {
		return
	}

	record = S.visit(key, hf1Value)
	if !utils.Contains(S.buckets[hf1Value].Keys, key) {
		err = crt.NoRecordFound{}
	}

	return
}

// Set - Appends key to the bucket given by its initial hash
//   - key is the key to add
//   - hf1Value is the initial hash of the key
//
// It returns:
//   - record holds the bucket number
//   - err is either crt.KeyExists or a standard error, if something went wrong
func (S *SCTable) Set(key, hf1Value int64) (record model.Record, err error) {
	if err = storage.CheckHashValue(hf1Value, S.tableSize); err != nil {
		return
	}

	record = S.visit(key, hf1Value)
	if utils.Contains(S.buckets[hf1Value].Keys, key) {
		err = crt.KeyExists{}
		return
	}

	S.buckets[hf1Value].Keys = append(S.buckets[hf1Value].Keys, key)
	S.nKeys++

	return
}

// Delete - Removes key from the bucket given by its initial hash
//   - key is the key to remove
//   - hf1Value is the initial hash of the key
//
// It returns:
//   - record holds the bucket number
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (S *SCTable) Delete(key, hf1Value int64) (record model.Record, err error) {
	record, err = S.Get(key, hf1Value)
	if err != nil {
		return
	}

	S.buckets[hf1Value].Keys = utils.Remove(S.buckets[hf1Value].Keys, key)
	S.nKeys--

	return
}

// Placement - A key is placed in the bucket of its initial hash without probing, so index must equal hf1Value
func (S *SCTable) Placement(key, hf1Value, index int64) (record model.Record, err error) {
	record = model.Record{Key: key, Index: index}
	if hf1Value != index {
		err = crt.NoRecordFound{}
	}

	return
}

// GetBuckets - Returns a copy of all buckets
func (S *SCTable) GetBuckets() (buckets [][]int64) {
	buckets = make([][]int64, S.tableSize)
	for i, bucket := range S.buckets {
		buckets[i] = make([]int64, len(bucket.Keys))
		_ = copy(buckets[i], bucket.Keys)
	}

	return
}

// Load - Replaces all buckets
func (S *SCTable) Load(buckets [][]int64) (err error) {
	n, err := storage.ValidateBuckets(buckets, S.tableSize, false)
	if err != nil {
		return
	}

	loaded := make([]model.Bucket, S.tableSize)
	for i, keys := range utils.CopyBuckets(buckets) {
		loaded[i] = model.Bucket{Keys: keys}
	}

	S.buckets = loaded
	S.nKeys = n

	return
}

// Reset - Empties all buckets
func (S *SCTable) Reset() {
	S.buckets = make([]model.Bucket, S.tableSize)
	S.nKeys = 0
}

// visit - Returns a record for the single bucket that is inspected
func (S *SCTable) visit(key, hf1Value int64) (record model.Record) {
	state := model.SlotEmpty
	if len(S.buckets[hf1Value].Keys) > 0 {
		state = model.SlotOccupied
	}

	record = model.Record{
		Key:     key,
		Index:   hf1Value,
		Visited: []model.Visit{{Iteration: 0, Index: hf1Value, State: state}},
	}

	return
}
