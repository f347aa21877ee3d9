package storage

import (
	"fmt"

	"github.com/gostonefire/hashsim/internal/model"
)

// Table - Interface for any table implementation, one per family of Collision Resolution Techniques.
// Every function takes the initial hash of the key (hf1Value) rather than computing it, the hash function is
// chosen by the caller per operation.
type Table interface {
	// Get - Locates key, returns crt.NoRecordFound if it is not reachable
	Get(key, hf1Value int64) (record model.Record, err error)

	// Set - Adds key, returns crt.KeyExists if the key is already stored or crt.TableFull if no slot was found
	Set(key, hf1Value int64) (record model.Record, err error)

	// Delete - Removes key, returns crt.NoRecordFound if it is not reachable
	Delete(key, hf1Value int64) (record model.Record, err error)

	// Placement - Returns at which probe iteration the key's own sequence reaches index, or crt.NoRecordFound
	// if it never does
	Placement(key, hf1Value, index int64) (record model.Record, err error)

	// GetBuckets - Returns a copy of the table contents, one slice per bucket (at most one key per slot for
	// Open Addressing)
	GetBuckets() (buckets [][]int64)

	// Load - Replaces the whole table contents
	Load(buckets [][]int64) (err error)

	// Reset - Empties the table
	Reset()

	// GetStorageParameters - Returns parameters describing the table
	GetStorageParameters() (params model.StorageParameters)
}

// CheckHashValue - Returns an error if the initial hash is outside the table
func CheckHashValue(hf1Value, tableSize int64) (err error) {
	if hf1Value < 0 || hf1Value >= tableSize {
		err = fmt.Errorf("hash value %d is outside table of size %d", hf1Value, tableSize)
	}
	return
}

// ValidateBuckets - Checks table contents before they are loaded
//   - buckets is the table contents, one slice per bucket
//   - tableSize is the number of buckets expected
//   - singleKey is true for Open Addressing where a slot holds at most one key
//
// It returns:
//   - n is the number of keys found
//   - err describes the first problem found
func ValidateBuckets(buckets [][]int64, tableSize int64, singleKey bool) (n int64, err error) {
	if int64(len(buckets)) != tableSize {
		err = fmt.Errorf("table has %d buckets, expected %d", len(buckets), tableSize)
		return
	}

	seen := make(map[int64]int, tableSize)
	for i, bucket := range buckets {
		if singleKey && len(bucket) > 1 {
			err = fmt.Errorf("slot %d holds %d keys, at most one is allowed", i, len(bucket))
			return
		}
		for _, key := range bucket {
			if key < 0 {
				err = fmt.Errorf("slot %d holds negative key %d", i, key)
				return
			}
			if j, ok := seen[key]; ok {
				err = fmt.Errorf("key %d is stored in both bucket %d and bucket %d", key, j, i)
				return
			}
			seen[key] = i
			n++
		}
	}

	return
}
