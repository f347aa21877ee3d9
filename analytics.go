package hashsim

import (
	"errors"

	"github.com/gostonefire/hashsim/crt"
	"github.com/gostonefire/hashsim/hashfunc"
	"github.com/gostonefire/hashsim/internal/storage"
)

// Analytics - Statistics derived from a table.
//   - Collisions is, for Separate Chaining, the sum over buckets of (bucket length - 1) and, for probing
//     strategies, the sum over stored keys of the probe iteration at which each key sits in its own sequence
//   - Probes is ProbesUsed of the most recent operation
//   - LoadFactor is Keys / TableSize
//   - Keys is the number of stored keys
//   - Misplaced is the number of keys, probing strategies only, that sit in a slot their own probe sequence never
//     reaches (e.g. after a restore of hand edited contents or after a change of hash function)
type Analytics struct {
	Collisions int64
	Probes     int64
	LoadFactor float64
	Keys       int64
	Misplaced  int64
}

// Analytics - Returns analytics for the current contents
//   - hasher is the hash function the table is used with, it is only needed by probing strategies
func (H *HashTable) Analytics(hasher hashfunc.Hasher) (analytics Analytics, err error) {
	return ComputeAnalytics(H.Snapshot(), hasher, H.lastProbes)
}

// ComputeAnalytics - Returns analytics for a table. For probing strategies every key is hashed again and its probe
// sequence followed until it reaches the slot it is stored in.
//   - table is the table to analyse
//   - hasher is the hash function the keys were placed with, it may be nil for Separate Chaining
//   - lastProbes is reported as is in Analytics.Probes
//
// It returns:
//   - analytics is the computed statistics
//   - err is an InvalidArgument status error if the table is not valid or if hasher is missing
func ComputeAnalytics(table Table, hasher hashfunc.Hasher, lastProbes int64) (analytics Analytics, err error) {
	if table.TableSize < 1 {
		err = invalidArgument("table size must be a positive value higher than 0 (zero), got %d", table.TableSize)
		return
	}
	if !table.Strategy.IsValid() {
		err = invalidArgument("unknown collision resolution technique %d", int(table.Strategy))
		return
	}
	if table.Strategy.IsProbing() && hasher == nil {
		err = invalidArgument("a hash function is required to analyse %s tables", table.Strategy)
		return
	}

	n, err := storage.ValidateBuckets(table.Buckets, table.TableSize, table.Strategy.IsProbing())
	if err != nil {
		err = invalidArgument("invalid table contents: %s", err)
		return
	}

	analytics.Probes = lastProbes
	analytics.Keys = n
	analytics.LoadFactor = float64(n) / float64(table.TableSize)

	if !table.Strategy.IsProbing() {
		for _, bucket := range table.Buckets {
			if len(bucket) > 1 {
				analytics.Collisions += int64(len(bucket) - 1)
			}
		}
		return
	}

	// Only the probe sequence of the storage is used, contents are never loaded
	placer, err := newStorage(table.TableSize, table.Strategy)
	if err != nil {
		return
	}

	for index, bucket := range table.Buckets {
		for _, key := range bucket {
			// A failing custom hash still returns the fallback index which is the one keys were placed with
			hf1Value, _ := hasher.Hash(key, table.TableSize)

			record, placeErr := placer.Placement(key, hf1Value, int64(index))
			switch {
			case placeErr == nil:
				analytics.Collisions += record.Iteration
			case errors.Is(placeErr, crt.NoRecordFound{}):
				analytics.Misplaced++
			default:
				err = placeErr
				return
			}
		}
	}

	return
}
