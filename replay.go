package hashsim

import (
	"context"
	"fmt"

	"github.com/gostonefire/hashsim/crt"
	"github.com/gostonefire/hashsim/hashfunc"
	"golang.org/x/sync/errgroup"
)

// Replay - Inserts keys one by one in the given order
//   - hashTable is the table to insert into
//   - keys are the keys to insert
//   - hasher is the hash function giving the initial index
//
// It returns:
//   - results holds one OperationResult per key, up to the key that failed if err is not nil
//   - err is an InvalidArgument status error for a negative key or a nil hasher
func Replay(hashTable *HashTable, keys []int64, hasher hashfunc.Hasher) (results []OperationResult, err error) {
	results = make([]OperationResult, 0, len(keys))
	for _, key := range keys {
		result, _, insertErr := hashTable.Insert(key, hasher)
		if insertErr != nil {
			err = insertErr
			return
		}
		results = append(results, result)
	}

	return
}

// Rebuild - Returns a new hash table with another size and/or strategy, optionally holding the keys of an existing
// table. Keys are replayed bucket by bucket, so their positions in the new table may differ from the old ones.
//   - hashTable is the table to take keys from, it is not changed
//   - tableSize is the size of the new table
//   - strategy is the Collision Resolution Technique of the new table
//   - hasher is the hash function the keys are replayed with
//   - replay is false to get an empty table
//
// It returns:
//   - rebuilt is the new table
//   - results holds one OperationResult per replayed key, keys that did not fit have Reason crt.Full
//   - err is an InvalidArgument status error if tableSize or strategy is not valid
func Rebuild(hashTable *HashTable, tableSize int64, strategy crt.Strategy, hasher hashfunc.Hasher, replay bool) (rebuilt *HashTable, results []OperationResult, err error) {
	rebuilt, err = NewHashTable(tableSize, strategy)
	if err != nil {
		return
	}
	if !replay || hashTable == nil {
		return
	}

	results, err = Replay(rebuilt, hashTable.Keys(), hasher)
	if err != nil {
		rebuilt = nil
	}

	return
}

// Comparison - Outcome of inserting the same keys using one strategy
//   - Strategy is the Collision Resolution Technique used
//   - Table is the resulting table
//   - Analytics is the analytics of the resulting table
//   - TotalProbes is the sum of ProbesUsed over all inserts
//   - Rejected is the number of inserts that did not succeed (duplicates and keys that did not fit)
type Comparison struct {
	Strategy    crt.Strategy
	Table       Table
	Analytics   Analytics
	TotalProbes int64
	Rejected    int64
}

// CompareStrategies - Inserts the same keys into one table per strategy, the tables are independent and filled
// concurrently
//   - ctx is checked between inserts, a cancelled ctx aborts the comparison
//   - tableSize is the size of every table
//   - keys are the keys to insert, in order
//   - hasher is the hash function for all tables, it must be safe for concurrent use
//
// It returns:
//   - comparisons holds one Comparison per strategy in the order of crt.Strategies
//   - err is the first error encountered, comparisons is then nil
func CompareStrategies(ctx context.Context, tableSize int64, keys []int64, hasher hashfunc.Hasher) (comparisons []Comparison, err error) {
	strategies := crt.Strategies()
	results := make([]Comparison, len(strategies))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, strategy := range strategies {
		i, strategy := i, strategy
		group.Go(func() error {
			hashTable, err := NewHashTable(tableSize, strategy)
			if err != nil {
				return err
			}

			comparison := Comparison{Strategy: strategy}
			for _, key := range keys {
				if err := groupCtx.Err(); err != nil {
					return err
				}

				result, _, err := hashTable.Insert(key, hasher)
				if err != nil {
					return fmt.Errorf("%s: %w", strategy, err)
				}
				comparison.TotalProbes += result.ProbesUsed
				if !result.Success {
					comparison.Rejected++
				}
			}

			comparison.Analytics, err = hashTable.Analytics(hasher)
			if err != nil {
				return err
			}
			comparison.Table = hashTable.Snapshot()
			results[i] = comparison

			return nil
		})
	}

	if err = group.Wait(); err != nil {
		return
	}
	comparisons = results

	return
}
