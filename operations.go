package hashsim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/gostonefire/hashsim/crt"
	"github.com/gostonefire/hashsim/hashfunc"
	"github.com/gostonefire/hashsim/internal/conf"
	"github.com/gostonefire/hashsim/internal/metrics"
	"github.com/gostonefire/hashsim/internal/model"
	"github.com/gostonefire/hashsim/internal/probe"
	"github.com/gostonefire/hashsim/oplog"
)

const (
	opInsert = "insert"
	opSearch = "search"
	opDelete = "delete"
)

// Insert - Adds a key to the table
//   - key is the key to add, it must be non-negative
//   - hasher is the hash function giving the initial index
//
// It returns:
//   - result tells where the key was placed, or why it was not (crt.Exists, crt.Full)
//   - trace is the step by step explanation of the operation
//   - err is an InvalidArgument status error for a negative key or a nil hasher, the table is then unchanged
func (H *HashTable) Insert(key int64, hasher hashfunc.Hasher) (result OperationResult, trace *oplog.Trace, err error) {
	trace = oplog.New(opInsert, key)
	hf1Value, err := H.initialHash(key, hasher, trace)
	if err != nil {
		return
	}

	record, err := H.table.Set(key, hf1Value)
	H.traceVisits(trace, record)

	switch {
	case err == nil:
		result = OperationResult{Success: true, Index: record.Index, ProbesUsed: record.Iteration}
		if H.strategy.IsProbing() {
			trace.Finishf(record.Index, "key %d inserted at index %d after %d probe(s)", key, record.Index, record.Iteration)
		} else {
			trace.Finishf(record.Index, "key %d appended to bucket %d", key, record.Index)
		}

	case errors.Is(err, crt.KeyExists{}):
		err = nil
		result = OperationResult{Index: record.Index, Reason: crt.Exists}
		trace.Finishf(record.Index, "key %d already exists at index %d, nothing inserted", key, record.Index)

	case errors.Is(err, crt.TableFull{}):
		err = nil
		result = OperationResult{Index: NoIndex, ProbesUsed: record.Iteration, Reason: crt.Full}
		trace.Finishf(NoIndex, "no free slot found for key %d after %d probe(s), table is full", key, record.Iteration)

	default:
		err = fmt.Errorf("error while inserting key %d: %w", key, err)
		return
	}

	H.finish(opInsert, result)
	return
}

// Search - Looks for a key following the same path an insert would take. For probing strategies the search
// stops at the first empty slot.
//   - key is the key to look for, it must be non-negative
//   - hasher is the hash function giving the initial index
//
// It returns:
//   - result tells where the key was found, or crt.NotFound
//   - trace is the step by step explanation of the operation
//   - err is an InvalidArgument status error for a negative key or a nil hasher
func (H *HashTable) Search(key int64, hasher hashfunc.Hasher) (result OperationResult, trace *oplog.Trace, err error) {
	trace = oplog.New(opSearch, key)
	hf1Value, err := H.initialHash(key, hasher, trace)
	if err != nil {
		return
	}

	record, err := H.table.Get(key, hf1Value)
	H.traceVisits(trace, record)

	result, err = H.located(key, record, err, trace, "found")
	if err != nil {
		err = fmt.Errorf("error while searching key %d: %w", key, err)
		return
	}

	H.finish(opSearch, result)
	return
}

// Delete - Removes a key, it is located exactly like Search does. No tombstone is left behind, so for probing
// strategies keys placed after the deleted one in the same probe sequence may become unreachable.
//   - key is the key to remove, it must be non-negative
//   - hasher is the hash function giving the initial index
//
// It returns:
//   - result tells from where the key was removed, or crt.NotFound
//   - trace is the step by step explanation of the operation
//   - err is an InvalidArgument status error for a negative key or a nil hasher, the table is then unchanged
func (H *HashTable) Delete(key int64, hasher hashfunc.Hasher) (result OperationResult, trace *oplog.Trace, err error) {
	trace = oplog.New(opDelete, key)
	hf1Value, err := H.initialHash(key, hasher, trace)
	if err != nil {
		return
	}

	record, err := H.table.Delete(key, hf1Value)
	H.traceVisits(trace, record)

	result, err = H.located(key, record, err, trace, "deleted")
	if err != nil {
		err = fmt.Errorf("error while deleting key %d: %w", key, err)
		return
	}

	H.finish(opDelete, result)
	return
}

// InsertRandom - Inserts a key drawn uniformly from [0, 1000)
//   - rng is the random source, pass a seeded one for reproducible runs
//   - hasher is the hash function giving the initial index
//
// It returns the same as Insert together with the drawn key
func (H *HashTable) InsertRandom(rng *rand.Rand, hasher hashfunc.Hasher) (key int64, result OperationResult, trace *oplog.Trace, err error) {
	if rng == nil {
		err = invalidArgument("a random source is required")
		return
	}

	key = rng.Int63n(conf.RandomKeyCeiling)
	result, trace, err = H.Insert(key, hasher)

	return
}

// initialHash - Validates the arguments and computes the initial index, a custom hash fallback is logged as a
// warning in the trace but is not an error
func (H *HashTable) initialHash(key int64, hasher hashfunc.Hasher, trace *oplog.Trace) (hf1Value int64, err error) {
	if key < 0 {
		err = invalidArgument("key must be a non-negative integer, got %d", key)
		return
	}
	if hasher == nil {
		err = invalidArgument("a hash function is required")
		return
	}

	hf1Value, hashErr := hasher.Hash(key, H.tableSize)
	if hashErr != nil {
		var failure crt.CustomHashFailure
		if !errors.As(hashErr, &failure) {
			err = fmt.Errorf("error while hashing key %d: %w", key, hashErr)
			return
		}
		trace.Warnf("%s", failure.Error())
		metrics.CountFallback(H.strategy.String())
	}

	trace.Hashf(hf1Value, "h(%d) = %d (%s)", key, hf1Value, hasher.ID().Title())

	if H.strategy == crt.DoubleHashing {
		step := probe.NewIterator(H.algorithm, hf1Value).Step()
		trace.Hashf(hf1Value, "step = %d - (%d mod %d) = %d", conf.DoubleHashModulus, hf1Value, conf.DoubleHashModulus, step)
	}

	return
}

// traceVisits - Adds one step per inspected slot or bucket
func (H *HashTable) traceVisits(trace *oplog.Trace, record model.Record) {
	for _, v := range record.Visited {
		if !H.strategy.IsProbing() {
			if v.State == model.SlotEmpty {
				trace.Probef(v.Iteration, v.Index, "bucket %d is empty", v.Index)
			} else {
				trace.Probef(v.Iteration, v.Index, "bucket %d holds a chain of keys", v.Index)
			}
			continue
		}

		switch {
		case v.State == model.SlotEmpty:
			trace.Probef(v.Iteration, v.Index, "probe %d: index %d is empty", v.Iteration, v.Index)
		case v.Key == record.Key:
			trace.Probef(v.Iteration, v.Index, "probe %d: index %d holds key %d", v.Iteration, v.Index, v.Key)
		default:
			trace.Collisionf(v.Iteration, v.Index, "probe %d: collision at index %d, occupied by key %d", v.Iteration, v.Index, v.Key)
		}
	}
}

// located - Converts the outcome of Get or Delete to an OperationResult
func (H *HashTable) located(key int64, record model.Record, err error, trace *oplog.Trace, verb string) (result OperationResult, _ error) {
	switch {
	case err == nil:
		result = OperationResult{Success: true, Index: record.Index, ProbesUsed: record.Iteration}
		trace.Finishf(record.Index, "key %d %s at index %d", key, verb, record.Index)

	case errors.Is(err, crt.NoRecordFound{}):
		result = OperationResult{Index: NoIndex, ProbesUsed: record.Iteration, Reason: crt.NotFound}
		trace.Finishf(NoIndex, "key %d not found after %d probe(s)", key, record.Iteration)

	default:
		return result, err
	}

	return result, nil
}

// finish - Records the probe count of a completed operation
func (H *HashTable) finish(operation string, result OperationResult) {
	H.lastProbes = result.ProbesUsed

	outcome := "success"
	if !result.Success {
		outcome = result.Reason.String()
	}
	metrics.ObserveOperation(H.strategy.String(), operation, outcome, result.ProbesUsed)
}
