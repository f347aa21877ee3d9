package hashsim

import (
	"github.com/gostonefire/hashsim/crt"
	"github.com/gostonefire/hashsim/internal/conf"
	"github.com/gostonefire/hashsim/internal/metrics"
	"github.com/gostonefire/hashsim/internal/model"
	"github.com/gostonefire/hashsim/internal/probe"
	"github.com/gostonefire/hashsim/internal/storage"
	"github.com/gostonefire/hashsim/internal/storage/openaddressing"
	"github.com/gostonefire/hashsim/internal/storage/separatechaining"
	"github.com/gostonefire/hashsim/internal/utils"
)

// NoIndex - Index reported by an OperationResult that has no index
const NoIndex int64 = -1

// Table - A read-only view of the table contents together with its configuration.
//   - TableSize is the number of buckets (slots)
//   - Strategy is the Collision Resolution Technique
//   - Buckets holds the keys of each bucket in insertion order, for probing strategies at most one key per slot
type Table struct {
	TableSize int64        `json:"tableSize"`
	Strategy  crt.Strategy `json:"strategy"`
	Buckets   [][]int64    `json:"table"`
}

// OperationResult - Outcome of an insert, search or delete.
//   - Success is true if the key was inserted, found or deleted
//   - Index is the slot or bucket involved, NoIndex if there is none
//   - ProbesUsed is the probe iteration at which the operation stopped, always 0 for Separate Chaining
//   - Reason tells why Success is false
type OperationResult struct {
	Success    bool
	Index      int64
	ProbesUsed int64
	Reason     crt.Reason
}

// HashTable - The simulated hash table. It is not safe for concurrent use, every session should own its own
// HashTable and serialize calls to it.
type HashTable struct {
	table      storage.Table
	algorithm  probe.Algorithm
	tableSize  int64
	strategy   crt.Strategy
	lastProbes int64
}

// NewHashTable - Returns a new empty hash table.
//   - tableSize is the number of buckets, between 1 and 1048576
//   - strategy is the Collision Resolution Technique, it can't be changed later
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - err is an InvalidArgument status error if tableSize or strategy is not valid
func NewHashTable(tableSize int64, strategy crt.Strategy) (hashTable *HashTable, err error) {
	// Check if tableSize is valid
	if tableSize < 1 {
		err = invalidArgument("table size must be a positive value higher than 0 (zero), got %d", tableSize)
		return
	}
	if tableSize > conf.MaxTableSize {
		err = invalidArgument("table size %d exceeds the maximum of %d", tableSize, conf.MaxTableSize)
		return
	}

	// Check if strategy is valid
	if !strategy.IsValid() {
		err = invalidArgument("unknown collision resolution technique %d", int(strategy))
		return
	}

	table, err := newStorage(tableSize, strategy)
	if err != nil {
		return
	}
	algorithm, err := probe.New(strategy, tableSize)
	if err != nil {
		return
	}

	metrics.Register()

	hashTable = &HashTable{
		table:     table,
		algorithm: algorithm,
		tableSize: tableSize,
		strategy:  strategy,
	}

	return
}

// FromSnapshot - Returns a new hash table holding the given contents
//   - table is a Table, typically from Snapshot or a session document
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - err is an InvalidArgument status error if the configuration or the contents are not valid
func FromSnapshot(table Table) (hashTable *HashTable, err error) {
	hashTable, err = NewHashTable(table.TableSize, table.Strategy)
	if err != nil {
		return
	}

	err = hashTable.Restore(table)
	if err != nil {
		hashTable = nil
	}

	return
}

// TableSize - Returns the number of buckets
func (H *HashTable) TableSize() int64 {
	return H.tableSize
}

// Strategy - Returns the Collision Resolution Technique
func (H *HashTable) Strategy() crt.Strategy {
	return H.strategy
}

// LastProbes - Returns ProbesUsed of the most recent insert, search or delete
func (H *HashTable) LastProbes() int64 {
	return H.lastProbes
}

// Len - Returns the number of stored keys
func (H *HashTable) Len() int64 {
	return H.table.GetStorageParameters().NumberOfKeys
}

// Snapshot - Returns a copy of the table contents that the caller may keep or modify freely
func (H *HashTable) Snapshot() Table {
	return Table{
		TableSize: H.tableSize,
		Strategy:  H.strategy,
		Buckets:   H.table.GetBuckets(),
	}
}

// Restore - Replaces the table contents. The table must have the same size and strategy as the hash table,
// to change either of them build a new HashTable (see FromSnapshot and Rebuild).
//   - table holds the contents to restore
//
// It returns:
//   - err is an InvalidArgument status error if the table does not fit, in which case nothing is changed
func (H *HashTable) Restore(table Table) (err error) {
	if table.TableSize != H.tableSize {
		err = invalidArgument("table size %d does not match hash table size %d", table.TableSize, H.tableSize)
		return
	}
	if table.Strategy != H.strategy {
		err = invalidArgument("strategy %s does not match hash table strategy %s", table.Strategy, H.strategy)
		return
	}

	if err = H.table.Load(utils.CopyBuckets(table.Buckets)); err != nil {
		err = invalidArgument("invalid table contents: %s", err)
		return
	}
	H.lastProbes = 0

	return
}

// Reset - Removes every key
func (H *HashTable) Reset() {
	H.table.Reset()
	H.lastProbes = 0
}

// Keys - Returns all stored keys, bucket by bucket and in insertion order within a bucket
func (H *HashTable) Keys() (keys []int64) {
	keys = make([]int64, 0, H.Len())
	for _, bucket := range H.table.GetBuckets() {
		keys = append(keys, bucket...)
	}

	return
}

// newStorage - Returns the storage implementation for the strategy
func newStorage(tableSize int64, strategy crt.Strategy) (table storage.Table, err error) {
	crtConf := model.CRTConf{
		TableSize:                    tableSize,
		CollisionResolutionTechnique: strategy,
	}

	if strategy == crt.SeparateChaining {
		table, err = separatechaining.NewSCTable(crtConf)
	} else {
		table, err = openaddressing.NewOATable(crtConf)
	}

	return
}
