//go:build integration

package test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/gostonefire/hashsim/crt"
	"github.com/gostonefire/hashsim/internal/model"
	"github.com/gostonefire/hashsim/internal/storage"
	"github.com/gostonefire/hashsim/internal/storage/openaddressing"
	"github.com/gostonefire/hashsim/internal/storage/separatechaining"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestCaseCommon struct {
	crtName   string
	tableSize int64
	crt       crt.Strategy
}

var commonCases = []TestCaseCommon{
	{crtName: "SeparateChaining", tableSize: 97, crt: crt.SeparateChaining},
	{crtName: "LinearProbing", tableSize: 97, crt: crt.LinearProbing},
	{crtName: "QuadraticProbing", tableSize: 97, crt: crt.QuadraticProbing},
	{crtName: "DoubleHashing", tableSize: 97, crt: crt.DoubleHashing},
}

func newTable(t *testing.T, test TestCaseCommon) (table storage.Table) {
	crtConf := model.CRTConf{TableSize: test.tableSize, CollisionResolutionTechnique: test.crt}

	var err error
	if test.crt == crt.SeparateChaining {
		table, err = separatechaining.NewSCTable(crtConf)
	} else {
		table, err = openaddressing.NewOATable(crtConf)
	}
	require.NoError(t, err, "create table")

	return
}

func TestTableConformance(t *testing.T) {
	t.Run("inserts are always found for all CRTs", func(t *testing.T) {
		for _, test := range commonCases {
			t.Run(fmt.Sprintf("inserts are found for %s", test.crtName), func(t *testing.T) {
				// Prepare
				table := newTable(t, test)
				rng := rand.New(rand.NewSource(42))
				stored := make(map[int64]int64)

				// Execute, stays below half load so quadratic probing always finds a slot
				for len(stored) < int(test.tableSize/2) {
					key := rng.Int63n(10000)
					record, err := table.Set(key, key%test.tableSize)
					if _, ok := stored[key]; ok {
						assert.ErrorIs(t, err, crt.KeyExists{}, "duplicate %d", key)
						continue
					}
					require.NoError(t, err, "set %d", key)
					stored[key] = record.Index
				}

				// Check
				assert.Equal(t, int64(len(stored)), table.GetStorageParameters().NumberOfKeys, "number of keys")
				for key, index := range stored {
					record, err := table.Get(key, key%test.tableSize)
					assert.NoError(t, err, "get %d", key)
					assert.Equal(t, index, record.Index, "same index for %d", key)

					placement, err := table.Placement(key, key%test.tableSize, index)
					assert.NoError(t, err, "placement of %d", key)
					assert.Equal(t, record.Iteration, placement.Iteration, "same iteration for %d", key)
				}
			})
		}
	})

	t.Run("buckets can be loaded into a fresh table for all CRTs", func(t *testing.T) {
		for _, test := range commonCases {
			t.Run(fmt.Sprintf("load round trip for %s", test.crtName), func(t *testing.T) {
				// Prepare
				table := newTable(t, test)
				for key := int64(0); key < 40; key++ {
					_, err := table.Set(key*3, (key*3)%test.tableSize)
					require.NoError(t, err, "set %d", key*3)
				}
				buckets := table.GetBuckets()

				// Execute
				fresh := newTable(t, test)
				err := fresh.Load(buckets)

				// Check
				assert.NoError(t, err, "load")
				assert.Equal(t, buckets, fresh.GetBuckets(), "same buckets")
				assert.Equal(t, table.GetStorageParameters(), fresh.GetStorageParameters(), "same parameters")
			})
		}
	})

	t.Run("deletes in reverse order leave an empty table for all CRTs", func(t *testing.T) {
		for _, test := range commonCases {
			t.Run(fmt.Sprintf("reverse deletes for %s", test.crtName), func(t *testing.T) {
				// Prepare
				table := newTable(t, test)
				keys := []int64{5, 102, 199, 296, 6, 103}
				for _, key := range keys {
					_, err := table.Set(key, key%test.tableSize)
					require.NoError(t, err, "set %d", key)
				}

				// Execute
				for i := len(keys) - 1; i >= 0; i-- {
					_, err := table.Delete(keys[i], keys[i]%test.tableSize)
					assert.NoError(t, err, "delete %d", keys[i])
				}

				// Check
				assert.Zero(t, table.GetStorageParameters().NumberOfKeys, "no keys")
				for _, bucket := range table.GetBuckets() {
					assert.Empty(t, bucket, "empty bucket")
				}
			})
		}
	})

	t.Run("reset empties the table for all CRTs", func(t *testing.T) {
		for _, test := range commonCases {
			t.Run(fmt.Sprintf("reset for %s", test.crtName), func(t *testing.T) {
				// Prepare
				table := newTable(t, test)
				_, err := table.Set(1, 1)
				require.NoError(t, err, "set")

				// Execute
				table.Reset()

				// Check
				_, err = table.Get(1, 1)
				assert.ErrorIs(t, err, crt.NoRecordFound{}, "gone")
				assert.Zero(t, table.GetStorageParameters().NumberOfKeys, "no keys")
			})
		}
	})
}
