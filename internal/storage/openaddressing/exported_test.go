//go:build unit

package openaddressing

import (
	"fmt"
	"testing"

	"github.com/gostonefire/hashsim/crt"
	"github.com/gostonefire/hashsim/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestCaseOATable struct {
	crtName   string
	tableSize int64
	crt       crt.Strategy
}

var probingCases = []TestCaseOATable{
	{crtName: "LinearProbing", tableSize: 7, crt: crt.LinearProbing},
	{crtName: "QuadraticProbing", tableSize: 7, crt: crt.QuadraticProbing},
	{crtName: "DoubleHashing", tableSize: 7, crt: crt.DoubleHashing},
}

func TestNewOATable(t *testing.T) {
	t.Run("creates OATable instances for all probing CRTs", func(t *testing.T) {
		for _, test := range probingCases {
			t.Run(fmt.Sprintf("creates a new OATable instance for %s", test.crtName), func(t *testing.T) {
				// Prepare
				crtConf := model.CRTConf{TableSize: test.tableSize, CollisionResolutionTechnique: test.crt}

				// Execute
				oaTable, err := NewOATable(crtConf)

				// Check
				assert.NoError(t, err, "create new OATable instance")
				assert.Len(t, oaTable.slots, int(test.tableSize), "one slot per index")
				assert.Equal(t, test.crt, oaTable.GetStorageParameters().CollisionResolutionTechnique, "crt preserved")
				assert.Equal(t, int64(0), oaTable.GetStorageParameters().NumberOfKeys, "empty")
			})
		}
	})

	t.Run("rejects separate chaining and bad size", func(t *testing.T) {
		// Execute
		_, err1 := NewOATable(model.CRTConf{TableSize: 7, CollisionResolutionTechnique: crt.SeparateChaining})
		_, err2 := NewOATable(model.CRTConf{TableSize: 0, CollisionResolutionTechnique: crt.LinearProbing})

		// Check
		assert.Error(t, err1, "separate chaining rejected")
		assert.Error(t, err2, "size 0 rejected")
	})
}

func TestOATable_Set(t *testing.T) {
	t.Run("linear probing places colliding keys consecutively", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(model.CRTConf{TableSize: 7, CollisionResolutionTechnique: crt.LinearProbing})
		require.NoError(t, err)

		// Execute
		r1, err1 := oaTable.Set(3, 3)
		r2, err2 := oaTable.Set(10, 3)
		r3, err3 := oaTable.Set(17, 3)

		// Check
		assert.NoError(t, err1, "set 3")
		assert.NoError(t, err2, "set 10")
		assert.NoError(t, err3, "set 17")
		assert.Equal(t, []int64{3, 4, 5}, []int64{r1.Index, r2.Index, r3.Index}, "indexes")
		assert.Equal(t, []int64{0, 1, 2}, []int64{r1.Iteration, r2.Iteration, r3.Iteration}, "iterations")
		assert.Len(t, r3.Visited, 3, "visited three slots")
		assert.Equal(t, int64(10), r3.Visited[1].Key, "second visit saw key 10")
	})

	t.Run("duplicate key is rejected wherever it lives", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(model.CRTConf{TableSize: 7, CollisionResolutionTechnique: crt.LinearProbing})
		require.NoError(t, err)
		_, err = oaTable.Set(5, 2)
		require.NoError(t, err)

		// Execute
		record, err := oaTable.Set(5, 6)

		// Check
		assert.ErrorIs(t, err, crt.KeyExists{}, "exists")
		assert.Equal(t, int64(2), record.Index, "reports where the key lives")
		assert.Equal(t, int64(1), oaTable.GetStorageParameters().NumberOfKeys, "table unchanged")
	})

	t.Run("full table is detected for all probing CRTs", func(t *testing.T) {
		for _, test := range probingCases {
			t.Run(fmt.Sprintf("full table for %s", test.crtName), func(t *testing.T) {
				// Prepare
				oaTable, err := NewOATable(model.CRTConf{TableSize: 1, CollisionResolutionTechnique: test.crt})
				require.NoError(t, err)
				_, err = oaTable.Set(1, 0)
				require.NoError(t, err)

				// Execute
				record, err := oaTable.Set(2, 0)

				// Check
				assert.ErrorIs(t, err, crt.TableFull{}, "table full")
				assert.Equal(t, int64(1), record.Iteration, "probed table size times")
			})
		}
	})

	t.Run("rejects hash value outside table", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(model.CRTConf{TableSize: 7, CollisionResolutionTechnique: crt.LinearProbing})
		require.NoError(t, err)

		// Execute
		_, err = oaTable.Set(1, 7)

		// Check
		assert.Error(t, err, "hash value out of range")
	})
}

func TestOATable_Get(t *testing.T) {
	t.Run("stops at first empty slot", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(model.CRTConf{TableSize: 7, CollisionResolutionTechnique: crt.LinearProbing})
		require.NoError(t, err)
		_, _ = oaTable.Set(3, 3)
		_, _ = oaTable.Set(10, 3)

		// Execute
		record, err := oaTable.Get(17, 3)

		// Check
		assert.ErrorIs(t, err, crt.NoRecordFound{}, "not found")
		assert.Equal(t, int64(2), record.Iteration, "stopped at iteration 2")
		assert.Len(t, record.Visited, 3, "visited 3, 4 and empty 5")
		assert.Equal(t, model.SlotEmpty, record.Visited[2].State, "last visit was empty")
	})

	t.Run("deleted slot breaks reachability of keys probed past it", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(model.CRTConf{TableSize: 7, CollisionResolutionTechnique: crt.LinearProbing})
		require.NoError(t, err)
		_, _ = oaTable.Set(3, 3)
		_, _ = oaTable.Set(10, 3)
		_, err = oaTable.Delete(3, 3)
		require.NoError(t, err)

		// Execute
		_, err = oaTable.Get(10, 3)

		// Check
		assert.ErrorIs(t, err, crt.NoRecordFound{}, "10 is unreachable")
		assert.Equal(t, []int64{10}, oaTable.GetBuckets()[4], "but still stored")
	})
}

func TestOATable_Placement(t *testing.T) {
	t.Run("replays probe sequence up to the index", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(model.CRTConf{TableSize: 7, CollisionResolutionTechnique: crt.QuadraticProbing})
		require.NoError(t, err)

		// Execute
		record, err := oaTable.Placement(10, 3, 5)
		_, errMissing := oaTable.Placement(10, 3, 1)

		// Check
		assert.NoError(t, err, "reaches index")
		assert.Equal(t, int64(3), record.Iteration, "3 + 3*3 = 12 mod 7 = 5")
		assert.ErrorIs(t, errMissing, crt.NoRecordFound{}, "index 1 is never probed from 3")
	})
}

func TestOATable_Load(t *testing.T) {
	t.Run("loads valid contents", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(model.CRTConf{TableSize: 3, CollisionResolutionTechnique: crt.DoubleHashing})
		require.NoError(t, err)

		// Execute
		err = oaTable.Load([][]int64{{}, {4}, {2}})

		// Check
		assert.NoError(t, err, "loads")
		assert.Equal(t, int64(2), oaTable.GetStorageParameters().NumberOfKeys, "two keys")
		assert.Equal(t, [][]int64{{}, {4}, {2}}, oaTable.GetBuckets(), "same contents")

		oaTable.Reset()
		assert.Equal(t, [][]int64{{}, {}, {}}, oaTable.GetBuckets(), "reset")
	})

	t.Run("rejects invalid contents", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(model.CRTConf{TableSize: 3, CollisionResolutionTechnique: crt.LinearProbing})
		require.NoError(t, err)
		tests := [][][]int64{
			{{}, {}},
			{{1, 2}, {}, {}},
			{{1}, {1}, {}},
			{{-1}, {}, {}},
		}

		for _, buckets := range tests {
			// Execute
			err = oaTable.Load(buckets)

			// Check
			assert.Errorf(t, err, "rejects %v", buckets)
		}
		assert.Equal(t, int64(0), oaTable.GetStorageParameters().NumberOfKeys, "table unchanged")
	})
}
