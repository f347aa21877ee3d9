package openaddressing

import (
	"github.com/gostonefire/hashsim/crt"
	"github.com/gostonefire/hashsim/internal/model"
	"github.com/gostonefire/hashsim/internal/probe"
)

// indexOf - Scans the whole table for key, returns -1 if it is not stored
func (Q *OATable) indexOf(key int64) int64 {
	for i, slot := range Q.slots {
		if slot.State == model.SlotOccupied && slot.Key == key {
			return int64(i)
		}
	}

	return -1
}

// probingForGet - Is the Probing Collision Resolution Technique algorithm for getting a key.
// An empty slot ends the search since the key would have been placed there.
func (Q *OATable) probingForGet(key, hf1Value int64) (record model.Record, err error) {
	record = model.Record{Key: key, Index: -1}

	iter := probe.NewIterator(Q.algorithm, hf1Value)
	for iter.HasNext() {
		i, index := iter.Next()
		slot := Q.slots[index]
		record.Visited = append(record.Visited, model.Visit{Iteration: i, Index: index, State: slot.State, Key: slot.Key})

		switch slot.State {
		case model.SlotEmpty:
			record.Iteration = i
			err = crt.NoRecordFound{}
			return

		case model.SlotOccupied:
			if slot.Key == key {
				record.Index = index
				record.Iteration = i
				return
			}
		}
	}

	// Every index of the sequence was occupied by other keys
	record.Iteration = Q.tableSize
	err = crt.NoRecordFound{}
	return
}

// probingForSet - Is the Probing Collision Resolution Technique algorithm for finding a slot for a new key.
func (Q *OATable) probingForSet(key, hf1Value int64) (record model.Record, err error) {
	record = model.Record{Key: key, Index: -1}

	iter := probe.NewIterator(Q.algorithm, hf1Value)
	for iter.HasNext() {
		i, index := iter.Next()
		slot := Q.slots[index]
		record.Visited = append(record.Visited, model.Visit{Iteration: i, Index: index, State: slot.State, Key: slot.Key})

		if slot.State == model.SlotEmpty {
			record.Index = index
			record.Iteration = i
			return
		}
	}

	// Relies on the probing function to go through the table, for some sizes it does not visit every slot
	record.Iteration = Q.tableSize
	err = crt.TableFull{}
	return
}
