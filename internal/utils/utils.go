package utils

import (
	"strconv"
)

// IndexOf - Returns the position of key in keys or -1 if it is not there
func IndexOf(keys []int64, key int64) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}

	return -1
}

// Contains - Returns true if key is one of keys
func Contains(keys []int64, key int64) bool {
	return IndexOf(keys, key) != -1
}

// Remove - Returns a new slice with every occurrence of key removed, keeping the order of the others
func Remove(keys []int64, key int64) (b []int64) {
	b = make([]int64, 0, len(keys))
	for _, k := range keys {
		if k != key {
			b = append(b, k)
		}
	}

	return
}

// Decimal - Returns the decimal string representation of a non-negative key
func Decimal(key int64) string {
	return strconv.FormatInt(key, 10)
}

// ClampIndex - Maps any value into [0, tableSize) using ((r mod size) + size) mod size
func ClampIndex(r, tableSize int64) int64 {
	return ((r % tableSize) + tableSize) % tableSize
}

// CopyBuckets - Returns a deep copy of a slice of buckets
func CopyBuckets(buckets [][]int64) (c [][]int64) {
	c = make([][]int64, len(buckets))
	for i, b := range buckets {
		c[i] = make([]int64, len(b))
		_ = copy(c[i], b)
	}

	return
}
