package hashsim

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/gostonefire/hashsim/crt"
	"github.com/gostonefire/hashsim/hashfunc"
)

// Document - The JSON form of a saved session.
// The digest covers every other field, it is optional on load so that documents can be written by hand.
type Document struct {
	TableSize    int64        `json:"tableSize"`
	Strategy     crt.Strategy `json:"strategy"`
	HashFunction hashfunc.ID  `json:"hashFunction"`
	Table        [][]int64    `json:"table"`
	Digest       string       `json:"digest,omitempty"`
}

// SaveSession - Writes the table and the id of its hash function as an indented JSON document
//   - w is where the document is written
//   - hashTable is the table to save
//   - hashID is the hash function the table is used with, for Custom the function itself is not saved
//
// It returns:
//   - err is either of type InvalidArgument or a standard error from w
func SaveSession(w io.Writer, hashTable *HashTable, hashID hashfunc.ID) (err error) {
	if hashTable == nil {
		err = invalidArgument("a hash table is required")
		return
	}
	if !hashID.IsValid() {
		err = invalidArgument("unknown hash function %d", int(hashID))
		return
	}

	table := hashTable.Snapshot()
	document := Document{
		TableSize:    table.TableSize,
		Strategy:     table.Strategy,
		HashFunction: hashID,
		Table:        table.Buckets,
	}
	document.Digest = document.digest()

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(document); err != nil {
		err = fmt.Errorf("error while writing session: %w", err)
	}

	return
}

// LoadSession - Reads a document written by SaveSession
//   - r is where the document is read from
//
// It returns:
//   - hashTable holds the restored contents
//   - hashID is the hash function the table was saved with
//   - err is an InvalidArgument status error if the document is malformed, its digest does not match or its
//     contents can't be restored
func LoadSession(r io.Reader) (hashTable *HashTable, hashID hashfunc.ID, err error) {
	var document Document
	if err = json.NewDecoder(r).Decode(&document); err != nil {
		err = invalidArgument("malformed session document: %s", err)
		return
	}

	if document.Digest != "" && document.Digest != document.digest() {
		err = invalidArgument("session digest %s does not match contents", document.Digest)
		return
	}

	hashTable, err = FromSnapshot(Table{
		TableSize: document.TableSize,
		Strategy:  document.Strategy,
		Buckets:   document.Table,
	})
	if err != nil {
		return
	}
	hashID = document.HashFunction

	return
}

// digest - Returns the xxhash of the document contents in hex
func (D Document) digest() string {
	h := xxhash.New()
	buf := make([]byte, 8)

	write := func(v int64) {
		binary.LittleEndian.PutUint64(buf, uint64(v))
		_, _ = h.Write(buf)
	}

	write(D.TableSize)
	write(int64(D.Strategy))
	write(int64(D.HashFunction))
	write(int64(len(D.Table)))
	for _, bucket := range D.Table {
		write(int64(len(bucket)))
		for _, key := range bucket {
			write(key)
		}
	}

	return fmt.Sprintf("%016x", h.Sum64())
}
