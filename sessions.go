package hashsim

import (
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/gostonefire/hashsim/crt"
	"github.com/gostonefire/hashsim/hashfunc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// session - One user's table together with the hash function it is used with
type session struct {
	mu        sync.Mutex
	hashTable *HashTable
	hasher    hashfunc.Hasher
}

// Sessions - A registry of independent sessions keyed by a random id. Calls for different sessions run
// concurrently, calls for the same session are serialized.
type Sessions struct {
	lock     sync.RWMutex
	sessions map[uuid.UUID]*session
	logger   *log.Logger
}

// NewSessions - Returns an empty registry
//   - logger receives one line per created, rebuilt and removed session, it may be nil
func NewSessions(logger *log.Logger) *Sessions {
	return &Sessions{
		sessions: make(map[uuid.UUID]*session),
		logger:   logger,
	}
}

// Create - Creates a session holding a new empty table
//   - tableSize is the number of buckets
//   - strategy is the Collision Resolution Technique
//   - hasher is the hash function the session uses
//
// It returns:
//   - id identifies the session in later calls
//   - err is an InvalidArgument status error if any argument is not valid
func (S *Sessions) Create(tableSize int64, strategy crt.Strategy, hasher hashfunc.Hasher) (id uuid.UUID, err error) {
	if hasher == nil {
		err = invalidArgument("a hash function is required")
		return
	}

	hashTable, err := NewHashTable(tableSize, strategy)
	if err != nil {
		return
	}

	id = S.add(hashTable, hasher)
	S.logf("session %s created: size %d, strategy %s, hash %s", id, tableSize, strategy, hasher.ID())

	return
}

// Adopt - Registers an existing table, e.g. one returned by LoadSession, as a new session
func (S *Sessions) Adopt(hashTable *HashTable, hasher hashfunc.Hasher) (id uuid.UUID, err error) {
	if hashTable == nil || hasher == nil {
		err = invalidArgument("a hash table and a hash function are required")
		return
	}

	id = S.add(hashTable, hasher)
	S.logf("session %s adopted: size %d, strategy %s, hash %s, %d key(s)",
		id, hashTable.TableSize(), hashTable.Strategy(), hasher.ID(), hashTable.Len())

	return
}

// Do - Runs fn with exclusive access to the session's table
//   - id identifies the session
//   - fn is given the table and the session's hash function, its error is returned as is
//
// It returns:
//   - err is a NotFound status error if the session does not exist, otherwise the error from fn
func (S *Sessions) Do(id uuid.UUID, fn func(hashTable *HashTable, hasher hashfunc.Hasher) error) (err error) {
	s, err := S.get(id)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.hashTable, s.hasher)
}

// Rebuild - Replaces the session's table by one with another size and/or strategy and switches hash function.
// Existing keys are replayed into the new table when replay is true.
//
// It returns:
//   - results holds one OperationResult per replayed key
//   - err is a NotFound status error if the session does not exist or an InvalidArgument status error if any
//     argument is not valid, the session is then unchanged
func (S *Sessions) Rebuild(id uuid.UUID, tableSize int64, strategy crt.Strategy, hasher hashfunc.Hasher, replay bool) (results []OperationResult, err error) {
	if hasher == nil {
		err = invalidArgument("a hash function is required")
		return
	}

	s, err := S.get(id)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rebuilt, results, err := Rebuild(s.hashTable, tableSize, strategy, hasher, replay)
	if err != nil {
		return
	}
	s.hashTable = rebuilt
	s.hasher = hasher
	S.logf("session %s rebuilt: size %d, strategy %s, hash %s, %d key(s)", id, tableSize, strategy, hasher.ID(), rebuilt.Len())

	return
}

// Remove - Deletes a session, returns false if it did not exist
func (S *Sessions) Remove(id uuid.UUID) bool {
	S.lock.Lock()
	_, ok := S.sessions[id]
	delete(S.sessions, id)
	S.lock.Unlock()

	if ok {
		S.logf("session %s removed", id)
	}
	return ok
}

// Len - Returns the number of sessions
func (S *Sessions) Len() int {
	S.lock.RLock()
	defer S.lock.RUnlock()

	return len(S.sessions)
}

func (S *Sessions) add(hashTable *HashTable, hasher hashfunc.Hasher) (id uuid.UUID) {
	id = uuid.New()

	S.lock.Lock()
	S.sessions[id] = &session{hashTable: hashTable, hasher: hasher}
	S.lock.Unlock()

	return
}

func (S *Sessions) get(id uuid.UUID) (s *session, err error) {
	S.lock.RLock()
	s, ok := S.sessions[id]
	S.lock.RUnlock()

	if !ok {
		err = status.Errorf(codes.NotFound, "session %s does not exist", id)
	}
	return
}

func (S *Sessions) logf(format string, a ...any) {
	if S.logger != nil {
		S.logger.Printf(format, a...)
	}
}
