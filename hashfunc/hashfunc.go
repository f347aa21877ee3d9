package hashfunc

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Hasher - Interface for anything that maps an integer key to a bucket index in a table.
type Hasher interface {
	// ID - Returns which hash function this is
	ID() ID

	// Hash - Given key it generates an index (bucket) between 0 and table size - 1.
	// A non nil err is only ever a crt.CustomHashFailure, in which case index is still valid and holds the
	// result of the division method fallback.
	Hash(key, tableSize int64) (index int64, err error)
}

// Func - Signature of the built-in hash functions, the returned index is always within [0, tableSize)
type Func func(key, tableSize int64) int64

// ID - Identifies a hash function in the library
type ID int

// Division - h(k) = k mod m
const Division ID = 0

// Multiplication - h(k) = floor(m * (k*A mod 1))
const Multiplication ID = 1

// Polynomial - Polynomial rolling hash over the decimal digits of the key
const Polynomial ID = 2

// Universal - h(k) = ((a*k + b) mod p) mod m
const Universal ID = 3

// MidSquare - Middle digit(s) of k*k, mod m
const MidSquare ID = 4

// Folding - Sum of two digit groups of k, mod m
const Folding ID = 5

// Custom - A caller supplied function, guarded by a fallback to Division
const Custom ID = 6

type description struct {
	name    string
	title   string
	formula string
}

var descriptions = map[ID]description{
	Division:       {name: "division", title: "Division Method", formula: "h(k) = k mod m"},
	Multiplication: {name: "multiplication", title: "Multiplication Method", formula: "h(k) = ⌊m(kA mod 1)⌋"},
	Polynomial:     {name: "polynomial", title: "Polynomial Rolling Hash", formula: "h(k) = (k₁pⁿ⁻¹ + k₂pⁿ⁻² + ... + kₙ) mod m"},
	Universal:      {name: "universal", title: "Universal Hashing", formula: "h(k) = ((ak + b) mod p) mod m"},
	MidSquare:      {name: "midSquare", title: "Mid-square Hashing", formula: "h(k) = middle digits of k²"},
	Folding:        {name: "folding", title: "Folding Method", formula: "h(k) = sum of k parts mod m"},
	Custom:         {name: "custom", title: "Custom", formula: "h(k) = f(k, m)"},
}

// registry - The built-in hash functions, Custom is handled separately since it needs a caller supplied function
var registry = map[ID]Func{
	Division:       DivisionHash,
	Multiplication: MultiplicationHash,
	Polynomial:     PolynomialHash,
	Universal:      UniversalHash,
	MidSquare:      MidSquareHash,
	Folding:        FoldingHash,
}

// IDs - Returns all hash function ids in declaration order
func IDs() []ID {
	return []ID{Division, Multiplication, Polynomial, Universal, MidSquare, Folding, Custom}
}

// String - Returns the text id of the hash function
func (I ID) String() string {
	if d, ok := descriptions[I]; ok {
		return d.name
	}
	return fmt.Sprintf("hashfunc(%d)", int(I))
}

// IsValid - Returns true if the id is one of the known hash functions
func (I ID) IsValid() bool {
	_, ok := descriptions[I]
	return ok
}

// Title - Returns a human-readable name of the hash function
func (I ID) Title() string {
	return descriptions[I].title
}

// Formula - Returns the formula of the hash function as a human-readable string
func (I ID) Formula() string {
	return descriptions[I].formula
}

// MarshalText - Encodes the id as its text id
func (I ID) MarshalText() ([]byte, error) {
	if _, ok := descriptions[I]; !ok {
		return nil, fmt.Errorf("unknown hash function %d", int(I))
	}
	return []byte(I.String()), nil
}

// UnmarshalText - Decodes an id from its text id
func (I *ID) UnmarshalText(text []byte) (err error) {
	*I, err = ParseID(string(text))
	return
}

// ParseID - Returns the hash function id given its text id, e.g. "division" or "midSquare"
func ParseID(name string) (id ID, err error) {
	for i, d := range descriptions {
		if d.name == name {
			id = i
			return
		}
	}

	err = status.Errorf(codes.InvalidArgument, "unknown hash function %q", name)
	return
}

// Resolve - Returns the Hasher for the given id.
//   - id is the hash function to use
//   - custom is the function to wrap when id is Custom, it is ignored otherwise
//
// It returns:
//   - hasher is ready to use with any table size
//   - err is an InvalidArgument status if the id is unknown or Custom is requested without a function
func Resolve(id ID, custom CustomFunc) (hasher Hasher, err error) {
	if id == Custom {
		if custom == nil {
			err = status.Error(codes.InvalidArgument, "custom hash function requested but none was supplied")
			return
		}
		hasher = NewCustomHasher(custom)
		return
	}

	fn, ok := registry[id]
	if !ok {
		err = status.Errorf(codes.InvalidArgument, "unknown hash function %d", int(id))
		return
	}

	hasher = builtinHasher{id: id, fn: fn}
	return
}

// MustResolve - Like Resolve for the built-in hash functions, panics on unknown id
func MustResolve(id ID) Hasher {
	hasher, err := Resolve(id, nil)
	if err != nil {
		panic(err)
	}
	return hasher
}

type builtinHasher struct {
	id ID
	fn Func
}

func (B builtinHasher) ID() ID {
	return B.id
}

func (B builtinHasher) Hash(key, tableSize int64) (index int64, err error) {
	index = B.fn(key, tableSize)
	return
}
