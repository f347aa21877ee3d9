package crt

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Strategy - Collision Resolution Technique used by a hash table
type Strategy int

// SeparateChaining - Collision Resolution Technique using a list of keys in each bucket
const SeparateChaining Strategy = 0

// LinearProbing - Open Addressing Collision Resolution Technique probing (h + i) mod m
const LinearProbing Strategy = 1

// QuadraticProbing - Open Addressing Collision Resolution Technique probing (h + i*i) mod m
const QuadraticProbing Strategy = 2

// DoubleHashing - Open Addressing Collision Resolution Technique probing (h + i*step) mod m
const DoubleHashing Strategy = 3

var strategyNames = map[Strategy]string{
	SeparateChaining: "chaining",
	LinearProbing:    "linear",
	QuadraticProbing: "quadratic",
	DoubleHashing:    "double",
}

// Strategies - Returns all known strategies in declaration order
func Strategies() []Strategy {
	return []Strategy{SeparateChaining, LinearProbing, QuadraticProbing, DoubleHashing}
}

// String - Returns the text id of the strategy
func (S Strategy) String() string {
	if name, ok := strategyNames[S]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(S))
}

// IsValid - Returns true if the strategy is one of the known strategies
func (S Strategy) IsValid() bool {
	_, ok := strategyNames[S]
	return ok
}

// IsProbing - Returns true for the Open Addressing strategies, where each slot holds at most one key
func (S Strategy) IsProbing() bool {
	return S == LinearProbing || S == QuadraticProbing || S == DoubleHashing
}

// MarshalText - Encodes the strategy as its text id
func (S Strategy) MarshalText() ([]byte, error) {
	if !S.IsValid() {
		return nil, fmt.Errorf("unknown collision resolution technique %d", int(S))
	}
	return []byte(S.String()), nil
}

// UnmarshalText - Decodes a strategy from its text id
func (S *Strategy) UnmarshalText(text []byte) (err error) {
	*S, err = ParseStrategy(string(text))
	return
}

// ParseStrategy - Returns the strategy given its text id (chaining, linear, quadratic or double)
func ParseStrategy(name string) (strategy Strategy, err error) {
	for s, n := range strategyNames {
		if n == name {
			strategy = s
			return
		}
	}

	err = status.Errorf(codes.InvalidArgument, "unknown collision resolution technique %q", name)
	return
}

// Reason - Explains why an operation did not succeed
type Reason int

// NoReason - The operation succeeded
const NoReason Reason = 0

// Exists - The key is already stored in the table
const Exists Reason = 1

// Full - Every candidate slot was probed without finding an empty one
const Full Reason = 2

// NotFound - The key is not stored in the table
const NotFound Reason = 3

// String - Returns a readable name of the reason
func (R Reason) String() string {
	switch R {
	case NoReason:
		return ""
	case Exists:
		return "Exists"
	case Full:
		return "Full"
	case NotFound:
		return "NotFound"
	}
	return fmt.Sprintf("reason(%d)", int(R))
}
