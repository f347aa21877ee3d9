package hashfunc

import (
	"fmt"
	"math"

	"github.com/gostonefire/hashsim/crt"
	"github.com/gostonefire/hashsim/internal/utils"
)

// CustomFunc - A caller supplied hash function. It may return any integer value, negative, larger than the table
// size or even outside the int64 range, it will be mapped into the table. Returning an error, panicking, or
// returning NaN, an infinity or a non-integer makes the CustomHasher fall back to the division method.
type CustomFunc func(key, tableSize int64) (float64, error)

// CustomHasher - Wraps a CustomFunc with validation and a fallback to the division method
type CustomHasher struct {
	fn CustomFunc
}

// NewCustomHasher - Returns a pointer to a new CustomHasher instance
func NewCustomHasher(fn CustomFunc) *CustomHasher {
	return &CustomHasher{fn: fn}
}

// ID - Always Custom
func (C *CustomHasher) ID() ID {
	return Custom
}

// Hash - Calls the custom function and maps the result into [0, tableSize) with ((r mod m) + m) mod m.
// On failure it returns the division method result together with a crt.CustomHashFailure.
func (C *CustomHasher) Hash(key, tableSize int64) (index int64, err error) {
	r, cause := C.call(key, tableSize)
	if cause != "" {
		index = DivisionHash(key, tableSize)
		err = crt.CustomHashFailure{Cause: cause}
		return
	}

	index = clampFloat(r, tableSize)
	return
}

// clampFloat - Maps an integer valued float into [0, tableSize) with ((r mod m) + m) mod m, math.Mod is exact
// for values outside the int64 range
func clampFloat(r float64, tableSize int64) int64 {
	if r >= math.MinInt64 && r < math.MaxInt64 {
		return utils.ClampIndex(int64(r), tableSize)
	}

	m := float64(tableSize)
	return int64(math.Mod(math.Mod(r, m)+m, m))
}

// call - Runs the custom function and validates its result, a non-empty cause means the result can't be used
func (C *CustomHasher) call(key, tableSize int64) (r float64, cause string) {
	defer func() {
		if p := recover(); p != nil {
			cause = fmt.Sprintf("panic: %v", p)
		}
	}()

	if C.fn == nil {
		cause = "no function"
		return
	}

	v, err := C.fn(key, tableSize)
	switch {
	case err != nil:
		cause = err.Error()
	case math.IsNaN(v) || math.IsInf(v, 0):
		cause = "result is not a number"
	case v != math.Trunc(v):
		cause = fmt.Sprintf("result %v is not an integer", v)
	default:
		r = v
	}

	return
}
