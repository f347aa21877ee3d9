package hashfunc

import (
	"math"
	"math/big"
	"math/bits"
	"strconv"

	"github.com/gostonefire/hashsim/internal/conf"
	"github.com/gostonefire/hashsim/internal/utils"
)

// DivisionHash - h(k) = k mod m
func DivisionHash(key, tableSize int64) int64 {
	return utils.ClampIndex(key, tableSize)
}

// MultiplicationHash - h(k) = floor(m * frac(k*A)) with A = 0.6180339887
func MultiplicationHash(key, tableSize int64) int64 {
	x := float64(key) * conf.MultiplicationConstant
	frac := x - math.Floor(x)

	index := int64(math.Floor(float64(tableSize) * frac))
	if index >= tableSize {
		// frac is strictly below 1 but the product may round up to the table size
		index = tableSize - 1
	}

	return index
}

// PolynomialHash - Rolling hash over the decimal digits of the key, hash = (hash*31 + code) mod m, left to right.
// The multiplication is done in 128 bits so any table size is safe.
func PolynomialHash(key, tableSize int64) int64 {
	m := uint64(tableSize)
	var h uint64

	for _, c := range utils.Decimal(key) {
		hi, lo := bits.Mul64(h, conf.PolynomialBase)
		var carry uint64
		lo, carry = bits.Add64(lo, uint64(c), 0)
		h = bits.Rem64(hi+carry, lo, m)
	}

	return int64(h)
}

// UniversalHash - h(k) = ((a*k + b) mod p) mod m with a = 3, b = 7, p = 1000000007
func UniversalHash(key, tableSize int64) int64 {
	p := conf.UniversalPrime
	h := (conf.UniversalA*(key%p) + conf.UniversalB) % p

	return h % tableSize
}

// MidSquareHash - Takes the middle digit(s) of the decimal representation of k*k, two digits when the
// number of digits is even and one when it is odd, and returns them mod m.
func MidSquareHash(key, tableSize int64) int64 {
	k := big.NewInt(key)
	square := new(big.Int).Mul(k, k).String()

	n := len(square)
	var mid string
	if n%2 == 0 {
		mid = square[n/2-1 : n/2+1]
	} else {
		mid = square[n/2 : n/2+1]
	}

	digits, _ := strconv.ParseInt(mid, 10, 64)

	return digits % tableSize
}

// FoldingHash - Splits the decimal representation of k into groups of two digits from the left (the last group
// may have one digit), sums the groups and returns the sum mod m.
func FoldingHash(key, tableSize int64) int64 {
	s := utils.Decimal(key)

	var sum int64
	for i := 0; i < len(s); i += conf.FoldingGroupDigits {
		end := min(i+conf.FoldingGroupDigits, len(s))
		part, _ := strconv.ParseInt(s[i:end], 10, 64)
		sum += part
	}

	return sum % tableSize
}
