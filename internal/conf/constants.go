package conf

// MultiplicationConstant - Golden ratio conjugate used by the multiplication method
const MultiplicationConstant float64 = 0.6180339887

// PolynomialBase - Base p of the polynomial rolling hash
const PolynomialBase uint64 = 31

// UniversalA - Multiplier a of the universal hash family member in use
const UniversalA int64 = 3

// UniversalB - Offset b of the universal hash family member in use
const UniversalB int64 = 7

// UniversalPrime - Prime p of the universal hash family
const UniversalPrime int64 = 1000000007

// FoldingGroupDigits - Number of decimal digits in each folded group
const FoldingGroupDigits int = 2

// DoubleHashModulus - Modulus of the secondary hash in double hashing, step = 7 - (h mod 7).
// It does not depend on the table size.
const DoubleHashModulus int64 = 7

// DefaultTableSize - Table size used when none is given
const DefaultTableSize int64 = 10

// MaxTableSize - Largest table size accepted, keeps every probe computation inside int64
const MaxTableSize int64 = 1 << 20

// RandomKeyCeiling - Random keys are drawn from [0, RandomKeyCeiling)
const RandomKeyCeiling int64 = 1000
