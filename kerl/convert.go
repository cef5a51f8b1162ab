package kerl

import (
	"math/big"
)

var (
	three   = big.NewInt(3)
	// 2^384, the modulus of the two's complement encoding
	modulus = new(big.Int).Lsh(big.NewInt(1), BIT_HASH_LENGTH)
)

// tritsToBytes writes the balanced value of trits as a big endian two's complement
// integer filling destination.
func tritsToBytes(trits []int8, destination []byte) {
	value := new(big.Int)
	digit := new(big.Int)
	for i := len(trits) - 1; i >= 0; i-- {
		value.Mul(value, three)
		value.Add(value, digit.SetInt64(int64(trits[i])))
	}
	if value.Sign() < 0 {
		value.Add(value, modulus)
	}
	value.FillBytes(destination)
}

// bytesToTrits reads a big endian two's complement integer and writes its balanced
// ternary digits, least significant first, to trits.
func bytesToTrits(bytes []byte, trits []int8) {
	value := new(big.Int).SetBytes(bytes)
	if len(bytes) > 0 && bytes[0]&0x80 != 0 {
		value.Sub(value, new(big.Int).Lsh(big.NewInt(1), uint(len(bytes)*8)))
	}

	remainder := new(big.Int)
	for i := range trits {
		value.DivMod(value, three, remainder)
		r := remainder.Int64()
		if r == 2 {
			r = -1
			value.Add(value, big.NewInt(1))
		}
		trits[i] = int8(r)
	}
}
