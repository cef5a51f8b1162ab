package trinary

import (
	"github.com/pkg/errors"
)

const (
	TRITS_PER_BYTE = 5
	MAX_BYTE_VALUE = 121 // (3^5 - 1) / 2
	MIN_BYTE_VALUE = -MAX_BYTE_VALUE
)

// TritsToBytes packs five trits per byte as a signed balanced base-3 number, the
// same packing the node uses for its storage keys. The last byte may hold fewer trits.
func TritsToBytes(trits Trits) []byte {
	bytes := make([]byte, (len(trits)+TRITS_PER_BYTE-1)/TRITS_PER_BYTE)
	for i := range bytes {
		end := (i + 1) * TRITS_PER_BYTE
		if end > len(trits) {
			end = len(trits)
		}
		value := 0
		for j := end - 1; j >= i*TRITS_PER_BYTE; j-- {
			value = value*3 + int(trits[j])
		}
		bytes[i] = byte(int8(value))
	}
	return bytes
}

// BytesToTrits unpacks numTrits trits from bytes produced by TritsToBytes.
func BytesToTrits(bytes []byte, numTrits int) (Trits, error) {
	if numTrits < 0 || numTrits > len(bytes)*TRITS_PER_BYTE {
		return nil, errors.Wrapf(ErrInvalidEncoding, "%d trits do not fit into %d bytes", numTrits, len(bytes))
	}

	trits := make(Trits, numTrits)
	for i := 0; i*TRITS_PER_BYTE < numTrits; i++ {
		value := int(int8(bytes[i]))
		if value < MIN_BYTE_VALUE || value > MAX_BYTE_VALUE {
			return nil, errors.Wrapf(ErrInvalidEncoding, "byte %d at index %d", value, i)
		}
		for j := i * TRITS_PER_BYTE; j < (i+1)*TRITS_PER_BYTE && j < numTrits; j++ {
			r := ((value % 3) + 3) % 3
			if r == 2 {
				r = -1
			}
			trits[j] = Trit(r)
			value = (value - r) / 3
		}
	}
	return trits, nil
}
