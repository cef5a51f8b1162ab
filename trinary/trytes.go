package trinary

import (
	"strings"

	"github.com/pkg/errors"
)

const TRYTES = "NOPQRSTUVWXYZ9ABCDEFGHIJKLM"

// indexed by tryte value + 13
var tryteTrits [len(TRYTES)][TRYTE_WIDTH]Trit

func init() {
	for i := range tryteTrits {
		v := i + MIN_TRYTE_VALUE
		for j := 0; j < TRYTE_WIDTH; j++ {
			r := ((v % 3) + 3) % 3
			if r == 2 {
				r = -1
			}
			tryteTrits[i][j] = Trit(r)
			v = (v - r) / 3
		}
	}
}

func tryteIndex(c byte) int {
	if c == '9' {
		return -MIN_TRYTE_VALUE
	}
	if c >= 'A' && c <= 'M' {
		return int(c-'A') + 1 - MIN_TRYTE_VALUE
	}
	if c >= 'N' && c <= 'Z' {
		return int(c - 'N')
	}
	return -1
}

// TrytesToTrits decodes every tryte into its three trits, least significant first.
func TrytesToTrits(trytes Trytes) (Trits, error) {
	trits := make(Trits, len(trytes)*TRYTE_WIDTH)
	for i := 0; i < len(trytes); i++ {
		idx := tryteIndex(trytes[i])
		if idx < 0 {
			return nil, errors.Wrapf(ErrInvalidTrytes, "character %q at index %d", trytes[i], i)
		}
		copy(trits[i*TRYTE_WIDTH:], tryteTrits[idx][:])
	}
	return trits, nil
}

func MustTrytesToTrits(trytes Trytes) Trits {
	trits, err := TrytesToTrits(trytes)
	if err != nil {
		panic(err)
	}
	return trits
}

func TritsToTrytes(trits Trits) (Trytes, error) {
	if len(trits)%TRYTE_WIDTH != 0 {
		return "", errors.Wrapf(ErrInvalidTrit, "length %d is not a multiple of %d", len(trits), TRYTE_WIDTH)
	}
	if err := ValidTrits(trits); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(trits) / TRYTE_WIDTH)
	for i := 0; i < len(trits); i += TRYTE_WIDTH {
		v := int(trits[i]) + int(trits[i+1])*3 + int(trits[i+2])*9
		sb.WriteByte(TRYTES[v-MIN_TRYTE_VALUE])
	}
	return sb.String(), nil
}

func MustTritsToTrytes(trits Trits) Trytes {
	trytes, err := TritsToTrytes(trits)
	if err != nil {
		panic(err)
	}
	return trytes
}

func IsTrytes(trytes Trytes, length int) bool {
	if len(trytes) != length {
		return false
	}

	for i := 0; i < len(trytes); i++ {
		if tryteIndex(trytes[i]) < 0 {
			return false
		}
	}

	return true
}
