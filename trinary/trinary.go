// Package trinary converts between the representations of ternary data used by the
// hashing engines: balanced trits, trytes, packed bytes and unbalanced trits.
package trinary

import (
	"github.com/pkg/errors"
)

const (
	TRYTE_WIDTH     = 3
	MIN_TRYTE_VALUE = -13
	MAX_TRYTE_VALUE = 13
	MIN_TRIT_VALUE  = -1
	MAX_TRIT_VALUE  = 1
)

// Trit is a balanced ternary digit: -1, 0 or 1.
type Trit = int8

// Trits is a slice of balanced trits.
type Trits = []int8

// Trytes is a string over the tryte alphabet, three trits per character.
type Trytes = string

var (
	ErrInvalidTrit     = errors.New("invalid trit")
	ErrInvalidTrytes   = errors.New("invalid trytes")
	ErrInvalidEncoding = errors.New("invalid encoding")
)

func ValidTrit(t Trit) bool {
	return t >= MIN_TRIT_VALUE && t <= MAX_TRIT_VALUE
}

// ValidTrits returns ErrInvalidTrit for the first value outside {-1, 0, 1}.
func ValidTrits(trits Trits) error {
	for i, t := range trits {
		if !ValidTrit(t) {
			return errors.Wrapf(ErrInvalidTrit, "value %d at index %d", t, i)
		}
	}
	return nil
}
