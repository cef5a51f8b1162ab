package trinary

import (
	"github.com/pkg/errors"
)

// Unbalanced trits take the values 0, 1 and 2, with 2 standing for -1.
var unbalancedTrits = [3]Trit{0, 1, -1}

// TritToUnbalanced maps a valid balanced trit to its unbalanced form.
// The result for values outside {-1, 0, 1} is undefined.
func TritToUnbalanced(t Trit) uint8 {
	return uint8((t + 3) % 3)
}

func UnbalancedToTrit(u uint8) (Trit, error) {
	if u > 2 {
		return 0, errors.Wrapf(ErrInvalidEncoding, "unbalanced trit %d", u)
	}
	return unbalancedTrits[u], nil
}
