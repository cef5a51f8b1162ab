package crypt

import "gitlab.com/semkodev/ternhash/trinary"

// IsValidPoW reports whether the last mwm trits of hash are zero.
func IsValidPoW(hash trinary.Trits, mwm int) bool {
	if mwm > len(hash) {
		return false
	}
	for i := len(hash) - mwm; i < len(hash); i++ {
		if hash[i] != 0 {
			return false
		}
	}
	return true
}
