// Package sponge defines the contract shared by the ternary sponge engines.
//
// A sponge absorbs input and squeezes output in chunks of HASH_LENGTH trits. Every
// engine in this module starts in the Initial phase, moves to Absorbing on the first
// non-empty Absorb and to Squeezing on the first non-empty Squeeze. Absorbing again
// after squeezing is refused with ErrInvalidSpongeUse until Reset is called.
//
// Engines are not safe for concurrent use; distinct instances are independent.
package sponge

import (
	"github.com/pkg/errors"

	"gitlab.com/semkodev/ternhash/trinary"
)

const (
	HASH_LENGTH = 243
)

var (
	ErrInvalidInputLength  = errors.New("input length is not a multiple of the hash length")
	ErrInvalidOutputLength = errors.New("output length is not a multiple of the hash length")
	ErrInvalidSpongeUse    = errors.New("absorb after squeeze without reset")
	ErrInvalidMode         = errors.New("invalid hash mode")
)

type Sponge interface {
	// Absorb mixes trits into the state, HASH_LENGTH trits at a time.
	Absorb(trits trinary.Trits) error
	// Squeeze fills out with HASH_LENGTH trits at a time.
	Squeeze(out trinary.Trits) error
	// Reset returns the sponge to its initial all-zero state.
	Reset()
}
