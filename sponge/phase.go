package sponge

import (
	"github.com/pkg/errors"

	"gitlab.com/semkodev/ternhash/trinary"
)

type Phase uint8

const (
	Initial Phase = iota
	Absorbing
	Squeezing
)

func (p Phase) String() string {
	switch p {
	case Initial:
		return "initial"
	case Absorbing:
		return "absorbing"
	case Squeezing:
		return "squeezing"
	}
	return "unknown"
}

// CheckAbsorb validates an absorb request without changing anything, so engines
// can reject it before touching their state.
func (p Phase) CheckAbsorb(trits trinary.Trits) error {
	if len(trits)%HASH_LENGTH != 0 {
		return errors.Wrapf(ErrInvalidInputLength, "absorb %d trits", len(trits))
	}
	if p == Squeezing {
		return ErrInvalidSpongeUse
	}
	return trinary.ValidTrits(trits)
}

func (p Phase) CheckSqueeze(out trinary.Trits) error {
	if len(out)%HASH_LENGTH != 0 {
		return errors.Wrapf(ErrInvalidOutputLength, "squeeze %d trits", len(out))
	}
	return nil
}

// Advance moves to next if n trits were processed. Empty calls leave the phase alone.
func (p *Phase) Advance(next Phase, n int) {
	if n > 0 {
		*p = next
	}
}
