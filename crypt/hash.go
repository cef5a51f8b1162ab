// Package crypt selects a sponge engine by mode and runs complete hash computations.
package crypt

import (
	"github.com/pkg/errors"

	"gitlab.com/semkodev/ternhash/curl"
	"gitlab.com/semkodev/ternhash/kerl"
	"gitlab.com/semkodev/ternhash/sponge"
	"gitlab.com/semkodev/ternhash/trinary"
	"gitlab.com/semkodev/ternhash/troika"
)

const HASH_LENGTH = sponge.HASH_LENGTH

func NewSponge(mode HashMode) (sponge.Sponge, error) {
	switch mode {
	case CurlP27:
		return curl.New(curl.CurlP27)
	case CurlP81:
		return curl.New(curl.CurlP81)
	case Troika:
		return troika.New(), nil
	case Kerl:
		return kerl.New(), nil
	}
	return nil, errors.Wrapf(sponge.ErrInvalidMode, "mode %d", int(mode))
}

// HashWithMode absorbs trits into a fresh sponge of the given mode and squeezes out.
// Both lengths must be multiples of HASH_LENGTH.
func HashWithMode(mode HashMode, trits trinary.Trits, out trinary.Trits) error {
	if len(out)%HASH_LENGTH != 0 {
		return errors.Wrapf(sponge.ErrInvalidOutputLength, "output slice length isn't a multiple of %d: %d", HASH_LENGTH, len(out))
	}

	s, err := NewSponge(mode)
	if err != nil {
		return err
	}
	if err := s.Absorb(trits); err != nil {
		return err
	}
	return s.Squeeze(out)
}

// Sum hashes a complete message. Troika pads messages of any length and accepts any
// output length; the other modes require chunk aligned lengths like HashWithMode.
func Sum(mode HashMode, message trinary.Trits, out trinary.Trits) error {
	if mode == Troika {
		return troika.Sum(message, out)
	}
	return HashWithMode(mode, message, out)
}
