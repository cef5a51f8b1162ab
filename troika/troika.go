// Package troika implements the Troika sponge construction: 24 rounds over a 729 trit
// state of 27 slices, each slice 3 rows by 9 columns, with a rate of 243 trits.
//
// The S-box, shift parameters, column parity, padding and absorb/squeeze placement
// follow the published design. The default round constants do not: they are squeezed
// from Curl-P-81 at init, so New and Sum do not reproduce published Troika digests.
// Load the published round_constants table with NewRoundConstants and hash with
// NewWithRoundConstants to get them.
//
// Trits are exchanged in balanced form like every other engine in this module and
// held internally as unbalanced values 0, 1 and 2.
package troika

import (
	"github.com/pkg/errors"

	"gitlab.com/semkodev/ternhash/sponge"
	"gitlab.com/semkodev/ternhash/trinary"
)

type Troika struct {
	state     [STATESIZE]uint8
	scratch   [STATESIZE]uint8
	constants *RoundConstants
	phase     sponge.Phase
	// a chunk sits in the rate and has not been permuted yet
	pending bool
}

var _ sponge.Sponge = (*Troika)(nil)

func New() *Troika {
	return &Troika{}
}

// NewWithRoundConstants returns an engine that adds rc instead of the default
// constants. rc is shared, not copied, and must not change while in use.
func NewWithRoundConstants(rc *RoundConstants) *Troika {
	return &Troika{constants: rc}
}

func (t *Troika) Reset() {
	t.state = [STATESIZE]uint8{}
	t.phase = sponge.Initial
	t.pending = false
}

// Absorb overwrites the rate with each chunk. The permutation for a chunk runs when
// the next chunk arrives or when squeezing starts.
func (t *Troika) Absorb(trits trinary.Trits) error {
	if err := t.phase.CheckAbsorb(trits); err != nil {
		return errors.Wrap(err, "troika")
	}
	for offset := 0; offset < len(trits); offset += RATE {
		if t.pending {
			t.permute()
		}
		for i, trit := range trits[offset : offset+RATE] {
			t.state[i] = trinary.TritToUnbalanced(trit)
		}
		t.pending = true
	}
	t.phase.Advance(sponge.Absorbing, len(trits))
	return nil
}

// Squeeze permutes and then copies out the rate, once per chunk.
func (t *Troika) Squeeze(out trinary.Trits) error {
	if err := t.phase.CheckSqueeze(out); err != nil {
		return errors.Wrap(err, "troika")
	}
	for offset := 0; offset < len(out); offset += RATE {
		t.permute()
		t.pending = false
		for i := 0; i < RATE; i++ {
			trit, err := trinary.UnbalancedToTrit(t.state[i])
			if err != nil {
				return errors.Wrap(err, "troika")
			}
			out[offset+i] = trit
		}
	}
	t.phase.Advance(sponge.Squeezing, len(out))
	return nil
}

// Sum hashes a message of any length into out, which may also have any length.
// The last message block is padded with a single 1 trit followed by zeros.
func Sum(message trinary.Trits, out trinary.Trits) error {
	return New().Sum(message, out)
}

// Sum resets t and hashes message into out with t's round constants.
func (t *Troika) Sum(message trinary.Trits, out trinary.Trits) error {
	if err := trinary.ValidTrits(message); err != nil {
		return errors.Wrap(err, "troika")
	}

	t.Reset()
	full := len(message) / RATE * RATE
	if err := t.Absorb(message[:full]); err != nil {
		return err
	}

	var last [RATE]int8
	copy(last[:], message[full:])
	last[len(message)-full] = PADDING
	if err := t.Absorb(last[:]); err != nil {
		return err
	}

	full = len(out) / RATE * RATE
	if err := t.Squeeze(out[:full]); err != nil {
		return err
	}
	if rest := len(out) - full; rest > 0 {
		var block [RATE]int8
		if err := t.Squeeze(block[:]); err != nil {
			return err
		}
		copy(out[full:], block[:rest])
	}
	return nil
}
