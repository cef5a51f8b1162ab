// Package kerl implements Kerl, the ternary sponge built on Keccak-384. Each 243 trit
// chunk travels through Keccak as a 48 byte two's complement integer.
package kerl

import (
	"hash"

	"github.com/pkg/errors"
	"github.com/tonnerre/golang-go.crypto/sha3"

	"gitlab.com/semkodev/ternhash/sponge"
	"gitlab.com/semkodev/ternhash/trinary"
)

const (
	HASH_LENGTH      = sponge.HASH_LENGTH
	BIT_HASH_LENGTH  = 384
	BYTE_HASH_LENGTH = BIT_HASH_LENGTH / 8
)

type Kerl struct {
	keccak hash.Hash
	buffer [BYTE_HASH_LENGTH]byte
	trits  [HASH_LENGTH]int8
	phase  sponge.Phase
}

var _ sponge.Sponge = (*Kerl)(nil)

func New() *Kerl {
	return &Kerl{keccak: sha3.NewKeccak384()}
}

func (kerl *Kerl) Reset() {
	kerl.keccak.Reset()
	kerl.phase = sponge.Initial
}

// Absorb writes every chunk to Keccak with its last trit cleared.
func (kerl *Kerl) Absorb(trits trinary.Trits) error {
	if err := kerl.phase.CheckAbsorb(trits); err != nil {
		return errors.Wrap(err, "kerl")
	}
	for offset := 0; offset < len(trits); offset += HASH_LENGTH {
		copy(kerl.trits[:], trits[offset:offset+HASH_LENGTH])
		kerl.trits[HASH_LENGTH-1] = 0
		tritsToBytes(kerl.trits[:], kerl.buffer[:])
		kerl.keccak.Write(kerl.buffer[:])
	}
	kerl.phase.Advance(sponge.Absorbing, len(trits))
	return nil
}

// Squeeze emits the current digest as trits, then restarts Keccak on the bitwise
// complement of that digest.
func (kerl *Kerl) Squeeze(out trinary.Trits) error {
	if err := kerl.phase.CheckSqueeze(out); err != nil {
		return errors.Wrap(err, "kerl")
	}
	for offset := 0; offset < len(out); offset += HASH_LENGTH {
		digest := kerl.keccak.Sum(kerl.buffer[:0])
		bytesToTrits(digest, out[offset:offset+HASH_LENGTH])
		out[offset+HASH_LENGTH-1] = 0

		for i := range digest {
			digest[i] = ^digest[i]
		}
		kerl.keccak.Reset()
		kerl.keccak.Write(digest)
	}
	kerl.phase.Advance(sponge.Squeezing, len(out))
	return nil
}
