// Package curl implements the Curl-P sponge: a 729 trit state transformed by a
// two-input substitution table applied along a fixed index schedule.
package curl

import (
	"github.com/pkg/errors"

	"gitlab.com/semkodev/ternhash/sponge"
	"gitlab.com/semkodev/ternhash/trinary"
)

const (
	NUMBER_OF_ROUNDSP27 = 27
	NUMBER_OF_ROUNDSP81 = 81
	HASH_LENGTH         = sponge.HASH_LENGTH
	STATE_LENGTH        = 3 * HASH_LENGTH
)

// Mode selects the number of rounds per transformation.
type Mode int

const (
	CurlP27 Mode = NUMBER_OF_ROUNDSP27
	CurlP81 Mode = NUMBER_OF_ROUNDSP81
)

var ErrInvalidMode = sponge.ErrInvalidMode

var (
	TRUTH_TABLE = [11]int8{1, 0, -1, 2, 1, -1, 0, 2, -1, 1, 0}

	// indices[i] and indices[i+1] are the positions read to produce trit i of a round.
	indices [STATE_LENGTH + 1]int
)

func init() {
	for i := range indices {
		indices[i] = (364 * i) % STATE_LENGTH
	}
}

// The zero value is a ready to use Curl-P-81.
type Curl struct {
	state   [STATE_LENGTH]int8
	scratch [STATE_LENGTH]int8
	rounds  int
	phase   sponge.Phase
}

var _ sponge.Sponge = (*Curl)(nil)

func New(mode Mode) (*Curl, error) {
	switch mode {
	case CurlP27, CurlP81:
	default:
		return nil, errors.Wrapf(ErrInvalidMode, "%d rounds", int(mode))
	}
	return &Curl{rounds: int(mode)}, nil
}

func NewCurlP27() *Curl {
	return &Curl{rounds: NUMBER_OF_ROUNDSP27}
}

func NewCurlP81() *Curl {
	return &Curl{rounds: NUMBER_OF_ROUNDSP81}
}

func (curl *Curl) Rounds() int {
	if curl.rounds == 0 {
		return NUMBER_OF_ROUNDSP81
	}
	return curl.rounds
}

func (curl *Curl) Reset() {
	curl.state = [STATE_LENGTH]int8{}
	curl.phase = sponge.Initial
}

// Absorb copies every 243 trit chunk over the first third of the state and
// transforms once per chunk.
func (curl *Curl) Absorb(trits trinary.Trits) error {
	if err := curl.phase.CheckAbsorb(trits); err != nil {
		return errors.Wrap(err, "curl")
	}
	for offset := 0; offset < len(trits); offset += HASH_LENGTH {
		copy(curl.state[:HASH_LENGTH], trits[offset:offset+HASH_LENGTH])
		curl.transform()
	}
	curl.phase.Advance(sponge.Absorbing, len(trits))
	return nil
}

// Squeeze copies out the first third of the state and transforms after every chunk.
func (curl *Curl) Squeeze(out trinary.Trits) error {
	if err := curl.phase.CheckSqueeze(out); err != nil {
		return errors.Wrap(err, "curl")
	}
	for offset := 0; offset < len(out); offset += HASH_LENGTH {
		copy(out[offset:offset+HASH_LENGTH], curl.state[:HASH_LENGTH])
		curl.transform()
	}
	curl.phase.Advance(sponge.Squeezing, len(out))
	return nil
}

func (curl *Curl) transform() {
	rounds := curl.Rounds()
	for round := 0; round < rounds; round++ {
		curl.scratch = curl.state
		for i := 0; i < STATE_LENGTH; i++ {
			curl.state[i] = TRUTH_TABLE[curl.scratch[indices[i]]+(curl.scratch[indices[i+1]]<<2)+5]
		}
	}
}
