package troika

import (
	"strings"

	"github.com/pkg/errors"

	"gitlab.com/semkodev/ternhash/curl"
	"gitlab.com/semkodev/ternhash/trinary"
)

const (
	COLUMNS    = 9
	ROWS       = 3
	SLICES     = 27
	SLICESIZE  = COLUMNS * ROWS
	STATESIZE  = SLICESIZE * SLICES
	NUM_SBOXES = STATESIZE / 3
	NUM_ROUNDS = 24
	RATE       = 243
	PADDING    = 1

	roundConstantsSeed = "TROIKA9ROUND9CONSTANTS"
)

var (
	SBOX = [27]uint8{6, 25, 17, 5, 15, 10, 4, 20, 24, 0, 1, 2, 9, 22, 26, 18, 16, 14, 3, 13, 23, 7, 11, 12, 8, 21, 19}

	SHIFT_ROWS_PARAM  = [ROWS]int{0, 1, 2}
	SHIFT_LANES_PARAM = [SLICESIZE]int{19, 13, 21, 10, 24, 15, 2, 9, 3, 14, 0, 6, 5, 1, 25, 22, 23, 20, 7, 17, 26, 12, 8, 18, 16, 11, 4}

	ErrInvalidRoundConstants = errors.New("invalid round constants")

	// used by New, Sum and the zero value
	defaultRoundConstants RoundConstants

	// shiftIndex[i] is where ShiftRows followed by ShiftLanes moves trit i
	shiftIndex [STATESIZE]int
)

func init() {
	for slice := 0; slice < SLICES; slice++ {
		for row := 0; row < ROWS; row++ {
			for col := 0; col < COLUMNS; col++ {
				newCol := (col + 3*SHIFT_ROWS_PARAM[row]) % COLUMNS
				newSlice := (slice + SHIFT_LANES_PARAM[newCol+COLUMNS*row]) % SLICES
				shiftIndex[SLICESIZE*slice+COLUMNS*row+col] = SLICESIZE*newSlice + COLUMNS*row + newCol
			}
		}
	}

	deriveRoundConstants(&defaultRoundConstants)
}

// RoundConstants holds one row of unbalanced trits per round. Row r is added to row 0
// of every slice in round r, indexed slice*COLUMNS + col.
type RoundConstants [NUM_ROUNDS][COLUMNS * SLICES]uint8

// NewRoundConstants copies a NUM_ROUNDS x 243 table of values 0, 1 and 2, the layout
// of the round_constants array shipped with the Troika reference code.
func NewRoundConstants(rows [][]uint8) (*RoundConstants, error) {
	if len(rows) != NUM_ROUNDS {
		return nil, errors.Wrapf(ErrInvalidRoundConstants, "%d rounds", len(rows))
	}
	rc := new(RoundConstants)
	for round, row := range rows {
		if len(row) != COLUMNS*SLICES {
			return nil, errors.Wrapf(ErrInvalidRoundConstants, "round %d has %d trits", round, len(row))
		}
		for i, c := range row {
			if c > 2 {
				return nil, errors.Wrapf(ErrInvalidRoundConstants, "value %d at round %d, index %d", c, round, i)
			}
			rc[round][i] = c
		}
	}
	return rc, nil
}

// deriveRoundConstants fills rc with NUM_ROUNDS blocks squeezed from Curl-P-81 seeded
// with a fixed tryte label. This is not the published Troika table.
func deriveRoundConstants(rc *RoundConstants) {
	seed := trinary.MustTrytesToTrits(roundConstantsSeed + strings.Repeat("9", RATE/3-len(roundConstantsSeed)))
	out := make(trinary.Trits, NUM_ROUNDS*RATE)

	c := curl.NewCurlP81()
	if err := c.Absorb(seed); err != nil {
		panic(err)
	}
	if err := c.Squeeze(out); err != nil {
		panic(err)
	}

	for round := range rc {
		for i := range rc[round] {
			rc[round][i] = trinary.TritToUnbalanced(out[round*RATE+i])
		}
	}
}
