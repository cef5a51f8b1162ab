package curl

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/semkodev/ternhash/sponge"
	"gitlab.com/semkodev/ternhash/trinary"
)

func randomTrits(rng *rand.Rand, n int) trinary.Trits {
	trits := make(trinary.Trits, n)
	for i := range trits {
		trits[i] = int8(rng.Intn(3) - 1)
	}
	return trits
}

// referenceHash is the straightforward slice based Curl: a fresh state copy per round
// and the index walked with the +364/-365 steps.
func referenceHash(rounds int, trits trinary.Trits, length int) trinary.Trits {
	state := make([]int8, STATE_LENGTH)
	transform := func() {
		index := 0
		for round := 0; round < rounds; round++ {
			stateCopy := make([]int8, STATE_LENGTH)
			copy(stateCopy, state)
			for i := 0; i < STATE_LENGTH; i++ {
				incr := 364
				if index >= 365 {
					incr = -365
				}
				index2 := index + incr
				state[i] = TRUTH_TABLE[stateCopy[index]+(stateCopy[index2]<<2)+5]
				index = index2
			}
		}
	}

	for offset := 0; offset < len(trits); offset += HASH_LENGTH {
		copy(state, trits[offset:offset+HASH_LENGTH])
		transform()
	}
	out := make(trinary.Trits, length)
	for offset := 0; offset < length; offset += HASH_LENGTH {
		copy(out[offset:offset+HASH_LENGTH], state[:HASH_LENGTH])
		transform()
	}
	return out
}

func hash(t *testing.T, c *Curl, trits trinary.Trits, length int) trinary.Trits {
	out := make(trinary.Trits, length)
	require.NoError(t, c.Absorb(trits))
	require.NoError(t, c.Squeeze(out))
	return out
}

func TestNew(t *testing.T) {
	c, err := New(CurlP27)
	require.NoError(t, err)
	assert.Equal(t, 27, c.Rounds())

	c, err = New(CurlP81)
	require.NoError(t, err)
	assert.Equal(t, 81, c.Rounds())

	assert.Equal(t, 27, NewCurlP27().Rounds())
	assert.Equal(t, 81, NewCurlP81().Rounds())
}

func TestNewInvalidMode(t *testing.T) {
	for _, mode := range []Mode{0, 1, 26, 28, 80, 82, -27} {
		c, err := New(mode)
		assert.Nil(t, c)
		assert.Equal(t, ErrInvalidMode, errors.Cause(err), "mode %d", mode)
	}
}

func TestNullHash(t *testing.T) {
	nullHash := strings.Repeat("9", 81)

	for _, mode := range []Mode{CurlP27, CurlP81} {
		c, err := New(mode)
		require.NoError(t, err)

		out := hash(t, c, make(trinary.Trits, HASH_LENGTH), HASH_LENGTH)
		assert.Equal(t, nullHash, trinary.MustTritsToTrytes(out), "mode %d", mode)
	}
}

func TestKnownDigests(t *testing.T) {
	for _, tc := range []struct {
		mode     Mode
		in, hash trinary.Trytes
	}{
		{CurlP81, "A", "TJVKPMTAMIZVBVHIVQUPTKEMPROEKV9SB9COEDQYRHYPTYSKQIAN9PQKMZHCPO9TS9BHCORFKW9CQXZEE"},
		{CurlP81, "B", "QFZXTJUJNLAOSZKXXMMGJJLFACVLRQMRBKOJLMTZXPLPVDSWWWXLBX9CDZWHMDMSDMDQKXQGEWPC9BJHN"},
		{CurlP81, "ABCDEFGHIJ", "JKSGOZW9WFTALAYESGNJYRGCKIMZSVBMFIIHYBFCUCSLWDI9EEPTZBLGWNPJOMW9HZWNOFGBR9RNHKCYI"},
		{CurlP27, "TWENTYSEVEN", "RQPYXJPRXEEPLYLAHWTTFRXXUZTV9SZPEVOQ9FZATCXJOZLZ9A9BFXTUBSHGXN9OOA9GWIPGAAWEDVNPN"},
	} {
		// short messages are zero padded to one chunk
		input := make(trinary.Trits, HASH_LENGTH)
		copy(input, trinary.MustTrytesToTrits(tc.in))

		c, err := New(tc.mode)
		require.NoError(t, err)
		out := hash(t, c, input, HASH_LENGTH)
		assert.Equal(t, tc.hash, trinary.MustTritsToTrytes(out), "%s, mode %d", tc.in, tc.mode)
	}
}

func TestZeroValue(t *testing.T) {
	input := randomTrits(rand.New(rand.NewSource(43)), HASH_LENGTH)

	var c Curl
	assert.Equal(t, NUMBER_OF_ROUNDSP81, c.Rounds())
	assert.Equal(t, hash(t, NewCurlP81(), input, HASH_LENGTH), hash(t, &c, input, HASH_LENGTH))
	assert.NotEqual(t, input, hash(t, new(Curl), input, HASH_LENGTH))
}

func TestMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, mode := range []Mode{CurlP27, CurlP81} {
		for _, chunks := range []int{1, 2, 3} {
			input := randomTrits(rng, chunks*HASH_LENGTH)
			c, err := New(mode)
			require.NoError(t, err)

			out := hash(t, c, input, 2*HASH_LENGTH)
			assert.Equal(t, referenceHash(int(mode), input, 2*HASH_LENGTH), out, "mode %d, %d chunks", mode, chunks)
		}
	}
}

func TestAbsorbChunkAlignment(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := randomTrits(rng, HASH_LENGTH)
	b := randomTrits(rng, 2*HASH_LENGTH)

	split := NewCurlP27()
	require.NoError(t, split.Absorb(a))
	require.NoError(t, split.Absorb(b))
	splitOut := make(trinary.Trits, HASH_LENGTH)
	require.NoError(t, split.Squeeze(splitOut))

	joined := hash(t, NewCurlP27(), append(append(trinary.Trits{}, a...), b...), HASH_LENGTH)
	assert.Equal(t, joined, splitOut)
}

func TestSqueezeChunkAlignment(t *testing.T) {
	input := randomTrits(rand.New(rand.NewSource(3)), HASH_LENGTH)

	whole := hash(t, NewCurlP81(), input, 3*HASH_LENGTH)

	c := NewCurlP81()
	require.NoError(t, c.Absorb(input))
	parts := make(trinary.Trits, 0, 3*HASH_LENGTH)
	for i := 0; i < 3; i++ {
		part := make(trinary.Trits, HASH_LENGTH)
		require.NoError(t, c.Squeeze(part))
		parts = append(parts, part...)
	}
	assert.Equal(t, whole, parts)
}

func TestReset(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	input := randomTrits(rng, HASH_LENGTH)
	expected := hash(t, NewCurlP27(), input, HASH_LENGTH)

	c := NewCurlP27()
	hash(t, c, randomTrits(rng, 2*HASH_LENGTH), 2*HASH_LENGTH)
	c.Reset()
	c.Reset()
	assert.Equal(t, expected, hash(t, c, input, HASH_LENGTH))
	assert.Equal(t, 27, c.Rounds())
}

func TestAbsorbLength(t *testing.T) {
	for _, n := range []int{1, 242, 244, 2*HASH_LENGTH + 1} {
		c := NewCurlP27()
		err := c.Absorb(make(trinary.Trits, n))
		assert.Equal(t, sponge.ErrInvalidInputLength, errors.Cause(err), "length %d", n)
	}

	c := NewCurlP27()
	assert.NoError(t, c.Absorb(nil))
	assert.NoError(t, c.Absorb(make(trinary.Trits, 0)))
}

func TestSqueezeLength(t *testing.T) {
	c := NewCurlP27()
	err := c.Squeeze(make(trinary.Trits, 100))
	assert.Equal(t, sponge.ErrInvalidOutputLength, errors.Cause(err))
	assert.NoError(t, c.Squeeze(nil))
}

func TestRejectedInputLeavesState(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	input := randomTrits(rng, HASH_LENGTH)
	expected := hash(t, NewCurlP27(), input, HASH_LENGTH)

	c := NewCurlP27()
	require.NoError(t, c.Absorb(input))

	invalid := randomTrits(rng, HASH_LENGTH)
	invalid[HASH_LENGTH-1] = 5
	err := c.Absorb(invalid)
	assert.Equal(t, trinary.ErrInvalidTrit, errors.Cause(err))
	err = c.Absorb(randomTrits(rng, HASH_LENGTH+1))
	assert.Equal(t, sponge.ErrInvalidInputLength, errors.Cause(err))

	out := make(trinary.Trits, HASH_LENGTH)
	require.NoError(t, c.Squeeze(out))
	assert.Equal(t, expected, out)
}

func TestAbsorbAfterSqueeze(t *testing.T) {
	c := NewCurlP27()
	hash(t, c, make(trinary.Trits, HASH_LENGTH), HASH_LENGTH)

	err := c.Absorb(make(trinary.Trits, HASH_LENGTH))
	assert.Equal(t, sponge.ErrInvalidSpongeUse, errors.Cause(err))

	c.Reset()
	assert.NoError(t, c.Absorb(make(trinary.Trits, HASH_LENGTH)))
}

func TestSqueezeWithoutAbsorb(t *testing.T) {
	out := make(trinary.Trits, HASH_LENGTH)
	require.NoError(t, NewCurlP27().Squeeze(out))
	assert.Equal(t, make(trinary.Trits, HASH_LENGTH), out)
}

func TestInstancesIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	a := randomTrits(rng, 2*HASH_LENGTH)
	b := randomTrits(rng, 2*HASH_LENGTH)

	expectedA := hash(t, NewCurlP27(), a, HASH_LENGTH)
	expectedB := hash(t, NewCurlP81(), b, HASH_LENGTH)

	ca, cb := NewCurlP27(), NewCurlP81()
	require.NoError(t, ca.Absorb(a[:HASH_LENGTH]))
	require.NoError(t, cb.Absorb(b[:HASH_LENGTH]))
	require.NoError(t, ca.Absorb(a[HASH_LENGTH:]))
	require.NoError(t, cb.Absorb(b[HASH_LENGTH:]))

	outA, outB := make(trinary.Trits, HASH_LENGTH), make(trinary.Trits, HASH_LENGTH)
	require.NoError(t, cb.Squeeze(outB))
	require.NoError(t, ca.Squeeze(outA))
	assert.Equal(t, expectedA, outA)
	assert.Equal(t, expectedB, outB)
}

func TestSingleTritChange(t *testing.T) {
	input := make(trinary.Trits, HASH_LENGTH)
	base := hash(t, NewCurlP27(), input, HASH_LENGTH)

	input[0] = 1
	assert.NotEqual(t, base, hash(t, NewCurlP27(), input, HASH_LENGTH))
}

func BenchmarkCurlP27(b *testing.B) {
	input := make(trinary.Trits, HASH_LENGTH)
	out := make(trinary.Trits, HASH_LENGTH)
	c := NewCurlP27()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Reset()
		c.Absorb(input)
		c.Squeeze(out)
	}
}

func BenchmarkCurlP81(b *testing.B) {
	input := make(trinary.Trits, HASH_LENGTH)
	out := make(trinary.Trits, HASH_LENGTH)
	c := NewCurlP81()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Reset()
		c.Absorb(input)
		c.Squeeze(out)
	}
}
