package crypt

import (
	"bytes"
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/coocood/freecache"

	"gitlab.com/semkodev/ternhash/trinary"
)

// DigestCache memoizes Sum results. Entries are keyed by mode, lengths and
// the xxhash of the packed input; the packed input is kept next to the digest and
// compared on every hit, so a key collision can only cause a miss.
type DigestCache struct {
	cache  *freecache.Cache
	expire int
}

// NewDigestCache creates a cache of size bytes (freecache enforces a 512KB minimum).
// Entries expire after expireSeconds, never if it is 0.
func NewDigestCache(size int, expireSeconds int) *DigestCache {
	return &DigestCache{
		cache:  freecache.NewCache(size),
		expire: expireSeconds,
	}
}

// Sum behaves like the package level Sum. It is safe for concurrent use.
func (c *DigestCache) Sum(mode HashMode, trits trinary.Trits, out trinary.Trits) error {
	if err := trinary.ValidTrits(trits); err != nil {
		return err
	}

	packed := trinary.TritsToBytes(trits)
	key := cacheKey(mode, len(trits), len(out), packed)
	digestSize := (len(out) + trinary.TRITS_PER_BYTE - 1) / trinary.TRITS_PER_BYTE

	if value, err := c.cache.Get(key); err == nil && len(value) == digestSize+len(packed) && bytes.Equal(value[digestSize:], packed) {
		if digest, err := trinary.BytesToTrits(value[:digestSize], len(out)); err == nil {
			copy(out, digest)
			return nil
		}
	}

	if err := Sum(mode, trits, out); err != nil {
		return err
	}

	value := make([]byte, 0, digestSize+len(packed))
	value = append(value, trinary.TritsToBytes(out)...)
	value = append(value, packed...)
	// too large entries are simply not cached
	c.cache.Set(key, value, c.expire)
	return nil
}

func (c *DigestCache) HitCount() int64 {
	return c.cache.HitCount()
}

func (c *DigestCache) MissCount() int64 {
	return c.cache.MissCount()
}

func (c *DigestCache) EntryCount() int64 {
	return c.cache.EntryCount()
}

func cacheKey(mode HashMode, inLength int, outLength int, packed []byte) []byte {
	key := make([]byte, 1+4+4+8)
	key[0] = byte(mode)
	binary.BigEndian.PutUint32(key[1:], uint32(inLength))
	binary.BigEndian.PutUint32(key[5:], uint32(outLength))
	binary.BigEndian.PutUint64(key[9:], xxhash.Sum64(packed))
	return key
}
