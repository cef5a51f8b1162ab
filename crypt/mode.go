package crypt

import (
	"strings"

	"github.com/pkg/errors"

	"gitlab.com/semkodev/ternhash/sponge"
)

type HashMode int

const (
	// Curl with 27 rounds
	CurlP27 HashMode = iota
	// Curl with 81 rounds
	CurlP81
	Troika
	Kerl
)

var hashModeNames = map[HashMode]string{
	CurlP27: "CURLP27",
	CurlP81: "CURLP81",
	Troika:  "TROIKA",
	Kerl:    "KERL",
}

func (mode HashMode) String() string {
	if name, ok := hashModeNames[mode]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseHashMode accepts the mode names in any case.
func ParseHashMode(name string) (HashMode, error) {
	for mode, modeName := range hashModeNames {
		if strings.EqualFold(name, modeName) {
			return mode, nil
		}
	}
	return 0, errors.Wrapf(sponge.ErrInvalidMode, "unknown mode %q", name)
}
