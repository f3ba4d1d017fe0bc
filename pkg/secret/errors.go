package secret

import (
	"errors"
)

var (
	ErrInvalidLength = errors.New("invalid key material length")
	ErrHexDecoding   = errors.New(
		"secret must be a 0x prefixed hex string of the expected length",
	)
)
