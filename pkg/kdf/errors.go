package kdf

import (
	"errors"
)

var (
	ErrMissingSeed       = errors.New("missing seed")
	ErrInvalidSeedLength = errors.New("invalid seed length")
	ErrMissingOutput     = errors.New("missing output key material")
	ErrDerivation        = errors.New("key derivation failed")
)
