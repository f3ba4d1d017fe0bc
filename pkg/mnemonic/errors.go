package mnemonic

import (
	"errors"
)

var (
	ErrMissingEntropy       = errors.New("missing entropy")
	ErrMissingMnemonic      = errors.New("missing mnemonic")
	ErrInvalidEntropyLength = errors.New(
		"entropy size must be a multiple of 32 bits in the range [128,256]",
	)
	ErrUnknownWord           = errors.New("word is not part of the dictionary")
	ErrChecksumMismatch      = errors.New("mnemonic checksum mismatch")
	ErrInvalidDictionarySize = errors.New("dictionary must contain exactly 2048 words")
	ErrDuplicateWord         = errors.New("dictionary contains duplicate words")
)
