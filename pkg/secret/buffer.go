package secret

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// SeedSize is the byte length of the user supplied secret.
	SeedSize = 32
	// EntropySize is the byte length of the entropy derived for a 24-words
	// mnemonic.
	EntropySize = 32

	hexPrefix = "0x"
)

// KeyMaterial is any fixed-size buffer that can be filled in place by a key
// derivation step.
type KeyMaterial interface {
	// Len returns the byte length of the key material.
	Len() int
	// Bytes returns the underlying storage, not a copy.
	Bytes() []byte
}

// Buffer is an owned, fixed-length byte buffer for sensitive material.
type Buffer struct {
	b []byte
}

// NewBuffer returns a zero-initialized buffer of the given size.
func NewBuffer(size int) *Buffer {
	if size < 0 {
		size = 0
	}
	return &Buffer{make([]byte, size)}
}

// FromBytes copies b into a new buffer, failing if len(b) != size.
func FromBytes(b []byte, size int) (*Buffer, error) {
	if len(b) != size {
		return nil, fmt.Errorf(
			"%w: got %d bytes, expected %d", ErrInvalidLength, len(b), size,
		)
	}
	buf := NewBuffer(size)
	copy(buf.b, b)
	return buf, nil
}

// ParseHex decodes a 0x prefixed hex string into a buffer of exactly size
// bytes. Shorter or longer inputs are rejected, never padded or truncated.
func ParseHex(s string, size int) (*Buffer, error) {
	if !strings.HasPrefix(s, hexPrefix) {
		return nil, fmt.Errorf("%w: missing %s prefix", ErrHexDecoding, hexPrefix)
	}

	raw, err := hex.DecodeString(s[len(hexPrefix):])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrHexDecoding, err)
	}
	defer zero(raw)

	if len(raw) != size {
		return nil, fmt.Errorf(
			"%w: got %d bytes, expected %d", ErrHexDecoding, len(raw), size,
		)
	}
	return FromBytes(raw, size)
}

func (b *Buffer) Len() int {
	return len(b.b)
}

func (b *Buffer) Bytes() []byte {
	return b.b
}

// Hex returns the buffer content in hex format, without prefix.
func (b *Buffer) Hex() string {
	return hex.EncodeToString(b.b)
}

// Equal compares two buffers in constant time.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil {
		return false
	}
	return subtle.ConstantTimeCompare(b.b, other.b) == 1
}

// IsZero reports whether every byte of the buffer is zero.
func (b *Buffer) IsZero() bool {
	var acc byte
	for _, c := range b.b {
		acc |= c
	}
	return acc == 0
}

// Zero scrubs the buffer content.
func (b *Buffer) Zero() {
	zero(b.b)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
