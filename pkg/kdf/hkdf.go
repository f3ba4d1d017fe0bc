// Package kdf derives fresh entropy from a fixed-size secret and a password
// with HKDF-SHA256 (RFC 5869).
//
// The password is used as the extract salt and the secret as the input
// keying material. Swapping the two changes every derived value, so the
// assignment must be kept as is.
package kdf

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/vulpemventures/seedgen/pkg/secret"
	"golang.org/x/crypto/hkdf"
)

const (
	// DefaultLabel is the domain separation info used for the expand step.
	DefaultLabel = "crypto-wallet-hkdf"
	// MaxOutputLength is the maximum number of bytes HKDF-SHA256 can expand.
	MaxOutputLength = 255 * sha256.Size
)

type DeriveArgs struct {
	Seed     *secret.Buffer
	Password []byte
	Label    []byte
	// Length defaults to secret.EntropySize if zero.
	Length int
}

func (a DeriveArgs) validate() error {
	if a.Seed == nil {
		return ErrMissingSeed
	}
	if a.Seed.Len() != secret.SeedSize {
		return fmt.Errorf(
			"%w: got %d bytes, expected %d",
			ErrInvalidSeedLength, a.Seed.Len(), secret.SeedSize,
		)
	}
	return checkLength(a.length())
}

func (a DeriveArgs) length() int {
	if a.Length == 0 {
		return secret.EntropySize
	}
	return a.Length
}

// Derive returns a new buffer filled with the HKDF output for the given seed,
// password and label.
func Derive(args DeriveArgs) (*secret.Buffer, error) {
	if err := args.validate(); err != nil {
		return nil, err
	}

	out := secret.NewBuffer(args.length())
	if err := expandInto(args, out); err != nil {
		out.Zero()
		return nil, err
	}
	return out, nil
}

// DeriveInto fills the given key material in place. The output length is
// the one reported by out, args.Length is ignored.
func DeriveInto(args DeriveArgs, out secret.KeyMaterial) error {
	if out == nil {
		return ErrMissingOutput
	}
	args.Length = out.Len()
	if err := args.validate(); err != nil {
		return err
	}
	return expandInto(args, out)
}

// Fill runs HKDF-SHA256 extract and expand over arbitrary input keying
// material and writes out.Len() bytes of output keying material into out.
func Fill(ikm, salt, info []byte, out secret.KeyMaterial) error {
	if out == nil {
		return ErrMissingOutput
	}
	if err := checkLength(out.Len()); err != nil {
		return err
	}

	prk := hkdf.Extract(sha256.New, ikm, salt)
	defer zero(prk)

	okm := hkdf.Expand(sha256.New, prk, info)
	if _, err := io.ReadFull(okm, out.Bytes()); err != nil {
		zero(out.Bytes())
		return fmt.Errorf("%w: %s", ErrDerivation, err)
	}
	return nil
}

func expandInto(args DeriveArgs, out secret.KeyMaterial) error {
	return Fill(args.Seed.Bytes(), args.Password, args.Label, out)
}

func checkLength(length int) error {
	if length <= 0 || length > MaxOutputLength {
		return fmt.Errorf(
			"%w: output length must be in range [1, %d], got %d",
			ErrDerivation, MaxOutputLength, length,
		)
	}
	return nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
