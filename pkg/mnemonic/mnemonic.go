// Package mnemonic encodes entropy into a checksummed sequence of words and
// back, following BIP-39.
//
// Entropy of ENT bits gets ENT/32 bits of checksum appended, taken from the
// head of its SHA-256 digest. The resulting bit string is split into 11-bit
// big-endian groups, each one indexing a word of the dictionary.
package mnemonic

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

const (
	bitsPerWord     = 11
	minEntropyBits  = 128
	maxEntropyBits  = 256
	entropyBitsStep = 32
)

// Mnemonic is an ordered, immutable list of dictionary words.
type Mnemonic struct {
	words []string
}

// Words returns a copy of the words of the mnemonic.
func (m *Mnemonic) Words() []string {
	words := make([]string, len(m.words))
	copy(words, m.words)
	return words
}

// Len returns the number of words.
func (m *Mnemonic) Len() int {
	return len(m.words)
}

// String returns the words joined by a single space.
func (m *Mnemonic) String() string {
	return strings.Join(m.words, " ")
}

type EncodeArgs struct {
	Entropy []byte
	// Dictionary defaults to English if nil.
	Dictionary *Dictionary
}

func (a EncodeArgs) validate() error {
	if len(a.Entropy) <= 0 {
		return ErrMissingEntropy
	}
	return checkEntropyBits(len(a.Entropy) * 8)
}

// Encode returns the mnemonic for the given entropy:
//   - 128 bits -> 12-words mnemonic.
//   - 256 bits -> 24-words mnemonic.
func Encode(args EncodeArgs) (*Mnemonic, error) {
	if err := args.validate(); err != nil {
		return nil, err
	}
	dict := dictionaryOrDefault(args.Dictionary)

	entBits := len(args.Entropy) * 8
	csBits := entBits / entropyBitsStep
	checksum := sha256.Sum256(args.Entropy)

	// The checksum is at most 8 bits, it always fits a single trailing byte.
	payload := make([]byte, len(args.Entropy)+1)
	defer zero(payload)
	copy(payload, args.Entropy)
	payload[len(args.Entropy)] = checksum[0]

	numOfWords := (entBits + csBits) / bitsPerWord
	words := make([]string, 0, numOfWords)
	for i := 0; i < numOfWords; i++ {
		index := readBits(payload, i*bitsPerWord, bitsPerWord)
		words = append(words, dict.Word(index))
	}

	return &Mnemonic{words}, nil
}

type DecodeArgs struct {
	Words []string
	// Dictionary defaults to English if nil.
	Dictionary *Dictionary
}

func (a DecodeArgs) validate() error {
	if len(a.Words) <= 0 {
		return ErrMissingMnemonic
	}
	totBits := len(a.Words) * bitsPerWord
	// ENT + ENT/32 = totBits
	if totBits%(entropyBitsStep+1) != 0 {
		return fmt.Errorf(
			"%w: %d words do not match any entropy size",
			ErrInvalidEntropyLength, len(a.Words),
		)
	}
	return checkEntropyBits(totBits / (entropyBitsStep + 1) * entropyBitsStep)
}

// Decode returns the entropy encoded by the given words after verifying its
// checksum.
func Decode(args DecodeArgs) ([]byte, error) {
	if err := args.validate(); err != nil {
		return nil, err
	}
	dict := dictionaryOrDefault(args.Dictionary)

	totBits := len(args.Words) * bitsPerWord
	csBits := totBits / (entropyBitsStep + 1)
	entBytes := (totBits - csBits) / 8

	payload := make([]byte, entBytes+1)
	defer zero(payload)
	for i, word := range args.Words {
		index, ok := dict.Index(word)
		if !ok {
			return nil, fmt.Errorf("%w: word #%d", ErrUnknownWord, i+1)
		}
		writeBits(payload, i*bitsPerWord, bitsPerWord, index)
	}

	entropy := make([]byte, entBytes)
	copy(entropy, payload[:entBytes])

	checksum := sha256.Sum256(entropy)
	shift := 8 - csBits
	if payload[entBytes]>>shift != checksum[0]>>shift {
		zero(entropy)
		return nil, ErrChecksumMismatch
	}

	return entropy, nil
}

// SplitPhrase returns the lower-cased words of the given phrase, separated by
// any amount of whitespace.
func SplitPhrase(phrase string) []string {
	return strings.Fields(strings.ToLower(phrase))
}

// Parse splits the given phrase on whitespace and returns the corresponding
// mnemonic if valid.
func Parse(phrase string, dict *Dictionary) (*Mnemonic, error) {
	words := SplitPhrase(phrase)
	entropy, err := Decode(DecodeArgs{Words: words, Dictionary: dict})
	if err != nil {
		return nil, err
	}
	zero(entropy)

	return &Mnemonic{words}, nil
}

func checkEntropyBits(bits int) error {
	if bits < minEntropyBits || bits > maxEntropyBits || bits%entropyBitsStep != 0 {
		return fmt.Errorf("%w: got %d bits", ErrInvalidEntropyLength, bits)
	}
	return nil
}

func dictionaryOrDefault(d *Dictionary) *Dictionary {
	if d == nil {
		return English
	}
	return d
}

// readBits returns the big-endian integer made of count bits of b, starting
// at the given bit offset.
func readBits(b []byte, offset, count int) int {
	v := 0
	for i := offset; i < offset+count; i++ {
		bit := (b[i/8] >> (7 - uint(i%8))) & 1
		v = v<<1 | int(bit)
	}
	return v
}

// writeBits sets count bits of b starting at the given bit offset to the
// big-endian representation of v. Target bits must be zero.
func writeBits(b []byte, offset, count, v int) {
	for i := 0; i < count; i++ {
		if (v>>(count-1-i))&1 == 1 {
			pos := offset + i
			b[pos/8] |= 1 << (7 - uint(pos%8))
		}
	}
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
