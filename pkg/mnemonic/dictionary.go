package mnemonic

import (
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// DictionarySize is the number of words of a mnemonic dictionary, one for
// every 11-bit value.
const DictionarySize = 1 << bitsPerWord

// English is the canonical BIP-39 english dictionary.
var English = mustNewDictionary(wordlists.English)

// Dictionary is an ordered list of words with a reverse lookup index.
type Dictionary struct {
	words []string
	index map[string]int
}

// NewDictionary returns a dictionary for the given ordered list of words.
func NewDictionary(words []string) (*Dictionary, error) {
	if len(words) != DictionarySize {
		return nil, fmt.Errorf(
			"%w: got %d", ErrInvalidDictionarySize, len(words),
		)
	}

	list := make([]string, 0, len(words))
	index := make(map[string]int, len(words))
	for i, w := range words {
		w = strings.TrimSpace(w)
		if _, ok := index[w]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateWord, w)
		}
		index[w] = i
		list = append(list, w)
	}
	return &Dictionary{list, index}, nil
}

// Word returns the word at the given index. It panics if i is out of range.
func (d *Dictionary) Word(i int) string {
	return d.words[i]
}

// Index returns the position of the given word.
func (d *Dictionary) Index(word string) (int, bool) {
	i, ok := d.index[word]
	return i, ok
}

// Contains reports whether word is part of the dictionary.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.index[word]
	return ok
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

func mustNewDictionary(words []string) *Dictionary {
	d, err := NewDictionary(words)
	if err != nil {
		panic(err)
	}
	return d
}
