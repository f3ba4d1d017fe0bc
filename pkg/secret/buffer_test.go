package secret_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vulpemventures/seedgen/pkg/secret"
)

const regressionSeedHex = "0x86de0e5ac7ac1a152441818443dfbb5a4600abcf7430f2f70a61507e7078926c"

func TestParseHex(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		buf, err := secret.ParseHex(regressionSeedHex, secret.SeedSize)
		require.NoError(t, err)
		require.Equal(t, secret.SeedSize, buf.Len())
		require.Equal(t, regressionSeedHex[2:], buf.Hex())

		zeroSeed, err := secret.ParseHex("0x"+string(bytes.Repeat([]byte("00"), 32)), secret.SeedSize)
		require.NoError(t, err)
		require.True(t, zeroSeed.IsZero())
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name  string
			input string
		}{
			{"missing prefix", regressionSeedHex[2:]},
			{"uppercase prefix", "0X" + regressionSeedHex[2:]},
			{"too short", "0x00"},
			{"too long", regressionSeedHex + "00"},
			{"empty", ""},
			{"prefix only", "0x"},
			{"odd length", regressionSeedHex[:len(regressionSeedHex)-1]},
			{"non hex chars", "0x" + string(bytes.Repeat([]byte("zz"), 32))},
			{"trailing space", regressionSeedHex + " "},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				buf, err := secret.ParseHex(tt.input, secret.SeedSize)
				require.ErrorIs(t, err, secret.ErrHexDecoding)
				require.Nil(t, buf)
			})
		}
	})
}

func TestFromBytes(t *testing.T) {
	t.Parallel()

	raw := bytes.Repeat([]byte{0xab}, secret.EntropySize)
	buf, err := secret.FromBytes(raw, secret.EntropySize)
	require.NoError(t, err)
	require.Equal(t, raw, buf.Bytes())

	// The buffer owns its storage.
	raw[0] = 0
	require.Equal(t, byte(0xab), buf.Bytes()[0])

	_, err = secret.FromBytes(raw[:31], secret.EntropySize)
	require.ErrorIs(t, err, secret.ErrInvalidLength)
}

func TestBuffer(t *testing.T) {
	t.Parallel()

	buf := secret.NewBuffer(secret.EntropySize)
	require.Equal(t, secret.EntropySize, buf.Len())
	require.True(t, buf.IsZero())

	var km secret.KeyMaterial = buf
	km.Bytes()[5] = 0x42
	require.False(t, buf.IsZero())

	other, err := secret.FromBytes(buf.Bytes(), buf.Len())
	require.NoError(t, err)
	require.True(t, buf.Equal(other))
	require.False(t, buf.Equal(nil))

	buf.Zero()
	require.True(t, buf.IsZero())
	require.False(t, buf.Equal(other))
}
