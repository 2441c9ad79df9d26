package hexutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	assert.Equal(t, "", Encode(""))
	assert.Equal(t, "68656c6c6f", Encode("hello"))
	assert.Equal(t, "00ff", Encode("\x00\xff"))
}

func TestDecode(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, s := range []string{"", "hello", "with spaces and\nnewlines", "\x00\x01\xfe\xff"} {
			got, err := Decode(Encode(s))
			require.NoError(t, err)
			assert.Equal(t, s, got)
		}
	})

	t.Run("uppercase digits accepted", func(t *testing.T) {
		got, err := Decode("48656C6C6F")
		require.NoError(t, err)
		assert.Equal(t, "Hello", got)
	})

	t.Run("odd length", func(t *testing.T) {
		_, err := Decode("abc")
		assert.Error(t, err)
	})

	t.Run("non-hex digit", func(t *testing.T) {
		_, err := Decode("zz")
		assert.Error(t, err)
	})
}
