package flash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nikk-inovates/Nivaaran/pkg/view"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := NewCodec([]byte("test-secret-0123456789abcdef"), "nv_flash", false)

	v, err := c.Encode(view.Flash{Kind: view.FlashSuccess, Message: "Thanks! Your message has been sent."})
	require.NoError(t, err)

	f, err := c.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, view.FlashSuccess, f.Kind)
	assert.Equal(t, "Thanks! Your message has been sent.", f.Message)
}

func TestDecodeRejectsTampering(t *testing.T) {
	c := NewCodec([]byte("test-secret-0123456789abcdef"), "nv_flash", false)

	v, err := c.Encode(view.Flash{Kind: view.FlashSuccess, Message: "hello"})
	require.NoError(t, err)

	t.Run("modified payload", func(t *testing.T) {
		parts := strings.Split(v, ".")
		tampered := parts[0] + "x." + parts[1]
		_, err := c.Decode(tampered)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewCodec([]byte("another-secret-entirely-here"), "nv_flash", false)
		_, err := other.Decode(v)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := c.Decode("definitely-not-a-cookie")
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("empty message", func(t *testing.T) {
		v, err := c.Encode(view.Flash{Kind: view.FlashInfo, Message: "   "})
		require.NoError(t, err)
		_, err = c.Decode(v)
		assert.ErrorIs(t, err, ErrInvalid)
	})
}
