package cram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse(t *testing.T) {
	t.Run("rfc 2195 example", func(t *testing.T) {
		// Challenge, user, and secret from RFC 2195 section 2.
		challenge := "PDE4OTYuNjk3MTcwOTUyQHBvc3RvZmZpY2UucmVzdG9uLm1jaS5uZXQ+"
		got, err := Response("tim", "tanstaaftanstaaf", challenge)
		require.NoError(t, err)
		assert.Equal(t, "dGltIGI5MTNhNjAyYzdlZGE3YTQ5NWI0ZTZlNzMzNGQzODkw", got)
	})

	t.Run("invalid challenge", func(t *testing.T) {
		_, err := Response("tim", "secret", "not-base64!")
		assert.Error(t, err)
	})
}
