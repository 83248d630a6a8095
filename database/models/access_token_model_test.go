package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashToken(t *testing.T) {
	t.Run("should be deterministic", func(t *testing.T) {
		assert.Equal(t, HashToken("secret"), HashToken("secret"))
	})

	t.Run("should differ for different tokens", func(t *testing.T) {
		assert.NotEqual(t, HashToken("secret"), HashToken("other"))
	})

	t.Run("should never persist the plain token", func(t *testing.T) {
		assert.NotEqual(t, "secret", HashToken("secret"))
	})
}

func TestAccessTokenScopes(t *testing.T) {
	t.Run("should split the scopes on whitespace", func(t *testing.T) {
		token := AccessToken{Scopes: "read manage"}
		assert.Equal(t, []string{"read", "manage"}, token.GetScopes())
	})

	t.Run("should return no scopes for an empty string", func(t *testing.T) {
		token := AccessToken{}
		assert.Empty(t, token.GetScopes())
	})
}
