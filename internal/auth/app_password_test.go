package auth_test

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/fivetwenty-io/wpclient/internal/auth"
	"github.com/fivetwenty-io/wpclient/pkg/wp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplicationPasswordAuth_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		secret   string
	}{
		{"empty secret", "admin", ""},
		{"empty username", "", "pw 1234 abcd"},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			authenticator, err := auth.NewApplicationPasswordAuth(tt.username, tt.secret)
			require.Error(t, err)
			assert.Nil(t, authenticator)
			assert.True(t, wp.IsValidation(err))
		})
	}
}

func TestApplicationPasswordAuth_AuthHeaders(t *testing.T) {
	t.Parallel()

	authenticator, err := auth.NewApplicationPasswordAuth("admin", "pw 1234 abcd")
	require.NoError(t, err)

	expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:pw 1234 abcd"))

	for range 3 {
		headers, err := authenticator.AuthHeaders(context.Background())
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"Authorization": expected}, headers)
	}

	assert.Equal(t, "admin", authenticator.Username())
}

func TestApplicationPasswordAuth_ImplementsAuthenticator(t *testing.T) {
	t.Parallel()

	var _ wp.Authenticator = (*auth.ApplicationPasswordAuth)(nil)

	var _ wp.TokenAuthenticator = (*auth.JWTAuth)(nil)
}
