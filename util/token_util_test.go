// api/util/token_util_test.go
package util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	staffhub_errors "github.com/staffhubhq/staffhub/api/errors"
	"github.com/staffhubhq/staffhub/api/util"
)

func TestTokenIssuer(t *testing.T) {
	t.Run("IssueAndVerify_RoundTrip", func(t *testing.T) {
		issuer := util.NewTokenIssuer("test-secret", time.Hour)

		token, err := issuer.Issue("64f0c1e2a3b4c5d6e7f80912")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		adminID, err := issuer.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "64f0c1e2a3b4c5d6e7f80912", adminID)
	})

	t.Run("Verify_ExpiredToken", func(t *testing.T) {
		// NewTokenIssuer treats a non-positive TTL as the 24h default, so
		// build the expired token with a tiny positive TTL instead.
		issuer := util.NewTokenIssuer("test-secret", time.Nanosecond)

		token, err := issuer.Issue("64f0c1e2a3b4c5d6e7f80912")
		assert.NoError(t, err)

		time.Sleep(time.Second + time.Millisecond)
		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, staffhub_errors.ErrTokenExpired)
	})

	t.Run("Verify_WrongSecret", func(t *testing.T) {
		token, err := util.NewTokenIssuer("secret-one", time.Hour).Issue("64f0c1e2a3b4c5d6e7f80912")
		assert.NoError(t, err)

		_, err = util.NewTokenIssuer("secret-two", time.Hour).Verify(token)
		assert.ErrorIs(t, err, staffhub_errors.ErrInvalidToken)
	})

	t.Run("Verify_Garbage", func(t *testing.T) {
		_, err := util.NewTokenIssuer("test-secret", time.Hour).Verify("not.a.token")
		assert.ErrorIs(t, err, staffhub_errors.ErrInvalidToken)
	})

	t.Run("ZeroTTL_DefaultsTo24h", func(t *testing.T) {
		issuer := util.NewTokenIssuer("test-secret", 0)

		token, err := issuer.Issue("64f0c1e2a3b4c5d6e7f80912")
		assert.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.NoError(t, err)
	})
}
