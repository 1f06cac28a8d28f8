package scope

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndVerify(t *testing.T) {
	m := New("secret", time.Hour)

	token, err := m.CreateToken(Payload{UserID: 42, Email: "a@b.c", Name: "Ann"})
	require.NoError(t, err)

	p, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), p.UserID)
	assert.Equal(t, "a@b.c", p.Email)
	assert.Equal(t, "42", p.Subject)
}

func TestVerify_Rejects(t *testing.T) {
	m := New("secret", time.Hour)
	token, err := m.CreateToken(Payload{UserID: 1})
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := New("other", time.Hour).Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		impl := m.(*implManager)
		later := &implManager{secretKey: impl.secretKey, ttl: impl.ttl, now: func() time.Time { return time.Now().Add(2 * time.Hour) }}
		_, err := later.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing user id", func(t *testing.T) {
		anon, err := m.CreateToken(Payload{})
		require.NoError(t, err)
		_, err = m.Verify(anon)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestPayloadContext(t *testing.T) {
	_, ok := GetPayloadFromContext(context.Background())
	assert.False(t, ok)

	ctx := SetPayloadToContext(context.Background(), Payload{UserID: 7})
	p, ok := GetPayloadFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(7), p.UserID)
}
