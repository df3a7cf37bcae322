package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/yashwalhekar/adminpanelfrontend/internal/domain"
)

func mintToken(t *testing.T, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": "admin@example.com",
		"exp": time.Now().Add(expiresIn).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestValidToken(t *testing.T) {
	s := New(&MemoryTokenStore{}, zaptest.NewLogger(t))
	require.NoError(t, s.SetToken(mintToken(t, time.Hour)))

	assert.True(t, s.Valid(time.Now()))
	assert.NoError(t, s.Guard(time.Now()))
}

// TestExpiredTokenGuard covers the pre-render gate: an expired token is
// rejected and cleared before any network call could happen.
func TestExpiredTokenGuard(t *testing.T) {
	s := New(&MemoryTokenStore{}, zaptest.NewLogger(t))
	require.NoError(t, s.SetToken(mintToken(t, -time.Minute)))

	err := s.Guard(time.Now())
	assert.ErrorIs(t, err, domain.ErrAuthExpired)
	assert.Empty(t, s.Token())
}

func TestMissingToken(t *testing.T) {
	s := New(&MemoryTokenStore{}, zaptest.NewLogger(t))

	assert.False(t, s.Valid(time.Now()))
	assert.ErrorIs(t, s.Guard(time.Now()), domain.ErrAuthExpired)
}

func TestGarbageTokenIsInvalid(t *testing.T) {
	s := New(&MemoryTokenStore{}, zaptest.NewLogger(t))
	require.NoError(t, s.SetToken("not-a-jwt"))

	assert.False(t, s.Valid(time.Now()))
}

func TestTokenWithoutExpiryIsInvalid(t *testing.T) {
	claims := jwt.MapClaims{"sub": "admin@example.com"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	s := New(&MemoryTokenStore{}, zaptest.NewLogger(t))
	require.NoError(t, s.SetToken(token))

	assert.False(t, s.Valid(time.Now()))
}

func TestClearRemovesPersistedToken(t *testing.T) {
	store := &MemoryTokenStore{}
	s := New(store, zaptest.NewLogger(t))
	require.NoError(t, s.SetToken(mintToken(t, time.Hour)))

	s.Clear()

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, persisted)
	assert.Empty(t, s.Token())
}

func TestSessionLoadsPersistedToken(t *testing.T) {
	token := mintToken(t, time.Hour)
	store := &MemoryTokenStore{}
	require.NoError(t, store.Save(token))

	s := New(store, zaptest.NewLogger(t))
	assert.Equal(t, token, s.Token())
}

func TestFileTokenStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	store := NewFileTokenStore(path)

	// A missing file reads as logged out.
	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("abc123"))
	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	require.NoError(t, store.Clear())
	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}
