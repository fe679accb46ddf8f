//go:build unit

package queries_test

import (
	"testing"
	"time"

	"groupbuy-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2026, 10, 17, 8, 30, 0, 123456000, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))
	require.NoError(t, err)
	assert.True(t, at.Equal(gotAt))
	assert.Equal(t, id, gotID)
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	for _, c := range []string{"%%%", "djI6MTIzLWFiYw==", "djE6YWJjLWRlZg==", "djE6MTIz"} {
		_, _, err := queries.DecodeAfterCursor(c)
		require.ErrorIs(t, err, queries.ErrInvalidCursor, c)
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, 5, queries.ValidateLimit(5))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(1000))
}
