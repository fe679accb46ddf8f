//go:build unit

package blob_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"groupbuy-service/internal/infra/blob"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("writes below root and returns public URL", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "uploads")
		store, err := blob.NewLocalStore(root, "/uploads/")
		require.NoError(t, err)

		url, err := store.Save(ctx, "payments/org_1760000000000.png", "image/png", strings.NewReader("png-bytes"))

		require.NoError(t, err)
		assert.Equal(t, "/uploads/payments/org_1760000000000.png", url)
		data, err := os.ReadFile(filepath.Join(root, "payments", "org_1760000000000.png"))
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(data))
	})

	t.Run("existing key is not overwritten", func(t *testing.T) {
		store, err := blob.NewLocalStore(t.TempDir(), "/uploads")
		require.NoError(t, err)

		_, err = store.Save(ctx, "payments/a.pdf", "application/pdf", strings.NewReader("first"))
		require.NoError(t, err)
		_, err = store.Save(ctx, "payments/a.pdf", "application/pdf", strings.NewReader("second"))
		assert.Error(t, err)

		data, err := os.ReadFile(filepath.Join(store.Root(), "payments", "a.pdf"))
		require.NoError(t, err)
		assert.Equal(t, "first", string(data))
	})

	t.Run("invalid keys", func(t *testing.T) {
		store, err := blob.NewLocalStore(t.TempDir(), "/uploads")
		require.NoError(t, err)

		for _, key := range []string{"", "../escape.png", "payments/../../escape.png", "/abs.png", "payments//a.png"} {
			_, err := store.Save(ctx, key, "image/png", strings.NewReader("x"))
			assert.ErrorIs(t, err, blob.ErrInvalidKey, "key %q", key)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		store, err := blob.NewLocalStore(t.TempDir(), "/uploads")
		require.NoError(t, err)

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err = store.Save(cctx, "payments/b.png", "image/png", strings.NewReader("x"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
