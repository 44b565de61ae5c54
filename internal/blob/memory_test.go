package blob

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePutAndDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	obj, err := s.Put(ctx, "illustrations/u/a.png", []byte("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "illustrations/u/a.png", obj.Key)
	assert.Equal(t, "memory://illustrations/u/a.png", obj.URL)
	assert.Equal(t, 1, s.Len())

	data, ok := s.Get("illustrations/u/a.png")
	require.True(t, ok)
	assert.Equal(t, []byte("png"), data)

	require.NoError(t, s.Delete(ctx, "illustrations/u/a.png"))
	assert.Equal(t, 0, s.Len())

	assert.Error(t, s.Delete(ctx, "illustrations/u/a.png"))
}

func TestMemoryStoreInjectedErrors(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.PutErr = assert.AnError
	_, err := s.Put(ctx, "k", []byte("x"), "image/png")
	assert.ErrorIs(t, err, assert.AnError)

	s.PutErr = nil
	_, err = s.Put(ctx, "k", []byte("x"), "image/png")
	require.NoError(t, err)

	s.DeleteErr = assert.AnError
	assert.ErrorIs(t, s.Delete(ctx, "k"), assert.AnError)
}
