package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBlobStore_GetMissingKey(t *testing.T) {
	s := NewMemoryBlobStore()
	_, err := s.Get(context.Background(), "absent")
	require.ErrorIs(t, err, ErrBlobNotFound)
}

func TestMemoryBlobStore_SetGetRoundTrip(t *testing.T) {
	s := NewMemoryBlobStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "v1"))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)

	// overwrite
	require.NoError(t, s.Set(ctx, "k", "v2"))
	got, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", got)
}

func TestMemoryBlobStore_Delete(t *testing.T) {
	s := NewMemoryBlobStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "v"))
	require.NoError(t, s.Delete(ctx, "k"))

	_, err := s.Get(ctx, "k")
	require.ErrorIs(t, err, ErrBlobNotFound)

	// deleting again is a no-op
	require.NoError(t, s.Delete(ctx, "k"))
}

func TestMemoryBlobStore_DeleteMulti(t *testing.T) {
	s := NewMemoryBlobStore()
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		require.NoError(t, s.Set(ctx, key, "v"))
	}

	require.NoError(t, s.DeleteMulti(ctx, "a", "b", "nope"))

	_, err := s.Get(ctx, "a")
	require.ErrorIs(t, err, ErrBlobNotFound)
	_, err = s.Get(ctx, "b")
	require.ErrorIs(t, err, ErrBlobNotFound)

	got, err := s.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}
