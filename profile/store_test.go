package profile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kleo/generator"
)

func TestFileStoreDefaultsOnFirstRun(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "brand.json"))
	require.NoError(t, err)

	p, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "nested", "brand.json"))
	require.NoError(t, err)

	want := Default()
	want.Niche = "B2B SaaS onboarding"
	want.CTA = "Ask one question."
	require.NoError(t, store.Save(context.Background(), want))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStoreMissingFieldsDecodeToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brand.json")
	// An old blob written before newer fields existed.
	require.NoError(t, os.WriteFile(path, []byte(`{"niche":"recruiting","tone":"direct"}`), 0o644))

	store, err := NewFileStore(path)
	require.NoError(t, err)
	p, err := store.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "recruiting", p.Niche)
	assert.Equal(t, "direct", p.Tone)
	assert.Empty(t, p.Offer)
	assert.Empty(t, p.UniqueInsight)
}

func TestNewFileStoreRequiresPath(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store, err := NewRedisStore(client, "")
	require.NoError(t, err)

	ctx := context.Background()

	// Absent slot yields defaults, not an error.
	p, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)

	want := Default()
	want.Goals = "Book 30 calls."
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRedisStoreSharesOneSlot(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	a, err := NewRedisStore(client, "kleo:test")
	require.NoError(t, err)
	b, err := NewRedisStore(client, "kleo:test")
	require.NoError(t, err)

	ctx := context.Background()
	want := generator.BrandProfile{Niche: "shared"}
	require.NoError(t, a.Save(ctx, want))

	got, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "shared", got.Niche)
}
