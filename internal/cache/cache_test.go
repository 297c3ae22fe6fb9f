package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func newTestCache(t *testing.T) (Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedis(client, "grover:", time.Minute), mr
}

func TestRedisCacheRoundTrip(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	var got []entry
	ok, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	want := []entry{{ID: 1, Name: "Dairy"}}
	require.NoError(t, c.Set(ctx, "k", want))
	assert.True(t, mr.Exists("grover:k"))

	ok, err = c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)

	mr.FastForward(2 * time.Minute)
	ok, err = c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCacheErrors(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("grover:bad", "not json"))
	var got []entry
	_, err := c.Get(ctx, "bad", &got)
	assert.Error(t, err)

	mr.Close()
	_, err = c.Get(ctx, "k", &got)
	assert.Error(t, err)
}

func TestKeyIsStable(t *testing.T) {
	type f struct{ Name *string }
	a, b := "x", "x"
	assert.Equal(t, Key("categories", f{Name: &a}), Key("categories", f{Name: &b}))
	assert.NotEqual(t, Key("categories", f{}), Key("categories", f{Name: &a}))
	assert.NotEqual(t, Key("categories", f{}), Key("merchants", f{}))
}

func TestNoop(t *testing.T) {
	c := NewNoop()
	require.NoError(t, c.Set(context.Background(), "k", 1))
	var v int
	ok, err := c.Get(context.Background(), "k", &v)
	require.NoError(t, err)
	assert.False(t, ok)
}
