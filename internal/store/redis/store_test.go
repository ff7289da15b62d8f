package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/curator/internal/logger"
	"github.com/MrSnakeDoc/curator/internal/store"
)

func newTestStore(t *testing.T, profile string) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client, profile), mr
}

func TestSlotKey(t *testing.T) {
	assert.Equal(t, "curator:default:resources", SlotKey("default", store.SlotResources))

	slot, err := ExtractSlot("default", "curator:default:repo_version")
	require.NoError(t, err)
	assert.Equal(t, store.SlotVersion, slot)

	_, err = ExtractSlot("default", "curator:other:repo_version")
	assert.Error(t, err)
}

func TestStoreRoundTrip(t *testing.T) {
	s, mr := newTestStore(t, "alice")
	ctx := context.Background()

	_, ok, err := s.Get(ctx, store.SlotResources)
	require.NoError(t, err)
	assert.False(t, ok, "missing key is absent, not an error")

	err = s.SetMany(ctx, map[store.Slot]string{
		store.SlotResources: `[{"id":"a"}]`,
		store.SlotVersion:   "17",
	})
	require.NoError(t, err)

	raw, err := mr.Get("curator:alice:repo_version")
	require.NoError(t, err)
	assert.Equal(t, "17", raw)
	assert.Equal(t, time.Duration(0), mr.TTL("curator:alice:resources"), "slots never expire")

	v, ok, err := s.Get(ctx, store.SlotResources)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, v)

	slots, err := s.Slots(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []store.Slot{store.SlotResources, store.SlotVersion}, slots)

	require.NoError(t, s.Delete(ctx, store.SlotResources))
	assert.False(t, mr.Exists("curator:alice:resources"))
	assert.True(t, mr.Exists("curator:alice:repo_version"))
}

func TestProfilesAreIsolated(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	ctx := context.Background()

	alice := NewStore(client, "alice")
	bob := NewStore(client, "bob")

	require.NoError(t, alice.SetMany(ctx, map[store.Slot]string{store.SlotViewMode: "list"}))

	_, ok, err := bob.Get(ctx, store.SlotViewMode)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), ConnectOptions{
		Addr:           mr.Addr(),
		ConnectTimeout: time.Second,
		RetryInterval:  10 * time.Millisecond,
		MaxWait:        50 * time.Millisecond,
		PingTimeout:    200 * time.Millisecond,
	}, logger.Nop())
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()).Err())
}

func TestConnectInvalidOptions(t *testing.T) {
	_, err := Connect(context.Background(), ConnectOptions{Addr: "localhost:0"}, logger.Nop())
	assert.Error(t, err)
}

func TestConnectTimeout(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := Connect(context.Background(), ConnectOptions{
		Addr:           addr,
		ConnectTimeout: 100 * time.Millisecond,
		RetryInterval:  10 * time.Millisecond,
		MaxWait:        20 * time.Millisecond,
		PingTimeout:    20 * time.Millisecond,
	}, logger.Nop())
	assert.Error(t, err)
}
