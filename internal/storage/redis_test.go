package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xlzhou/treasure-hunter/pkg/world"
)

func newTestRedis(t *testing.T) *RedisStorage {
	t.Helper()
	mr := miniredis.RunT(t)
	rs := NewRedisStorage(mr.Addr(), discardLogger())
	t.Cleanup(func() {
		_ = rs.Close()
	})
	return rs
}

func TestRedisStorage_SaveLoad(t *testing.T) {
	rs := newTestRedis(t)
	ctx := context.Background()

	snap := testSnapshot()
	require.NoError(t, rs.Save(ctx, 1, snap))

	loaded, err := rs.Load(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, snap.ID, loaded.ID)
	assert.Equal(t, world.RoomForestPath, loaded.PlayerRoomID)
}

func TestRedisStorage_LoadEmptySlot(t *testing.T) {
	rs := newTestRedis(t)

	loaded, err := rs.Load(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, loaded, "missing key is nil, nil")
}

func TestRedisStorage_AutoSaveSlotSeparate(t *testing.T) {
	rs := newTestRedis(t)
	ctx := context.Background()

	auto := testSnapshot()
	auto.PlayerRoomID = world.RoomCaveEntrance
	require.NoError(t, rs.Save(ctx, AutoSaveSlot, auto))
	require.NoError(t, rs.Save(ctx, 1, testSnapshot()))

	loaded, err := rs.Load(ctx, AutoSaveSlot)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, world.RoomCaveEntrance, loaded.PlayerRoomID)

	// The auto-save slot never appears in the user listing.
	infos, err := rs.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, MaxSlot)
	for _, info := range infos {
		assert.NotEqual(t, AutoSaveSlot, info.Slot)
	}
}

func TestRedisStorage_Ping(t *testing.T) {
	mr := miniredis.RunT(t)
	rs := NewRedisStorage(mr.Addr(), discardLogger())
	ctx := context.Background()

	assert.NoError(t, rs.Ping(ctx))

	mr.Close()
	assert.Error(t, rs.Ping(ctx))
}
