package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"EmoGoBackend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emotion(id string, mood int) *models.EmotionRecord {
	return &models.EmotionRecord{
		ID:        id,
		Mood:      mood,
		Emotion:   "ok",
		Timestamp: time.Date(2025, 11, 20, 8, 0, 0, 0, time.UTC),
	}
}

func TestMemoryStoreInsertAndFind(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	id1, err := store.Insert(ctx, models.KindEmotion, emotion("a", 1))
	require.NoError(t, err)
	id2, err := store.Insert(ctx, models.KindEmotion, emotion("b", 2))
	require.NoError(t, err)
	assert.NotEmpty(t, id1)
	assert.NotEqual(t, id1, id2)

	records, err := store.FindAll(ctx, models.KindEmotion, FindOptions{})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, id1, records[0].StoredID())
	assert.Equal(t, "b", records[1].(*models.EmotionRecord).ID)

	others, err := store.FindAll(ctx, models.KindLocation, FindOptions{})
	require.NoError(t, err)
	assert.Empty(t, others)

	n, err := store.Count(ctx, models.KindEmotion)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestMemoryStoreSkipLimit(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	for i := 1; i <= 5; i++ {
		_, err := store.Insert(ctx, models.KindEmotion, emotion(string(rune('a'+i)), i))
		require.NoError(t, err)
	}

	page, err := store.FindAll(ctx, models.KindEmotion, FindOptions{Skip: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 2, page[0].(*models.EmotionRecord).Mood)
	assert.Equal(t, 3, page[1].(*models.EmotionRecord).Mood)

	page, err = store.FindAll(ctx, models.KindEmotion, FindOptions{Skip: 10})
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_, err := store.Insert(ctx, models.KindEmotion, emotion("a", 3))
	require.NoError(t, err)

	records, err := store.FindAll(ctx, models.KindEmotion, FindOptions{})
	require.NoError(t, err)
	records[0].(*models.EmotionRecord).Mood = 5

	again, err := store.FindAll(ctx, models.KindEmotion, FindOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, again[0].(*models.EmotionRecord).Mood)
}

func TestMemoryStoreRejectsMismatchedKind(t *testing.T) {
	_, err := NewMemoryStore().Insert(context.Background(), models.KindLocation, emotion("a", 3))
	assert.Error(t, err)
}

func TestMemoryStoreClosed(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Ping(ctx))
	require.NoError(t, store.Close(ctx))

	_, err := store.Insert(ctx, models.KindEmotion, emotion("a", 3))
	assert.True(t, errors.Is(err, ErrStoreUnavailable))
	_, err = store.FindAll(ctx, models.KindEmotion, FindOptions{})
	assert.True(t, errors.Is(err, ErrStoreUnavailable))
	assert.True(t, errors.Is(store.Ping(ctx), ErrStoreUnavailable))
}

func TestMemoryStoreCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMemoryStore().Insert(ctx, models.KindEmotion, emotion("a", 3))
	assert.ErrorIs(t, err, context.Canceled)
}
