package docstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellnexAPI/internal/docstore"
	"wellnexAPI/internal/types/calendar"
	"wellnexAPI/internal/types/chat"
	"wellnexAPI/internal/types/measurement"
	"wellnexAPI/internal/types/notification"
	"wellnexAPI/internal/types/routine"
)

func TestMemoryStore_DayRecordsAreAppendOnlyAndScopedByUser(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()

	first, err := store.CreateDayRecord(ctx, calendar.DayRecord{UserID: "u1", Date: "2024-03-10", StreakValue: 1})
	require.NoError(t, err)
	second, err := store.CreateDayRecord(ctx, calendar.DayRecord{UserID: "u1", Date: "2024-03-10", StreakValue: 1})
	require.NoError(t, err)
	_, err = store.CreateDayRecord(ctx, calendar.DayRecord{UserID: "u2", Date: "2024-03-10", RestValue: 1})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	records, err := store.ListDayRecords(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first.ID, records[0].ID)
	assert.Equal(t, second.ID, records[1].ID)

	none, err := store.ListDayRecords(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryStore_Routines(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()

	created, err := store.CreateRoutine(ctx, routine.Routine{
		UserID:    "u1",
		Name:      "Push",
		Exercises: []routine.Exercise{{Name: "Bench Press", Sets: 3, Reps: 10}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// Mutating the returned copy must not leak into the store.
	created.Exercises[0].Sets = 99

	got, err := store.GetRoutine(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Exercises[0].Sets)

	require.NoError(t, store.DeleteRoutine(ctx, created.ID))
	assert.ErrorIs(t, store.DeleteRoutine(ctx, created.ID), docstore.ErrNotFound)

	_, err = store.GetRoutine(ctx, created.ID)
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestMemoryStore_MeasurementUpsert(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()

	_, err := store.GetMeasurement(ctx, "u1")
	require.ErrorIs(t, err, docstore.ErrNotFound)

	saved, err := store.SaveMeasurement(ctx, measurement.Measurement{UserID: "u1", Weight: 80})
	require.NoError(t, err)

	saved.Weight = 78
	_, err = store.SaveMeasurement(ctx, saved)
	require.NoError(t, err)

	got, err := store.GetMeasurement(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.InDelta(t, 78, got.Weight, 0.001)
}

func TestMemoryStore_ChatSessions(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()

	_, err := store.CreateChatSession(ctx, chat.Session{
		SessionID: "s1",
		UserID:    "u1",
		Messages:  []chat.Message{{Sender: chat.SenderUser, Text: "hi"}},
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	sessions, err := store.ListChatSessions(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "hi", sessions[0].Messages[0].Text)
}

func TestMemoryStore_DeviceTokenUpsert(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()

	first, err := store.SaveDeviceToken(ctx, notification.DeviceToken{UserID: "u1", Token: "tok", Platform: "ios"})
	require.NoError(t, err)
	second, err := store.SaveDeviceToken(ctx, notification.DeviceToken{UserID: "u1", Token: "tok", Platform: "android"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	tokens, err := store.ListDeviceTokens(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "android", tokens[0].Platform)
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := docstore.Open(context.Background(), docstore.Options{Backend: "mongo"})
	assert.ErrorIs(t, err, docstore.ErrUnknownBackend)

	store, err := docstore.Open(context.Background(), docstore.Options{Backend: docstore.BackendMemory})
	require.NoError(t, err)
	assert.NoError(t, store.Ping(context.Background()))
}
