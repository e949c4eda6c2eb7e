package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"wellnexAPI/internal/docstore"
	"wellnexAPI/internal/types/notification"
	"wellnexAPI/services"
)

func TestNotificationDispatcher_SendsToRegisteredDevices(t *testing.T) {
	ctrl := gomock.NewController(t)
	push := NewMockPushNotificationProvider(ctrl)

	store := docstore.NewMemoryStore()
	_, err := store.SaveDeviceToken(context.Background(), notification.DeviceToken{UserID: "u1", Token: "tok-1", Platform: "ios"})
	require.NoError(t, err)

	dispatcher := services.NewNotificationDispatcher(store, 2)
	defer dispatcher.Stop()
	dispatcher.SetPushProvider(push)

	sent := make(chan struct{})
	push.EXPECT().
		SendPush(gomock.Any(), gomock.Len(1), "7 day streak!", "keep going", gomock.Any()).
		DoAndReturn(func(_ context.Context, tokens []notification.DeviceToken, _, _ string, _ map[string]any) error {
			assert.Equal(t, "tok-1", tokens[0].Token)
			close(sent)
			return nil
		})

	err = dispatcher.DispatchNotification(context.Background(), &notification.Notification{
		UserID: "u1",
		Title:  "7 day streak!",
		Body:   "keep going",
	})
	require.NoError(t, err)

	select {
	case <-sent:
	case <-time.After(2 * time.Second):
		t.Fatal("push was not sent")
	}
}

func TestNotificationDispatcher_SkipsUsersWithoutDevices(t *testing.T) {
	ctrl := gomock.NewController(t)
	push := NewMockPushNotificationProvider(ctrl)
	push.EXPECT().SendPush(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	dispatcher := services.NewNotificationDispatcher(docstore.NewMemoryStore(), 1)
	dispatcher.SetPushProvider(push)

	require.NoError(t, dispatcher.DispatchNotification(context.Background(), &notification.Notification{UserID: "u1"}))
	time.Sleep(50 * time.Millisecond)
	dispatcher.Stop()
}

func TestNotificationDispatcher_ProviderErrorIsContained(t *testing.T) {
	ctrl := gomock.NewController(t)
	push := NewMockPushNotificationProvider(ctrl)

	store := docstore.NewMemoryStore()
	_, err := store.SaveDeviceToken(context.Background(), notification.DeviceToken{UserID: "u1", Token: "tok-1"})
	require.NoError(t, err)

	dispatcher := services.NewNotificationDispatcher(store, 1)
	dispatcher.SetPushProvider(push)

	done := make(chan struct{})
	push.EXPECT().
		SendPush(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []notification.DeviceToken, string, string, map[string]any) error {
			close(done)
			return errors.New("fcm down")
		})

	require.NoError(t, dispatcher.DispatchNotification(context.Background(), &notification.Notification{UserID: "u1"}))
	<-done
	dispatcher.Stop()
}

func TestNotificationDispatcher_Stopped(t *testing.T) {
	dispatcher := services.NewNotificationDispatcher(docstore.NewMemoryStore(), 1)
	dispatcher.Stop()
	dispatcher.Stop()

	err := dispatcher.DispatchNotification(context.Background(), &notification.Notification{UserID: "u1"})
	assert.ErrorIs(t, err, services.ErrDispatcherStopped)
}

func TestNotificationService_RegisterDevice(t *testing.T) {
	store := docstore.NewMemoryStore()
	svc := services.NewNotificationService(store)
	ctx := context.Background()

	saved, err := svc.RegisterDevice(ctx, "u1", notification.RegisterDeviceRequest{Token: " tok ", Platform: "iOS"})
	require.NoError(t, err)
	assert.Equal(t, "tok", saved.Token)
	assert.Equal(t, "ios", saved.Platform)

	again, err := svc.RegisterDevice(ctx, "u1", notification.RegisterDeviceRequest{Token: "tok", Platform: "ios"})
	require.NoError(t, err)
	assert.Equal(t, saved.ID, again.ID)

	_, err = svc.RegisterDevice(ctx, "u1", notification.RegisterDeviceRequest{Token: ""})
	assert.ErrorIs(t, err, services.ErrInvalidDevice)

	_, err = svc.RegisterDevice(ctx, "u1", notification.RegisterDeviceRequest{Token: "x", Platform: "symbian"})
	assert.ErrorIs(t, err, services.ErrInvalidDevice)
}
