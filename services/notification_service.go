package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wellnexAPI/internal/metrics"
	"wellnexAPI/internal/types/notification"
)

var ErrInvalidDevice = errors.New("device token is required and platform must be ios, android or web")

type DeviceTokenStore interface {
	DeviceTokenLister
	SaveDeviceToken(ctx context.Context, t notification.DeviceToken) (notification.DeviceToken, error)
}

type NotificationService struct {
	store DeviceTokenStore
	now   func() time.Time
}

func NewNotificationService(store DeviceTokenStore) *NotificationService {
	return &NotificationService{store: store, now: time.Now}
}

func (s *NotificationService) RegisterDevice(ctx context.Context, userID string, req notification.RegisterDeviceRequest) (*notification.DeviceToken, error) {
	token := strings.TrimSpace(req.Token)
	platform := strings.ToLower(strings.TrimSpace(req.Platform))
	if platform == "" {
		platform = "android"
	}
	if token == "" || (platform != "ios" && platform != "android" && platform != "web") {
		return nil, ErrInvalidDevice
	}

	saved, err := s.store.SaveDeviceToken(ctx, notification.DeviceToken{
		UserID:    userID,
		Token:     token,
		Platform:  platform,
		UpdatedAt: s.now().UTC(),
	})
	if err != nil {
		metrics.PersistenceFailures.WithLabelValues("device_tokens").Inc()
		return nil, fmt.Errorf("save device token: %w", err)
	}
	return &saved, nil
}
