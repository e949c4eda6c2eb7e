package notification

import "time"

type DeviceToken struct {
	ID        string    `json:"id" firestore:"-"`
	UserID    string    `json:"user_id" firestore:"userId"`
	Token     string    `json:"token" firestore:"token"`
	Platform  string    `json:"platform" firestore:"platform"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type RegisterDeviceRequest struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

type Notification struct {
	UserID string
	Title  string
	Body   string
	Data   map[string]any
}
