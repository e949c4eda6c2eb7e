package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"wellnexAPI/internal/types/notification"
	"wellnexAPI/services"
)

type NotificationHandler struct {
	notificationService NotificationService
}

func NewNotificationHandler(notificationService NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req notification.RegisterDeviceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	device, err := h.notificationService.RegisterDevice(ctx, userID, req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDevice) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Errorf("register device for %s: %s", userID, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to register device")
		return
	}

	respondWithJSON(w, http.StatusOK, device)
}
