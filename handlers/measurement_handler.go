package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"wellnexAPI/internal/types/measurement"
	"wellnexAPI/services"
)

type MeasurementHandler struct {
	measurementService MeasurementService
}

func NewMeasurementHandler(measurementService MeasurementService) *MeasurementHandler {
	return &MeasurementHandler{measurementService: measurementService}
}

func (h *MeasurementHandler) GetMeasurements(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	m, err := h.measurementService.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, services.ErrMeasurementNotFound) {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Errorf("get measurements of %s: %s", userID, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to load measurements")
		return
	}

	respondWithJSON(w, http.StatusOK, m)
}

func (h *MeasurementHandler) SaveMeasurements(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req measurement.SaveMeasurementRequest
	if !decodeBody(w, r, &req) {
		return
	}

	saved, err := h.measurementService.Save(ctx, userID, req)
	if err != nil {
		log.Errorf("save measurements of %s: %s", userID, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to save measurements")
		return
	}

	respondWithJSON(w, http.StatusOK, saved)
}
