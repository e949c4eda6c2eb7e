package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"wellnexAPI/internal/predict"
	"wellnexAPI/internal/types/prediction"
	"wellnexAPI/services"
)

type PredictionHandler struct {
	predictionService PredictionService
}

func NewPredictionHandler(predictionService PredictionService) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService}
}

func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if _, ok := requireUser(w, r); !ok {
		return
	}

	var req prediction.Request
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.predictionService.Predict(ctx, req)
	switch {
	case err == nil:
		respondWithJSON(w, http.StatusOK, resp)
	case errors.Is(err, services.ErrInvalidLifts):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, predict.ErrIncompletePrediction):
		respondWithError(w, http.StatusBadGateway, "Incomplete prediction data received")
	case errors.Is(err, predict.ErrUpstream), errors.Is(err, context.DeadlineExceeded):
		respondWithError(w, http.StatusBadGateway, "Prediction service unavailable")
	default:
		log.Errorf("predict: %s", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
