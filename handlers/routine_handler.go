package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"wellnexAPI/internal/types/routine"
	"wellnexAPI/services"
)

type RoutineHandler struct {
	routineService RoutineService
}

func NewRoutineHandler(routineService RoutineService) *RoutineHandler {
	return &RoutineHandler{routineService: routineService}
}

func (h *RoutineHandler) ListRoutines(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	routines, err := h.routineService.List(ctx, userID)
	if err != nil {
		log.Errorf("list routines of %s: %s", userID, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to load routines")
		return
	}

	respondWithJSON(w, http.StatusOK, routines)
}

func (h *RoutineHandler) CreateRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req routine.CreateRoutineRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := h.routineService.Create(ctx, userID, req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRoutine) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Errorf("create routine for %s: %s", userID, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to save routine")
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

func (h *RoutineHandler) DeleteRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	err := h.routineService.Delete(ctx, userID, mux.Vars(r)["id"])
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, services.ErrRoutineNotFound):
		respondWithError(w, http.StatusNotFound, "Routine not found")
	case errors.Is(err, services.ErrForbidden):
		respondWithError(w, http.StatusForbidden, "Not your routine")
	default:
		log.Errorf("delete routine for %s: %s", userID, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to delete routine")
	}
}

func (h *RoutineHandler) ExerciseStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	stats, err := h.routineService.Stats(ctx, userID, routine.StatType(r.URL.Query().Get("type")))
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatType) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Errorf("exercise stats for %s: %s", userID, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}
