package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"wellnexAPI/internal/aggregator"
	"wellnexAPI/internal/types/calendar"
	"wellnexAPI/services"
)

type CalendarHandler struct {
	calendarService CalendarService
	now             func() time.Time
}

func NewCalendarHandler(calendarService CalendarService) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
		now:             time.Now,
	}
}

func (h *CalendarHandler) GetState(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	resp, err := h.calendarService.State(ctx, userID)
	if err != nil {
		h.respondWithCalendarError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, resp)
}

// GetMonth defaults to the current month when year or month is omitted.
func (h *CalendarHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	now := h.now().UTC()
	year, month := now.Year(), int(now.Month())
	var err error
	if v := r.URL.Query().Get("year"); v != "" {
		if year, err = strconv.Atoi(v); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid year")
			return
		}
	}
	if v := r.URL.Query().Get("month"); v != "" {
		if month, err = strconv.Atoi(v); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid month")
			return
		}
	}

	resp, err := h.calendarService.Month(ctx, userID, year, month)
	if err != nil {
		h.respondWithCalendarError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, resp)
}

func (h *CalendarHandler) ClassifyDay(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req calendar.ClassifyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.calendarService.Classify(ctx, userID, req)
	if err != nil {
		h.respondWithCalendarError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, resp)
}

func (h *CalendarHandler) respondWithCalendarError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, aggregator.ErrUnauthenticated):
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
	case errors.Is(err, aggregator.ErrInvalidDate),
		errors.Is(err, aggregator.ErrInvalidClassification),
		errors.Is(err, services.ErrInvalidMonth):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, aggregator.ErrFetchFailure):
		respondWithError(w, http.StatusServiceUnavailable, "Calendar is temporarily unavailable, nothing was recorded")
	case errors.Is(err, services.ErrCalendarBusy):
		respondWithError(w, http.StatusServiceUnavailable, "Calendar is busy, try again")
	case errors.Is(err, aggregator.ErrPersistenceFailure):
		respondWithError(w, http.StatusBadGateway, "Failed to save day")
	default:
		log.Errorf("calendar handler: %s", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
