package handlers

import (
	"context"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"wellnexAPI/middleware"
)

type RouterDeps struct {
	Calendar      CalendarService
	Routines      RoutineService
	Measurements  MeasurementService
	Chat          ChatService
	Predictions   PredictionService
	Notifications NotificationService

	Verifier    middleware.TokenVerifier
	RateLimiter *middleware.RateLimiter
	// Health reports whether the document store is reachable.
	Health func(ctx context.Context) error

	MetricsUser string
	MetricsPass string
	PprofSecret string
}

func NewRouter(deps RouterDeps) *mux.Router {
	calendarHandler := NewCalendarHandler(deps.Calendar)
	routineHandler := NewRoutineHandler(deps.Routines)
	measurementHandler := NewMeasurementHandler(deps.Measurements)
	chatHandler := NewChatHandler(deps.Chat)
	predictionHandler := NewPredictionHandler(deps.Predictions)
	notificationHandler := NewNotificationHandler(deps.Notifications)

	r := mux.NewRouter()
	r.Use(otelmux.Middleware("wellnex-api"))
	r.Use(middleware.MonitorMiddleware)
	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.Middleware)
	}

	r.Handle("/metrics", middleware.BasicAuthMiddleware(deps.MetricsUser, deps.MetricsPass)(promhttp.Handler())).Methods(http.MethodGet)

	debug := r.PathPrefix("/debug/pprof").Subrouter()
	debug.Use(middleware.PprofSecurityMiddleware(deps.PprofSecret))
	debug.HandleFunc("/cmdline", pprof.Cmdline)
	debug.HandleFunc("/profile", pprof.Profile)
	debug.HandleFunc("/symbol", pprof.Symbol)
	debug.HandleFunc("/trace", pprof.Trace)
	debug.PathPrefix("/").HandlerFunc(pprof.Index)

	r.HandleFunc("/health", healthHandler(deps.Health)).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/exercises", ExerciseCatalogue).Methods(http.MethodGet)

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware(deps.Verifier))

	protected.HandleFunc("/calendar", calendarHandler.GetState).Methods(http.MethodGet)
	protected.HandleFunc("/calendar/month", calendarHandler.GetMonth).Methods(http.MethodGet)
	protected.HandleFunc("/calendar/days", calendarHandler.ClassifyDay).Methods(http.MethodPost)

	protected.HandleFunc("/routines", routineHandler.ListRoutines).Methods(http.MethodGet)
	protected.HandleFunc("/routines", routineHandler.CreateRoutine).Methods(http.MethodPost)
	protected.HandleFunc("/routines/stats", routineHandler.ExerciseStats).Methods(http.MethodGet)
	protected.HandleFunc("/routines/{id}", routineHandler.DeleteRoutine).Methods(http.MethodDelete)

	protected.HandleFunc("/measurements", measurementHandler.GetMeasurements).Methods(http.MethodGet)
	protected.HandleFunc("/measurements", measurementHandler.SaveMeasurements).Methods(http.MethodPut)

	protected.HandleFunc("/chat", chatHandler.Ask).Methods(http.MethodPost)
	protected.HandleFunc("/chat/sessions", chatHandler.ListSessions).Methods(http.MethodGet)
	protected.HandleFunc("/chat/sessions", chatHandler.SaveSession).Methods(http.MethodPost)

	protected.HandleFunc("/predictions", predictionHandler.Predict).Methods(http.MethodPost)

	protected.HandleFunc("/notifications/register-device", notificationHandler.RegisterDevice).Methods(http.MethodPost)

	return r
}

func healthHandler(check func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if check != nil {
			if err := check(ctx); err != nil {
				respondWithJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status": "unhealthy",
					"error":  "document store unreachable",
				})
				return
			}
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}
}
