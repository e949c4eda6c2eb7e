package helpers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"wellnexAPI/handlers"
	"wellnexAPI/internal/docstore"
	"wellnexAPI/internal/lock"
	"wellnexAPI/internal/predict"
	"wellnexAPI/internal/recommend"
	"wellnexAPI/services"
)

const tokenPrefix = "test-token-"

// TokenFor returns a bearer token the test verifier resolves to userID.
func TokenFor(userID string) string {
	return tokenPrefix + userID
}

// NewUserID returns a unique user id so tests sharing a store never collide.
func NewUserID() string {
	return "user_test_" + uuid.NewString()
}

type prefixVerifier struct{}

func (prefixVerifier) Verify(_ context.Context, token string) (string, error) {
	if !strings.HasPrefix(token, tokenPrefix) || len(token) == len(tokenPrefix) {
		return "", errors.New("unknown test token")
	}
	return strings.TrimPrefix(token, tokenPrefix), nil
}

// TestServer is the full API router over an in-memory store, with the chat
// and prediction backends replaced by local fakes.
type TestServer struct {
	Store      *docstore.MemoryStore
	Dispatcher *services.NotificationDispatcher
	Handler    http.Handler
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	chatBackend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			UserInput string `json:"user_input"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(map[string]string{"response": "echo: " + body.UserInput})
	}))
	t.Cleanup(chatBackend.Close)

	predictBackend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]float64
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(map[string]float64{
			"Best3SquatKg":    body["Squat1Kg"] + 10,
			"Best3BenchKg":    body["Bench1Kg"] + 5,
			"Best3DeadliftKg": body["Deadlift1Kg"] - 10,
		})
	}))
	t.Cleanup(predictBackend.Close)

	store := docstore.NewMemoryStore()
	dispatcher := services.NewNotificationDispatcher(store, 2)
	t.Cleanup(dispatcher.Stop)

	router := handlers.NewRouter(handlers.RouterDeps{
		Calendar:      services.NewCalendarService(store, lock.NewLocalLocker(), dispatcher),
		Routines:      services.NewRoutineService(store),
		Measurements:  services.NewMeasurementService(store),
		Chat:          services.NewChatService(recommend.NewClient(chatBackend.URL, 2*time.Second, 100), store),
		Predictions:   services.NewPredictionService(predict.NewClient(predictBackend.URL, 2*time.Second, 100)),
		Notifications: services.NewNotificationService(store),
		Verifier:      prefixVerifier{},
		Health:        store.Ping,
		MetricsUser:   "metrics",
		MetricsPass:   "secret",
	})

	return &TestServer{
		Store:      store,
		Dispatcher: dispatcher,
		Handler:    router,
	}
}

// Do sends a request as userID. An empty userID sends no Authorization header.
func (s *TestServer) Do(t *testing.T, method, path, userID, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+TokenFor(userID))
	}

	rec := httptest.NewRecorder()
	s.Handler.ServeHTTP(rec, req)
	return rec
}

func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

// SetupTestPostgres opens the postgres document store named by
// TEST_DATABASE_URL and skips the test when it is not set.
func SetupTestPostgres(t *testing.T) *docstore.PostgresStore {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := docstore.NewPostgresStore(ctx, dbURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}
