// Package predict talks to the strength regression service that estimates
// a lifter's best competition attempts from their current one rep maxes.
package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"wellnexAPI/internal/metrics"
	"wellnexAPI/internal/types/prediction"
)

var (
	ErrIncompletePrediction = errors.New("incomplete prediction data received")
	ErrUpstream             = errors.New("prediction service failed")
)

const (
	cacheSize       = 1 * 1024 * 1024
	cacheTTLSeconds = 60 * 60
)

type predictRequest struct {
	Squat1Kg    float64 `json:"Squat1Kg"`
	Bench1Kg    float64 `json:"Bench1Kg"`
	Deadlift1Kg float64 `json:"Deadlift1Kg"`
}

// predictResponse uses pointers so a missing field can be told apart from 0.
type predictResponse struct {
	Best3SquatKg    *float64 `json:"Best3SquatKg"`
	Best3BenchKg    *float64 `json:"Best3BenchKg"`
	Best3DeadliftKg *float64 `json:"Best3DeadliftKg"`
}

type Client struct {
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *freecache.Cache
}

func NewClient(url string, timeout time.Duration, rps float64) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		cache:      freecache.NewCache(cacheSize),
	}
}

// Predict returns the predicted best lifts for the given base lifts. Equal
// inputs are answered from cache for an hour.
func (c *Client) Predict(ctx context.Context, base prediction.Lifts) (prediction.Lifts, error) {
	key := []byte(fmt.Sprintf("%g|%g|%g", base.Squat, base.Bench, base.Deadlift))
	if cached, err := c.cache.Get(key); err == nil {
		var lifts prediction.Lifts
		if err := json.Unmarshal(cached, &lifts); err == nil {
			return lifts, nil
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return prediction.Lifts{}, fmt.Errorf("%w: throttled: %v", ErrUpstream, err)
	}

	start := time.Now()
	lifts, err := c.call(ctx, base)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.RemoteCalls.WithLabelValues("predict", outcome).Observe(time.Since(start).Seconds())
	if err != nil {
		return prediction.Lifts{}, err
	}

	if encoded, err := json.Marshal(lifts); err == nil {
		if err := c.cache.Set(key, encoded, cacheTTLSeconds); err != nil {
			log.Debugf("predict: cache set: %s", err)
		}
	}
	return lifts, nil
}

func (c *Client) call(ctx context.Context, base prediction.Lifts) (prediction.Lifts, error) {
	body, err := json.Marshal(predictRequest{
		Squat1Kg:    base.Squat,
		Bench1Kg:    base.Bench,
		Deadlift1Kg: base.Deadlift,
	})
	if err != nil {
		return prediction.Lifts{}, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return prediction.Lifts{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return prediction.Lifts{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return prediction.Lifts{}, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return prediction.Lifts{}, fmt.Errorf("%w: decoding response: %v", ErrUpstream, err)
	}
	if out.Best3SquatKg == nil || out.Best3BenchKg == nil || out.Best3DeadliftKg == nil {
		return prediction.Lifts{}, ErrIncompletePrediction
	}

	return prediction.Lifts{
		Squat:    *out.Best3SquatKg,
		Bench:    *out.Best3BenchKg,
		Deadlift: *out.Best3DeadliftKg,
	}, nil
}
