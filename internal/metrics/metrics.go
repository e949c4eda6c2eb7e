package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	DayRecordsWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellnex_day_records_written_total",
			Help: "Day records appended, by classification",
		},
		[]string{"classification"},
	)
	CalendarFetchFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wellnex_calendar_fetch_failures_total",
			Help: "Day record listings that failed and degraded to the zero state",
		},
	)
	PersistenceFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellnex_persistence_failures_total",
			Help: "Failed document writes, by collection",
		},
		[]string{"collection"},
	)
	StreakMilestones = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellnex_streak_milestones_total",
			Help: "Streak milestones reached",
		},
		[]string{"streak"},
	)
	PushNotifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellnex_push_notifications_total",
			Help: "Dispatched push notification jobs, by result",
		},
		[]string{"result"},
	)
	RemoteCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wellnex_remote_call_duration_seconds",
			Help:    "Duration of calls to the chat and prediction backends",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "outcome"},
	)
)

var registerOnce sync.Once

// Register adds the domain collectors to reg. Only the first call has an effect.
func Register(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		reg.MustRegister(
			DayRecordsWritten,
			CalendarFetchFailures,
			PersistenceFailures,
			StreakMilestones,
			PushNotifications,
			RemoteCalls,
		)
	})
}
