package calendar

import "time"

// DateLayout is the storage format of DayRecord.Date. It sorts lexicographically.
const DateLayout = "2006-01-02"

type Classification string

const (
	ClassificationStreak Classification = "streak"
	ClassificationRest   Classification = "rest"
)

func (c Classification) Valid() bool {
	return c == ClassificationStreak || c == ClassificationRest
}

// DayRecord is one append-only fact about a day. Exactly one of StreakValue
// and RestValue is nonzero, and it holds the cumulative value at write time.
type DayRecord struct {
	ID          string    `json:"id" firestore:"-" db:"id"`
	UserID      string    `json:"user_id" firestore:"userId" db:"user_id"`
	Date        string    `json:"date" firestore:"date" db:"date"`
	StreakValue int       `json:"streak" firestore:"streak" db:"streak"`
	RestValue   int       `json:"rest" firestore:"rest" db:"rest"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt" db:"created_at"`
}

func (r DayRecord) Classification() Classification {
	if r.StreakValue > 0 {
		return ClassificationStreak
	}
	if r.RestValue > 0 {
		return ClassificationRest
	}
	return ""
}

// AggregatedState is derived from a user's records on every load and never stored.
type AggregatedState struct {
	CurrentStreak  int    `json:"current_streak"`
	LastStreakDate string `json:"last_streak_date,omitempty"`
	TotalRest      int    `json:"total_rest"`
}

func (s AggregatedState) HasStreak() bool {
	return s.LastStreakDate != ""
}

type ClassifyRequest struct {
	Date string         `json:"date"`
	Type Classification `json:"type"`
}

type ClassifyResponse struct {
	Record DayRecord       `json:"record"`
	State  AggregatedState `json:"state"`
}

type StateResponse struct {
	State    AggregatedState `json:"state"`
	Records  []DayRecord     `json:"records"`
	Degraded bool            `json:"degraded"`
}

type CalendarDay struct {
	Date           string         `json:"date"`
	Classification Classification `json:"classification,omitempty"`
	StreakValue    int            `json:"streak,omitempty"`
	RestValue      int            `json:"rest,omitempty"`
	IsToday        bool           `json:"is_today"`
}

type CalendarResponse struct {
	Year     int             `json:"year"`
	Month    int             `json:"month"`
	Days     []*CalendarDay  `json:"days"`
	State    AggregatedState `json:"state"`
	Degraded bool            `json:"degraded"`
}
