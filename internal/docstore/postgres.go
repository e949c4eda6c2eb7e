package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"wellnexAPI/internal/tracing"
	"wellnexAPI/internal/types/calendar"
	"wellnexAPI/internal/types/chat"
	"wellnexAPI/internal/types/measurement"
	"wellnexAPI/internal/types/notification"
	"wellnexAPI/internal/types/routine"
)

// seq keeps listings in insertion order, matching the other backends.
const schema = `
CREATE TABLE IF NOT EXISTS calendar (
	seq        BIGSERIAL,
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	date       TEXT NOT NULL,
	streak     INTEGER NOT NULL DEFAULT 0,
	rest       INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS calendar_user_idx ON calendar (user_id);

CREATE TABLE IF NOT EXISTS routines (
	seq        BIGSERIAL,
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	name       TEXT NOT NULL,
	exercises  TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS routines_user_idx ON routines (user_id);

CREATE TABLE IF NOT EXISTS measurements (
	seq        BIGSERIAL,
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	weight     DOUBLE PRECISION NOT NULL DEFAULT 0,
	height     DOUBLE PRECISION NOT NULL DEFAULT 0,
	chest      DOUBLE PRECISION NOT NULL DEFAULT 0,
	waist      DOUBLE PRECISION NOT NULL DEFAULT 0,
	hips       DOUBLE PRECISION NOT NULL DEFAULT 0,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS measurements_user_idx ON measurements (user_id);

CREATE TABLE IF NOT EXISTS chat_sessions (
	seq        BIGSERIAL,
	id         TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	user_id    TEXT NOT NULL,
	messages   TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS chat_sessions_user_idx ON chat_sessions (user_id);

CREATE TABLE IF NOT EXISTS device_tokens (
	seq        BIGSERIAL,
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	token      TEXT NOT NULL,
	platform   TEXT NOT NULL DEFAULT '',
	updated_at TIMESTAMPTZ NOT NULL,
	UNIQUE (user_id, token)
);
`

var _ Store = (*PostgresStore)(nil)

type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore connects, pings and makes sure the schema exists.
func NewPostgresStore(ctx context.Context, dbURL string) (*PostgresStore, error) {
	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute
	poolConfig.ConnConfig.Tracer = tracing.NewPgxTracer(tracing.GlobalTracer)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &PostgresStore{db: pool}, nil
}

func (s *PostgresStore) ListDayRecords(ctx context.Context, userID string) ([]calendar.DayRecord, error) {
	rows, err := s.db.Query(ctx, `
	SELECT id, user_id, date, streak, rest, created_at
	FROM calendar
	WHERE user_id = $1
	ORDER BY seq
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query day records: %w", err)
	}
	defer rows.Close()

	var records []calendar.DayRecord
	for rows.Next() {
		var rec calendar.DayRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Date, &rec.StreakValue, &rec.RestValue, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan day record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *PostgresStore) CreateDayRecord(ctx context.Context, rec calendar.DayRecord) (calendar.DayRecord, error) {
	rec.ID = uuid.NewString()
	_, err := s.db.Exec(ctx, `
	INSERT INTO calendar (id, user_id, date, streak, rest, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`, rec.ID, rec.UserID, rec.Date, rec.StreakValue, rec.RestValue, rec.CreatedAt)
	if err != nil {
		return calendar.DayRecord{}, fmt.Errorf("insert day record: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) ListRoutines(ctx context.Context, userID string) ([]routine.Routine, error) {
	rows, err := s.db.Query(ctx, `
	SELECT id, user_id, name, exercises, created_at
	FROM routines
	WHERE user_id = $1
	ORDER BY seq
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query routines: %w", err)
	}
	defer rows.Close()

	var routines []routine.Routine
	for rows.Next() {
		r, err := scanRoutine(rows)
		if err != nil {
			return nil, err
		}
		routines = append(routines, r)
	}
	return routines, rows.Err()
}

func (s *PostgresStore) CreateRoutine(ctx context.Context, r routine.Routine) (routine.Routine, error) {
	exercises, err := json.Marshal(r.Exercises)
	if err != nil {
		return routine.Routine{}, fmt.Errorf("encode exercises: %w", err)
	}

	r.ID = uuid.NewString()
	_, err = s.db.Exec(ctx, `
	INSERT INTO routines (id, user_id, name, exercises, created_at)
	VALUES ($1, $2, $3, $4, $5)
	`, r.ID, r.UserID, r.Name, string(exercises), r.CreatedAt)
	if err != nil {
		return routine.Routine{}, fmt.Errorf("insert routine: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) GetRoutine(ctx context.Context, id string) (routine.Routine, error) {
	row := s.db.QueryRow(ctx, `
	SELECT id, user_id, name, exercises, created_at
	FROM routines
	WHERE id = $1
	`, id)

	r, err := scanRoutine(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return routine.Routine{}, ErrNotFound
	}
	return r, err
}

func (s *PostgresStore) DeleteRoutine(ctx context.Context, id string) error {
	result, err := s.db.Exec(ctx, `DELETE FROM routines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete routine: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRoutine(row pgx.Row) (routine.Routine, error) {
	var (
		r         routine.Routine
		exercises string
	)
	if err := row.Scan(&r.ID, &r.UserID, &r.Name, &exercises, &r.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return routine.Routine{}, err
		}
		return routine.Routine{}, fmt.Errorf("scan routine: %w", err)
	}
	if err := json.Unmarshal([]byte(exercises), &r.Exercises); err != nil {
		return routine.Routine{}, fmt.Errorf("decode exercises of routine %s: %w", r.ID, err)
	}
	return r, nil
}

func (s *PostgresStore) GetMeasurement(ctx context.Context, userID string) (measurement.Measurement, error) {
	var m measurement.Measurement
	err := s.db.QueryRow(ctx, `
	SELECT id, user_id, weight, height, chest, waist, hips, updated_at
	FROM measurements
	WHERE user_id = $1
	ORDER BY seq
	LIMIT 1
	`, userID).Scan(&m.ID, &m.UserID, &m.Weight, &m.Height, &m.Chest, &m.Waist, &m.Hips, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return measurement.Measurement{}, ErrNotFound
		}
		return measurement.Measurement{}, fmt.Errorf("get measurement: %w", err)
	}
	return m, nil
}

func (s *PostgresStore) SaveMeasurement(ctx context.Context, m measurement.Measurement) (measurement.Measurement, error) {
	if m.ID != "" {
		result, err := s.db.Exec(ctx, `
		UPDATE measurements
		SET weight = $2, height = $3, chest = $4, waist = $5, hips = $6, updated_at = $7
		WHERE id = $1
		`, m.ID, m.Weight, m.Height, m.Chest, m.Waist, m.Hips, m.UpdatedAt)
		if err != nil {
			return measurement.Measurement{}, fmt.Errorf("update measurement: %w", err)
		}
		if result.RowsAffected() > 0 {
			return m, nil
		}
	}

	m.ID = uuid.NewString()
	_, err := s.db.Exec(ctx, `
	INSERT INTO measurements (id, user_id, weight, height, chest, waist, hips, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, m.ID, m.UserID, m.Weight, m.Height, m.Chest, m.Waist, m.Hips, m.UpdatedAt)
	if err != nil {
		return measurement.Measurement{}, fmt.Errorf("insert measurement: %w", err)
	}
	return m, nil
}

func (s *PostgresStore) ListChatSessions(ctx context.Context, userID string) ([]chat.Session, error) {
	rows, err := s.db.Query(ctx, `
	SELECT id, session_id, user_id, messages, created_at
	FROM chat_sessions
	WHERE user_id = $1
	ORDER BY seq
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query chat sessions: %w", err)
	}
	defer rows.Close()

	var sessions []chat.Session
	for rows.Next() {
		var (
			sess     chat.Session
			messages string
		)
		if err := rows.Scan(&sess.ID, &sess.SessionID, &sess.UserID, &messages, &sess.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat session: %w", err)
		}
		if err := json.Unmarshal([]byte(messages), &sess.Messages); err != nil {
			return nil, fmt.Errorf("decode messages of session %s: %w", sess.ID, err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

func (s *PostgresStore) CreateChatSession(ctx context.Context, sess chat.Session) (chat.Session, error) {
	messages, err := json.Marshal(sess.Messages)
	if err != nil {
		return chat.Session{}, fmt.Errorf("encode messages: %w", err)
	}

	sess.ID = uuid.NewString()
	_, err = s.db.Exec(ctx, `
	INSERT INTO chat_sessions (id, session_id, user_id, messages, created_at)
	VALUES ($1, $2, $3, $4, $5)
	`, sess.ID, sess.SessionID, sess.UserID, string(messages), sess.CreatedAt)
	if err != nil {
		return chat.Session{}, fmt.Errorf("insert chat session: %w", err)
	}
	return sess, nil
}

func (s *PostgresStore) ListDeviceTokens(ctx context.Context, userID string) ([]notification.DeviceToken, error) {
	rows, err := s.db.Query(ctx, `
	SELECT id, user_id, token, platform, updated_at
	FROM device_tokens
	WHERE user_id = $1
	ORDER BY seq
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query device tokens: %w", err)
	}
	defer rows.Close()

	var tokens []notification.DeviceToken
	for rows.Next() {
		var t notification.DeviceToken
		if err := rows.Scan(&t.ID, &t.UserID, &t.Token, &t.Platform, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan device token: %w", err)
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

func (s *PostgresStore) SaveDeviceToken(ctx context.Context, t notification.DeviceToken) (notification.DeviceToken, error) {
	err := s.db.QueryRow(ctx, `
	INSERT INTO device_tokens (id, user_id, token, platform, updated_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (user_id, token)
	DO UPDATE SET platform = EXCLUDED.platform, updated_at = EXCLUDED.updated_at
	RETURNING id
	`, uuid.NewString(), t.UserID, t.Token, t.Platform, t.UpdatedAt).Scan(&t.ID)
	if err != nil {
		return notification.DeviceToken{}, fmt.Errorf("upsert device token: %w", err)
	}
	return t, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	s.db.Close()
	return nil
}
