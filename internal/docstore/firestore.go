package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"wellnexAPI/internal/types/calendar"
	"wellnexAPI/internal/types/chat"
	"wellnexAPI/internal/types/measurement"
	"wellnexAPI/internal/types/notification"
	"wellnexAPI/internal/types/routine"
)

// routineDoc keeps exercises as a JSON string, the layout the mobile
// client already reads and writes.
type routineDoc struct {
	UserID    string    `firestore:"userId"`
	Name      string    `firestore:"name"`
	Exercises string    `firestore:"exercises"`
	CreatedAt time.Time `firestore:"createdAt"`
}

type messageDoc struct {
	Sender string `firestore:"sender"`
	Text   string `firestore:"text"`
}

type sessionDoc struct {
	SessionID string       `firestore:"sessionId"`
	UserID    string       `firestore:"userId"`
	Messages  []messageDoc `firestore:"messages"`
	CreatedAt time.Time    `firestore:"createdAt"`
}

var _ Store = (*FirestoreStore)(nil)

type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(ctx context.Context, app *firebase.App) (*FirestoreStore, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("open firestore client: %w", err)
	}
	return &FirestoreStore{client: client}, nil
}

// byUser returns documents in document id order, which is unrelated to
// insertion order.
func (s *FirestoreStore) byUser(ctx context.Context, collection, userID string) ([]*firestore.DocumentSnapshot, error) {
	docs, err := s.client.Collection(collection).Where("userId", "==", userID).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	return docs, nil
}

func (s *FirestoreStore) ListDayRecords(ctx context.Context, userID string) ([]calendar.DayRecord, error) {
	docs, err := s.byUser(ctx, CollectionCalendar, userID)
	if err != nil {
		return nil, err
	}

	records := make([]calendar.DayRecord, 0, len(docs))
	for _, doc := range docs {
		var rec calendar.DayRecord
		if err := doc.DataTo(&rec); err != nil {
			return nil, fmt.Errorf("decode day record %s: %w", doc.Ref.ID, err)
		}
		rec.ID = doc.Ref.ID
		records = append(records, rec)
	}
	return records, nil
}

func (s *FirestoreStore) CreateDayRecord(ctx context.Context, rec calendar.DayRecord) (calendar.DayRecord, error) {
	ref := s.client.Collection(CollectionCalendar).NewDoc()
	if _, err := ref.Create(ctx, rec); err != nil {
		return calendar.DayRecord{}, fmt.Errorf("create day record: %w", err)
	}
	rec.ID = ref.ID
	return rec, nil
}

func (s *FirestoreStore) ListRoutines(ctx context.Context, userID string) ([]routine.Routine, error) {
	docs, err := s.byUser(ctx, CollectionRoutines, userID)
	if err != nil {
		return nil, err
	}

	routines := make([]routine.Routine, 0, len(docs))
	for _, doc := range docs {
		r, err := decodeRoutine(doc)
		if err != nil {
			return nil, err
		}
		routines = append(routines, r)
	}
	return routines, nil
}

func (s *FirestoreStore) CreateRoutine(ctx context.Context, r routine.Routine) (routine.Routine, error) {
	exercises, err := json.Marshal(r.Exercises)
	if err != nil {
		return routine.Routine{}, fmt.Errorf("encode exercises: %w", err)
	}

	ref := s.client.Collection(CollectionRoutines).NewDoc()
	_, err = ref.Create(ctx, routineDoc{
		UserID:    r.UserID,
		Name:      r.Name,
		Exercises: string(exercises),
		CreatedAt: r.CreatedAt,
	})
	if err != nil {
		return routine.Routine{}, fmt.Errorf("create routine: %w", err)
	}
	r.ID = ref.ID
	return r, nil
}

func (s *FirestoreStore) GetRoutine(ctx context.Context, id string) (routine.Routine, error) {
	doc, err := s.client.Collection(CollectionRoutines).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return routine.Routine{}, ErrNotFound
		}
		return routine.Routine{}, fmt.Errorf("get routine %s: %w", id, err)
	}
	return decodeRoutine(doc)
}

func (s *FirestoreStore) DeleteRoutine(ctx context.Context, id string) error {
	ref := s.client.Collection(CollectionRoutines).Doc(id)
	// Firestore deletes of missing documents succeed, so check first.
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("get routine %s: %w", id, err)
	}
	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("delete routine %s: %w", id, err)
	}
	return nil
}

func decodeRoutine(doc *firestore.DocumentSnapshot) (routine.Routine, error) {
	var d routineDoc
	if err := doc.DataTo(&d); err != nil {
		return routine.Routine{}, fmt.Errorf("decode routine %s: %w", doc.Ref.ID, err)
	}

	r := routine.Routine{
		ID:        doc.Ref.ID,
		UserID:    d.UserID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
	}
	if d.Exercises != "" {
		if err := json.Unmarshal([]byte(d.Exercises), &r.Exercises); err != nil {
			return routine.Routine{}, fmt.Errorf("decode exercises of routine %s: %w", doc.Ref.ID, err)
		}
	}
	return r, nil
}

func (s *FirestoreStore) GetMeasurement(ctx context.Context, userID string) (measurement.Measurement, error) {
	docs, err := s.client.Collection(CollectionMeasurements).
		Where("userId", "==", userID).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return measurement.Measurement{}, fmt.Errorf("get measurement: %w", err)
	}
	if len(docs) == 0 {
		return measurement.Measurement{}, ErrNotFound
	}

	var m measurement.Measurement
	if err := docs[0].DataTo(&m); err != nil {
		return measurement.Measurement{}, fmt.Errorf("decode measurement: %w", err)
	}
	m.ID = docs[0].Ref.ID
	return m, nil
}

func (s *FirestoreStore) SaveMeasurement(ctx context.Context, m measurement.Measurement) (measurement.Measurement, error) {
	coll := s.client.Collection(CollectionMeasurements)
	if m.ID != "" {
		if _, err := coll.Doc(m.ID).Set(ctx, m); err != nil {
			return measurement.Measurement{}, fmt.Errorf("update measurement: %w", err)
		}
		return m, nil
	}

	ref := coll.NewDoc()
	if _, err := ref.Create(ctx, m); err != nil {
		return measurement.Measurement{}, fmt.Errorf("create measurement: %w", err)
	}
	m.ID = ref.ID
	return m, nil
}

func (s *FirestoreStore) ListChatSessions(ctx context.Context, userID string) ([]chat.Session, error) {
	docs, err := s.byUser(ctx, CollectionChatSessions, userID)
	if err != nil {
		return nil, err
	}

	sessions := make([]chat.Session, 0, len(docs))
	for _, doc := range docs {
		var d sessionDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, fmt.Errorf("decode chat session %s: %w", doc.Ref.ID, err)
		}
		sess := chat.Session{
			ID:        doc.Ref.ID,
			SessionID: d.SessionID,
			UserID:    d.UserID,
			CreatedAt: d.CreatedAt,
			Messages:  make([]chat.Message, 0, len(d.Messages)),
		}
		for _, msg := range d.Messages {
			sess.Messages = append(sess.Messages, chat.Message{Sender: chat.Sender(msg.Sender), Text: msg.Text})
		}
		sessions = append(sessions, sess)
	}
	return sessions, nil
}

func (s *FirestoreStore) CreateChatSession(ctx context.Context, sess chat.Session) (chat.Session, error) {
	d := sessionDoc{
		SessionID: sess.SessionID,
		UserID:    sess.UserID,
		CreatedAt: sess.CreatedAt,
		Messages:  make([]messageDoc, 0, len(sess.Messages)),
	}
	for _, msg := range sess.Messages {
		d.Messages = append(d.Messages, messageDoc{Sender: string(msg.Sender), Text: msg.Text})
	}

	ref := s.client.Collection(CollectionChatSessions).NewDoc()
	if _, err := ref.Create(ctx, d); err != nil {
		return chat.Session{}, fmt.Errorf("create chat session: %w", err)
	}
	sess.ID = ref.ID
	return sess, nil
}

func (s *FirestoreStore) ListDeviceTokens(ctx context.Context, userID string) ([]notification.DeviceToken, error) {
	docs, err := s.byUser(ctx, CollectionDeviceTokens, userID)
	if err != nil {
		return nil, err
	}

	tokens := make([]notification.DeviceToken, 0, len(docs))
	for _, doc := range docs {
		var t notification.DeviceToken
		if err := doc.DataTo(&t); err != nil {
			return nil, fmt.Errorf("decode device token %s: %w", doc.Ref.ID, err)
		}
		t.ID = doc.Ref.ID
		tokens = append(tokens, t)
	}
	return tokens, nil
}

func (s *FirestoreStore) SaveDeviceToken(ctx context.Context, t notification.DeviceToken) (notification.DeviceToken, error) {
	coll := s.client.Collection(CollectionDeviceTokens)
	docs, err := coll.Where("userId", "==", t.UserID).Where("token", "==", t.Token).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return notification.DeviceToken{}, fmt.Errorf("find device token: %w", err)
	}

	ref := coll.NewDoc()
	if len(docs) > 0 {
		ref = docs[0].Ref
	}
	if _, err := ref.Set(ctx, t); err != nil {
		return notification.DeviceToken{}, fmt.Errorf("save device token: %w", err)
	}
	t.ID = ref.ID
	return t, nil
}

func (s *FirestoreStore) Ping(ctx context.Context) error {
	_, err := s.client.Collection(CollectionCalendar).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return fmt.Errorf("ping firestore: %w", err)
	}
	return nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
