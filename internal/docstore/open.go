package docstore

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
)

const (
	BackendFirestore = "firestore"
	BackendPostgres  = "postgres"
	BackendMemory    = "memory"
)

type Options struct {
	Backend     string
	DatabaseURL string
	// FirebaseApp is required for the firestore backend.
	FirebaseApp *firebase.App
}

func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendFirestore:
		if opts.FirebaseApp == nil {
			return nil, fmt.Errorf("firestore backend needs a firebase app")
		}
		return NewFirestoreStore(ctx, opts.FirebaseApp)
	case BackendPostgres:
		return NewPostgresStore(ctx, opts.DatabaseURL)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
