// Package bootstrap turns a Config into the shared clients used by the API
// server and wellnexctl.
package bootstrap

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"wellnexAPI/internal/config"
	"wellnexAPI/internal/docstore"
	"wellnexAPI/internal/firebaseapp"
	"wellnexAPI/internal/lock"
)

// FirebaseApp returns nil when no configured component needs Firebase.
func FirebaseApp(ctx context.Context, cfg *config.Config) (*firebase.App, error) {
	if !cfg.NeedsFirebase() {
		return nil, nil
	}
	return firebaseapp.New(ctx, firebaseapp.Params{
		CredentialsJSON: cfg.FirebaseCredentialsJSON,
		CredentialsFile: cfg.FirebaseCredentialsFile,
		ProjectID:       cfg.FirebaseProjectID,
	})
}

func Store(ctx context.Context, cfg *config.Config, app *firebase.App) (docstore.Store, error) {
	store, err := docstore.Open(ctx, docstore.Options{
		Backend:     cfg.DocumentStore,
		DatabaseURL: cfg.DatabaseURL,
		FirebaseApp: app,
	})
	if err != nil {
		return nil, err
	}
	log.Infof("document store: %s", cfg.DocumentStore)
	return store, nil
}

// Locker returns the redis client too so the caller can close it; it is nil
// for the local backend.
func Locker(ctx context.Context, cfg *config.Config) (lock.Locker, *redis.Client, error) {
	if cfg.LockBackend != "redis" {
		log.Info("calendar lock: in-process")
		return lock.NewLocalLocker(), nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
	}
	log.Infof("calendar lock: redis at %s", cfg.RedisAddr)
	return lock.NewRedisLocker(client, cfg.LockTTL), client, nil
}
