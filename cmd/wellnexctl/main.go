package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"wellnexAPI/internal/bootstrap"
	"wellnexAPI/internal/config"
	"wellnexAPI/services"
)

// Globals selects the store and the calendar lock. Classify takes the same
// lock as the API server, so point LOCK_BACKEND at the server's redis when
// backfilling a live system.
type Globals struct {
	Store                   string        `help:"Document store backend (firestore|postgres|memory)." env:"DOCUMENT_STORE" default:"firestore" enum:"firestore,postgres,memory"`
	DatabaseURL             string        `help:"Postgres connection string." env:"DATABASE_URL"`
	FirebaseCredentialsJSON string        `help:"Base64 encoded service account key." env:"FIREBASE_SERVICE_ACCOUNT_JSON"`
	FirebaseCredentialsFile string        `help:"Service account key file." env:"FIREBASE_CREDENTIALS_FILE" default:"./serviceAccountKey.json" type:"path"`
	FirebaseProjectID       string        `help:"Firebase project id." env:"FIREBASE_PROJECT_ID"`
	LockBackend             string        `help:"Calendar lock backend (local|redis)." env:"LOCK_BACKEND" default:"local" enum:"local,redis"`
	LockTTL                 time.Duration `help:"Calendar lock TTL." env:"LOCK_TTL" default:"10s"`
	RedisAddr               string        `help:"Redis address for the redis lock." env:"REDIS_ADDR"`
	RedisPassword           string        `help:"Redis password." env:"REDIS_PASSWORD"`
	Verbose                 bool          `help:"Log debug output." short:"v"`
}

var CLI struct {
	Globals `embed:""`

	State    StateCmd    `cmd:"" help:"Print the aggregated streak and rest state of a user."`
	Records  RecordsCmd  `cmd:"" help:"List the day records of a user, newest first."`
	Classify ClassifyCmd `cmd:"" help:"Append a streak or rest day for a user."`
}

func main() {
	// a missing .env is fine
	_ = godotenv.Load()

	kctx := kong.Parse(&CLI,
		kong.Name("wellnexctl"),
		kong.Description("Inspect and backfill WellNex calendar data."),
		kong.UsageOnError(),
	)

	if CLI.Verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	appCtx, closeFn, err := newContext(ctx, CLI.Globals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = kctx.Run(appCtx)
	if cerr := closeFn(); cerr != nil {
		log.Warnf("close: %s", cerr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newContext(ctx context.Context, g Globals) (*Context, func() error, error) {
	cfg := &config.Config{
		DocumentStore:           g.Store,
		DatabaseURL:             g.DatabaseURL,
		FirebaseCredentialsJSON: g.FirebaseCredentialsJSON,
		FirebaseCredentialsFile: g.FirebaseCredentialsFile,
		FirebaseProjectID:       g.FirebaseProjectID,
		LockBackend:             g.LockBackend,
		LockTTL:                 g.LockTTL,
		RedisAddr:               g.RedisAddr,
		RedisPassword:           g.RedisPassword,
	}
	if cfg.LockBackend == "redis" && cfg.RedisAddr == "" {
		return nil, nil, errors.New("--redis-addr is required for the redis lock")
	}

	app, err := bootstrap.FirebaseApp(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	store, err := bootstrap.Store(ctx, cfg, app)
	if err != nil {
		return nil, nil, err
	}
	locker, redisClient, err := bootstrap.Locker(ctx, cfg)
	if err != nil {
		return nil, nil, multierr.Append(err, store.Close())
	}

	closeFn := func() error {
		err := store.Close()
		if redisClient != nil {
			err = multierr.Append(err, redisClient.Close())
		}
		return err
	}

	return &Context{
		Ctx:      ctx,
		Calendar: services.NewCalendarService(store, locker, nil),
		Out:      os.Stdout,
	}, closeFn, nil
}
