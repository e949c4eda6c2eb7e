package firebaseapp

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

type Params struct {
	// CredentialsJSON is a base64 encoded service account key. It wins over CredentialsFile.
	CredentialsJSON string
	CredentialsFile string
	ProjectID       string
}

// New initializes the Firebase app shared by Firestore, Auth and Messaging.
// Credentials come from the base64 env value first, then the local key file.
func New(ctx context.Context, params Params) (*firebase.App, error) {
	var opt option.ClientOption

	if params.CredentialsJSON != "" {
		decoded, err := base64.StdEncoding.DecodeString(params.CredentialsJSON)
		if err != nil {
			return nil, fmt.Errorf("decode base64 firebase credentials: %w", err)
		}
		opt = option.WithCredentialsJSON(decoded)
		log.Debugln("firebase: using credentials from environment")
	} else {
		if _, err := os.Stat(params.CredentialsFile); os.IsNotExist(err) {
			return nil, fmt.Errorf("firebase credentials file not found: %s, and no base64 credentials set", params.CredentialsFile)
		}
		opt = option.WithCredentialsFile(params.CredentialsFile)
		log.Debugf("firebase: using credentials file %s", params.CredentialsFile)
	}

	var conf *firebase.Config
	if params.ProjectID != "" {
		conf = &firebase.Config{ProjectID: params.ProjectID}
	}

	app, err := firebase.NewApp(ctx, conf, opt)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}
	return app, nil
}
