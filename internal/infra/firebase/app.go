// Package firebase wires the Firebase Admin SDK: the app shared by Auth and
// Firestore, and the identity provider built on it.
package firebase

import (
	"context"

	"portal/config"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// NewApp initialises the Firebase app from the configured project and credentials.
// Without a credentials file the SDK falls back to application default credentials
// or the emulators named in FIREBASE_AUTH_EMULATOR_HOST and FIRESTORE_EMULATOR_HOST.
func NewApp(ctx context.Context, cfg *config.Config) (*firebase.App, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}
