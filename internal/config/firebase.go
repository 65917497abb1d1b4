package config

import (
	"errors"
	"os"

	"go.uber.org/zap"
)

const (
	DefaultFirebaseProjectID   = "arats-dev"
	DefaultCredentialsPath     = "credentials/firebase_service_account.json"
	DefaultFirestoreCollection = "arats_trading_data"
	DefaultRealtimeDatabaseRef = "arats/state"
)

// FirebaseSettings identifies the Firebase project backing ARATS persistence.
// The credentials file content is never read here; only its existence is
// verified so a misconfigured deployment fails at startup rather than on the
// first write.
type FirebaseSettings struct {
	ProjectID           string
	CredentialsPath     string
	FirestoreCollection string
	RealtimeDatabaseRef string
}

// NewFirebaseSettings builds and validates Firebase settings. An empty
// credentials path selects the default. A missing credentials file is logged
// as a warning before the error is returned.
func NewFirebaseSettings(projectID, credentialsPath string, logger *zap.Logger) (FirebaseSettings, error) {
	if credentialsPath == "" {
		credentialsPath = DefaultCredentialsPath
	}
	s := FirebaseSettings{
		ProjectID:           projectID,
		CredentialsPath:     credentialsPath,
		FirestoreCollection: DefaultFirestoreCollection,
		RealtimeDatabaseRef: DefaultRealtimeDatabaseRef,
	}

	if s.ProjectID == "" {
		return FirebaseSettings{}, errors.New("firebase project_id must not be empty")
	}
	if _, err := os.Stat(s.CredentialsPath); err != nil {
		logger.Warn("firebase credentials file not found", zap.String("path", s.CredentialsPath))
		return FirebaseSettings{}, &MissingCredentialsFileError{Path: s.CredentialsPath}
	}
	return s, nil
}
