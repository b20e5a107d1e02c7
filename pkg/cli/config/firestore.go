package config

import "github.com/urfave/cli/v3"

// Firestore holds Firestore configuration for sync history
type Firestore struct {
	ProjectID       string
	DatabaseID      string
	CredentialsFile string
}

// Enabled reports whether sync history should be stored in Firestore
func (c *Firestore) Enabled() bool {
	return c.ProjectID != ""
}

// Flags returns CLI flags for Firestore configuration
func (c *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Google Cloud project ID for sync history (empty keeps history in memory)",
			Destination: &c.ProjectID,
			Sources:     cli.EnvVars("HUBSYNC_FIRESTORE_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Value:       "(default)",
			Destination: &c.DatabaseID,
			Sources:     cli.EnvVars("HUBSYNC_FIRESTORE_DATABASE_ID"),
		},
		&cli.StringFlag{
			Name:        "firestore-credentials-file",
			Usage:       "Service account credentials file (empty uses application default credentials)",
			Destination: &c.CredentialsFile,
			Sources:     cli.EnvVars("HUBSYNC_FIRESTORE_CREDENTIALS_FILE"),
		},
	}
}
