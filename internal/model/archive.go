package model

import "time"

// Archive represents a sealed password batch in the database. SealedData is
// the AES-GCM blob produced by crypto.Sealer; plaintext passwords never touch
// the database.
type Archive struct {
	ID         int64
	ArchiveID  string
	Label      string
	SealedData []byte
	Count      int
	CreatedAt  time.Time
	Deleted    bool
}

// ArchiveRequest represents a request to archive a generated batch.
type ArchiveRequest struct {
	Label     string   `json:"label"`
	Passwords []string `json:"passwords"`
}

// ArchiveResponse represents an archive in API responses. Passwords are not
// included; they are only recoverable through the export endpoint.
type ArchiveResponse struct {
	ArchiveID string    `json:"archive_id"`
	Label     string    `json:"label"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}
