package store

import (
	"time"

	"github.com/tourcue/tourcue/internal/models"
)

// DB is the archive storage interface. Only finished sessions are
// archived; the live timer is never persisted.
type DB interface {
	// SaveSession archives a finished recording session, keyed by its
	// creation time. Saving twice with the same key overwrites.
	SaveSession(rec *models.SessionRecord) error
	// ListSessions returns archived sessions created at or after since,
	// oldest first. A zero since returns everything.
	ListSessions(since time.Time) ([]*models.SessionRecord, error)
	// SaveMusicRequest archives a music cue request.
	SaveMusicRequest(req *models.MusicRequest) error
	// ListMusicRequests returns all archived music requests, oldest first.
	ListMusicRequests() ([]*models.MusicRequest, error)
	// Close ends the database connection.
	Close() error
}
