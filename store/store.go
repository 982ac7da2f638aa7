// Package store connects to the archive database and manages finished
// sessions and music requests.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/tourcue/tourcue/internal/models"
	"github.com/tourcue/tourcue/internal/timeutil"
)

const (
	sessionBucket = "sessions"
	musicBucket   = "music_requests"
)

var errAlreadyRunning = errors.New(
	"is tourcue already running? Only one instance can be active at a time",
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func (c *Client) SaveSession(rec *models.SessionRecord) error {
	value, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).
			Put(timeutil.ToKey(rec.CreatedAt), value)
	})
}

func (c *Client) ListSessions(
	since time.Time,
) ([]*models.SessionRecord, error) {
	var records []*models.SessionRecord

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()

		min := timeutil.ToKey(since)

		for k, v := cur.Seek(min); k != nil; k, v = cur.Next() {
			var rec models.SessionRecord

			err := json.Unmarshal(v, &rec)
			if err != nil {
				return err
			}

			records = append(records, &rec)
		}

		return nil
	})

	return records, err
}

func (c *Client) SaveMusicRequest(req *models.MusicRequest) error {
	value, err := json.Marshal(req)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(musicBucket)).
			Put(timeutil.ToKey(req.CreatedAt), value)
	})
}

func (c *Client) ListMusicRequests() ([]*models.MusicRequest, error) {
	var requests []*models.MusicRequest

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(musicBucket)).Cursor()

		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			var req models.MusicRequest

			err := json.Unmarshal(v, &req)
			if err != nil {
				return err
			}

			requests = append(requests, &req)
		}

		return nil
	})

	return requests, err
}

func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if errors.Is(err, bolt.ErrTimeout) {
		return nil, errAlreadyRunning
	}

	return db, err
}

// NewClient returns a new database client, creating the buckets on first
// use.
func NewClient(pathToDB string) (*Client, error) {
	db, err := openDB(pathToDB)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range []string{sessionBucket, musicBucket} {
			_, berr := tx.CreateBucketIfNotExists([]byte(bucket))
			if berr != nil {
				return berr
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Client{db}, nil
}
