// Package models defines the data types shared between the recorder,
// the archive store, and the timeline serializer.
package models

import "time"

// Section is one recorded segment of a session. Timing fields are in
// seconds from the start of the session. Duration is always End - Start.
type Section struct {
	Start    float64 `json:"start_time"`
	End      float64 `json:"end_time"`
	Duration float64 `json:"duration"`
	Title    string  `json:"title"`
	Script   string  `json:"script,omitempty"`
}

// SessionRecord is a finished recording session as written to the archive
// when a timeline is exported.
type SessionRecord struct {
	CreatedAt   time.Time `json:"created_at"`
	ProjectName string    `json:"project_name"`
	FPS         int       `json:"fps"`
	Sections    []Section `json:"sections"`
}

// MusicRequest is a brief for a music cue. There is no live API for music
// generation; requests are archived and handed off as data.
type MusicRequest struct {
	CreatedAt time.Time `json:"created_at"`
	Prompt    string    `json:"prompt"`
	Duration  float64   `json:"duration_seconds"`
	Style     string    `json:"style,omitempty"`
	Mood      string    `json:"mood,omitempty"`
}
