package world

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("world: entity not found")

type Character struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Faction struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Location optionally carries a map seed so its terrain preview is
// reproducible across sessions.
type Location struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Summary   string    `json:"summary"`
	MapSeed   string    `json:"map_seed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Timeline struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Event spans an inclusive [StartDay, EndDay] range on its timeline.
type Event struct {
	ID         string    `json:"id"`
	TimelineID string    `json:"timeline_id"`
	LocationID *string   `json:"location_id,omitempty"`
	Name       string    `json:"name"`
	Summary    string    `json:"summary"`
	StartDay   int64     `json:"start_day"`
	EndDay     int64     `json:"end_day"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TemporalOverlap reports two events on the same timeline that share a
// participant while their day ranges intersect.
type TemporalOverlap struct {
	TimelineID    string `json:"timeline_id"`
	FirstEventID  string `json:"first_event_id"`
	SecondEventID string `json:"second_event_id"`
	CharacterID   string `json:"character_id"`
	OverlapStart  int64  `json:"overlap_start"`
	OverlapEnd    int64  `json:"overlap_end"`
}

// OrphanReport lists graph nodes nothing references: characters belonging
// to no faction and no event, and locations no event takes place at.
type OrphanReport struct {
	Characters []Character `json:"characters"`
	Locations  []Location  `json:"locations"`
}
