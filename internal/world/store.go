package world

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Loreweave/api/internal/logging"
)

// Store persists worldbuilding entities and their relations in SQLite.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateCharacter(ctx context.Context, name, summary string) (Character, error) {
	c := Character{
		ID:        uuid.NewString(),
		Name:      name,
		Summary:   summary,
		CreatedAt: time.Now().UTC(),
	}
	c.UpdatedAt = c.CreatedAt

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO characters (id, name, summary, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Summary, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return Character{}, fmt.Errorf("failed to create character: %w", err)
	}
	logging.WithEntity("character", c.ID).Debug("Character created", "name", c.Name)
	return c, nil
}

func (s *Store) GetCharacter(ctx context.Context, id string) (Character, error) {
	var c Character
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, summary, created_at, updated_at FROM characters WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Summary, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return Character{}, ErrNotFound
	}
	if err != nil {
		return Character{}, fmt.Errorf("failed to get character: %w", err)
	}
	return c, nil
}

func (s *Store) ListCharacters(ctx context.Context, limit, offset int) ([]Character, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, summary, created_at, updated_at FROM characters ORDER BY name LIMIT ? OFFSET ?`,
		normalizeLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	defer rows.Close()

	characters := []Character{}
	for rows.Next() {
		var c Character
		if err := rows.Scan(&c.ID, &c.Name, &c.Summary, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan character: %w", err)
		}
		characters = append(characters, c)
	}
	return characters, rows.Err()
}

func (s *Store) UpdateCharacter(ctx context.Context, id, name, summary string) (Character, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE characters SET name = ?, summary = ?, updated_at = ? WHERE id = ?`,
		name, summary, time.Now().UTC(), id)
	if err != nil {
		return Character{}, fmt.Errorf("failed to update character: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return Character{}, ErrNotFound
	}
	return s.GetCharacter(ctx, id)
}

func (s *Store) DeleteCharacter(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "characters", id)
}

func (s *Store) CreateFaction(ctx context.Context, name, summary string) (Faction, error) {
	f := Faction{
		ID:        uuid.NewString(),
		Name:      name,
		Summary:   summary,
		CreatedAt: time.Now().UTC(),
	}
	f.UpdatedAt = f.CreatedAt

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO factions (id, name, summary, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		f.ID, f.Name, f.Summary, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return Faction{}, fmt.Errorf("failed to create faction: %w", err)
	}
	logging.WithEntity("faction", f.ID).Debug("Faction created", "name", f.Name)
	return f, nil
}

func (s *Store) GetFaction(ctx context.Context, id string) (Faction, error) {
	var f Faction
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, summary, created_at, updated_at FROM factions WHERE id = ?`, id).
		Scan(&f.ID, &f.Name, &f.Summary, &f.CreatedAt, &f.UpdatedAt)
	if err == sql.ErrNoRows {
		return Faction{}, ErrNotFound
	}
	if err != nil {
		return Faction{}, fmt.Errorf("failed to get faction: %w", err)
	}
	return f, nil
}

func (s *Store) ListFactions(ctx context.Context, limit, offset int) ([]Faction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, summary, created_at, updated_at FROM factions ORDER BY name LIMIT ? OFFSET ?`,
		normalizeLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list factions: %w", err)
	}
	defer rows.Close()

	factions := []Faction{}
	for rows.Next() {
		var f Faction
		if err := rows.Scan(&f.ID, &f.Name, &f.Summary, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan faction: %w", err)
		}
		factions = append(factions, f)
	}
	return factions, rows.Err()
}

func (s *Store) UpdateFaction(ctx context.Context, id, name, summary string) (Faction, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE factions SET name = ?, summary = ?, updated_at = ? WHERE id = ?`,
		name, summary, time.Now().UTC(), id)
	if err != nil {
		return Faction{}, fmt.Errorf("failed to update faction: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return Faction{}, ErrNotFound
	}
	return s.GetFaction(ctx, id)
}

func (s *Store) DeleteFaction(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "factions", id)
}

func (s *Store) CreateLocation(ctx context.Context, name, summary, mapSeed string) (Location, error) {
	l := Location{
		ID:        uuid.NewString(),
		Name:      name,
		Summary:   summary,
		MapSeed:   mapSeed,
		CreatedAt: time.Now().UTC(),
	}
	l.UpdatedAt = l.CreatedAt

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO locations (id, name, summary, map_seed, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		l.ID, l.Name, l.Summary, l.MapSeed, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		return Location{}, fmt.Errorf("failed to create location: %w", err)
	}
	logging.WithEntity("location", l.ID).Debug("Location created", "name", l.Name)
	return l, nil
}

func (s *Store) GetLocation(ctx context.Context, id string) (Location, error) {
	var l Location
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, summary, map_seed, created_at, updated_at FROM locations WHERE id = ?`, id).
		Scan(&l.ID, &l.Name, &l.Summary, &l.MapSeed, &l.CreatedAt, &l.UpdatedAt)
	if err == sql.ErrNoRows {
		return Location{}, ErrNotFound
	}
	if err != nil {
		return Location{}, fmt.Errorf("failed to get location: %w", err)
	}
	return l, nil
}

func (s *Store) ListLocations(ctx context.Context, limit, offset int) ([]Location, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, summary, map_seed, created_at, updated_at FROM locations ORDER BY name LIMIT ? OFFSET ?`,
		normalizeLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	locations := []Location{}
	for rows.Next() {
		var l Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Summary, &l.MapSeed, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (s *Store) UpdateLocation(ctx context.Context, id, name, summary, mapSeed string) (Location, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE locations SET name = ?, summary = ?, map_seed = ?, updated_at = ? WHERE id = ?`,
		name, summary, mapSeed, time.Now().UTC(), id)
	if err != nil {
		return Location{}, fmt.Errorf("failed to update location: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return Location{}, ErrNotFound
	}
	return s.GetLocation(ctx, id)
}

func (s *Store) DeleteLocation(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "locations", id)
}

func (s *Store) CreateTimeline(ctx context.Context, name, summary string) (Timeline, error) {
	tl := Timeline{
		ID:        uuid.NewString(),
		Name:      name,
		Summary:   summary,
		CreatedAt: time.Now().UTC(),
	}
	tl.UpdatedAt = tl.CreatedAt

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO timelines (id, name, summary, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		tl.ID, tl.Name, tl.Summary, tl.CreatedAt, tl.UpdatedAt)
	if err != nil {
		return Timeline{}, fmt.Errorf("failed to create timeline: %w", err)
	}
	logging.WithEntity("timeline", tl.ID).Debug("Timeline created", "name", tl.Name)
	return tl, nil
}

func (s *Store) GetTimeline(ctx context.Context, id string) (Timeline, error) {
	var tl Timeline
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, summary, created_at, updated_at FROM timelines WHERE id = ?`, id).
		Scan(&tl.ID, &tl.Name, &tl.Summary, &tl.CreatedAt, &tl.UpdatedAt)
	if err == sql.ErrNoRows {
		return Timeline{}, ErrNotFound
	}
	if err != nil {
		return Timeline{}, fmt.Errorf("failed to get timeline: %w", err)
	}
	return tl, nil
}

func (s *Store) ListTimelines(ctx context.Context, limit, offset int) ([]Timeline, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, summary, created_at, updated_at FROM timelines ORDER BY name LIMIT ? OFFSET ?`,
		normalizeLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list timelines: %w", err)
	}
	defer rows.Close()

	timelines := []Timeline{}
	for rows.Next() {
		var tl Timeline
		if err := rows.Scan(&tl.ID, &tl.Name, &tl.Summary, &tl.CreatedAt, &tl.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan timeline: %w", err)
		}
		timelines = append(timelines, tl)
	}
	return timelines, rows.Err()
}

func (s *Store) UpdateTimeline(ctx context.Context, id, name, summary string) (Timeline, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE timelines SET name = ?, summary = ?, updated_at = ? WHERE id = ?`,
		name, summary, time.Now().UTC(), id)
	if err != nil {
		return Timeline{}, fmt.Errorf("failed to update timeline: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return Timeline{}, ErrNotFound
	}
	return s.GetTimeline(ctx, id)
}

func (s *Store) DeleteTimeline(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "timelines", id)
}

// CreateEvent records an event on a timeline. If endDay precedes startDay
// the two are swapped rather than rejected.
func (s *Store) CreateEvent(ctx context.Context, timelineID string, locationID *string, name, summary string, startDay, endDay int64) (Event, error) {
	if endDay < startDay {
		startDay, endDay = endDay, startDay
	}
	e := Event{
		ID:         uuid.NewString(),
		TimelineID: timelineID,
		LocationID: locationID,
		Name:       name,
		Summary:    summary,
		StartDay:   startDay,
		EndDay:     endDay,
		CreatedAt:  time.Now().UTC(),
	}
	e.UpdatedAt = e.CreatedAt

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (id, timeline_id, location_id, name, summary, start_day, end_day, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.TimelineID, e.LocationID, e.Name, e.Summary, e.StartDay, e.EndDay, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return Event{}, fmt.Errorf("failed to create event: %w", err)
	}
	logging.WithEntity("event", e.ID).Debug("Event created", "name", e.Name, "timeline_id", e.TimelineID)
	return e, nil
}

func (s *Store) GetEvent(ctx context.Context, id string) (Event, error) {
	var e Event
	err := s.db.QueryRowContext(ctx,
		`SELECT id, timeline_id, location_id, name, summary, start_day, end_day, created_at, updated_at
		 FROM events WHERE id = ?`, id).
		Scan(&e.ID, &e.TimelineID, &e.LocationID, &e.Name, &e.Summary, &e.StartDay, &e.EndDay, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return Event{}, ErrNotFound
	}
	if err != nil {
		return Event{}, fmt.Errorf("failed to get event: %w", err)
	}
	return e, nil
}

// UpdateEvent rewrites an event's fields in place. The timeline binding is
// immutable; move an event by deleting and recreating it. A reversed day
// range is swapped, as in CreateEvent.
func (s *Store) UpdateEvent(ctx context.Context, id string, locationID *string, name, summary string, startDay, endDay int64) (Event, error) {
	if endDay < startDay {
		startDay, endDay = endDay, startDay
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE events SET location_id = ?, name = ?, summary = ?, start_day = ?, end_day = ?, updated_at = ? WHERE id = ?`,
		locationID, name, summary, startDay, endDay, time.Now().UTC(), id)
	if err != nil {
		return Event{}, fmt.Errorf("failed to update event: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return Event{}, ErrNotFound
	}
	return s.GetEvent(ctx, id)
}

func (s *Store) ListEvents(ctx context.Context, timelineID string, limit, offset int) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, timeline_id, location_id, name, summary, start_day, end_day, created_at, updated_at
		 FROM events WHERE timeline_id = ? ORDER BY start_day, end_day LIMIT ? OFFSET ?`,
		timelineID, normalizeLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.TimelineID, &e.LocationID, &e.Name, &e.Summary, &e.StartDay, &e.EndDay, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "events", id)
}

func (s *Store) AddEventParticipant(ctx context.Context, eventID, characterID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO event_participants (event_id, character_id) VALUES (?, ?)`,
		eventID, characterID)
	if err != nil {
		return fmt.Errorf("failed to add event participant: %w", err)
	}
	return nil
}

func (s *Store) RemoveEventParticipant(ctx context.Context, eventID, characterID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM event_participants WHERE event_id = ? AND character_id = ?`,
		eventID, characterID)
	if err != nil {
		return fmt.Errorf("failed to remove event participant: %w", err)
	}
	return nil
}

func (s *Store) AddFactionMember(ctx context.Context, factionID, characterID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO faction_members (faction_id, character_id) VALUES (?, ?)`,
		factionID, characterID)
	if err != nil {
		return fmt.Errorf("failed to add faction member: %w", err)
	}
	return nil
}

func (s *Store) RemoveFactionMember(ctx context.Context, factionID, characterID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM faction_members WHERE faction_id = ? AND character_id = ?`,
		factionID, characterID)
	if err != nil {
		return fmt.Errorf("failed to remove faction member: %w", err)
	}
	return nil
}

func (s *Store) deleteByID(ctx context.Context, table, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 500 {
		return 100
	}
	return limit
}
