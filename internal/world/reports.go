package world

import (
	"context"
	"fmt"
)

// TemporalOverlaps finds pairs of events on the same timeline that share a
// participant while their inclusive day ranges intersect. A character
// cannot be in two places at once; overlapping entries usually mean a
// dating mistake somewhere in the chronicle.
func (s *Store) TemporalOverlaps(ctx context.Context) ([]TemporalOverlap, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.timeline_id, a.id, b.id, pa.character_id,
		       MAX(a.start_day, b.start_day), MIN(a.end_day, b.end_day)
		FROM events a
		JOIN events b ON a.timeline_id = b.timeline_id AND a.id < b.id
		JOIN event_participants pa ON pa.event_id = a.id
		JOIN event_participants pb ON pb.event_id = b.id AND pb.character_id = pa.character_id
		WHERE a.start_day <= b.end_day AND b.start_day <= a.end_day
		ORDER BY a.timeline_id, a.start_day, a.id, b.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query temporal overlaps: %w", err)
	}
	defer rows.Close()

	overlaps := []TemporalOverlap{}
	for rows.Next() {
		var o TemporalOverlap
		if err := rows.Scan(&o.TimelineID, &o.FirstEventID, &o.SecondEventID, &o.CharacterID, &o.OverlapStart, &o.OverlapEnd); err != nil {
			return nil, fmt.Errorf("failed to scan overlap: %w", err)
		}
		overlaps = append(overlaps, o)
	}
	return overlaps, rows.Err()
}

// Orphans finds graph nodes nothing references: characters in no faction
// and no event, and locations no event takes place at.
func (s *Store) Orphans(ctx context.Context) (OrphanReport, error) {
	report := OrphanReport{Characters: []Character{}, Locations: []Location{}}

	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.summary, c.created_at, c.updated_at
		FROM characters c
		WHERE NOT EXISTS (SELECT 1 FROM faction_members fm WHERE fm.character_id = c.id)
		  AND NOT EXISTS (SELECT 1 FROM event_participants ep WHERE ep.character_id = c.id)
		ORDER BY c.name`)
	if err != nil {
		return report, fmt.Errorf("failed to query orphan characters: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c Character
		if err := rows.Scan(&c.ID, &c.Name, &c.Summary, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return report, fmt.Errorf("failed to scan orphan character: %w", err)
		}
		report.Characters = append(report.Characters, c)
	}
	if err := rows.Err(); err != nil {
		return report, err
	}

	locRows, err := s.db.QueryContext(ctx, `
		SELECT l.id, l.name, l.summary, l.map_seed, l.created_at, l.updated_at
		FROM locations l
		WHERE NOT EXISTS (SELECT 1 FROM events e WHERE e.location_id = l.id)
		ORDER BY l.name`)
	if err != nil {
		return report, fmt.Errorf("failed to query orphan locations: %w", err)
	}
	defer locRows.Close()

	for locRows.Next() {
		var l Location
		if err := locRows.Scan(&l.ID, &l.Name, &l.Summary, &l.MapSeed, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return report, fmt.Errorf("failed to scan orphan location: %w", err)
		}
		report.Locations = append(report.Locations, l)
	}
	return report, locRows.Err()
}
