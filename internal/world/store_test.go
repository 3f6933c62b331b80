package world

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Loreweave/api/internal/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	database, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.Migrate(database))
	return NewStore(database)
}

func TestCharacterCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateCharacter(ctx, "Maera Voss", "Exiled cartographer")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	fetched, err := store.GetCharacter(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maera Voss", fetched.Name)
	assert.Equal(t, "Exiled cartographer", fetched.Summary)

	updated, err := store.UpdateCharacter(ctx, created.ID, "Maera Voss", "Royal cartographer")
	require.NoError(t, err)
	assert.Equal(t, "Royal cartographer", updated.Summary)

	list, err := store.ListCharacters(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, store.DeleteCharacter(ctx, created.ID))

	_, err = store.GetCharacter(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreNotFoundCases(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.GetFaction(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.UpdateTimeline(ctx, "missing", "x", "y")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.DeleteLocation(ctx, "missing"), ErrNotFound)
}

func TestEventLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	timeline, err := store.CreateTimeline(ctx, "Third Age", "")
	require.NoError(t, err)
	location, err := store.CreateLocation(ctx, "Emberfall Keep", "", "emberfall")
	require.NoError(t, err)

	event, err := store.CreateEvent(ctx, timeline.ID, &location.ID, "Siege of Emberfall", "", 120, 134)
	require.NoError(t, err)
	require.NotNil(t, event.LocationID)
	assert.Equal(t, location.ID, *event.LocationID)

	t.Run("reversed day range is swapped", func(t *testing.T) {
		e, err := store.CreateEvent(ctx, timeline.ID, nil, "Retreat", "", 140, 136)
		require.NoError(t, err)
		assert.Equal(t, int64(136), e.StartDay)
		assert.Equal(t, int64(140), e.EndDay)
	})

	t.Run("update rewrites fields and swaps reversed days", func(t *testing.T) {
		updated, err := store.UpdateEvent(ctx, event.ID, nil, "Siege of Emberfall Keep", "Revised account", 134, 118)
		require.NoError(t, err)
		assert.Equal(t, "Siege of Emberfall Keep", updated.Name)
		assert.Equal(t, "Revised account", updated.Summary)
		assert.Nil(t, updated.LocationID)
		assert.Equal(t, int64(118), updated.StartDay)
		assert.Equal(t, int64(134), updated.EndDay)
		assert.Equal(t, timeline.ID, updated.TimelineID, "timeline binding is immutable")

		_, err = store.UpdateEvent(ctx, "missing", nil, "x", "", 1, 2)
		assert.ErrorIs(t, err, ErrNotFound)

		// restore the original ordering checked below
		_, err = store.UpdateEvent(ctx, event.ID, &location.ID, "Siege of Emberfall", "", 120, 134)
		require.NoError(t, err)
	})

	events, err := store.ListEvents(ctx, timeline.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Siege of Emberfall", events[0].Name, "events ordered by start day")

	require.NoError(t, store.DeleteEvent(ctx, event.ID))
}

func TestTemporalOverlapsReport(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	timeline, err := store.CreateTimeline(ctx, "Third Age", "")
	require.NoError(t, err)
	hero, err := store.CreateCharacter(ctx, "Maera Voss", "")
	require.NoError(t, err)
	bystander, err := store.CreateCharacter(ctx, "Tobin Hale", "")
	require.NoError(t, err)

	siege, err := store.CreateEvent(ctx, timeline.ID, nil, "Siege", "", 100, 120)
	require.NoError(t, err)
	council, err := store.CreateEvent(ctx, timeline.ID, nil, "Council", "", 115, 130)
	require.NoError(t, err)
	festival, err := store.CreateEvent(ctx, timeline.ID, nil, "Festival", "", 200, 210)
	require.NoError(t, err)

	// Maera attends both overlapping events; Tobin attends disjoint ones.
	require.NoError(t, store.AddEventParticipant(ctx, siege.ID, hero.ID))
	require.NoError(t, store.AddEventParticipant(ctx, council.ID, hero.ID))
	require.NoError(t, store.AddEventParticipant(ctx, siege.ID, bystander.ID))
	require.NoError(t, store.AddEventParticipant(ctx, festival.ID, bystander.ID))

	overlaps, err := store.TemporalOverlaps(ctx)
	require.NoError(t, err)
	require.Len(t, overlaps, 1)

	o := overlaps[0]
	assert.Equal(t, timeline.ID, o.TimelineID)
	assert.Equal(t, hero.ID, o.CharacterID)
	assert.Equal(t, int64(115), o.OverlapStart)
	assert.Equal(t, int64(120), o.OverlapEnd)
}

func TestOrphansReport(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	timeline, err := store.CreateTimeline(ctx, "Third Age", "")
	require.NoError(t, err)

	wired, err := store.CreateCharacter(ctx, "Maera Voss", "")
	require.NoError(t, err)
	orphanChar, err := store.CreateCharacter(ctx, "Forgotten Soul", "")
	require.NoError(t, err)

	usedLoc, err := store.CreateLocation(ctx, "Emberfall Keep", "", "")
	require.NoError(t, err)
	orphanLoc, err := store.CreateLocation(ctx, "Silent Isle", "", "")
	require.NoError(t, err)

	faction, err := store.CreateFaction(ctx, "Cartographers Guild", "")
	require.NoError(t, err)
	require.NoError(t, store.AddFactionMember(ctx, faction.ID, wired.ID))

	_, err = store.CreateEvent(ctx, timeline.ID, &usedLoc.ID, "Siege", "", 100, 120)
	require.NoError(t, err)

	report, err := store.Orphans(ctx)
	require.NoError(t, err)

	require.Len(t, report.Characters, 1)
	assert.Equal(t, orphanChar.ID, report.Characters[0].ID)

	require.Len(t, report.Locations, 1)
	assert.Equal(t, orphanLoc.ID, report.Locations[0].ID)
}
