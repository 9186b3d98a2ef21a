package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftRoute(t *testing.T, stops ...string) *Route {
	t.Helper()
	ids := make([]ID, 0, len(stops))
	for _, s := range stops {
		ids = append(ids, mustID(t, s))
	}
	r, err := NewRoute(mustID(t, "route1"), "Old Town Walk", StatusDraft, ids)
	require.NoError(t, err)
	return r
}

func TestNewRouteEmptyName(t *testing.T) {
	_, err := NewRoute(mustID(t, "route1"), "  ", StatusDraft, nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseStatus(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusPublished, StatusArchived} {
		got, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseStatus("retired")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddStopIdempotent(t *testing.T) {
	r := draftRoute(t)

	require.NoError(t, r.AddStop(mustID(t, "d1")))
	require.NoError(t, r.AddStop(mustID(t, "d2")))
	require.NoError(t, r.AddStop(mustID(t, "d1")))

	assert.Equal(t, []ID{mustID(t, "d1"), mustID(t, "d2")}, r.AttractionIDs)
}

func TestRemoveStop(t *testing.T) {
	r := draftRoute(t, "d1", "d2")

	require.NoError(t, r.RemoveStop(mustID(t, "d1")))
	assert.Equal(t, []ID{mustID(t, "d2")}, r.AttractionIDs)

	// Removing an absent stop is a no-op.
	require.NoError(t, r.RemoveStop(mustID(t, "d9")))
	assert.Equal(t, []ID{mustID(t, "d2")}, r.AttractionIDs)
}

func TestStopEditsOutsideDraft(t *testing.T) {
	r := draftRoute(t, "d1")
	require.NoError(t, r.Publish())

	assert.ErrorIs(t, r.AddStop(mustID(t, "d2")), ErrOperation)
	assert.ErrorIs(t, r.RemoveStop(mustID(t, "d1")), ErrOperation)

	r.Archive()
	assert.ErrorIs(t, r.AddStop(mustID(t, "d2")), ErrOperation)
	assert.ErrorIs(t, r.RemoveStop(mustID(t, "d1")), ErrOperation)
}

func TestPublishEmptyDraft(t *testing.T) {
	r := draftRoute(t)
	assert.ErrorIs(t, r.Publish(), ErrOperation)
	assert.Equal(t, StatusDraft, r.Status)
}

func TestPublishDraftWithStops(t *testing.T) {
	r := draftRoute(t, "d1")
	require.NoError(t, r.Publish())
	assert.Equal(t, StatusPublished, r.Status)

	// Publishing again is a no-op.
	require.NoError(t, r.Publish())
	assert.Equal(t, StatusPublished, r.Status)
}

func TestPublishArchived(t *testing.T) {
	r := draftRoute(t, "d1")
	r.Archive()
	assert.ErrorIs(t, r.Publish(), ErrOperation)
}

func TestArchiveFromAnyStateIdempotent(t *testing.T) {
	r := draftRoute(t, "d1")
	r.Archive()
	assert.Equal(t, StatusArchived, r.Status)
	r.Archive()
	assert.Equal(t, StatusArchived, r.Status)

	published := draftRoute(t, "d1")
	require.NoError(t, published.Publish())
	published.Archive()
	assert.Equal(t, StatusArchived, published.Status)
}

func TestUnpublishToDraft(t *testing.T) {
	r := draftRoute(t, "d1")
	require.NoError(t, r.Publish())
	require.NoError(t, r.UnpublishToDraft())
	assert.Equal(t, StatusDraft, r.Status)

	// Only published routes can go back to draft.
	assert.ErrorIs(t, r.UnpublishToDraft(), ErrOperation)

	r.Archive()
	assert.ErrorIs(t, r.UnpublishToDraft(), ErrOperation)
}
