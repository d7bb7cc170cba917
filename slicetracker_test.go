package tableview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requireOpen(t *testing.T, tracker *SliceTracker, first, last int) {
	t.Helper()
	open, ok := tracker.CurrentOpenSlice()
	require.True(t, ok, "tracker is idle")
	require.Equal(t, Slice{First: first, Last: last}, open)
}

func requireIdle(t *testing.T, tracker *SliceTracker) {
	t.Helper()
	_, ok := tracker.CurrentOpenSlice()
	require.False(t, ok, "tracker is open")
}

func TestSliceTracker_Coalescing(t *testing.T) {
	var tracker SliceTracker
	requireIdle(t, &tracker)

	require.NoError(t, tracker.AddSlice(0, 4))
	requireOpen(t, &tracker, 0, 4)
	require.NoError(t, tracker.AddSlice(5, 9))
	requireOpen(t, &tracker, 0, 9)

	t.Run("drop all", func(t *testing.T) {
		tracker := tracker
		require.NoError(t, tracker.DropSlice(0, 9))
		requireIdle(t, &tracker)
	})
	t.Run("drop start", func(t *testing.T) {
		tracker := tracker
		require.NoError(t, tracker.DropSlice(0, 4))
		requireOpen(t, &tracker, 5, 9)
	})
	t.Run("drop end", func(t *testing.T) {
		tracker := tracker
		require.NoError(t, tracker.DropSlice(7, 20))
		requireOpen(t, &tracker, 0, 6)
	})
	t.Run("drop superset", func(t *testing.T) {
		tracker := tracker
		require.NoError(t, tracker.DropSlice(0, 100))
		requireIdle(t, &tracker)
	})
}

func TestSliceTracker_AddBefore(t *testing.T) {
	var tracker SliceTracker
	require.NoError(t, tracker.AddSlice(10, 19))
	require.NoError(t, tracker.AddSlice(5, 9))
	requireOpen(t, &tracker, 5, 19)
	require.NoError(t, tracker.AddSlice(7, 25))
	requireOpen(t, &tracker, 5, 25)
}

func TestSliceTracker_PendingUntilBridged(t *testing.T) {
	var tracker SliceTracker
	require.NoError(t, tracker.AddSlice(0, 4))
	require.NoError(t, tracker.AddSlice(10, 14))
	requireOpen(t, &tracker, 0, 4)
	require.Equal(t, []Slice{{First: 10, Last: 14}}, tracker.PendingRequests())

	require.NoError(t, tracker.AddSlice(5, 9))
	requireOpen(t, &tracker, 0, 14)
	require.Empty(t, tracker.PendingRequests())
}

func TestSliceTracker_PushSliceRequest(t *testing.T) {
	var tracker SliceTracker
	require.NoError(t, tracker.PushSliceRequest(20, 29))
	require.NoError(t, tracker.PushSliceRequest(20, 29))
	require.Equal(t, []Slice{{First: 20, Last: 29}}, tracker.PendingRequests())
	requireIdle(t, &tracker)

	require.NoError(t, tracker.AddSlice(10, 19))
	requireOpen(t, &tracker, 10, 29)
	require.Empty(t, tracker.PendingRequests())

	tracker.Reset()
	requireIdle(t, &tracker)
}

func TestSliceTracker_InteriorDropTruncates(t *testing.T) {
	var tracker SliceTracker
	require.NoError(t, tracker.AddSlice(0, 9))
	require.NoError(t, tracker.DropSlice(3, 5))
	// Interior drops are not split, the tail after the dropped range is lost
	requireOpen(t, &tracker, 0, 2)
}

func TestSliceTracker_Errors(t *testing.T) {
	var tracker SliceTracker
	require.ErrorIs(t, tracker.DropSlice(0, 1), ErrNoOverlap)
	require.ErrorIs(t, tracker.AddSlice(5, 4), ErrInvalidRange)
	require.ErrorIs(t, tracker.AddSlice(-1, 4), ErrInvalidRange)
	require.ErrorIs(t, tracker.PushSliceRequest(3, 2), ErrInvalidRange)

	require.NoError(t, tracker.AddSlice(0, 4))
	require.ErrorIs(t, tracker.DropSlice(6, 8), ErrNoOverlap)
	requireOpen(t, &tracker, 0, 4)
}

func TestSlice(t *testing.T) {
	s := Slice{First: 2, Last: 5}
	require.Equal(t, 4, s.Len())
	require.True(t, s.Contains(2))
	require.False(t, s.Contains(6))
	require.True(t, s.Touches(Slice{First: 6, Last: 8}))
	require.False(t, s.Overlaps(Slice{First: 6, Last: 8}))
	inter, ok := s.Intersect(Slice{First: 4, Last: 9})
	require.True(t, ok)
	require.Equal(t, Slice{First: 4, Last: 5}, inter)
	require.Equal(t, "[2,5]", s.String())
}
