package collision

import (
	"testing"

	"github.com/samholt/fastenc/errs"
	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
}

func TestTracker_Track_Success(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("price", 0x1234567890abcdef)
	require.NoError(t, err)
	require.Equal(t, 1, tracker.Count())

	err = tracker.Track("quantity", 0xfedcba0987654321)
	require.NoError(t, err)
	require.Equal(t, 2, tracker.Count())
}

func TestTracker_Track_SameKeySameHash(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("price", 0x1234567890abcdef))
	require.NoError(t, tracker.Track("price", 0x1234567890abcdef))
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_Track_Collision(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("price", 0x1234567890abcdef))

	err := tracker.Track("quantity", 0x1234567890abcdef)
	require.ErrorIs(t, err, errs.ErrDictionaryKeyCollision)
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("price", 0x1))
	require.NoError(t, tracker.Track("quantity", 0x2))
	require.Equal(t, 2, tracker.Count())

	tracker.Reset()
	require.Equal(t, 0, tracker.Count())

	require.NoError(t, tracker.Track("symbol", 0x3))
	require.Equal(t, 1, tracker.Count())
}
