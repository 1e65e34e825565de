package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type recordingSaver struct {
	paths []string
	err   error
}

func (s *recordingSaver) Save(path string) error {
	s.paths = append(s.paths, path)
	return s.err
}

func TestNewAutosaver(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 2, 30, 0, time.UTC)

	t.Run("EmptySpecDisables", func(t *testing.T) {
		a, err := NewAutosaver("", &recordingSaver{}, "w.xml", now, nil)
		require.NoError(t, err)
		assert.Nil(t, a)

		saved, err := a.Checkpoint(now.Add(24 * time.Hour))
		require.NoError(t, err)
		assert.False(t, saved)
		assert.True(t, a.Next().IsZero())
	})

	t.Run("InvalidExpression", func(t *testing.T) {
		_, err := NewAutosaver("every five minutes", &recordingSaver{}, "w.xml", now, nil)
		require.Error(t, err)
	})

	t.Run("ComputesFirstSlot", func(t *testing.T) {
		a, err := NewAutosaver("*/5 * * * *", &recordingSaver{}, "w.xml", now, nil)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 10, 19, 10, 5, 0, 0, time.UTC), a.Next())
	})
}

func TestCheckpoint(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 2, 30, 0, time.UTC)
	saver := &recordingSaver{}

	a, err := NewAutosaver("*/5 * * * *", saver, "w.xml", now, zaptest.NewLogger(t))
	require.NoError(t, err)

	saved, err := a.Checkpoint(now.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Empty(t, saver.paths)

	saved, err = a.Checkpoint(time.Date(2026, 10, 19, 10, 21, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, []string{"w.xml"}, saver.paths)
	assert.Equal(t, time.Date(2026, 10, 19, 10, 25, 0, 0, time.UTC), a.Next())

	saved, err = a.Checkpoint(time.Date(2026, 10, 19, 10, 22, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Len(t, saver.paths, 1)
}

func TestCheckpointSaveFailure(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	saver := &recordingSaver{err: errors.New("read-only filesystem")}

	a, err := NewAutosaver("0 * * * *", saver, "w.xml", now, nil)
	require.NoError(t, err)

	saved, err := a.Checkpoint(now.Add(2 * time.Hour))
	require.ErrorIs(t, err, saver.err)
	assert.False(t, saved)
	assert.Equal(t, now.Add(3*time.Hour), a.Next())
}
