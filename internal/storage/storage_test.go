package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wekker/internal/alarm"
)

func testStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "wekker.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testAlarm(name string, at time.Time) *alarm.Alarm {
	return &alarm.Alarm{
		Name:           name,
		At:             at,
		Status:         alarm.StatusDormant,
		Active:         true,
		SnoozeDuration: 9 * time.Minute,
	}
}

func TestAddAndGet(t *testing.T) {
	s := testStorage(t)
	at := time.Date(2024, time.June, 2, 7, 0, 0, 0, time.UTC)

	a := testAlarm("wake", at)
	require.NoError(t, s.Add(a))
	assert.NotZero(t, a.ID)

	got, err := s.Get("wake")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, "wake", got.Name)
	assert.True(t, got.At.Equal(at))
	assert.Equal(t, alarm.StatusDormant, got.Status)
	assert.True(t, got.Active)
	assert.Equal(t, 9*time.Minute, got.SnoozeDuration)
}

func TestGetMissing(t *testing.T) {
	s := testStorage(t)

	_, err := s.Get("nope")
	assert.Error(t, err)
}

func TestUpdate(t *testing.T) {
	s := testStorage(t)
	at := time.Date(2024, time.June, 2, 7, 0, 0, 0, time.UTC)

	a := testAlarm("wake", at)
	require.NoError(t, s.Add(a))

	a.Status = alarm.StatusSnoozed
	a.At = at.Add(9 * time.Minute)
	a.Active = false
	require.NoError(t, s.Update(a))

	got, err := s.Get("wake")
	require.NoError(t, err)
	assert.Equal(t, alarm.StatusSnoozed, got.Status)
	assert.True(t, got.At.Equal(at.Add(9*time.Minute)))
	assert.False(t, got.Active)
}

func TestListOrdering(t *testing.T) {
	s := testStorage(t)
	base := time.Date(2024, time.June, 2, 7, 0, 0, 0, time.UTC)

	require.NoError(t, s.Add(testAlarm("later", base.Add(time.Hour))))
	require.NoError(t, s.Add(testAlarm("sooner", base)))

	alarms, err := s.List()
	require.NoError(t, err)
	require.Len(t, alarms, 2)
	assert.Equal(t, "sooner", alarms[0].Name)
	assert.Equal(t, "later", alarms[1].Name)
}

func TestDue(t *testing.T) {
	s := testStorage(t)
	now := time.Date(2024, time.June, 2, 8, 0, 0, 0, time.UTC)

	overdue := testAlarm("overdue", now.Add(-time.Minute))
	future := testAlarm("future", now.Add(time.Hour))
	inactive := testAlarm("inactive", now.Add(-time.Minute))
	inactive.Active = false

	require.NoError(t, s.Add(overdue))
	require.NoError(t, s.Add(future))
	require.NoError(t, s.Add(inactive))

	due, err := s.Due(now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "overdue", due[0].Name)
}

func TestDelete(t *testing.T) {
	s := testStorage(t)

	require.NoError(t, s.Add(testAlarm("wake", time.Now().Add(time.Hour))))
	require.NoError(t, s.Delete("wake"))

	assert.Error(t, s.Delete("wake"))
}
