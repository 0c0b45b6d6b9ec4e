package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Danokhov/pro-mnemo-app/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDueCounter struct {
	counts map[string]int
	err    error
}

func (f *fakeDueCounter) DueCount(_ context.Context, userID string, _ time.Time) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[userID], nil
}

type fakeUserSource struct {
	users []models.User
}

func (f *fakeUserSource) GetNotifiable(context.Context) ([]models.User, error) {
	return f.users, nil
}

type fakeNotifier struct {
	sent map[string]int
}

func (f *fakeNotifier) SendReminder(userID string, count int) error {
	if f.sent == nil {
		f.sent = make(map[string]int)
	}
	f.sent[userID] = count
	return nil
}

func TestRunManualCheckSendsWhenDue(t *testing.T) {
	notifier := &fakeNotifier{}
	s := New(&fakeDueCounter{counts: map[string]int{"u1": 3}}, &fakeUserSource{}, notifier)

	require.NoError(t, s.RunManualCheck(context.Background(), "u1"))
	assert.Equal(t, 3, notifier.sent["u1"])
}

func TestRunManualCheckSkipsWhenNothingDue(t *testing.T) {
	notifier := &fakeNotifier{}
	s := New(&fakeDueCounter{counts: map[string]int{}}, &fakeUserSource{}, notifier)

	require.NoError(t, s.RunManualCheck(context.Background(), "u1"))
	assert.Empty(t, notifier.sent)
}

func TestRunManualCheckPropagatesErrors(t *testing.T) {
	wantErr := errors.New("store down")
	s := New(&fakeDueCounter{err: wantErr}, &fakeUserSource{}, &fakeNotifier{})

	err := s.RunManualCheck(context.Background(), "u1")
	assert.ErrorIs(t, err, wantErr)
}

func TestEnvHour(t *testing.T) {
	t.Setenv("NOTIFICATION_START_HOUR", "10")
	assert.Equal(t, 10, envHour("NOTIFICATION_START_HOUR", 8))

	t.Setenv("NOTIFICATION_START_HOUR", "25")
	assert.Equal(t, 8, envHour("NOTIFICATION_START_HOUR", 8), "out-of-range values fall back")

	t.Setenv("NOTIFICATION_START_HOUR", "")
	assert.Equal(t, 8, envHour("NOTIFICATION_START_HOUR", 8))
}
