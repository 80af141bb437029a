package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alp-turan/sugarbyte/internal/alarm/state"
	"github.com/alp-turan/sugarbyte/internal/domain"
	"github.com/alp-turan/sugarbyte/internal/notifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureNotifier struct {
	alerts []notifier.Alert
	err    error
}

func (c *captureNotifier) Notify(ctx context.Context, alert notifier.Alert) error {
	c.alerts = append(c.alerts, alert)
	return c.err
}

func alarmFixture() (*AlarmService, *captureNotifier) {
	sink := &captureNotifier{}
	return NewAlarmService(state.NewMemorySet(), sink), sink
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		slot  domain.TimeSlot
		want  Classification
	}{
		{"low before breakfast", 3.5, domain.BreakfastPre, Low},
		{"low boundary is in range", 3.9, domain.BreakfastPre, InRange},
		{"normal pre-meal", 5.0, domain.DinnerPre, InRange},
		{"fasting threshold exact", 7.0, domain.LunchPre, InRange},
		{"fasting high", 7.1, domain.LunchPre, High},
		{"post-meal tolerates above fasting threshold", 9.0, domain.LunchPost, InRange},
		{"post-meal high", 11.5, domain.DinnerPost, High},
		{"bedtime uses post-meal threshold", 10.5, domain.Bedtime, InRange},
		{"bedtime high", 11.1, domain.Bedtime, High},
		{"bedtime low", 3.0, domain.Bedtime, Low},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.value, tt.slot))
		})
	}
}

func TestEvaluateNotifiesOncePerSlot(t *testing.T) {
	svc, sink := alarmFixture()
	ctx := context.Background()

	account := &domain.Account{Name: "John Doe", DoctorName: "Dr. Smith", DoctorEmail: "smith@clinic.example"}
	reading := &domain.Reading{UserID: 1, Date: "2025-03-14", TimeOfDay: domain.BreakfastPre, BloodSugar: 3.5}

	require.NoError(t, svc.Evaluate(ctx, reading, account))
	require.Len(t, sink.alerts, 1)
	assert.Equal(t, "John Doe", sink.alerts[0].AccountName)
	assert.Equal(t, "smith@clinic.example", sink.alerts[0].DoctorEmail)
	assert.Equal(t, "low", sink.alerts[0].Level)
	assert.Equal(t, 3.5, sink.alerts[0].Value)

	// Same account and slot, different out-of-range value: still suppressed.
	reading.BloodSugar = 2.9
	require.NoError(t, svc.Evaluate(ctx, reading, account))
	assert.Len(t, sink.alerts, 1)
}

func TestEvaluateInRangeNoNotification(t *testing.T) {
	svc, sink := alarmFixture()

	account := &domain.Account{Name: "John Doe"}
	reading := &domain.Reading{UserID: 1, Date: "2025-03-14", TimeOfDay: domain.DinnerPost, BloodSugar: 5.0}

	require.NoError(t, svc.Evaluate(context.Background(), reading, account))
	assert.Empty(t, sink.alerts)
}

func TestEvaluateMissingNameSkipsSilently(t *testing.T) {
	svc, sink := alarmFixture()
	ctx := context.Background()

	reading := &domain.Reading{UserID: 1, Date: "2025-03-14", TimeOfDay: domain.BreakfastPre, BloodSugar: 3.5}

	require.NoError(t, svc.Evaluate(ctx, reading, &domain.Account{}))
	require.NoError(t, svc.Evaluate(ctx, reading, nil))
	assert.Empty(t, sink.alerts)

	// No key was recorded either: a named account at the same slot still alarms.
	require.NoError(t, svc.Evaluate(ctx, reading, &domain.Account{Name: "John Doe"}))
	assert.Len(t, sink.alerts, 1)
}

func TestEvaluateNewDateRearms(t *testing.T) {
	svc, sink := alarmFixture()
	ctx := context.Background()

	account := &domain.Account{Name: "John Doe"}
	require.NoError(t, svc.Evaluate(ctx, &domain.Reading{Date: "2025-03-14", TimeOfDay: domain.BreakfastPre, BloodSugar: 3.5}, account))
	require.NoError(t, svc.Evaluate(ctx, &domain.Reading{Date: "2025-03-15", TimeOfDay: domain.BreakfastPre, BloodSugar: 3.5}, account))
	assert.Len(t, sink.alerts, 2)
}

func TestEvaluateSinkFailureStillSuppresses(t *testing.T) {
	sink := &captureNotifier{err: errors.New("relay down")}
	svc := NewAlarmService(state.NewMemorySet(), sink)
	ctx := context.Background()

	account := &domain.Account{Name: "John Doe"}
	reading := &domain.Reading{Date: "2025-03-14", TimeOfDay: domain.LunchPre, BloodSugar: 8.0}

	require.NoError(t, svc.Evaluate(ctx, reading, account))
	require.NoError(t, svc.Evaluate(ctx, reading, account))
	assert.Len(t, sink.alerts, 1)
}

func TestEvaluateConcurrentSameKeyNotifiesOnce(t *testing.T) {
	svc, sink := alarmFixture()
	ctx := context.Background()

	account := &domain.Account{Name: "John Doe"}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reading := &domain.Reading{Date: "2025-03-14", TimeOfDay: domain.BreakfastPre, BloodSugar: 3.5}
			_ = svc.Evaluate(ctx, reading, account)
		}()
	}
	wg.Wait()

	assert.Len(t, sink.alerts, 1)
}

func TestResetRearmsSlot(t *testing.T) {
	svc, sink := alarmFixture()
	ctx := context.Background()

	account := &domain.Account{Name: "John Doe"}
	reading := &domain.Reading{Date: "2025-03-14", TimeOfDay: domain.Bedtime, BloodSugar: 12.0}

	require.NoError(t, svc.Evaluate(ctx, reading, account))
	require.NoError(t, svc.Reset(ctx, "John Doe", "2025-03-14", domain.Bedtime))
	require.NoError(t, svc.Evaluate(ctx, reading, account))
	assert.Len(t, sink.alerts, 2)
}
