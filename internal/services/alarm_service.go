package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/alp-turan/sugarbyte/internal/alarm/state"
	"github.com/alp-turan/sugarbyte/internal/domain"
	"github.com/alp-turan/sugarbyte/internal/logger"
	"github.com/alp-turan/sugarbyte/internal/notifier"
	"github.com/alp-turan/sugarbyte/internal/units"
)

// Classification is the result of checking a value against the safe range.
type Classification int

const (
	InRange Classification = iota
	Low
	High
)

// Classify checks a mmol/L value against the thresholds for the slot.
// Pre-meal slots use the fasting high threshold; Post and Bedtime slots use
// the post-meal one. Values strictly below the low threshold are low.
func Classify(value float64, slot domain.TimeSlot) Classification {
	if value < units.LowThreshold {
		return Low
	}
	high := units.PostMealHighThreshold
	if slot.PreMeal() {
		high = units.FastingHighThreshold
	}
	if value > high {
		return High
	}
	return InRange
}

// AlarmService flags out-of-range readings and notifies the doctor on record
// at most once per account, date and slot.
type AlarmService struct {
	// mu makes the contains-notify-add sequence one unit so concurrent
	// evaluations of the same key cannot both notify.
	mu       sync.Mutex
	notified state.NotifiedSet
	sink     notifier.Notifier
}

// NewAlarmService creates an alarm service over the given notified-key set
// and delivery sink.
func NewAlarmService(notified state.NotifiedSet, sink notifier.Notifier) *AlarmService {
	return &AlarmService{notified: notified, sink: sink}
}

// Evaluate classifies the reading and, when it is out of range and this
// account/date/slot has not alarmed yet, emits one notification. An account
// without a name cannot be notified; evaluation skips it silently.
func (s *AlarmService) Evaluate(ctx context.Context, reading *domain.Reading, account *domain.Account) error {
	if account == nil || account.Name == "" {
		return nil
	}

	classification := Classify(reading.BloodSugar, reading.TimeOfDay)
	if classification == InRange {
		return nil
	}

	key := notifiedKey(account.Name, reading.Date, reading.TimeOfDay)

	s.mu.Lock()
	defer s.mu.Unlock()

	seen, err := s.notified.Contains(ctx, key)
	if err != nil {
		return err
	}
	if seen {
		return nil
	}

	level := "low"
	if classification == High {
		level = "high"
	}

	alert := notifier.Alert{
		AccountName: account.Name,
		Date:        reading.Date,
		TimeOfDay:   reading.TimeOfDay,
		Value:       reading.BloodSugar,
		Level:       level,
		DoctorName:  account.DoctorName,
		DoctorEmail: account.DoctorEmail,
	}
	if err := s.sink.Notify(ctx, alert); err != nil {
		// No retry and no delivery confirmation: the slot still counts as
		// alarmed so a flaky sink cannot spam the doctor.
		logger.Error("Alert delivery failed", "key", key, "error", err)
	}

	return s.notified.Add(ctx, key)
}

// Reset re-arms the alarm for one account/date/slot.
func (s *AlarmService) Reset(ctx context.Context, accountName, date string, slot domain.TimeSlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notified.Remove(ctx, notifiedKey(accountName, date, slot))
}

// ResetAll re-arms every alarm.
func (s *AlarmService) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notified.Clear(ctx)
}

func notifiedKey(accountName, date string, slot domain.TimeSlot) string {
	return fmt.Sprintf("%s_%s_%s", accountName, date, slot)
}
