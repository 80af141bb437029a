package services

import (
	"context"
	"fmt"
	"time"

	"github.com/alp-turan/sugarbyte/internal/domain"
	apperrors "github.com/alp-turan/sugarbyte/internal/errors"
	"github.com/alp-turan/sugarbyte/internal/logger"
	"github.com/alp-turan/sugarbyte/internal/repository"
)

// LogService orchestrates saving readings: store first, then best-effort
// alarm evaluation on the stored result.
type LogService struct {
	entries *repository.LogEntryRepository
	alarms  domain.AlarmService
}

// NewLogService creates a new log service
func NewLogService(entries *repository.LogEntryRepository, alarms domain.AlarmService) *LogService {
	return &LogService{entries: entries, alarms: alarms}
}

// RecordReading upserts the reading and evaluates the alarm on the stored
// row. Store failures propagate; alarm failures never fail the save.
func (s *LogService) RecordReading(ctx context.Context, reading *domain.Reading, account *domain.Account) (*domain.Reading, error) {
	if err := validateReading(reading); err != nil {
		return nil, err
	}

	saved, err := s.entries.Upsert(ctx, reading)
	if err != nil {
		return nil, fmt.Errorf("failed to record reading: %w", err)
	}

	if err := s.alarms.Evaluate(ctx, saved, account); err != nil {
		logger.Error("Alarm evaluation failed", "userId", saved.UserID, "date", saved.Date, "slot", saved.TimeOfDay, "error", err)
	}

	return saved, nil
}

// EntriesForDate returns the day's readings in slot-label order.
func (s *LogService) EntriesForDate(ctx context.Context, userID uint, date string) ([]domain.Reading, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	return s.entries.QueryByDate(ctx, userID, date)
}

// EntriesForRange returns readings between two dates inclusive, for the
// trend graph.
func (s *LogService) EntriesForRange(ctx context.Context, userID uint, from, to string) ([]domain.Reading, error) {
	if err := validateDate(from); err != nil {
		return nil, err
	}
	if err := validateDate(to); err != nil {
		return nil, err
	}
	return s.entries.QueryRange(ctx, userID, from, to)
}

func validateReading(reading *domain.Reading) error {
	if reading.UserID == 0 {
		return apperrors.NewValidationError("reading has no account")
	}
	if !reading.TimeOfDay.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown time slot %q", reading.TimeOfDay))
	}
	return validateDate(reading.Date)
}

func validateDate(date string) error {
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return apperrors.NewValidationError(fmt.Sprintf("date %q is not in yyyy-MM-dd form", date))
	}
	return nil
}
