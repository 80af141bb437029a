package repository

import (
	"context"
	"errors"

	"github.com/alp-turan/sugarbyte/internal/database"
	"github.com/alp-turan/sugarbyte/internal/domain"
	apperrors "github.com/alp-turan/sugarbyte/internal/errors"
	"gorm.io/gorm"
)

// LogEntryRepository handles reading (log entry) data operations
type LogEntryRepository struct {
	db *database.DB
}

// NewLogEntryRepository creates a new log entry repository
func NewLogEntryRepository(db *database.DB) *LogEntryRepository {
	return &LogEntryRepository{db: db}
}

// Upsert stores the reading under its natural key (userId, date, timeOfDay).
// An existing row is updated in place and keeps its identifier; otherwise a
// new row is inserted and the assigned identifier is returned on the reading.
// Lookup and write share one transaction, and the table carries a unique
// index on the natural key, so two rows for the same slot cannot appear.
func (r *LogEntryRepository) Upsert(ctx context.Context, reading *domain.Reading) (*domain.Reading, error) {
	if err := r.db.Ping(ctx); err != nil {
		return nil, err
	}

	err := r.db.Gorm().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Reading
		err := tx.Where("userId = ? AND date = ? AND timeOfDay = ?",
			reading.UserID, reading.Date, reading.TimeOfDay).
			First(&existing).Error

		switch {
		case err == nil:
			reading.ID = existing.ID
			if err := tx.Save(reading).Error; err != nil {
				return apperrors.NewStorageError(err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(reading).Error; err != nil {
				return apperrors.NewStorageError(err)
			}
		default:
			return apperrors.NewStorageError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return reading, nil
}

// QueryByDate returns all readings for the account on the given date, ordered
// by time slot label ascending. The order is lexicographic on the label
// ("Bedtime" sorts before "Breakfast Pre"); existing screens depend on it.
func (r *LogEntryRepository) QueryByDate(ctx context.Context, userID uint, date string) ([]domain.Reading, error) {
	if err := r.db.Ping(ctx); err != nil {
		return nil, err
	}

	var readings []domain.Reading
	err := r.db.Gorm().WithContext(ctx).
		Where("userId = ? AND date = ?", userID, date).
		Order("timeOfDay ASC").
		Find(&readings).Error
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return readings, nil
}

// QueryRange returns the account's readings with from <= date <= to, ordered
// by date then slot label. The trend graph feeds off this.
func (r *LogEntryRepository) QueryRange(ctx context.Context, userID uint, from, to string) ([]domain.Reading, error) {
	if err := r.db.Ping(ctx); err != nil {
		return nil, err
	}

	var readings []domain.Reading
	err := r.db.Gorm().WithContext(ctx).
		Where("userId = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC, timeOfDay ASC").
		Find(&readings).Error
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return readings, nil
}
