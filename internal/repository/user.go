package repository

import (
	"context"
	"errors"

	"github.com/alp-turan/sugarbyte/internal/database"
	"github.com/alp-turan/sugarbyte/internal/domain"
	apperrors "github.com/alp-turan/sugarbyte/internal/errors"
	"github.com/alp-turan/sugarbyte/internal/logger"
	"gorm.io/gorm"
)

// UserRepository handles account data operations
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail returns the account with the given email, or nil when no
// account matches. Zero matches is not an error.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if err := r.db.Ping(ctx); err != nil {
		return nil, err
	}

	var account domain.Account
	err := r.db.Gorm().WithContext(ctx).Where("email = ?", email).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return &account, nil
}

// FindByID returns the account with the given identifier.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*domain.Account, error) {
	if err := r.db.Ping(ctx); err != nil {
		return nil, err
	}

	var account domain.Account
	err := r.db.Gorm().WithContext(ctx).First(&account, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrAccountNotFound
	}
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return &account, nil
}

// Create inserts a new account and assigns its identifier. The duplicate
// email check and the insert run in one transaction so a second account with
// the same email can never slip in between them.
func (r *UserRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	if err := r.db.Ping(ctx); err != nil {
		return nil, err
	}

	err := r.db.Gorm().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Account{}).Where("email = ?", account.Email).Count(&count).Error; err != nil {
			return apperrors.NewStorageError(err)
		}
		if count > 0 {
			return apperrors.ErrDuplicateEmail
		}
		if err := tx.Create(account).Error; err != nil {
			return apperrors.NewStorageError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// Update replaces all mutable fields of the account identified by its ID.
// Updating a missing account is logged and treated as a no-op. Changing the
// email to one another account owns is a conflict, same as on Create.
func (r *UserRepository) Update(ctx context.Context, account *domain.Account) error {
	if err := r.db.Ping(ctx); err != nil {
		return err
	}

	return r.db.Gorm().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Account{}).
			Where("email = ? AND id <> ?", account.Email, account.ID).
			Count(&count).Error; err != nil {
			return apperrors.NewStorageError(err)
		}
		if count > 0 {
			return apperrors.ErrDuplicateEmail
		}

		res := tx.Model(&domain.Account{}).
			Where("id = ?", account.ID).
			Updates(map[string]interface{}{
				"name":                 account.Name,
				"diabetesType":         account.DiabetesType,
				"insulinType":          account.InsulinType,
				"insulinAdmin":         account.InsulinAdmin,
				"email":                account.Email,
				"phone":                account.Phone,
				"doctorName":           account.DoctorName,
				"doctorEmail":          account.DoctorEmail,
				"doctorAddress":        account.DoctorAddress,
				"doctorEmergencyPhone": account.DoctorEmergencyPhone,
				"logbookType":          account.LogbookType,
				"password":             account.Password,
			})
		if res.Error != nil {
			return apperrors.NewStorageError(res.Error)
		}
		if res.RowsAffected == 0 {
			logger.Warn("Update matched no account", "id", account.ID)
		}
		return nil
	})
}

// DeleteByID removes an account; its readings go with it via the foreign key
// cascade on logentry.
func (r *UserRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.Ping(ctx); err != nil {
		return err
	}

	if err := r.db.Gorm().WithContext(ctx).Delete(&domain.Account{}, id).Error; err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}
