package services

import (
	"context"

	"github.com/alp-turan/sugarbyte/internal/domain"
	apperrors "github.com/alp-turan/sugarbyte/internal/errors"
	"github.com/alp-turan/sugarbyte/internal/repository"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles account registration, login and profile updates.
type UserService struct {
	users    *repository.UserRepository
	validate *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{
		users:    users,
		validate: validator.New(),
	}
}

type registrationInput struct {
	Name        string `validate:"required"`
	Email       string `validate:"required,email"`
	Password    string `validate:"required"`
	Phone       string `validate:"omitempty,min=7"`
	DoctorEmail string `validate:"omitempty,email"`
}

type profileInput struct {
	Name        string `validate:"required"`
	Email       string `validate:"required,email"`
	Phone       string `validate:"omitempty,min=7"`
	DoctorEmail string `validate:"omitempty,email"`
}

// RegisterAccount validates the new account, hashes its password and stores
// it. A duplicate email surfaces as a conflict error the UI can name.
func (s *UserService) RegisterAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	input := registrationInput{
		Name:        account.Name,
		Email:       account.Email,
		Password:    account.Password,
		Phone:       account.Phone,
		DoctorEmail: account.DoctorEmail,
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrorTypeValidation, "VALIDATION", "Registration details are invalid")
	}

	if account.LogbookType == "" {
		account.LogbookType = domain.LogbookSimple
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	account.Password = string(hashed)

	return s.users.Create(ctx, account)
}

// Authenticate looks the account up by email and checks the password.
// A wrong email and a wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return account, nil
}

// FindAccountByEmail returns the matching account, or nil without error when
// none exists.
func (s *UserService) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return s.users.FindByEmail(ctx, email)
}

// UpdateAccount re-validates the mutable profile fields and stores them.
// An empty password keeps the stored hash; a new one is hashed first.
func (s *UserService) UpdateAccount(ctx context.Context, account *domain.Account) error {
	input := profileInput{
		Name:        account.Name,
		Email:       account.Email,
		Phone:       account.Phone,
		DoctorEmail: account.DoctorEmail,
	}
	if err := s.validate.Struct(input); err != nil {
		return apperrors.Wrap(err, apperrors.ErrorTypeValidation, "VALIDATION", "Profile details are invalid")
	}

	if account.Password == "" {
		stored, err := s.users.FindByID(ctx, account.ID)
		if err != nil {
			return err
		}
		account.Password = stored.Password
	} else {
		hashed, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
		if err != nil {
			return apperrors.NewInternalError(err)
		}
		account.Password = string(hashed)
	}

	return s.users.Update(ctx, account)
}
