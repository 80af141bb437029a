package domain

import "context"

// UserService is the account surface exposed to the presentation layer.
type UserService interface {
	RegisterAccount(ctx context.Context, account *Account) (*Account, error)
	Authenticate(ctx context.Context, email, password string) (*Account, error)
	FindAccountByEmail(ctx context.Context, email string) (*Account, error)
	UpdateAccount(ctx context.Context, account *Account) error
}

// LogService is the reading surface exposed to the presentation layer.
type LogService interface {
	RecordReading(ctx context.Context, reading *Reading, account *Account) (*Reading, error)
	EntriesForDate(ctx context.Context, userID uint, date string) ([]Reading, error)
	EntriesForRange(ctx context.Context, userID uint, from, to string) ([]Reading, error)
}

// AlarmService decides whether a saved reading is out of range and whether a
// notification should go out for it.
type AlarmService interface {
	Evaluate(ctx context.Context, reading *Reading, account *Account) error
}
