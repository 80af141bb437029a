package repository

import (
	"context"
	"testing"

	"github.com/alp-turan/sugarbyte/internal/domain"
	apperrors "github.com/alp-turan/sugarbyte/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccount(email string) *domain.Account {
	return &domain.Account{
		Name:                 "John Doe",
		DiabetesType:         "Type 1",
		InsulinType:          "Rapid-acting",
		InsulinAdmin:         "Pen",
		Email:                email,
		Phone:                "07700900123",
		DoctorName:           "Dr. Smith",
		DoctorEmail:          "smith@clinic.example",
		DoctorAddress:        "1 Clinic Road",
		DoctorEmergencyPhone: "07700900999",
		LogbookType:          domain.LogbookSimple,
		Password:             "secret",
	}
}

func TestCreateAssignsID(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, testAccount("john@example.com"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestCreateDistinctEmails(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	a, err := repo.Create(ctx, testAccount("a@example.com"))
	require.NoError(t, err)
	b, err := repo.Create(ctx, testAccount("b@example.com"))
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCreateDuplicateEmailRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first, err := repo.Create(ctx, testAccount("dup@example.com"))
	require.NoError(t, err)

	dup := testAccount("dup@example.com")
	dup.Name = "Impostor"
	_, err = repo.Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	// The store is unchanged: the original row is still the only match.
	found, err := repo.FindByEmail(ctx, "dup@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, first.ID, found.ID)
	assert.Equal(t, "John Doe", found.Name)
}

func TestFindByEmailRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	want := testAccount("roundtrip@example.com")
	created, err := repo.Create(ctx, want)
	require.NoError(t, err)

	found, err := repo.FindByEmail(ctx, "roundtrip@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, *want, *found)
}

func TestFindByEmailNoMatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	found, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUpdateReplacesMutableFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	account, err := repo.Create(ctx, testAccount("update@example.com"))
	require.NoError(t, err)

	account.Name = "Jane Doe"
	account.Phone = "07700900456"
	account.DoctorEmail = "jones@clinic.example"
	account.LogbookType = domain.LogbookIntensive
	require.NoError(t, repo.Update(ctx, account))

	found, err := repo.FindByEmail(ctx, "update@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Jane Doe", found.Name)
	assert.Equal(t, "07700900456", found.Phone)
	assert.Equal(t, "jones@clinic.example", found.DoctorEmail)
	assert.Equal(t, domain.LogbookIntensive, found.LogbookType)
}

func TestUpdateDuplicateEmailRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, testAccount("taken@example.com"))
	require.NoError(t, err)
	other, err := repo.Create(ctx, testAccount("other@example.com"))
	require.NoError(t, err)

	other.Email = "taken@example.com"
	err = repo.Update(ctx, other)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	// The losing account keeps its old email.
	found, err := repo.FindByEmail(ctx, "other@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, other.ID, found.ID)
}

func TestUpdateKeepsOwnEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	account, err := repo.Create(ctx, testAccount("own@example.com"))
	require.NoError(t, err)

	// Updating without changing the email must not trip the duplicate check.
	account.Name = "Jane Doe"
	require.NoError(t, repo.Update(ctx, account))
}

func TestUpdateMissingAccountIsNoOp(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	ghost := testAccount("ghost@example.com")
	ghost.ID = 4242
	assert.NoError(t, repo.Update(context.Background(), ghost))
}

func TestDeleteCascadesReadings(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	entries := NewLogEntryRepository(db)
	ctx := context.Background()

	account, err := users.Create(ctx, testAccount("cascade@example.com"))
	require.NoError(t, err)

	_, err = entries.Upsert(ctx, &domain.Reading{
		UserID:     account.ID,
		Date:       "2025-03-14",
		TimeOfDay:  domain.BreakfastPre,
		BloodSugar: 5.2,
	})
	require.NoError(t, err)

	require.NoError(t, users.DeleteByID(ctx, account.ID))

	got, err := entries.QueryByDate(ctx, account.ID, "2025-03-14")
	require.NoError(t, err)
	assert.Empty(t, got)
}
