package repository

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicbook/internal/domain"
)

func newSpecializationMock(t *testing.T) (pgxmock.PgxPoolIface, *SpecializationRepo) {
	t.Helper()

	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewSpecializationRepository(mock)
}

func TestSpecializationCreate(t *testing.T) {
	mock, repo := newSpecializationMock(t)

	mock.ExpectQuery("INSERT INTO specializations").
		WithArgs("Orthodontics", "Braces and aligners", "", true, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	id, err := repo.Create(context.Background(), domain.CreateSpecializationDTO{
		Name:        "Orthodontics",
		Description: "Braces and aligners",
		IsActive:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSpecializationListActiveOnly(t *testing.T) {
	mock, repo := newSpecializationMock(t)

	now := time.Now()
	isActive := true

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(true).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	mock.ExpectQuery("SELECT id, name, description, icon, is_active").
		WithArgs(true, 20, 0).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "description", "icon", "is_active", "created_at", "updated_at",
		}).
			AddRow(int64(1), "Orthodontics", "", "", true, now, now).
			AddRow(int64(2), "Endodontics", "", "", true, now, now))

	specializations, total, err := repo.List(context.Background(), domain.SpecializationFilter{
		IsActive: &isActive,
		Limit:    20,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, specializations, 2)
	assert.Equal(t, "Orthodontics", specializations[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSpecializationGetByIDNotFound(t *testing.T) {
	mock, repo := newSpecializationMock(t)

	mock.ExpectQuery("SELECT id, name, description").
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
