package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poolhire/infras/otel/mocks"
	"poolhire/infras/postgres"
	"poolhire/internal/domains/booking/model"
	"poolhire/internal/domains/booking/repository"
)

func newRepo(t *testing.T) (repository.Booking, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel()), sqlxDB, mock
}

func TestBookingRepository_UpdateStatusTx(t *testing.T) {
	repo, db, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE bookings SET status = $1`)).
		WithArgs(model.StatusConfirmed, sqlmock.AnyArg(), "stripe", "booking-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatusTx(context.Background(), tx, "booking-1", model.StatusConfirmed, "stripe"))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_GetHostIDTx(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    string
		wantErr bool
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT pools.host_id FROM bookings`)).
					WithArgs("booking-1").
					WillReturnRows(sqlmock.NewRows([]string{"host_id"}).AddRow("host-1"))
			},
			want: "host-1",
		},
		{
			name: "missing booking",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT pools.host_id FROM bookings`)).
					WithArgs("booking-1").
					WillReturnRows(sqlmock.NewRows([]string{"host_id"}))
			},
			want: "",
		},
		{
			name: "query error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT pools.host_id FROM bookings`)).
					WithArgs("booking-1").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, db, mock := newRepo(t)

			mock.ExpectBegin()
			tt.setup(mock)

			tx, err := db.Beginx()
			require.NoError(t, err)

			got, err := repo.GetHostIDTx(context.Background(), tx, "booking-1")
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
