package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poolhire/infras/otel/mocks"
	"poolhire/infras/postgres"
	"poolhire/shared/dto"
	"poolhire/shared/repository"
)

type lane struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	PoolTitle string    `db:"pool_title" table:"pools" column:"title"`
}

func (lane) GetJoinQuery() string {
	return "LEFT JOIN pools ON pools.id = lanes.pool_id"
}

func newRepo(t *testing.T) (repository.Repository[lane], *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return repository.NewRepository[lane]("lane", "lanes", "id", conn, mocks.NewOtel()), sqlxDB, mock
}

func byID(id string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters:  []any{dto.Filter{Field: "id", Value: id, Operator: dto.FilterOperatorEq}},
	}
}

func TestRepository_InsertColumnsSkipJoinedFields(t *testing.T) {
	repo, _, _ := newRepo(t)

	assert.Equal(t, []string{"id", "name", "created_at"}, repo.InsertColumns)
}

func TestRepository_Update(t *testing.T) {
	t.Run("columns are set in name order", func(t *testing.T) {
		repo, _, mock := newRepo(t)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE lanes SET name = $1, pool_id = $2  WHERE (id = $3)`)).
			WithArgs("Lane 2", "pool-9", "lane-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), map[string]any{"pool_id": "pool-9", "name": "Lane 2"}, byID("lane-1"))
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("refuses an unfiltered update", func(t *testing.T) {
		repo, _, mock := newRepo(t)

		err := repo.Update(context.Background(), map[string]any{"name": "x"}, dto.FilterGroup{})
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("tx variant reports matched rows", func(t *testing.T) {
		repo, db, mock := newRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE lanes SET name = $1`)).
			WithArgs("Lane 3", "lane-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		tx, err := db.Beginx()
		require.NoError(t, err)

		affected, err := repo.UpdateTx(context.Background(), tx, map[string]any{"name": "Lane 3"}, byID("lane-1"))
		require.NoError(t, err)
		assert.Zero(t, affected)
	})
}

func TestRepository_InsertIgnoreTx(t *testing.T) {
	tests := []struct {
		name     string
		conflict []string
		wantSQL  string
		affected int64
		want     bool
	}{
		{
			name:     "defaults to primary column",
			wantSQL:  `INSERT INTO lanes (id, name, created_at) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`,
			affected: 1,
			want:     true,
		},
		{
			name:     "explicit conflict target",
			conflict: []string{"name"},
			wantSQL:  `ON CONFLICT (name) DO NOTHING`,
			affected: 0,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, db, mock := newRepo(t)
			now := time.Now()

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(tt.wantSQL)).
				WithArgs("lane-1", "Lane 1", now).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			tx, err := db.Beginx()
			require.NoError(t, err)

			inserted, err := repo.InsertIgnoreTx(context.Background(), tx, lane{ID: "lane-1", Name: "Lane 1", CreatedAt: now}, tt.conflict...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, inserted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Get(t *testing.T) {
	const selectSQL = `SELECT lanes.id, lanes.name, lanes.created_at, pools.title AS pool_title FROM lanes LEFT JOIN pools ON pools.id = lanes.pool_id`

	t.Run("found", func(t *testing.T) {
		repo, _, mock := newRepo(t)

		mock.ExpectPrepare(regexp.QuoteMeta(selectSQL)).
			ExpectQuery().
			WithArgs("lane-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "pool_title"}).
				AddRow("lane-1", "Lane 1", time.Now(), "Lido"))

		got, err := repo.Get(context.Background(), byID("lane-1"))
		require.NoError(t, err)
		assert.Equal(t, "Lido", got.PoolTitle)
	})

	t.Run("no rows gives the zero value", func(t *testing.T) {
		repo, _, mock := newRepo(t)

		mock.ExpectPrepare(regexp.QuoteMeta(selectSQL)).
			ExpectQuery().
			WithArgs("lane-x").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "pool_title"}))

		got, err := repo.Get(context.Background(), byID("lane-x"))
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})
}

func TestRepository_GetAllPaginates(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectPrepare(regexp.QuoteMeta(`ORDER BY name ASC LIMIT $1 OFFSET $2`)).
		ExpectQuery().
		WithArgs(10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "pool_title"}).
			AddRow("lane-11", "Lane 11", time.Now(), "Lido"))

	got, err := repo.GetAll(context.Background(), dto.QueryParams{Page: 2, Limit: 10, SortBy: "name", SortDir: dto.SortDirAsc}, dto.FilterGroup{})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
