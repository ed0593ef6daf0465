package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"recycleshop/apperrors"
	"recycleshop/models"
	"recycleshop/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepository_ApplyPoints(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(sqlmock.Sqlmock)
		delta   int
		kind    string
		item    string
		wantErr error
	}{
		{
			name: "Credit updates balance and appends ledger entry in one tx",
			prepare: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectQuery(regexp.QuoteMeta(
					"SELECT points FROM users WHERE id=$1 FOR UPDATE")).
					WithArgs(7).
					WillReturnRows(sqlmock.NewRows([]string{"points"}).AddRow(40))
				m.ExpectExec(regexp.QuoteMeta(
					"UPDATE users SET points=$1 WHERE id=$2")).
					WithArgs(90, 7).
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectExec(regexp.QuoteMeta(
					"INSERT INTO transactions (user_id, kind, item_name, points_delta, created_at) VALUES ($1, $2, $3, $4, $5)")).
					WithArgs(7, models.TxKindRecycle, "", 50, sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(1, 1))
				m.ExpectCommit()
			},
			delta: 50,
			kind:  models.TxKindRecycle,
		},
		{
			name: "Debit below zero rolls back without touching balance or ledger",
			prepare: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectQuery(regexp.QuoteMeta(
					"SELECT points FROM users WHERE id=$1 FOR UPDATE")).
					WithArgs(7).
					WillReturnRows(sqlmock.NewRows([]string{"points"}).AddRow(5))
				m.ExpectRollback()
			},
			delta:   -20,
			kind:    models.TxKindPurchase,
			item:    "Can",
			wantErr: apperrors.ErrInsufficientPoints,
		},
		{
			name: "Unknown user row",
			prepare: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectQuery(regexp.QuoteMeta(
					"SELECT points FROM users WHERE id=$1 FOR UPDATE")).
					WithArgs(7).
					WillReturnRows(sqlmock.NewRows([]string{"points"}))
				m.ExpectRollback()
			},
			delta:   10,
			kind:    models.TxKindRecycle,
			wantErr: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.prepare(mock)

			repo := repository.NewPostgresRepository(db)
			err = repo.ApplyPoints(context.Background(), 7, tt.delta, tt.kind, tt.item)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresRepository_SeedItems(t *testing.T) {
	items := []models.Item{
		{Name: "Water", Price: 10, Icon: "💧"},
		{Name: "Drink", Price: 15, Icon: "🥤"},
	}

	t.Run("Empty catalog gets seeded", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM items")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(regexp.QuoteMeta(
			"INSERT INTO items (name, price, icon) VALUES ($1, $2, $3)")).
			WithArgs("Water", 10, "💧").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta(
			"INSERT INTO items (name, price, icon) VALUES ($1, $2, $3)")).
			WithArgs("Drink", 15, "🥤").
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		repo := repository.NewPostgresRepository(db)
		require.NoError(t, repo.SeedItems(context.Background(), items))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Non-empty catalog is a no-op", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM items")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
		mock.ExpectRollback()

		repo := repository.NewPostgresRepository(db)
		require.NoError(t, repo.SeedItems(context.Background(), items))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresRepository_CreateUser(t *testing.T) {
	t.Run("Unique violation maps to already exists", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(
			"INSERT INTO users (user_id, name, points) VALUES ($1, $2, 0) RETURNING id, created_at")).
			WithArgs("100000001", "Alice").
			WillReturnError(&pq.Error{Code: "23505"})

		repo := repository.NewPostgresRepository(db)
		_, err = repo.CreateUser(context.Background(), "100000001", "Alice")
		require.ErrorIs(t, err, apperrors.ErrAlreadyExists)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("New user starts with zero points", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(regexp.QuoteMeta(
			"INSERT INTO users (user_id, name, points) VALUES ($1, $2, 0) RETURNING id, created_at")).
			WithArgs("100000001", "Alice").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, created))

		repo := repository.NewPostgresRepository(db)
		user, err := repo.CreateUser(context.Background(), "100000001", "Alice")
		require.NoError(t, err)
		require.Equal(t, 1, user.ID)
		require.Equal(t, "100000001", user.UserID)
		require.Equal(t, 0, user.Points)
		require.Equal(t, created, user.CreatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresRepository_GetUserByUserID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, user_id, name, points, created_at FROM users WHERE user_id=$1")).
		WithArgs("999999999").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_id", "name", "points", "created_at"}))

	repo := repository.NewPostgresRepository(db)
	_, err = repo.GetUserByUserID(context.Background(), "999999999")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetUserTransactions(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, user_id, kind, item_name, points_delta, created_at").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_id", "kind", "item_name", "points_delta", "created_at"}).
			AddRow(2, 7, models.TxKindPurchase, "Water", -10, now).
			AddRow(1, 7, models.TxKindRecycle, "", 15, now.Add(-time.Minute)))

	repo := repository.NewPostgresRepository(db)
	txs, err := repo.GetUserTransactions(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	require.Equal(t, models.TxKindPurchase, txs[0].Kind)
	require.Equal(t, "Water", txs[0].ItemName)
	require.Equal(t, -10, txs[0].PointsDelta)
	require.Equal(t, models.TxKindRecycle, txs[1].Kind)
	require.Equal(t, 15, txs[1].PointsDelta)
}
