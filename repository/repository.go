package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"recycleshop/apperrors"
	"recycleshop/models"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) PostgresRepository {
	return PostgresRepository{db: db}
}

func (r PostgresRepository) GetUserByUserID(
	ctx context.Context,
	userID string,
) (models.User, error) {
	row := r.db.QueryRowContext(
		ctx,
		"SELECT id, user_id, name, points, created_at FROM users WHERE user_id=$1",
		userID,
	)
	var u models.User
	err := row.Scan(&u.ID, &u.UserID, &u.Name, &u.Points, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
		}
		return models.User{}, err
	}
	return u, nil
}

func (r PostgresRepository) CreateUser(
	ctx context.Context,
	userID, name string,
) (models.User, error) {
	u := models.User{UserID: userID, Name: name}
	err := r.db.QueryRowContext(
		ctx,
		"INSERT INTO users (user_id, name, points) VALUES ($1, $2, 0) "+
			"RETURNING id, created_at",
		userID, name,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return models.User{}, fmt.Errorf("user %s: %w", userID, apperrors.ErrAlreadyExists)
		}
		return models.User{}, err
	}
	return u, nil
}

// ListUsersByPoints returns all users ordered for the leaderboard:
// points descending, ties broken by earliest registration.
func (r PostgresRepository) ListUsersByPoints(
	ctx context.Context,
) ([]models.User, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, user_id, name, points, created_at
		 FROM users
		 ORDER BY points DESC, created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(
			&u.ID,
			&u.UserID,
			&u.Name,
			&u.Points,
			&u.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r PostgresRepository) ListItems(
	ctx context.Context,
) ([]models.Item, error) {
	rows, err := r.db.QueryContext(
		ctx,
		"SELECT id, name, price, icon FROM items ORDER BY id",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Price, &it.Icon); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r PostgresRepository) GetItemByName(
	ctx context.Context,
	name string,
) (models.Item, error) {
	row := r.db.QueryRowContext(
		ctx,
		"SELECT id, name, price, icon FROM items WHERE name=$1",
		name,
	)
	var it models.Item
	err := row.Scan(&it.ID, &it.Name, &it.Price, &it.Icon)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, fmt.Errorf("item %s: %w", name, apperrors.ErrNotFound)
		}
		return models.Item{}, err
	}
	return it, nil
}

// SeedItems inserts the given items only when the catalog is empty. The
// existence check and the inserts share one transaction so parallel startup
// workers cannot double-seed.
func (r PostgresRepository) SeedItems(
	ctx context.Context,
	items []models.Item,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(
		ctx,
		"SELECT COUNT(*) FROM items",
	).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, it := range items {
		if _, err := tx.ExecContext(
			ctx,
			"INSERT INTO items (name, price, icon) VALUES ($1, $2, $3)",
			it.Name, it.Price, it.Icon,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ApplyPoints changes a user's balance by delta and appends the matching
// ledger entry in the same transaction. The row lock makes the affordability
// check and the deduction a single serializable unit, so two concurrent
// purchases cannot both pass against a stale balance.
func (r PostgresRepository) ApplyPoints(
	ctx context.Context,
	userRowID, delta int,
	kind, itemName string,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var points int
	err = tx.QueryRowContext(
		ctx,
		"SELECT points FROM users WHERE id=$1 FOR UPDATE",
		userRowID,
	).Scan(&points)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("user row %d: %w", userRowID, apperrors.ErrNotFound)
		}
		return err
	}

	newPoints := points + delta
	if newPoints < 0 {
		return fmt.Errorf(
			"have %d, need %d: %w",
			points, -delta, apperrors.ErrInsufficientPoints,
		)
	}

	if _, err = tx.ExecContext(
		ctx,
		"UPDATE users SET points=$1 WHERE id=$2",
		newPoints, userRowID,
	); err != nil {
		return err
	}

	if _, err = tx.ExecContext(
		ctx,
		"INSERT INTO transactions (user_id, kind, item_name, points_delta, created_at) "+
			"VALUES ($1, $2, $3, $4, $5)",
		userRowID, kind, itemName, delta, time.Now().UTC(),
	); err != nil {
		return err
	}
	return tx.Commit()
}

func (r PostgresRepository) GetUserTransactions(
	ctx context.Context,
	userRowID int,
) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, user_id, kind, item_name, points_delta, created_at
		 FROM transactions
		 WHERE user_id=$1
		 ORDER BY created_at DESC, id DESC`,
		userRowID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Kind,
			&t.ItemName,
			&t.PointsDelta,
			&t.CreatedAt,
		); err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}
