package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/sakif/monkey-intelligence/internal/apperror"
	"github.com/sakif/monkey-intelligence/internal/model"
)

// CreateUser takes the next shared id and inserts the user.
func (db *DB) CreateUser(ctx context.Context, user *model.User) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		id, err := nextID(ctx, tx)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO users (id, username, password, role, name) VALUES (?, ?, ?, ?, ?)`,
			id, user.Username, user.Password, string(user.Role), user.Name,
		)
		if err != nil {
			return fmt.Errorf("sqlite: inserting user %q: %w", user.Username, err)
		}

		user.ID = id
		return nil
	})
}

// GetUser retrieves a user by id.
// Returns apperror.ErrNotFound if no user exists with that id.
func (db *DB) GetUser(ctx context.Context, id int64) (*model.User, error) {
	u, err := scanUser(db.conn.QueryRowContext(ctx,
		`SELECT id, username, password, role, name FROM users WHERE id = ?`, id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("user", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("sqlite: getting user %d: %w", id, err)
	}
	return u, nil
}

// GetUserByUsername returns the first user, by id, with an exactly matching username.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	u, err := scanUser(db.conn.QueryRowContext(ctx,
		`SELECT id, username, password, role, name FROM users WHERE username = ? ORDER BY id LIMIT 1`,
		username,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("user", username)
		}
		return nil, fmt.Errorf("sqlite: getting user %q: %w", username, err)
	}
	return u, nil
}

func scanUser(row *sql.Row) (*model.User, error) {
	var (
		u    model.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Username, &u.Password, &role, &u.Name); err != nil {
		return nil, err
	}
	u.Role = model.Role(role)
	return &u, nil
}
