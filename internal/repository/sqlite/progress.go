package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sakif/monkey-intelligence/internal/model"
)

func (db *DB) SaveProgress(ctx context.Context, p *model.GameProgress) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		if db.opts.AssignProgressIDs {
			id, err := nextID(ctx, tx)
			if err != nil {
				return err
			}
			p.ID = id
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO game_progress (id, user_id, game_type, score, completed_at)
			 VALUES (?, ?, ?, ?, ?)`,
			p.ID, p.UserID, p.GameType, p.Score, p.CompletedAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("sqlite: saving progress for user %d: %w", p.UserID, err)
		}
		return nil
	})
}

func (db *DB) GetProgress(ctx context.Context, userID int64) ([]model.GameProgress, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, user_id, game_type, score, completed_at
		 FROM game_progress
		 WHERE user_id = ?
		 ORDER BY seq`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing progress for user %d: %w", userID, err)
	}
	defer rows.Close()

	list := make([]model.GameProgress, 0)
	for rows.Next() {
		var p model.GameProgress
		if err := rows.Scan(&p.ID, &p.UserID, &p.GameType, &p.Score, &p.CompletedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning progress row: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating progress: %w", err)
	}

	return list, nil
}
