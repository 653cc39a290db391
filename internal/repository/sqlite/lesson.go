package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sakif/monkey-intelligence/internal/model"
)

func (db *DB) CreateLesson(ctx context.Context, l *model.Lesson) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		id, err := nextID(ctx, tx)
		if err != nil {
			return err
		}

		createdAt := l.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO lessons (id, teacher_id, title, content, ai_generated, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			id, l.TeacherID, l.Title, l.Content, l.AIGenerated, createdAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("sqlite: creating lesson for teacher %d: %w", l.TeacherID, err)
		}

		l.ID = id
		l.CreatedAt = createdAt
		return nil
	})
}

func (db *DB) GetLessons(ctx context.Context, teacherID int64) ([]model.Lesson, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, teacher_id, title, content, ai_generated, created_at
		 FROM lessons
		 WHERE teacher_id = ?
		 ORDER BY id`,
		teacherID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing lessons for teacher %d: %w", teacherID, err)
	}
	defer rows.Close()

	list := make([]model.Lesson, 0)
	for rows.Next() {
		var l model.Lesson
		if err := rows.Scan(&l.ID, &l.TeacherID, &l.Title, &l.Content, &l.AIGenerated, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning lesson row: %w", err)
		}
		list = append(list, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating lessons: %w", err)
	}

	return list, nil
}
