package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/ports"
)

const selectCommentColumns = `
SELECT
  c.id, c.task_id, c.author_id, c.content, c.created_at,
  u.email AS author_email, u.first_name AS author_first_name, u.last_name AS author_last_name
FROM comments c
JOIN users u ON u.id = c.author_id
`

type CommentRepository struct {
	db *sqlx.DB
}

type commentRow struct {
	ID        uint64    `db:"id"`
	TaskID    uint64    `db:"task_id"`
	AuthorID  uint64    `db:"author_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	AuthorEm  string    `db:"author_email"`
	AuthorFN  string    `db:"author_first_name"`
	AuthorLN  string    `db:"author_last_name"`
}

var _ ports.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, taskID, authorID uint64, content string) (domain.Comment, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (task_id, author_id, content) VALUES (?, ?, ?)`,
		taskID, authorID, content,
	)
	if err != nil {
		return domain.Comment{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Comment{}, err
	}

	var row commentRow
	if err := r.db.GetContext(ctx, &row, selectCommentColumns+`WHERE c.id = ?;`, id); err != nil {
		return domain.Comment{}, err
	}
	return mapCommentRow(row), nil
}

func (r *CommentRepository) GetByID(ctx context.Context, taskID, commentID uint64) (domain.Comment, error) {
	var row commentRow
	err := r.db.GetContext(ctx, &row, selectCommentColumns+`WHERE c.id = ? AND c.task_id = ?;`, commentID, taskID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Comment{}, domain.ErrCommentNotFound
	}
	if err != nil {
		return domain.Comment{}, err
	}
	return mapCommentRow(row), nil
}

func (r *CommentRepository) ListByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error) {
	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows, selectCommentColumns+`WHERE c.task_id = ? ORDER BY c.created_at, c.id;`, taskID); err != nil {
		return nil, err
	}
	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, mapCommentRow(row))
	}
	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, commentID uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, commentID)
	return err
}

func mapCommentRow(row commentRow) domain.Comment {
	return domain.Comment{
		ID:        row.ID,
		TaskID:    row.TaskID,
		AuthorID:  row.AuthorID,
		Author: &domain.User{
			ID:        row.AuthorID,
			Email:     row.AuthorEm,
			FirstName: row.AuthorFN,
			LastName:  row.AuthorLN,
		},
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
	}
}
