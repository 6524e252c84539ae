package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/ports"
)

const selectTaskColumns = `
SELECT
  t.id, t.board_id, t.title, t.description, t.status, t.priority,
  t.created_by, t.due_date, t.created_at, t.updated_at,
  a.id AS assignee_user_id, a.email AS assignee_email,
  a.first_name AS assignee_first_name, a.last_name AS assignee_last_name,
  r.id AS reviewer_user_id, r.email AS reviewer_email,
  r.first_name AS reviewer_first_name, r.last_name AS reviewer_last_name,
  (SELECT COUNT(*) FROM comments c WHERE c.task_id = t.id) AS comments_count
FROM tasks t
LEFT JOIN users a ON a.id = t.assignee_id
LEFT JOIN users r ON r.id = t.reviewer_id
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64         `db:"id"`
	BoardID     uint64         `db:"board_id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Status      string         `db:"status"`
	Priority    string         `db:"priority"`
	CreatedBy   sql.NullInt64  `db:"created_by"`
	DueDate     sql.NullTime   `db:"due_date"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	AssigneeID  sql.NullInt64  `db:"assignee_user_id"`
	AssigneeEm  sql.NullString `db:"assignee_email"`
	AssigneeFN  sql.NullString `db:"assignee_first_name"`
	AssigneeLN  sql.NullString `db:"assignee_last_name"`
	ReviewerID  sql.NullInt64  `db:"reviewer_user_id"`
	ReviewerEm  sql.NullString `db:"reviewer_email"`
	ReviewerFN  sql.NullString `db:"reviewer_first_name"`
	ReviewerLN  sql.NullString `db:"reviewer_last_name"`
	CommentsCnt int            `db:"comments_count"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput, createdBy uint64) (domain.Task, error) {
	var dueDate sql.NullTime
	if input.DueDate != nil {
		dueDate = sql.NullTime{Time: *input.DueDate, Valid: true}
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO tasks (board_id, title, description, status, priority, assignee_id, reviewer_id, created_by, due_date)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		input.BoardID, input.Title, input.Description, string(input.Status), input.Priority,
		nullableID(input.AssigneeID), nullableID(input.ReviewerID), createdBy, dueDate,
	)
	if err != nil {
		return domain.Task{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

func (r *TaskRepository) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, selectTaskColumns+`WHERE t.id = ?;`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}
	return mapTaskRow(row), nil
}

func (r *TaskRepository) Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	sets := make([]string, 0, 7)
	args := make([]interface{}, 0, 8)

	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.DescriptionSet {
		sets = append(sets, "description = ?")
		if input.Description != nil {
			args = append(args, *input.Description)
		} else {
			args = append(args, "")
		}
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*input.Status))
	}
	if input.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, *input.Priority)
	}
	if input.AssigneeIDSet {
		sets = append(sets, "assignee_id = ?")
		args = append(args, nullableID(input.AssigneeID))
	}
	if input.ReviewerIDSet {
		sets = append(sets, "reviewer_id = ?")
		args = append(args, nullableID(input.ReviewerID))
	}
	if input.DueDateSet {
		sets = append(sets, "due_date = ?")
		var dueDate sql.NullTime
		if input.DueDate != nil {
			dueDate = sql.NullTime{Time: *input.DueDate, Valid: true}
		}
		args = append(args, dueDate)
	}

	if len(sets) > 0 {
		sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
		args = append(args, id)
		query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ?"
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return domain.Task{}, err
		}
	}

	return r.GetByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE task_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *TaskRepository) ListByBoard(ctx context.Context, boardID uint64) ([]domain.Task, error) {
	return r.selectTasks(ctx, selectTaskColumns+`WHERE t.board_id = ? ORDER BY t.id;`, boardID)
}

func (r *TaskRepository) ListAssignedTo(ctx context.Context, userID uint64) ([]domain.Task, error) {
	return r.selectTasks(ctx, selectTaskColumns+`WHERE t.assignee_id = ? ORDER BY t.id;`, userID)
}

func (r *TaskRepository) ListReviewedBy(ctx context.Context, userID uint64) ([]domain.Task, error) {
	return r.selectTasks(ctx, selectTaskColumns+`WHERE t.reviewer_id = ? ORDER BY t.id;`, userID)
}

func (r *TaskRepository) ListRecentAssignedTo(ctx context.Context, userID uint64, limit int) ([]domain.Task, error) {
	return r.selectTasks(ctx, selectTaskColumns+`WHERE t.assignee_id = ? ORDER BY t.updated_at DESC, t.id LIMIT ?;`, userID, limit)
}

func (r *TaskRepository) CountDoneSince(ctx context.Context, since time.Time) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM tasks WHERE status = 'done' AND updated_at >= ?`, since)
}

func (r *TaskRepository) CountDoneSinceAssignedTo(ctx context.Context, userID uint64, since time.Time) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM tasks WHERE status = 'done' AND updated_at >= ? AND assignee_id = ?`, since, userID)
}

func (r *TaskRepository) CountDoneSinceReviewedBy(ctx context.Context, userID uint64, since time.Time) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM tasks WHERE status = 'done' AND updated_at >= ? AND reviewer_id = ?`, since, userID)
}

func (r *TaskRepository) CountByStatus(ctx context.Context) (domain.StatusDistribution, error) {
	rows := []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}{}
	err := r.db.SelectContext(ctx, &rows, `SELECT status, COUNT(*) AS count FROM tasks GROUP BY status`)
	if err != nil {
		return domain.StatusDistribution{}, err
	}

	var dist domain.StatusDistribution
	for _, row := range rows {
		switch domain.TaskStatus(row.Status) {
		case domain.TaskStatusTodo:
			dist.ToDo = row.Count
		case domain.TaskStatusInProgress:
			dist.InProgress = row.Count
		case domain.TaskStatusReview:
			dist.Review = row.Count
		case domain.TaskStatusDone:
			dist.Done = row.Count
		}
	}
	return dist, nil
}

// UrgentToDo counts to-do tasks carrying a due date and resolves the one with
// the nearest deadline.
func (r *TaskRepository) UrgentToDo(ctx context.Context) (domain.UrgentSummary, error) {
	count, err := r.count(ctx, `SELECT COUNT(*) FROM tasks WHERE status = 'to-do' AND due_date IS NOT NULL`)
	if err != nil {
		return domain.UrgentSummary{}, err
	}

	summary := domain.UrgentSummary{Count: count}
	if count == 0 {
		return summary, nil
	}

	var next struct {
		ID      uint64    `db:"id"`
		Title   string    `db:"title"`
		DueDate time.Time `db:"due_date"`
	}
	err = r.db.GetContext(ctx, &next, `
SELECT id, title, due_date FROM tasks
WHERE status = 'to-do' AND due_date IS NOT NULL
ORDER BY due_date, id
LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return summary, nil
	}
	if err != nil {
		return domain.UrgentSummary{}, err
	}
	summary.NextDeadline = &domain.DeadlineTask{ID: next.ID, Title: next.Title, DueDate: next.DueDate}
	return summary, nil
}

func (r *TaskRepository) CountAssignedTo(ctx context.Context, userID uint64) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM tasks WHERE assignee_id = ?`, userID)
}

func (r *TaskRepository) CountReviewedBy(ctx context.Context, userID uint64) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM tasks WHERE reviewer_id = ?`, userID)
}

func (r *TaskRepository) selectTasks(ctx context.Context, query string, args ...interface{}) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRow(row))
	}
	return tasks, nil
}

func (r *TaskRepository) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, query, args...)
	return count, err
}

func nullableID(id *uint64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*id), Valid: true}
}

func mapTaskRow(row taskRow) domain.Task {
	task := domain.Task{
		ID:            row.ID,
		BoardID:       row.BoardID,
		Title:         row.Title,
		Description:   row.Description,
		Status:        domain.TaskStatus(row.Status),
		Priority:      row.Priority,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
		CommentsCount: row.CommentsCnt,
	}

	if row.CreatedBy.Valid {
		value := uint64(row.CreatedBy.Int64)
		task.CreatedByID = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	if row.AssigneeID.Valid {
		task.Assignee = &domain.User{
			ID:        uint64(row.AssigneeID.Int64),
			Email:     row.AssigneeEm.String,
			FirstName: row.AssigneeFN.String,
			LastName:  row.AssigneeLN.String,
		}
	}

	if row.ReviewerID.Valid {
		task.Reviewer = &domain.User{
			ID:        uint64(row.ReviewerID.Int64),
			Email:     row.ReviewerEm.String,
			FirstName: row.ReviewerFN.String,
			LastName:  row.ReviewerLN.String,
		}
	}

	return task
}
