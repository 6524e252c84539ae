package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/access"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/ports"
)

// The board list is a single statement: reachability (owner, member, task
// assignee or reviewer) is expressed as OR'd EXISTS subqueries so the store
// does the join work and deduplication.
const listBoardsForUserQuery = `
SELECT
  b.id,
  b.name,
  b.owner_id,
  (SELECT COUNT(*) FROM board_members m WHERE m.board_id = b.id) AS member_count,
  (SELECT COUNT(*) FROM tasks t WHERE t.board_id = b.id) AS ticket_count,
  (SELECT COUNT(*) FROM tasks t WHERE t.board_id = b.id AND t.status = 'to-do') AS tasks_to_do_count,
  (SELECT COUNT(*) FROM tasks t WHERE t.board_id = b.id AND t.priority = 'high') AS tasks_high_prio_count
FROM boards b
WHERE b.owner_id = ?
   OR EXISTS (SELECT 1 FROM board_members m WHERE m.board_id = b.id AND m.user_id = ?)
   OR EXISTS (SELECT 1 FROM tasks t WHERE t.board_id = b.id AND (t.assignee_id = ? OR t.reviewer_id = ?))
ORDER BY b.id;
`

const boardRelationQuery = `
SELECT
  b.owner_id = ? AS is_owner,
  EXISTS (SELECT 1 FROM board_members m WHERE m.board_id = b.id AND m.user_id = ?) AS is_member,
  EXISTS (SELECT 1 FROM tasks t WHERE t.board_id = b.id AND (t.assignee_id = ? OR t.reviewer_id = ?)) AS is_participant
FROM boards b
WHERE b.id = ?;
`

type BoardRepository struct {
	db *sqlx.DB
}

type boardRow struct {
	ID      uint64 `db:"id"`
	Name    string `db:"name"`
	OwnerID uint64 `db:"owner_id"`
}

type boardSummaryRow struct {
	boardRow
	MemberCount        int `db:"member_count"`
	TicketCount        int `db:"ticket_count"`
	TasksToDoCount     int `db:"tasks_to_do_count"`
	TasksHighPrioCount int `db:"tasks_high_prio_count"`
}

type boardRelationRow struct {
	IsOwner       bool `db:"is_owner"`
	IsMember      bool `db:"is_member"`
	IsParticipant bool `db:"is_participant"`
}

var _ ports.BoardRepository = (*BoardRepository)(nil)

func NewBoardRepository(db *sqlx.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) Create(ctx context.Context, name string, ownerID uint64) (domain.Board, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO boards (name, owner_id) VALUES (?, ?)`, name, ownerID)
	if err != nil {
		return domain.Board{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Board{}, err
	}
	return domain.Board{ID: uint64(id), Name: name, OwnerID: ownerID}, nil
}

func (r *BoardRepository) GetByID(ctx context.Context, id uint64) (domain.Board, error) {
	var row boardRow
	err := r.db.GetContext(ctx, &row, `SELECT id, name, owner_id FROM boards WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Board{}, domain.ErrBoardNotFound
	}
	if err != nil {
		return domain.Board{}, err
	}
	return domain.Board{ID: row.ID, Name: row.Name, OwnerID: row.OwnerID}, nil
}

func (r *BoardRepository) ListForUser(ctx context.Context, userID uint64) ([]domain.BoardSummary, error) {
	var rows []boardSummaryRow
	if err := r.db.SelectContext(ctx, &rows, listBoardsForUserQuery, userID, userID, userID, userID); err != nil {
		return nil, err
	}

	boards := make([]domain.BoardSummary, 0, len(rows))
	for _, row := range rows {
		boards = append(boards, domain.BoardSummary{
			Board:              domain.Board{ID: row.ID, Name: row.Name, OwnerID: row.OwnerID},
			MemberCount:        row.MemberCount,
			TicketCount:        row.TicketCount,
			TasksToDoCount:     row.TasksToDoCount,
			TasksHighPrioCount: row.TasksHighPrioCount,
		})
	}
	return boards, nil
}

func (r *BoardRepository) Relation(ctx context.Context, boardID, userID uint64) (access.Relationship, error) {
	var row boardRelationRow
	err := r.db.GetContext(ctx, &row, boardRelationQuery, userID, userID, userID, userID, boardID)
	if errors.Is(err, sql.ErrNoRows) {
		return access.Relationship{}, domain.ErrBoardNotFound
	}
	if err != nil {
		return access.Relationship{}, err
	}
	return access.Relationship{
		Owner:           row.IsOwner,
		Member:          row.IsMember,
		TaskParticipant: row.IsParticipant,
	}, nil
}

func (r *BoardRepository) Members(ctx context.Context, boardID uint64) ([]domain.User, error) {
	var rows []userRow
	err := r.db.SelectContext(ctx, &rows, `
SELECT u.id, u.email, u.first_name, u.last_name, u.password_hash, u.created_at
FROM users u
JOIN board_members m ON m.user_id = u.id
WHERE m.board_id = ?
ORDER BY u.id;`, boardID)
	if err != nil {
		return nil, err
	}
	members := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		members = append(members, mapUserRow(row))
	}
	return members, nil
}

func (r *BoardRepository) UpdateName(ctx context.Context, boardID uint64, name string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE boards SET name = ? WHERE id = ?`, name, boardID)
	return err
}

func (r *BoardRepository) SetMembers(ctx context.Context, boardID uint64, memberIDs []uint64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM board_members WHERE board_id = ?`, boardID); err != nil {
		return err
	}
	for _, memberID := range memberIDs {
		if _, err := tx.ExecContext(ctx, `INSERT INTO board_members (board_id, user_id) VALUES (?, ?)`, boardID, memberID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Delete cascades board -> tasks -> comments inside one transaction so a
// partially cascaded delete can never be observed.
func (r *BoardRepository) Delete(ctx context.Context, boardID uint64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	steps := []string{
		`DELETE c FROM comments c JOIN tasks t ON t.id = c.task_id WHERE t.board_id = ?`,
		`DELETE FROM tasks WHERE board_id = ?`,
		`DELETE FROM board_members WHERE board_id = ?`,
		`DELETE FROM boards WHERE id = ?`,
	}
	for _, stmt := range steps {
		if _, err := tx.ExecContext(ctx, stmt, boardID); err != nil {
			return fmt.Errorf("cascade delete board %d: %w", boardID, err)
		}
	}
	return tx.Commit()
}
