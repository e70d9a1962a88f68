package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

// PostgresStore persists tasks in a tasks table with a BIGSERIAL
// primary key, so ID allocation is atomic and IDs are never reissued
// after a delete. Update and Toggle are single statements; the
// database serializes concurrent writes to the same row.
type PostgresStore struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewPostgresStore(logger zerolog.Logger, pgPool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *PostgresStore) Insert(ctx context.Context, task *models.Task) error {
	const insertTaskQuery = `
INSERT INTO tasks (user_id,
                   title,
                   description,
                   completed,
                   created_at,
                   updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`
	err := s.pgPool.QueryRow(
		ctx,
		insertTaskQuery,
		string(task.Owner),
		task.Title,
		task.Description,
		task.Completed,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&task.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			s.logger.Error().
				Int64("task_id", task.ID).
				Msg("task id already exists")
			return ErrDuplicateTaskID
		}

		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return err
	}
	s.logger.Debug().
		Int64("task_id", task.ID).
		Msg("inserted task")

	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id int64) (*models.Task, error) {
	task := &models.Task{ID: id}

	const selectTaskQuery = `
SELECT user_id,
       title,
       description,
       completed,
       created_at,
       updated_at
FROM tasks
WHERE id = $1
`
	err := s.pgPool.QueryRow(
		ctx,
		selectTaskQuery,
		id,
	).Scan(
		&task.Owner,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to select task")
		return nil, err
	}

	return task, nil
}

func (s *PostgresStore) Update(ctx context.Context, id int64, title, description *string, now time.Time) (*models.Task, error) {
	task := &models.Task{
		ID:        id,
		UpdatedAt: now,
	}

	const updateTaskQuery = `
UPDATE tasks
SET title = COALESCE($1, title),
    description = COALESCE($2, description),
    updated_at = $3
WHERE id = $4
RETURNING user_id, title, description, completed, created_at
`
	err := s.pgPool.QueryRow(
		ctx,
		updateTaskQuery,
		title,
		description,
		task.UpdatedAt,
		task.ID,
	).Scan(
		&task.Owner,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to update task")
		return nil, err
	}
	s.logger.Debug().
		Int64("task_id", id).
		Msg("updated task")

	return task, nil
}

func (s *PostgresStore) Toggle(ctx context.Context, id int64, now time.Time) (*models.Task, error) {
	task := &models.Task{
		ID:        id,
		UpdatedAt: now,
	}

	const toggleTaskQuery = `
UPDATE tasks
SET completed = NOT completed,
    updated_at = $1
WHERE id = $2
RETURNING user_id, title, description, completed, created_at
`
	err := s.pgPool.QueryRow(
		ctx,
		toggleTaskQuery,
		task.UpdatedAt,
		task.ID,
	).Scan(
		&task.Owner,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to toggle task")
		return nil, err
	}
	s.logger.Debug().
		Int64("task_id", id).
		Bool("completed", task.Completed).
		Msg("toggled task")

	return task, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id int64) (*models.Task, error) {
	task := &models.Task{ID: id}

	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1
RETURNING user_id, title, description, completed, created_at, updated_at
`
	err := s.pgPool.QueryRow(
		ctx,
		deleteTaskQuery,
		id,
	).Scan(
		&task.Owner,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to delete task")
		return nil, err
	}
	s.logger.Debug().
		Int64("task_id", id).
		Msg("deleted task")

	return task, nil
}

func (s *PostgresStore) List(ctx context.Context, owner models.Owner, filter Filter) ([]*models.Task, error) {
	// A nil limit means LIMIT ALL in Postgres.
	var limit *int
	if filter.Limit > 0 {
		limit = &filter.Limit
	}

	const selectTasksQuery = `
SELECT id,
       title,
       description,
       completed,
       created_at,
       updated_at
FROM tasks
WHERE user_id = $1 AND
      ($2::boolean IS NULL OR completed = $2)
ORDER BY id
OFFSET $3 LIMIT $4
`
	rows, err := s.pgPool.Query(
		ctx,
		selectTasksQuery,
		string(owner),
		filter.Completed,
		filter.Skip,
		limit,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", string(owner)).
			Msg("failed to select tasks")
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		task := &models.Task{Owner: owner}
		err = rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Completed,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan task")
			return nil, err
		}
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}

	return tasks, nil
}
