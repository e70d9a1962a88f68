package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/models"
	"github.com/adanyl0v/go-task-tracker/internal/storage"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	store  storage.Store
}

func NewTaskService(
	logger zerolog.Logger,
	store storage.Store,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		store:  store,
	}
}

func (s *taskServiceImpl) Add(ctx context.Context, owner models.Owner, title string, description *string) (*models.Task, error) {
	trimmedTitle, err := models.ValidateTitle(title)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Msg("rejected task title")
		return nil, err
	}

	err = models.ValidateDescription(description)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Msg("rejected task description")
		return nil, err
	}

	task := models.NewTask(owner, trimmedTitle, description, time.Now())
	err = s.store.Insert(ctx, task)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Str("user_id", string(owner)).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) List(ctx context.Context, owner models.Owner, params ListTasksParams) ([]*models.Task, error) {
	tasks, err := s.store.List(ctx, owner, storage.Filter{
		Completed: params.Completed,
		Skip:      params.Skip,
		Limit:     params.Limit,
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", string(owner)).
			Msg("failed to list tasks")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(tasks)).
		Str("user_id", string(owner)).
		Msg("listed tasks")
	return tasks, nil
}

func (s *taskServiceImpl) Get(ctx context.Context, owner models.Owner, id int64) (*models.Task, error) {
	return s.authorize(ctx, owner, id)
}

func (s *taskServiceImpl) Update(ctx context.Context, owner models.Owner, params UpdateTaskParams) (*models.Task, error) {
	_, err := s.authorize(ctx, owner, params.ID)
	if err != nil {
		return nil, err
	}

	title := params.Title
	if title != nil {
		trimmed, err := models.ValidateTitle(*title)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Int64("task_id", params.ID).
				Msg("rejected task title")
			return nil, err
		}
		title = &trimmed
	}

	err = models.ValidateDescription(params.Description)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Int64("task_id", params.ID).
			Msg("rejected task description")
		return nil, err
	}

	task, err := s.store.Update(ctx, params.ID, title, params.Description, time.Now())
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", params.ID).
			Msg("failed to update task")
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Str("user_id", string(owner)).
		Msg("updated task")
	return task, nil
}

func (s *taskServiceImpl) Delete(ctx context.Context, owner models.Owner, id int64) (*models.Task, error) {
	_, err := s.authorize(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	task, err := s.store.Delete(ctx, id)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to delete task")
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", id).
		Str("user_id", string(owner)).
		Msg("deleted task")
	return task, nil
}

func (s *taskServiceImpl) Toggle(ctx context.Context, owner models.Owner, id int64) (*models.Task, error) {
	_, err := s.authorize(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	task, err := s.store.Toggle(ctx, id, time.Now())
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to toggle task")
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Str("user_id", string(owner)).
		Bool("completed", task.Completed).
		Msg("toggled task")
	return task, nil
}

// authorize fetches the task and checks ownership, in that order.
// A missing task is reported as not found even if the caller could
// never have owned it, so callers can tell "doesn't exist" from
// "exists but not yours".
func (s *taskServiceImpl) authorize(ctx context.Context, owner models.Owner, id int64) (*models.Task, error) {
	task, err := s.store.Get(ctx, id)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Int64("task_id", id).
			Msg("task lookup failed")
		return nil, err
	}

	if task.Owner != owner {
		s.logger.Warn().
			Int64("task_id", id).
			Str("user_id", string(owner)).
			Msg("task owned by another user")
		return nil, ErrTaskForbidden
	}
	return task, nil
}
