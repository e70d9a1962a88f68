package services

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-task-tracker/internal/models"
	"github.com/adanyl0v/go-task-tracker/internal/storage"
)

func newTestTaskService() TaskService {
	return NewTaskService(zerolog.Nop(), storage.NewMemoryStore())
}

func strPtr(s string) *string { return &s }

func TestTaskService_AddValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestTaskService()

	t.Run("empty title", func(t *testing.T) {
		_, err := svc.Add(ctx, "alice", "", nil)

		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Title cannot be empty.", validationErr.Message)
	})

	t.Run("title over limit", func(t *testing.T) {
		_, err := svc.Add(ctx, "alice", strings.Repeat("A", 201), nil)

		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Message, "200")
	})

	t.Run("description over limit", func(t *testing.T) {
		_, err := svc.Add(ctx, "alice", "ok", strPtr(strings.Repeat("A", 1001)))

		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Message, "1000")
	})

	t.Run("failed adds burn no ids", func(t *testing.T) {
		task, err := svc.Add(ctx, "alice", "first valid", nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), task.ID)
	})

	t.Run("title is stored trimmed", func(t *testing.T) {
		task, err := svc.Add(ctx, "alice", "  padded  ", nil)
		require.NoError(t, err)
		assert.Equal(t, "padded", task.Title)
	})
}

// TestTaskService_Lifecycle walks the add/list/toggle/update/delete
// sequence end to end.
func TestTaskService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestTaskService()

	first, err := svc.Add(ctx, "alice", "Buy milk", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.False(t, first.Completed)
	assert.Nil(t, first.Description)

	second, err := svc.Add(ctx, "alice", "Write report", strPtr("Q3 summary"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	tasks, err := svc.List(ctx, "alice", ListTasksParams{})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, int64(1), tasks[0].ID)
	assert.Equal(t, int64(2), tasks[1].ID)

	toggled, err := svc.Toggle(ctx, "alice", 1)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	updated, err := svc.Update(ctx, "alice", UpdateTaskParams{
		ID:    2,
		Title: strPtr("Write report v2"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Write report v2", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Q3 summary", *updated.Description)

	deleted, err := svc.Delete(ctx, "alice", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted.ID)

	_, err = svc.Get(ctx, "alice", 1)
	require.ErrorIs(t, err, storage.ErrTaskNotFound)
}

func TestTaskService_ToggleIsSymmetric(t *testing.T) {
	ctx := context.Background()
	svc := newTestTaskService()

	task, err := svc.Add(ctx, "alice", "Buy milk", strPtr("2 liters"))
	require.NoError(t, err)

	_, err = svc.Toggle(ctx, "alice", task.ID)
	require.NoError(t, err)

	restored, err := svc.Toggle(ctx, "alice", task.ID)
	require.NoError(t, err)

	assert.False(t, restored.Completed)
	assert.Equal(t, task.Title, restored.Title)
	assert.Equal(t, *task.Description, *restored.Description)
	assert.Equal(t, task.CreatedAt, restored.CreatedAt)
	assert.False(t, restored.UpdatedAt.Before(restored.CreatedAt))
}

func TestTaskService_OwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	svc := newTestTaskService()

	task, err := svc.Add(ctx, "alice", "private", nil)
	require.NoError(t, err)

	t.Run("foreign tasks yield forbidden", func(t *testing.T) {
		_, err := svc.Get(ctx, "bob", task.ID)
		require.ErrorIs(t, err, ErrTaskForbidden)

		_, err = svc.Update(ctx, "bob", UpdateTaskParams{ID: task.ID, Title: strPtr("stolen")})
		require.ErrorIs(t, err, ErrTaskForbidden)

		_, err = svc.Delete(ctx, "bob", task.ID)
		require.ErrorIs(t, err, ErrTaskForbidden)

		_, err = svc.Toggle(ctx, "bob", task.ID)
		require.ErrorIs(t, err, ErrTaskForbidden)
	})

	t.Run("missing tasks yield not found even for foreign callers", func(t *testing.T) {
		// Existence is checked before ownership.
		_, err := svc.Get(ctx, "bob", 999)
		require.ErrorIs(t, err, storage.ErrTaskNotFound)
	})

	t.Run("list never leaks foreign tasks", func(t *testing.T) {
		tasks, err := svc.List(ctx, "bob", ListTasksParams{})
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("forbidden mutations change nothing", func(t *testing.T) {
		got, err := svc.Get(ctx, "alice", task.ID)
		require.NoError(t, err)
		assert.Equal(t, "private", got.Title)
		assert.False(t, got.Completed)
	})
}

func TestTaskService_UpdateValidatesBeforeMutating(t *testing.T) {
	ctx := context.Background()
	svc := newTestTaskService()

	task, err := svc.Add(ctx, "alice", "Buy milk", strPtr("2 liters"))
	require.NoError(t, err)

	// A bad title rejects the whole update, including the valid
	// description that came with it.
	_, err = svc.Update(ctx, "alice", UpdateTaskParams{
		ID:          task.ID,
		Title:       strPtr("   "),
		Description: strPtr("changed"),
	})
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)

	got, err := svc.Get(ctx, "alice", task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, "2 liters", *got.Description)
	assert.Equal(t, task.UpdatedAt, got.UpdatedAt)
}

func TestTaskService_ListFilterAndPagination(t *testing.T) {
	ctx := context.Background()
	svc := newTestTaskService()

	for _, title := range []string{"one", "two", "three", "four"} {
		_, err := svc.Add(ctx, "alice", title, nil)
		require.NoError(t, err)
	}
	_, err := svc.Toggle(ctx, "alice", 2)
	require.NoError(t, err)

	completed := true
	tasks, err := svc.List(ctx, "alice", ListTasksParams{Completed: &completed})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, int64(2), tasks[0].ID)

	pending := false
	tasks, err = svc.List(ctx, "alice", ListTasksParams{Completed: &pending, Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, int64(3), tasks[0].ID)
}
