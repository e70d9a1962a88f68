package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	now := time.Now()
	description := "Q3 summary"

	task := NewTask("alice", "Write report", &description, now)

	assert.Equal(t, Owner("alice"), task.Owner)
	assert.Equal(t, "Write report", task.Title)
	assert.Equal(t, &description, task.Description)
	assert.False(t, task.Completed)
	assert.Equal(t, now, task.CreatedAt)
	assert.Equal(t, now, task.UpdatedAt)
}

func TestTask_ApplyUpdate(t *testing.T) {
	created := time.Now()
	description := "Q3 summary"
	task := NewTask("alice", "Write report", &description, created)

	later := created.Add(time.Minute)
	newTitle := "Write report v2"
	task.ApplyUpdate(&newTitle, nil, later)

	assert.Equal(t, "Write report v2", task.Title)
	require.NotNil(t, task.Description)
	assert.Equal(t, "Q3 summary", *task.Description, "omitted field keeps its value")
	assert.Equal(t, created, task.CreatedAt)
	assert.Equal(t, later, task.UpdatedAt)
	assert.True(t, task.UpdatedAt.After(task.CreatedAt))
}

func TestTask_ToggleCompletion(t *testing.T) {
	created := time.Now()
	task := NewTask("alice", "Buy milk", nil, created)

	task.ToggleCompletion(created.Add(time.Second))
	assert.True(t, task.Completed)

	// The flip is symmetric: a second toggle restores the original
	// state and touches nothing but the timestamps.
	task.ToggleCompletion(created.Add(2 * time.Second))
	assert.False(t, task.Completed)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, created, task.CreatedAt)
	assert.Equal(t, created.Add(2*time.Second), task.UpdatedAt)
}

func TestTask_Clone(t *testing.T) {
	description := "original"
	task := NewTask("alice", "Buy milk", &description, time.Now())

	clone := task.Clone()
	changed := "changed"
	clone.Title = "changed"
	clone.Description = &changed

	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "original", *task.Description)
}
