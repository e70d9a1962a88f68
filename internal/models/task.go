package models

import "time"

// Owner identifies who a task belongs to. It is passed explicitly
// to every service call and never inferred from ambient state. The
// console binary runs with a single fixed owner.
type Owner string

// Task is a single todo item. ID and CreatedAt are set once at
// creation and never change afterwards.
type Task struct {
	ID          int64
	Owner       Owner
	Title       string
	Description *string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTask builds a pending task with both timestamps set to now.
// The title must already be validated and trimmed by the caller.
func NewTask(owner Owner, title string, description *string, now time.Time) *Task {
	return &Task{
		Owner:       owner,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ApplyUpdate overwrites the provided fields and refreshes UpdatedAt.
// Validation is the caller's responsibility.
func (t *Task) ApplyUpdate(title, description *string, now time.Time) {
	if title != nil {
		t.Title = *title
	}
	if description != nil {
		t.Description = description
	}
	t.UpdatedAt = now
}

// ToggleCompletion flips the completed flag and refreshes UpdatedAt.
// The flip is symmetric: toggling twice restores the original state.
func (t *Task) ToggleCompletion(now time.Time) {
	t.Completed = !t.Completed
	t.UpdatedAt = now
}

// Clone returns a copy detached from the receiver.
func (t *Task) Clone() *Task {
	clone := *t
	if t.Description != nil {
		description := *t.Description
		clone.Description = &description
	}
	return &clone
}
