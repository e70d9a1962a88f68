package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

// MemoryStore keeps tasks in a map guarded by a single RWMutex.
// Every operation runs whole under the lock, which gives the per-ID
// serialization the service contract requires and lets List hand out
// a consistent snapshot. Tasks are stored and returned as copies so
// callers can never mutate shared state behind the lock.
type MemoryStore struct {
	mu     sync.RWMutex
	tasks  map[int64]*models.Task
	nextID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tasks:  make(map[int64]*models.Task),
		nextID: 1,
	}
}

func (s *MemoryStore) Insert(_ context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if task.ID == 0 {
		task.ID = s.nextID
		s.nextID++
	} else if task.ID >= s.nextID {
		// Pre-assigned IDs keep the counter ahead so later
		// allocations stay unique.
		s.nextID = task.ID + 1
	}

	if _, exists := s.tasks[task.ID]; exists {
		return ErrDuplicateTaskID
	}

	s.tasks[task.ID] = task.Clone()
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id int64) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, exists := s.tasks[id]
	if !exists {
		return nil, ErrTaskNotFound
	}
	return task.Clone(), nil
}

func (s *MemoryStore) Update(_ context.Context, id int64, title, description *string, now time.Time) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, exists := s.tasks[id]
	if !exists {
		return nil, ErrTaskNotFound
	}

	task.ApplyUpdate(title, description, now)
	return task.Clone(), nil
}

func (s *MemoryStore) Toggle(_ context.Context, id int64, now time.Time) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, exists := s.tasks[id]
	if !exists {
		return nil, ErrTaskNotFound
	}

	task.ToggleCompletion(now)
	return task.Clone(), nil
}

func (s *MemoryStore) Delete(_ context.Context, id int64) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, exists := s.tasks[id]
	if !exists {
		return nil, ErrTaskNotFound
	}

	delete(s.tasks, id)
	return task, nil
}

func (s *MemoryStore) List(_ context.Context, owner models.Owner, filter Filter) ([]*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if task.Owner != owner {
			continue
		}
		if filter.Completed != nil && task.Completed != *filter.Completed {
			continue
		}
		tasks = append(tasks, task.Clone())
	}

	// Ascending ID is creation order.
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].ID < tasks[j].ID
	})

	if filter.Skip > 0 {
		if filter.Skip >= len(tasks) {
			return []*models.Task{}, nil
		}
		tasks = tasks[filter.Skip:]
	}
	if filter.Limit > 0 && filter.Limit < len(tasks) {
		tasks = tasks[:filter.Limit]
	}
	return tasks, nil
}
