package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// TaskStore keeps tasks in a map keyed by their logical id.
type TaskStore struct {
	mu    sync.RWMutex
	tasks map[int64]domain.Task
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore returns an empty TaskStore.
func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: make(map[int64]domain.Task)}
}

// Count implements store.TaskStore.
func (s *TaskStore) Count(_ context.Context, filter store.TaskFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if filter.MatchesAll() {
		return len(s.tasks), nil
	}

	count := 0
	for _, task := range s.tasks {
		if filter.Matches(task.Title, task.Description) {
			count++
		}
	}
	return count, nil
}

// List implements store.TaskStore.
func (s *TaskStore) List(
	_ context.Context,
	filter store.TaskFilter,
	offset, limit int,
) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if filter.Matches(task.Title, task.Description) {
			matched = append(matched, task)
		}
	}
	slices.SortFunc(matched, func(a, b domain.Task) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	offset = max(offset, 0)
	if offset >= len(matched) || limit <= 0 {
		return []*domain.Task{}, nil
	}
	end := min(offset+limit, len(matched))

	result := make([]*domain.Task, 0, end-offset)
	for _, task := range matched[offset:end] {
		task := task
		result = append(result, &task)
	}
	return result, nil
}

// GetByID implements store.TaskStore.
func (s *TaskStore) GetByID(_ context.Context, id int64) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return &task, nil
}

// MaxID implements store.TaskStore.
func (s *TaskStore) MaxID(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var highest int64
	for id := range s.tasks {
		highest = max(highest, id)
	}
	return highest, nil
}

// Create implements store.TaskStore.
func (s *TaskStore) Create(_ context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.ID]; exists {
		return store.ErrTaskIDConflict
	}
	s.tasks[task.ID] = *task
	return nil
}

// Update implements store.TaskStore.
func (s *TaskStore) Update(_ context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tasks[task.ID]
	if !ok {
		return store.ErrTaskNotFound
	}
	existing.Title = task.Title
	existing.Description = task.Description
	s.tasks[task.ID] = existing
	return nil
}

// Delete implements store.TaskStore.
func (s *TaskStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}
