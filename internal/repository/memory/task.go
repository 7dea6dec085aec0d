package memory

import (
	"context"
	"sort"
	"time"

	"pureHeartAPI/internal/apperr"
	"pureHeartAPI/internal/repository"
	"pureHeartAPI/internal/task"
)

type taskRepo struct {
	s *Store
}

func (s *Store) Tasks() repository.TaskRepository {
	return &taskRepo{s: s}
}

func (r *taskRepo) Get(ctx context.Context, id int) (*task.Task, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tasks[id]
	if !ok {
		return nil, apperr.NotFoundf("task with id %d not found", id)
	}
	c := *t
	return &c, nil
}

func (r *taskRepo) List(ctx context.Context) ([]*task.Task, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*task.Task, 0, len(r.s.tasks))
	for _, t := range r.s.tasks {
		c := *t
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *taskRepo) ListByCategory(ctx context.Context, category task.Category) ([]*task.Task, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []*task.Task{}
	for _, t := range r.s.tasks {
		if t.Category != category {
			continue
		}
		c := *t
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *taskRepo) Complete(ctx context.Context, userID, taskID int, at time.Time) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tasks[taskID]; !ok {
		return apperr.NotFoundf("task with id %d not found", taskID)
	}
	done := r.s.completions[userID]
	if done == nil {
		done = make(map[int]time.Time)
		r.s.completions[userID] = done
	}
	if _, ok := done[taskID]; ok {
		return apperr.Conflictf("task %d already completed by user %d", taskID, userID)
	}
	done[taskID] = at
	return nil
}

func (r *taskRepo) IsCompleted(ctx context.Context, userID, taskID int) (bool, error) {
	if err := r.s.delay(ctx); err != nil {
		return false, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.completions[userID][taskID]
	return ok, nil
}
