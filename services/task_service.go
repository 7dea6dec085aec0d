package services

import (
	"context"
	"time"

	"pureHeartAPI/internal/apperr"
	"pureHeartAPI/internal/repository"
	"pureHeartAPI/internal/task"
	"pureHeartAPI/internal/user"
)

// UrgentTaskMaxMinutes bounds the quick-win task list shown when an urge is
// active: anything that can be started in ten minutes or less.
const UrgentTaskMaxMinutes = 10

type TaskService struct {
	tasks repository.TaskRepository
	users repository.UserRepository
	locks *EntityLocks
}

func NewTaskService(tasks repository.TaskRepository, users repository.UserRepository, locks *EntityLocks) *TaskService {
	return &TaskService{tasks: tasks, users: users, locks: locks}
}

func (s *TaskService) GetTask(ctx context.Context, id int) (*task.Task, error) {
	return s.tasks.Get(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context) ([]*task.Task, error) {
	return s.tasks.List(ctx)
}

func (s *TaskService) ListByCategory(ctx context.Context, category task.Category) ([]*task.Task, error) {
	if !task.ValidCategory(category) {
		return nil, apperr.Validationf("unknown task category %q", category)
	}
	return s.tasks.ListByCategory(ctx, category)
}

// UrgentTasks returns up to limit short tasks suitable as immediate
// replacements for an urge.
func (s *TaskService) UrgentTasks(ctx context.Context, limit int) ([]*task.Task, error) {
	if limit <= 0 {
		limit = 5
	}
	all, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}

	urgent := []*task.Task{}
	for _, t := range all {
		if t.DurationMinutes <= UrgentTaskMaxMinutes {
			urgent = append(urgent, t)
			if len(urgent) == limit {
				break
			}
		}
	}
	return urgent, nil
}

// Complete records a one-shot task completion and awards the task's static
// point value. Completion is a state transition, not an accumulator: a second
// call for the same task and user fails with a conflict and awards nothing.
func (s *TaskService) Complete(ctx context.Context, userID, taskID int) (*task.CompletionAck, error) {
	unlock := s.locks.Lock(userKey(userID))
	defer unlock()

	t, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	done, err := s.tasks.IsCompleted(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if done {
		return nil, apperr.Conflictf("task %d already completed by user %d", taskID, userID)
	}

	if err := s.tasks.Complete(ctx, userID, taskID, time.Now()); err != nil {
		return nil, err
	}

	u.Points += t.Points
	u.Level = user.LevelForPoints(u.Points)
	if t.Category == task.CategorySpiritual {
		u.SpiritualScore++
	}
	if _, err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	return &task.CompletionAck{TaskID: taskID, PointsAwarded: t.Points}, nil
}
