// Package repository defines the record-store boundary of the engine: one
// keyed CRUD interface per record family. The engine never touches storage
// directly; implementations live in the memory and postgres subpackages and
// are constructor-injected into the services.
package repository

import (
	"context"
	"time"

	"pureHeartAPI/internal/dailycontent"
	"pureHeartAPI/internal/partnership"
	"pureHeartAPI/internal/task"
	"pureHeartAPI/internal/urgelog"
	"pureHeartAPI/internal/user"
)

type UserRepository interface {
	Get(ctx context.Context, id int) (*user.User, error)
	List(ctx context.Context) ([]*user.User, error)
	Create(ctx context.Context, u *user.User) (*user.User, error)
	Update(ctx context.Context, u *user.User) (*user.User, error)
}

type UrgeLogRepository interface {
	Get(ctx context.Context, id int) (*urgelog.UrgeLog, error)
	// ListByUser returns the user's logs ordered by timestamp ascending.
	ListByUser(ctx context.Context, userID int) ([]*urgelog.UrgeLog, error)
	Create(ctx context.Context, l *urgelog.UrgeLog) (*urgelog.UrgeLog, error)
}

type TaskRepository interface {
	Get(ctx context.Context, id int) (*task.Task, error)
	List(ctx context.Context) ([]*task.Task, error)
	ListByCategory(ctx context.Context, category task.Category) ([]*task.Task, error)
	// Complete records a one-shot completion; a second completion of the same
	// task by the same user fails with a conflict.
	Complete(ctx context.Context, userID, taskID int, at time.Time) error
	IsCompleted(ctx context.Context, userID, taskID int) (bool, error)
}

type PartnershipRepository interface {
	Get(ctx context.Context, id int) (*partnership.Partnership, error)
	Create(ctx context.Context, p *partnership.Partnership) (*partnership.Partnership, error)
	Update(ctx context.Context, p *partnership.Partnership) (*partnership.Partnership, error)
	// CurrentForUser returns the user's pending or active partnership, or
	// (nil, nil) when the user has none. Ended partnerships never match.
	CurrentForUser(ctx context.Context, userID int) (*partnership.Partnership, error)
	AddMessage(ctx context.Context, m *partnership.Message) (*partnership.Message, error)
	MessagesBetween(ctx context.Context, userA, userB int) ([]*partnership.Message, error)
}

type DailyContentRepository interface {
	Get(ctx context.Context, id int) (*dailycontent.Content, error)
	List(ctx context.Context) ([]*dailycontent.Content, error)
	ListByType(ctx context.Context, t dailycontent.ContentType) ([]*dailycontent.Content, error)
	ByDate(ctx context.Context, date string) (*dailycontent.Content, error)
}
