package repository

import (
	"context"

	"mtaanimarket/internal/domain/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetByID(ctx context.Context, id string) (*entity.Notification, error)

	// ListByUser returns notifications newest first. unreadOnly and
	// typeFilter narrow the result; empty typeFilter means all types.
	ListByUser(ctx context.Context, userID string, unreadOnly bool, typeFilter string, limit, offset int) ([]*entity.Notification, int64, error)

	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)

	// CountUnread is index-backed; it must not scan the user's rows.
	CountUnread(ctx context.Context, userID string) (int64, error)

	Delete(ctx context.Context, id string) error
	DeleteAllByUser(ctx context.Context, userID string) (int64, error)
}
