package usecase

import (
	"context"
	"encoding/json"

	"mtaanimarket/internal/domain/entity"
	"mtaanimarket/internal/domain/repository"
	"mtaanimarket/pkg/errors"
	"mtaanimarket/pkg/logger"
)

// BadgePusher delivers best-effort unread-count updates to connected
// clients. Delivery is advisory: the polling endpoints remain the
// source of truth.
type BadgePusher interface {
	Push(userID string, payload []byte)
}

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	pusher           BadgePusher
}

func NewNotificationUseCase(
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	pusher BadgePusher,
) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		pusher:           pusher,
	}
}

type EmitInput struct {
	Type        string
	Title       string
	Message     string
	RelatedID   string
	RelatedType string
	Important   bool
}

func (uc *NotificationUseCase) Emit(ctx context.Context, userID string, input EmitInput) (*entity.Notification, error) {
	if !entity.IsValidNotificationType(input.Type) {
		return nil, errors.Validation("Invalid notification type", nil)
	}

	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.NotFound("Recipient", err)
		}
		return nil, err
	}

	notification := &entity.Notification{
		UserID:      userID,
		Type:        input.Type,
		Title:       input.Title,
		Message:     input.Message,
		RelatedID:   input.RelatedID,
		RelatedType: input.RelatedType,
		IsImportant: input.Important,
	}

	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}

	uc.pushBadge(ctx, userID)

	return notification, nil
}

func (uc *NotificationUseCase) List(ctx context.Context, userID, tab string, page, limit int) ([]*entity.Notification, int64, error) {
	unreadOnly := false
	typeFilter := ""

	switch tab {
	case "", "all":
	case "unread":
		unreadOnly = true
	default:
		if !entity.IsValidNotificationType(tab) {
			return nil, 0, errors.Validation("Invalid notification filter", nil)
		}
		typeFilter = tab
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.notificationRepo.ListByUser(ctx, userID, unreadOnly, typeFilter, limit, offset)
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, callerID, notificationID string) (*entity.Notification, error) {
	notification, err := uc.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}

	if notification.UserID != callerID {
		return nil, errors.Forbidden("You can only manage your own notifications", nil)
	}

	// Already-read rows are left alone; repeating the call is harmless.
	if notification.IsRead {
		return notification, nil
	}

	if err := uc.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		return nil, err
	}
	notification.IsRead = true

	uc.pushBadge(ctx, callerID)

	return notification, nil
}

func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	affected, err := uc.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, err
	}

	uc.pushBadge(ctx, userID)

	return affected, nil
}

func (uc *NotificationUseCase) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return uc.notificationRepo.CountUnread(ctx, userID)
}

func (uc *NotificationUseCase) Delete(ctx context.Context, callerID, notificationID string) error {
	notification, err := uc.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}

	if notification.UserID != callerID {
		return errors.Forbidden("You can only manage your own notifications", nil)
	}

	if err := uc.notificationRepo.Delete(ctx, notificationID); err != nil {
		return err
	}

	uc.pushBadge(ctx, callerID)

	return nil
}

func (uc *NotificationUseCase) ClearAll(ctx context.Context, userID string) (int64, error) {
	affected, err := uc.notificationRepo.DeleteAllByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	uc.pushBadge(ctx, userID)

	return affected, nil
}

func (uc *NotificationUseCase) pushBadge(ctx context.Context, userID string) {
	if uc.pusher == nil {
		return
	}

	count, err := uc.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		logger.Warn("Failed to refresh badge count for %s: %v", userID, err)
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"type":         "badge",
		"unread_count": count,
	})
	if err != nil {
		return
	}

	uc.pusher.Push(userID, payload)
}
