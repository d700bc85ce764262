package contracts

import (
	"context"

	"clinicore-service/internal/app/models"
)

type NotificationRepository interface {
	CreateNotifications(ctx context.Context, notifications []models.Notification) ([]models.Notification, error)
}

// NotificationPublisher hands freshly committed notification records to the
// delivery pipeline. Publishing is best-effort; delivery itself is another
// service's concern.
type NotificationPublisher interface {
	PublishNotifications(ctx context.Context, notifications []models.Notification) error
}
