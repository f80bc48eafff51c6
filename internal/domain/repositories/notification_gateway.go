package repositories

import (
	"context"

	"github.com/google/uuid"
)

// NotificationGateway delivers email and real-time notifications.
// Dispatch happens strictly after the owning state transition commits;
// delivery failures are logged by callers, never propagated.
type NotificationGateway interface {
	SendEmail(ctx context.Context, to, subject, body string) error
	PushToUser(ctx context.Context, userID uuid.UUID, message string) error
}
