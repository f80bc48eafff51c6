package notifications

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	domainRepos "agency-platform.backend/internal/domain/repositories"
	"agency-platform.backend/pkg/logger"
)

// LoggingGateway is the default NotificationGateway. It records every
// dispatch through the structured logger; swapping in a real email or
// websocket provider only touches this package.
type LoggingGateway struct{}

func NewLoggingGateway() domainRepos.NotificationGateway {
	return &LoggingGateway{}
}

func (g *LoggingGateway) SendEmail(ctx context.Context, to, subject, body string) error {
	logger.Info(ctx, "notification email dispatched",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("body_len", len(body)),
	)
	return nil
}

func (g *LoggingGateway) PushToUser(ctx context.Context, userID uuid.UUID, message string) error {
	logger.Info(ctx, "notification push dispatched",
		zap.String("user_id", userID.String()),
		zap.String("message", message),
	)
	return nil
}
