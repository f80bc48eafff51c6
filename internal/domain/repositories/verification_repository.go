package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"agency-platform.backend/internal/domain/entities"
)

// VerificationRepository defines verification record data operations
type VerificationRepository interface {
	Create(ctx context.Context, record *entities.VerificationRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationRecord, error)
	GetByProfileID(ctx context.Context, profileID uuid.UUID) (*entities.VerificationRecord, error)
	DeleteByProfileID(ctx context.Context, profileID uuid.UUID) error
	DeleteByAgencyID(ctx context.Context, agencyID uuid.UUID) error
	ListByAgencyIDBetween(ctx context.Context, agencyID uuid.UUID, from, to time.Time) ([]*entities.VerificationRecord, error)
}

// VerificationPaymentRepository defines verification payment data operations
type VerificationPaymentRepository interface {
	Create(ctx context.Context, payment *entities.VerificationPayment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationPayment, error)
	GetByExternalRef(ctx context.Context, ref string) (*entities.VerificationPayment, error)
	// HasCompletedForProfile reports whether any completed payment exists for
	// the profile, across all agencies
	HasCompletedForProfile(ctx context.Context, profileID uuid.UUID) (bool, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, paidAt time.Time) error
}
