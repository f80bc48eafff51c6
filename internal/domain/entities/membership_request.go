package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// MembershipRequestState represents membership request lifecycle states.
// pending is the only non-terminal state.
type MembershipRequestState string

const (
	MembershipStatePending   MembershipRequestState = "pending"
	MembershipStateApproved  MembershipRequestState = "approved"
	MembershipStateRejected  MembershipRequestState = "rejected"
	MembershipStateCancelled MembershipRequestState = "cancelled"
)

// IsTerminal reports whether the state admits no further transitions
func (s MembershipRequestState) IsTerminal() bool {
	return s != MembershipStatePending
}

// MembershipRequest is a profile's application to join an agency roster
type MembershipRequest struct {
	ID          uuid.UUID              `json:"id"`
	ProfileID   uuid.UUID              `json:"profileId"`
	AgencyID    uuid.UUID              `json:"agencyId"`
	State       MembershipRequestState `json:"state"`
	SubmittedAt time.Time              `json:"submittedAt"`
	RespondedAt null.Time              `json:"respondedAt,omitempty"`
	Motive      null.String            `json:"motive,omitempty"`
}

// MembershipHistoryFilter narrows a paginated history query
type MembershipHistoryFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	State    *MembershipRequestState
}
