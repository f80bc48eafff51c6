package usecases

import (
	"agency-platform.backend/internal/domain/entities"
)

// PermissionPolicy answers who may act on what. All role checks in this
// package go through it; handlers only build the Actor.
type PermissionPolicy struct{}

// CanManageAgency allows the agency's owning user and admins
func (PermissionPolicy) CanManageAgency(actor entities.Actor, agency *entities.Agency) bool {
	if actor.IsAdmin() {
		return true
	}
	return agency != nil && agency.UserID == actor.UserID
}

// CanManageProfile allows the profile's owner, the managing agency's owner
// and admins. managingAgency may be nil when the profile is unaffiliated.
func (PermissionPolicy) CanManageProfile(actor entities.Actor, profile *entities.Profile, managingAgency *entities.Agency) bool {
	if actor.IsAdmin() {
		return true
	}
	if profile != nil && profile.UserID == actor.UserID {
		return true
	}
	return managingAgency != nil && managingAgency.UserID == actor.UserID
}

// CanCancelRequest allows the requesting profile's owner, the target
// agency's owner and admins
func (PermissionPolicy) CanCancelRequest(actor entities.Actor, profile *entities.Profile, agency *entities.Agency) bool {
	if actor.IsAdmin() {
		return true
	}
	if profile != nil && profile.UserID == actor.UserID {
		return true
	}
	return agency != nil && agency.UserID == actor.UserID
}
