// Package policy holds the role and ownership rules consulted by every
// workflow operation. All checks are pure functions of the caller, the
// target's ownership and, for demotions, the current admin count.
package policy

import (
	"article-review-cms/models"
)

const MessageLastAdmin = "You are the last admin"

// Authenticated rejects requests with no resolved identity.
func Authenticated(caller *models.User) error {
	if caller == nil {
		return models.Forbidden()
	}
	return nil
}

// SelfOrAdmin allows an operation on user targetID when the caller is that
// user or an admin.
func SelfOrAdmin(caller *models.User, targetID uint) error {
	if err := Authenticated(caller); err != nil {
		return err
	}
	if caller.ID == targetID || caller.IsAdmin() {
		return nil
	}
	return models.Forbidden()
}

// NotContributor gates authoring articles and reviewing changes.
func NotContributor(caller *models.User) error {
	if err := Authenticated(caller); err != nil {
		return err
	}
	switch caller.Role {
	case models.RoleAdmin, models.RoleModerator:
		return nil
	default:
		return models.Forbidden()
	}
}

// AdminOnly gates deletions, role changes and review revisions.
func AdminOnly(caller *models.User) error {
	if err := Authenticated(caller); err != nil {
		return err
	}
	if caller.IsAdmin() {
		return nil
	}
	return models.Forbidden()
}

// LeavesAnAdmin rejects an operation that would remove admin rights from
// target (by demotion or deletion) while fewer than two admins exist.
func LeavesAnAdmin(target *models.User, newRole models.UserRole, adminCount int64) error {
	if !target.IsAdmin() || newRole == models.RoleAdmin {
		return nil
	}
	if adminCount < 2 {
		return models.BadRequest(MessageLastAdmin)
	}
	return nil
}

// CanChangeRole combines the admin-only rule with the last-admin guard.
func CanChangeRole(caller, target *models.User, newRole models.UserRole, adminCount int64) error {
	if err := AdminOnly(caller); err != nil {
		return err
	}
	if !newRole.Valid() {
		return models.Validation("Wrong user status. Must be 0, 1 or 2")
	}
	return LeavesAnAdmin(target, newRole, adminCount)
}

// CanViewChange allows the proposer, moderators and admins.
func CanViewChange(caller *models.User, change *models.Change) error {
	if err := Authenticated(caller); err != nil {
		return err
	}
	if caller.ID == change.ProposerID {
		return nil
	}
	return NotContributor(caller)
}

// CanViewReview allows the reviewer, the proposer of the reviewed change and
// admins.
func CanViewReview(caller *models.User, review *models.Review, change *models.Change) error {
	if err := Authenticated(caller); err != nil {
		return err
	}
	switch {
	case caller.IsAdmin():
		return nil
	case caller.ID == review.ReviewerID:
		return nil
	case change != nil && caller.ID == change.ProposerID:
		return nil
	default:
		return models.Forbidden()
	}
}
