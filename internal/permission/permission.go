// Package permission is the pure authorization policy: a fixed decision
// table per role plus ownership checks. No I/O here so the rules stay
// independently testable.
package permission

import "talenthub/internal/entity"

var roleRank = map[entity.UserRole]int{
	entity.RoleViewer:  1,
	entity.RoleCreator: 2,
	entity.RoleAdmin:   3,
}

// NormalizeRole maps unknown or legacy role strings to viewer. Old user
// rows migrated from the previous system carry values like "student";
// failing closed keeps them usable without granting anything.
func NormalizeRole(role string) entity.UserRole {
	switch entity.UserRole(role) {
	case entity.RoleViewer, entity.RoleCreator, entity.RoleAdmin:
		return entity.UserRole(role)
	}
	return entity.RoleViewer
}

// CanUpload reports whether the role may create posts.
func CanUpload(role entity.UserRole) bool {
	return HasMinimumRole(role, entity.RoleCreator)
}

// CanModerate reports whether the role may approve/reject/restore/purge.
func CanModerate(role entity.UserRole) bool {
	return HasMinimumRole(role, entity.RoleAdmin)
}

// CanMutatePost reports whether the caller may edit or soft-delete the
// post. Owners lose edit rights once the post is rejected or deleted;
// admins never do.
func CanMutatePost(role entity.UserRole, isOwner bool, status entity.PostStatus, isDeleted bool) bool {
	if role == entity.RoleAdmin {
		return true
	}
	if !isOwner {
		return false
	}
	return status != entity.StatusRejected && !isDeleted
}

// CanVote forbids voting on your own post regardless of role.
func CanVote(isOwner bool) bool {
	return !isOwner
}

// HasMinimumRole is the coarse ordinal check (viewer < creator < admin)
// used for route gating only, never for ownership decisions.
func HasMinimumRole(role, required entity.UserRole) bool {
	return roleRank[role] >= roleRank[required]
}
