// Package permissions is the single decision table for the API: every write
// path funnels through one of the three entry points below. Decisions are pure
// functions of the acting user, the action class and (for owned content) the
// ownership relation, so the table is testable without any HTTP plumbing.
package permissions

import (
	"net/http"

	"title-review-api/models"
)

// Action classifies a request by HTTP method semantics.
type Action int

const (
	ActionSafe Action = iota
	ActionCreate
	ActionMutate
	ActionDelete
)

// FromMethod maps an HTTP method onto its action class.
func FromMethod(method string) Action {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return ActionSafe
	case http.MethodPost:
		return ActionCreate
	case http.MethodDelete:
		return ActionDelete
	default:
		return ActionMutate
	}
}

// CanManageCatalog covers categories, genres and titles: reads are public,
// writes are admin-tier only. Moderators do not administer the catalog.
func CanManageCatalog(user *models.User, action Action) bool {
	if action == ActionSafe {
		return true
	}
	return user != nil && user.IsAdmin()
}

// CanTouchContent covers reviews and comments. Reads are public, creation
// needs any authenticated identity, mutation and deletion need ownership or
// moderator-tier authority. Ownership and tier are independent grants.
func CanTouchContent(user *models.User, action Action, isOwner bool) bool {
	switch action {
	case ActionSafe:
		return true
	case ActionCreate:
		return user != nil
	default:
		if user == nil {
			return false
		}
		return isOwner || user.IsModerator() || user.IsAdmin()
	}
}

// CanAdministerUsers gates the /users collection outside the "me" alias.
func CanAdministerUsers(user *models.User) bool {
	return user != nil && user.IsAdmin()
}
