package auth

import "github.com/userhub/accounts-api/internal/core/domain"

// Decision is the outcome of an access-policy check.
type Decision struct {
	Allowed bool
	Reason  string
}

var allow = Decision{Allowed: true}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// CanDeleteUser permits account deletion to admins only.
func CanDeleteUser(actor *domain.User) Decision {
	if actor.IsAdmin() {
		return allow
	}
	return deny("must be admin")
}

// CanUpdateUser permits an account update to admins and to the account's
// owner, identified by name.
func CanUpdateUser(actor *domain.User, targetName string) Decision {
	if actor.IsAdmin() || actor.Name == targetName {
		return allow
	}
	return deny("must be owner or admin")
}
