package authz

import (
	domainErrors "github.com/kakao-farmer/platform-api/internal/domain/errors"
	"github.com/kakao-farmer/platform-api/internal/domain/model"
)

// Owned is anything carrying a reference to its owning user. The owner
// is fixed at creation and never reassigned.
type Owned interface {
	OwnerID() uint
}

// Authorize permits a mutating action iff the actor owns the resource.
// Reads and lists are never gated, so they bypass this check entirely.
func Authorize(actor model.User, resource Owned) error {
	if resource.OwnerID() != actor.ID {
		return domainErrors.ErrForbidden
	}
	return nil
}
