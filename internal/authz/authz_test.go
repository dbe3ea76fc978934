package authz

import (
	"testing"

	domainErrors "github.com/kakao-farmer/platform-api/internal/domain/errors"
	"github.com/kakao-farmer/platform-api/internal/domain/model"
)

func TestAuthorize_Owner(t *testing.T) {
	alice := model.User{ID: 1}
	video := model.Video{ID: 10, UserID: 1}
	if err := Authorize(alice, video); err != nil {
		t.Fatalf("owner must be allowed: %v", err)
	}
}

func TestAuthorize_NotOwner(t *testing.T) {
	bob := model.User{ID: 2}
	for _, resource := range []Owned{
		model.Video{ID: 10, UserID: 1},
		model.Playlist{ID: 11, UserID: 1},
		model.Formation{ID: 12, UserID: 1},
		model.Lecture{ID: 13, UserID: 1},
	} {
		err := Authorize(bob, resource)
		if !domainErrors.IsForbidden(err) {
			t.Fatalf("want forbidden, got %v", err)
		}
	}
}
