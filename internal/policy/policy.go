// Package policy holds the one visibility decision shared by every read path.
//
// Public topics expose their full content to anyone, private topics only to
// members and admins; a non-member still sees private topic metadata, just
// with empty post/member lists. Callers must not re-derive this rule.
package policy

import (
	"github.com/parley-dev/parley/internal/domain"
)

// CanViewContent reports whether a requester with the given membership status
// may see a topic's posts and member list.
func CanViewContent(visibility domain.Visibility, status domain.MembershipStatus) bool {
	if visibility == domain.Public {
		return true
	}
	return status == domain.StatusMember || status == domain.StatusAdmin
}
