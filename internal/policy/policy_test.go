package policy

import (
	"testing"

	"github.com/parley-dev/parley/internal/domain"
)

func TestCanViewContent(t *testing.T) {
	testCases := []struct {
		name       string
		visibility domain.Visibility
		status     domain.MembershipStatus
		want       bool
	}{
		{name: "public topic, no membership", visibility: domain.Public, status: domain.StatusNone, want: true},
		{name: "public topic, member", visibility: domain.Public, status: domain.StatusMember, want: true},
		{name: "public topic, admin", visibility: domain.Public, status: domain.StatusAdmin, want: true},
		{name: "private topic, no membership", visibility: domain.Private, status: domain.StatusNone, want: false},
		{name: "private topic, member", visibility: domain.Private, status: domain.StatusMember, want: true},
		{name: "private topic, admin", visibility: domain.Private, status: domain.StatusAdmin, want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanViewContent(tc.visibility, tc.status); got != tc.want {
				t.Errorf("CanViewContent(%q, %q) = %v, want %v", tc.visibility, tc.status, got, tc.want)
			}
		})
	}
}
