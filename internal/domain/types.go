package domain

type (
	UserId   = int64
	Username = string

	TopicId   = string // uuid
	TopicName = string

	PostId    = string // uuid
	RequestId = string // uuid
)

// Visibility is the two-variant topic type. Every read path decides what a
// requester may see through policy.CanViewContent, never by comparing the
// raw column value inline.
type Visibility string

const (
	Public  Visibility = "public"
	Private Visibility = "private"
)

func (v Visibility) Valid() bool {
	return v == Public || v == Private
}

// MembershipStatus is the requester's standing within one topic.
// StatusNone is never stored; it represents the absence of a membership row.
type MembershipStatus string

const (
	StatusNone   MembershipStatus = ""
	StatusMember MembershipStatus = "member"
	StatusAdmin  MembershipStatus = "admin"
)
