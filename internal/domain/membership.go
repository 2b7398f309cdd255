package domain

type User struct {
	Id       UserId   `json:"id"`
	Username Username `json:"username"`
}

// Member is one row of a topic's member list.
type Member struct {
	User
	Status MembershipStatus `json:"status"`
}

// JoinRequest is a pending ask to join a topic. There is no status column:
// the row's existence is the pending state, approval converts it into a
// membership and denial discards it.
type JoinRequest struct {
	Id      RequestId `json:"id"`
	TopicId TopicId   `json:"topic_id"`
	User    User      `json:"user"`
}
