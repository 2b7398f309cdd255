package service

import (
	"net/http"

	"github.com/parley-dev/parley/internal/domain"
	internal_errors "github.com/parley-dev/parley/internal/errors"
)

// MembershipService drives the join lifecycle of a (topic, user) pair:
// no standing -> pending request -> member (approval) or back to nothing
// (denial). Public topics skip the request step via Join.
type MembershipService interface {
	RequestJoin(topicId domain.TopicId, userId domain.UserId) (domain.RequestId, error)
	Approve(requestId domain.RequestId, topicId domain.TopicId, approverId domain.UserId) (bool, error)
	Deny(requestId domain.RequestId) (bool, error)
	Join(topicId domain.TopicId, userId domain.UserId) (bool, error)
}

type Membership struct {
	storage MembershipStorage
}

type MembershipStorage interface {
	CreateJoinRequest(topicId domain.TopicId, userId domain.UserId) (domain.RequestId, error)
	ApproveJoinRequest(requestId domain.RequestId, topicId domain.TopicId) (bool, error)
	DeleteJoinRequest(requestId domain.RequestId) (bool, error)
	AddMember(topicId domain.TopicId, userId domain.UserId, status domain.MembershipStatus) (bool, error)
	GetTopic(topicId domain.TopicId, requesterId *domain.UserId) (domain.TopicMetadata, domain.MembershipStatus, error)
	IsMember(topicId domain.TopicId, userId domain.UserId) (bool, error)
	IsAdmin(topicId domain.TopicId, userId domain.UserId) (bool, error)
}

func NewMembership(storage MembershipStorage) MembershipService {
	return &Membership{storage}
}

// RequestJoin files a pending request. The membership check here is a
// courtesy; the store's uniqueness constraint is the actual safety net
// against concurrent duplicates.
func (m *Membership) RequestJoin(topicId domain.TopicId, userId domain.UserId) (domain.RequestId, error) {
	isMember, err := m.storage.IsMember(topicId, userId)
	if err != nil {
		return "", err
	}
	if isMember {
		return "", &internal_errors.ErrorWithStatusCode{
			Message:    "Already a member of this topic",
			StatusCode: http.StatusConflict,
		}
	}
	return m.storage.CreateJoinRequest(topicId, userId)
}

// Approve converts a pending request into a membership. Only topic admins may
// approve; the admin check happens before any mutation. The returned bool is
// false when the request was already resolved or the user joined another way.
func (m *Membership) Approve(requestId domain.RequestId, topicId domain.TopicId, approverId domain.UserId) (bool, error) {
	isAdmin, err := m.storage.IsAdmin(topicId, approverId)
	if err != nil {
		return false, err
	}
	if !isAdmin {
		return false, &internal_errors.ErrorWithStatusCode{
			Message:    "Only topic admins may approve requests",
			StatusCode: http.StatusForbidden,
		}
	}
	return m.storage.ApproveJoinRequest(requestId, topicId)
}

// Deny discards a pending request. False means it was already handled, which
// is an expected outcome, not a failure.
func (m *Membership) Deny(requestId domain.RequestId) (bool, error) {
	return m.storage.DeleteJoinRequest(requestId)
}

// Join adds the user directly as a member of a public topic. Private topics
// require the request/approve workflow. The insert is conflict-tolerant, so
// racing joiners each learn whether their call created the membership.
func (m *Membership) Join(topicId domain.TopicId, userId domain.UserId) (bool, error) {
	metadata, _, err := m.storage.GetTopic(topicId, nil)
	if err != nil {
		return false, err
	}
	if metadata.Visibility != domain.Public {
		return false, &internal_errors.ErrorWithStatusCode{
			Message:    "Private topics require a join request",
			StatusCode: http.StatusForbidden,
		}
	}
	return m.storage.AddMember(topicId, userId, domain.StatusMember)
}
