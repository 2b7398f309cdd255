package service

import (
	"net/http"

	"github.com/parley-dev/parley/internal/domain"
	internal_errors "github.com/parley-dev/parley/internal/errors"
	"github.com/parley-dev/parley/internal/policy"
)

// to mock service in tests
type TopicService interface {
	Create(creationData domain.TopicCreationData) (domain.TopicId, error)
	Promote(topicId domain.TopicId, targetId, requesterId domain.UserId) error
	View(topicId domain.TopicId, requesterId *domain.UserId) (domain.TopicView, error)
	AdminView(topicId domain.TopicId, requesterId domain.UserId) (domain.AdminTopicView, error)
	Browse() (domain.BrowsePage, error)
	Search(pattern string, visibility domain.Visibility) ([]domain.TopicMetadata, error)
}

type Topic struct {
	storage       TopicStorage
	nameValidator TopicValidator
	// browse page bounds
	topicLimit int
	postLimit  int
}

type TopicStorage interface {
	CreateTopic(creationData domain.TopicCreationData) (domain.TopicId, error)
	GetTopic(topicId domain.TopicId, requesterId *domain.UserId) (domain.TopicMetadata, domain.MembershipStatus, error)
	GetTopics(visibility domain.Visibility) ([]domain.TopicMetadata, error)
	SearchTopics(pattern string, visibility domain.Visibility) ([]domain.TopicMetadata, error)
	GetTopicPosts(topicId domain.TopicId) ([]domain.Post, error)
	GetTopicMembers(topicId domain.TopicId) ([]domain.Member, error)
	GetPendingRequests(topicId domain.TopicId) ([]domain.JoinRequest, error)
	GetRecentPosts(topicIds []domain.TopicId, limit int) ([]domain.Post, error)
	PromoteMember(topicId domain.TopicId, userId domain.UserId) error
	IsAdmin(topicId domain.TopicId, userId domain.UserId) (bool, error)
}

type TopicValidator interface {
	Name(name string) error
}

func NewTopic(storage TopicStorage, validator TopicValidator, topicLimit, postLimit int) TopicService {
	return &Topic{storage, validator, topicLimit, postLimit}
}

// Create makes a topic together with its founding admin membership. The
// storage call is a single transaction, so a failure can never leave an
// admin-less topic behind.
func (t *Topic) Create(creationData domain.TopicCreationData) (domain.TopicId, error) {
	if err := t.nameValidator.Name(creationData.Name); err != nil {
		return "", err
	}
	if !creationData.Visibility.Valid() {
		return "", &internal_errors.ErrorWithStatusCode{
			Message:    "Visibility must be either 'public' or 'private'",
			StatusCode: http.StatusBadRequest,
		}
	}
	return t.storage.CreateTopic(creationData)
}

// Promote raises an existing member to admin. The requester's admin standing
// is checked before any mutation, so an unauthorized call changes nothing.
func (t *Topic) Promote(topicId domain.TopicId, targetId, requesterId domain.UserId) error {
	isAdmin, err := t.storage.IsAdmin(topicId, requesterId)
	if err != nil {
		return err
	}
	if !isAdmin {
		return &internal_errors.ErrorWithStatusCode{
			Message:    "Only topic admins may promote members",
			StatusCode: http.StatusForbidden,
		}
	}
	return t.storage.PromoteMember(topicId, targetId)
}

// View assembles the single-topic read model. Content visibility is decided
// by policy.CanViewContent; a private topic viewed by a non-member yields
// metadata with empty post and member lists, not an error.
func (t *Topic) View(topicId domain.TopicId, requesterId *domain.UserId) (domain.TopicView, error) {
	metadata, status, err := t.storage.GetTopic(topicId, requesterId)
	if err != nil {
		return domain.TopicView{}, err
	}

	view := domain.TopicView{
		TopicMetadata:   metadata,
		RequesterStatus: status,
		Posts:           []domain.Post{},
		Members:         []domain.Member{},
	}
	if !policy.CanViewContent(metadata.Visibility, status) {
		return view, nil
	}

	if view.Posts, err = t.storage.GetTopicPosts(topicId); err != nil {
		return domain.TopicView{}, err
	}
	if view.Members, err = t.storage.GetTopicMembers(topicId); err != nil {
		return domain.TopicView{}, err
	}
	return view, nil
}

// AdminView additionally includes the pending join requests and requires the
// requester to be an admin of the topic.
func (t *Topic) AdminView(topicId domain.TopicId, requesterId domain.UserId) (domain.AdminTopicView, error) {
	metadata, status, err := t.storage.GetTopic(topicId, &requesterId)
	if err != nil {
		return domain.AdminTopicView{}, err
	}
	if status != domain.StatusAdmin {
		return domain.AdminTopicView{}, &internal_errors.ErrorWithStatusCode{
			Message:    "Only topic admins may view pending requests",
			StatusCode: http.StatusForbidden,
		}
	}

	view := domain.AdminTopicView{
		TopicView: domain.TopicView{TopicMetadata: metadata, RequesterStatus: status},
	}
	if view.Posts, err = t.storage.GetTopicPosts(topicId); err != nil {
		return domain.AdminTopicView{}, err
	}
	if view.Members, err = t.storage.GetTopicMembers(topicId); err != nil {
		return domain.AdminTopicView{}, err
	}
	if view.PendingRequests, err = t.storage.GetPendingRequests(topicId); err != nil {
		return domain.AdminTopicView{}, err
	}
	return view, nil
}

// Browse builds the front page: public topics by name, private topics as
// metadata only (discoverable by name, never by content), and the recent
// posts of a bounded set of public topics grouped per topic.
func (t *Topic) Browse() (domain.BrowsePage, error) {
	publicTopics, err := t.storage.GetTopics(domain.Public)
	if err != nil {
		return domain.BrowsePage{}, err
	}
	privateTopics, err := t.storage.GetTopics(domain.Private)
	if err != nil {
		return domain.BrowsePage{}, err
	}

	front := publicTopics
	if len(front) > t.topicLimit {
		front = front[:t.topicLimit]
	}
	ids := make([]domain.TopicId, len(front))
	for i, topic := range front {
		ids[i] = topic.Id
	}

	var posts []domain.Post
	if len(ids) > 0 {
		if posts, err = t.storage.GetRecentPosts(ids, t.postLimit); err != nil {
			return domain.BrowsePage{}, err
		}
	}

	return domain.BrowsePage{
		PublicTopics:       publicTopics,
		PrivateTopics:      privateTopics,
		RecentPostsByTopic: groupPostsByTopic(ids, posts),
	}, nil
}

// Search looks up topics of one visibility by name substring.
func (t *Topic) Search(pattern string, visibility domain.Visibility) ([]domain.TopicMetadata, error) {
	if !visibility.Valid() {
		return nil, &internal_errors.ErrorWithStatusCode{
			Message:    "Visibility must be either 'public' or 'private'",
			StatusCode: http.StatusBadRequest,
		}
	}
	return t.storage.SearchTopics(pattern, visibility)
}
