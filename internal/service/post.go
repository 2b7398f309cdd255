package service

import (
	"net/http"

	"github.com/microcosm-cc/bluemonday"
	"github.com/parley-dev/parley/internal/domain"
	internal_errors "github.com/parley-dev/parley/internal/errors"
)

type PostService interface {
	Create(creationData domain.PostCreationData) (domain.PostId, error)
	Delete(postId domain.PostId, topicId domain.TopicId, requesterId domain.UserId) error
}

type Post struct {
	storage   PostStorage
	validator PostContentValidator
	sanitizer *bluemonday.Policy
}

type PostStorage interface {
	CreatePost(creationData domain.PostCreationData) (domain.PostId, error)
	DeletePost(postId domain.PostId, topicId domain.TopicId) error
	IsMember(topicId domain.TopicId, userId domain.UserId) (bool, error)
	IsAdmin(topicId domain.TopicId, userId domain.UserId) (bool, error)
}

type PostContentValidator interface {
	Title(title string) error
	Content(content string) error
}

func NewPost(storage PostStorage, validator PostContentValidator) PostService {
	return &Post{storage, validator, bluemonday.UGCPolicy()}
}

// Create saves a post after verifying the author holds a membership in the
// topic. Content is stored sanitized; rendering layers can trust it.
func (p *Post) Create(creationData domain.PostCreationData) (domain.PostId, error) {
	if err := p.validator.Title(creationData.Title); err != nil {
		return "", err
	}
	if err := p.validator.Content(creationData.Content); err != nil {
		return "", err
	}

	isMember, err := p.storage.IsMember(creationData.TopicId, creationData.AuthorId)
	if err != nil {
		return "", err
	}
	if !isMember {
		return "", &internal_errors.ErrorWithStatusCode{
			Message:    "You must be a member of this topic to post",
			StatusCode: http.StatusForbidden,
		}
	}

	creationData.Content = p.sanitizer.Sanitize(creationData.Content)
	return p.storage.CreatePost(creationData)
}

// Delete removes a single post, admins only.
func (p *Post) Delete(postId domain.PostId, topicId domain.TopicId, requesterId domain.UserId) error {
	isAdmin, err := p.storage.IsAdmin(topicId, requesterId)
	if err != nil {
		return err
	}
	if !isAdmin {
		return &internal_errors.ErrorWithStatusCode{
			Message:    "Only topic admins may delete posts",
			StatusCode: http.StatusForbidden,
		}
	}
	return p.storage.DeletePost(postId, topicId)
}
