// Package api holds the request/response DTOs shared by handlers and clients.
package api

import "github.com/parley-dev/parley/internal/domain"

// Request DTOs

type CreateTopicRequest struct {
	Name       string `json:"name" validate:"required"`
	Visibility string `json:"visibility" validate:"required"`
}

type CreatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type PromoteMemberRequest struct {
	UserId domain.UserId `json:"user_id" validate:"required"`
}

// Response DTOs

type CreatedResponse struct {
	Id string `json:"id"`
}

// ResolvedResponse reports whether an approve/deny/join actually took effect.
// False is not an error: the request may have been handled concurrently.
type ResolvedResponse struct {
	Resolved bool `json:"resolved"`
}

type TopicViewResponse struct {
	domain.TopicView
}

type AdminTopicViewResponse struct {
	domain.AdminTopicView
}

type BrowseResponse struct {
	domain.BrowsePage
}

type TopicListResponse struct {
	Topics []domain.TopicMetadata `json:"topics"`
}
