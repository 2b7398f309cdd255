package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type TopicCreationData struct {
	Name       TopicName
	Visibility Visibility
	FounderId  UserId
}

type TopicMetadata struct {
	Id         TopicId    `json:"id"`
	Name       TopicName  `json:"name"`
	Visibility Visibility `json:"visibility"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TopicView is the single-topic read model. For a private topic viewed by a
// non-member, Posts and Members are empty while the metadata stays populated.
type TopicView struct {
	TopicMetadata
	RequesterStatus MembershipStatus `json:"requester_status"`
	Posts           []Post           `json:"posts"`
	Members         []Member         `json:"members"`
}

// AdminTopicView additionally carries the pending join requests.
type AdminTopicView struct {
	TopicView
	PendingRequests []JoinRequest `json:"pending_requests"`
}

// BrowsePage is the front-page read model. RecentPostsByTopic keeps an entry
// for every listed public topic, empty slice included.
type BrowsePage struct {
	PublicTopics       []TopicMetadata    `json:"public_topics"`
	PrivateTopics      []TopicMetadata    `json:"private_topics"`
	RecentPostsByTopic map[TopicId][]Post `json:"recent_posts_by_topic"`
}
