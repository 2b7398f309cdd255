package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type PostCreationData struct {
	TopicId  TopicId
	AuthorId UserId
	Title    string
	Content  string
}

type Post struct {
	Id        PostId    `json:"id"`
	TopicId   TopicId   `json:"topic_id"`
	Author    User      `json:"author"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
