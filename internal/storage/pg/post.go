package pg

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/parley-dev/parley/internal/domain"
	internal_errors "github.com/parley-dev/parley/internal/errors"
)

// CreatePost saves a post. The author-must-be-member rule is enforced by the
// post service before this is called.
func (s *Storage) CreatePost(creationData domain.PostCreationData) (domain.PostId, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(`
        INSERT INTO posts (id, topic_id, author_id, title, content)
        VALUES ($1, $2, $3, $4, $5)
    `, id, creationData.TopicId, creationData.AuthorId, creationData.Title, creationData.Content)
	if err != nil {
		return "", fmt.Errorf("failed to insert post: %w", err)
	}
	return id, nil
}

// DeletePost removes a single post. Other entities are unaffected.
func (s *Storage) DeletePost(postId domain.PostId, topicId domain.TopicId) error {
	result, err := s.db.Exec(
		"DELETE FROM posts WHERE id = $1 AND topic_id = $2",
		postId, topicId,
	)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for post deletion: %w", err)
	}
	if deleted == 0 {
		return &internal_errors.ErrorWithStatusCode{
			Message:    "Post not found",
			StatusCode: http.StatusNotFound,
		}
	}
	return nil
}

// GetTopicPosts fetches a topic's posts newest-first, authors included.
func (s *Storage) GetTopicPosts(topicId domain.TopicId) ([]domain.Post, error) {
	return s.postList(`
        SELECT p.id, p.topic_id, u.id, u.username, p.title, p.content, p.created
        FROM posts p
        JOIN users u ON u.id = p.author_id
        WHERE p.topic_id = $1
        ORDER BY p.created DESC
    `, topicId)
}

// GetRecentPosts fetches the most recent posts across the given topics,
// newest-first, bounded by limit. Topics outside the id set contribute
// nothing.
func (s *Storage) GetRecentPosts(topicIds []domain.TopicId, limit int) ([]domain.Post, error) {
	return s.postList(`
        SELECT p.id, p.topic_id, u.id, u.username, p.title, p.content, p.created
        FROM posts p
        JOIN users u ON u.id = p.author_id
        WHERE p.topic_id = ANY($1::uuid[])
        ORDER BY p.created DESC
        LIMIT $2
    `, pq.Array(topicIds), limit)
}

func (s *Storage) postList(query string, args ...interface{}) ([]domain.Post, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.Id, &p.TopicId, &p.Author.Id, &p.Author.Username, &p.Title, &p.Content, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return posts, nil
}
