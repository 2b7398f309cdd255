package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/parley-dev/parley/internal/domain"
	internal_errors "github.com/parley-dev/parley/internal/errors"
)

// CreateTopic inserts the topic row and the founder's admin membership in one
// transaction: a topic is never observable without its founding admin.
func (s *Storage) CreateTopic(creationData domain.TopicCreationData) (domain.TopicId, error) {
	id := uuid.NewString()
	err := s.withTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(
			"INSERT INTO topics (id, name, visibility) VALUES ($1, $2, $3)",
			id, creationData.Name, creationData.Visibility,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return &internal_errors.ErrorWithStatusCode{
					Message:    "Topic name already taken",
					StatusCode: http.StatusConflict,
				}
			}
			return fmt.Errorf("failed to insert topic: %w", err)
		}

		_, err = tx.Exec(
			"INSERT INTO memberships (user_id, topic_id, status) VALUES ($1, $2, $3)",
			creationData.FounderId, id, domain.StatusAdmin,
		)
		if err != nil {
			return fmt.Errorf("failed to insert founding admin: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetTopic fetches topic metadata together with the requester's own
// membership status. A nil requester (anonymous browse) yields StatusNone.
func (s *Storage) GetTopic(topicId domain.TopicId, requesterId *domain.UserId) (domain.TopicMetadata, domain.MembershipStatus, error) {
	var metadata domain.TopicMetadata
	var status sql.NullString
	err := s.db.QueryRow(`
        SELECT t.id, t.name, t.visibility, t.created, m.status
        FROM topics t
        LEFT JOIN memberships m
            ON m.topic_id = t.id AND m.user_id = $2
        WHERE t.id = $1
    `, topicId, requesterId).Scan(
		&metadata.Id, &metadata.Name, &metadata.Visibility, &metadata.CreatedAt, &status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.TopicMetadata{}, domain.StatusNone, &internal_errors.ErrorWithStatusCode{
				Message:    "Topic not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return domain.TopicMetadata{}, domain.StatusNone, fmt.Errorf("failed to fetch topic: %w", err)
	}
	if !status.Valid {
		return metadata, domain.StatusNone, nil
	}
	return metadata, domain.MembershipStatus(status.String), nil
}

// GetTopics lists topics of one visibility, ordered by name.
func (s *Storage) GetTopics(visibility domain.Visibility) ([]domain.TopicMetadata, error) {
	return s.topicList(
		"SELECT id, name, visibility, created FROM topics WHERE visibility = $1 ORDER BY name ASC",
		visibility,
	)
}

// SearchTopics performs a case-insensitive substring lookup on topic names.
func (s *Storage) SearchTopics(pattern string, visibility domain.Visibility) ([]domain.TopicMetadata, error) {
	return s.topicList(`
        SELECT id, name, visibility, created
        FROM topics
        WHERE name ILIKE '%' || $1 || '%' AND visibility = $2
        ORDER BY name ASC
    `, pattern, visibility)
}

func (s *Storage) topicList(query string, args ...interface{}) ([]domain.TopicMetadata, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch topics: %w", err)
	}
	defer rows.Close()

	var topics []domain.TopicMetadata
	for rows.Next() {
		var t domain.TopicMetadata
		if err := rows.Scan(&t.Id, &t.Name, &t.Visibility, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return topics, nil
}
