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

// CreateJoinRequest inserts a pending request. Two concurrent requests for
// the same (topic, user) race on the uniqueness constraint and exactly one
// survives; the loser gets a 409.
func (s *Storage) CreateJoinRequest(topicId domain.TopicId, userId domain.UserId) (domain.RequestId, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO join_requests (id, topic_id, user_id) VALUES ($1, $2, $3)",
		id, topicId, userId,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", &internal_errors.ErrorWithStatusCode{
				Message:    "Join request already pending",
				StatusCode: http.StatusConflict,
			}
		}
		return "", fmt.Errorf("failed to insert join request: %w", err)
	}
	return id, nil
}

// ApproveJoinRequest converts a pending request into a membership in one
// transaction. The requesting user is taken from the matched request row, the
// membership insert is conflict-tolerant, and the request row is deleted only
// when the insert took effect, so a request never vanishes without having
// produced a membership. Returns whether the approval took effect.
func (s *Storage) ApproveJoinRequest(requestId domain.RequestId, topicId domain.TopicId) (bool, error) {
	var approved bool
	err := s.withTx(func(tx *sql.Tx) error {
		var userId domain.UserId
		err := tx.QueryRow(
			"SELECT user_id FROM join_requests WHERE id = $1 AND topic_id = $2 FOR UPDATE",
			requestId, topicId,
		).Scan(&userId)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// already resolved or never existed, soft outcome
				return nil
			}
			return fmt.Errorf("failed to fetch join request: %w", err)
		}

		inserted, err := addMember(tx, topicId, userId, domain.StatusMember)
		if err != nil {
			return err
		}
		if !inserted {
			// the user joined by another path; keep the request so an admin
			// still sees and resolves it explicitly
			return nil
		}

		if _, err := tx.Exec("DELETE FROM join_requests WHERE id = $1", requestId); err != nil {
			return fmt.Errorf("failed to delete join request: %w", err)
		}
		approved = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return approved, nil
}

// DeleteJoinRequest discards a pending request. Returns whether a row was
// actually removed; false means it was already resolved, which callers render
// as "already handled" rather than a failure.
func (s *Storage) DeleteJoinRequest(requestId domain.RequestId) (bool, error) {
	result, err := s.db.Exec("DELETE FROM join_requests WHERE id = $1", requestId)
	if err != nil {
		return false, fmt.Errorf("failed to delete join request: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check affected rows for join request deletion: %w", err)
	}
	return deleted > 0, nil
}

// GetPendingRequests lists a topic's outstanding join requests with the
// requesting users' names, for the admin view.
func (s *Storage) GetPendingRequests(topicId domain.TopicId) ([]domain.JoinRequest, error) {
	rows, err := s.db.Query(`
        SELECT r.id, r.topic_id, u.id, u.username
        FROM join_requests r
        JOIN users u ON u.id = r.user_id
        WHERE r.topic_id = $1
        ORDER BY r.created
    `, topicId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch join requests: %w", err)
	}
	defer rows.Close()

	var requests []domain.JoinRequest
	for rows.Next() {
		var r domain.JoinRequest
		if err := rows.Scan(&r.Id, &r.TopicId, &r.User.Id, &r.User.Username); err != nil {
			return nil, fmt.Errorf("failed to scan join request: %w", err)
		}
		requests = append(requests, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return requests, nil
}
