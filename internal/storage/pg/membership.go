package pg

import (
	"fmt"
	"net/http"

	"github.com/parley-dev/parley/internal/domain"
	internal_errors "github.com/parley-dev/parley/internal/errors"
)

// AddMember inserts a membership row if none exists for (user, topic) and
// reports whether the insert actually took effect. Losing a race against
// another join path is an ordinary false, not an error.
func (s *Storage) AddMember(topicId domain.TopicId, userId domain.UserId, status domain.MembershipStatus) (bool, error) {
	return addMember(s.db, topicId, userId, status)
}

func addMember(q Querier, topicId domain.TopicId, userId domain.UserId, status domain.MembershipStatus) (bool, error) {
	result, err := q.Exec(`
        INSERT INTO memberships (user_id, topic_id, status)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, topic_id) DO NOTHING
    `, userId, topicId, status)
	if err != nil {
		return false, fmt.Errorf("failed to insert membership: %w", err)
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check affected rows for membership insert: %w", err)
	}
	return inserted > 0, nil
}

// PromoteMember raises an existing membership to admin. Promotion only ever
// adds admins, so the founding invariant (at least one admin per topic)
// cannot be violated here.
func (s *Storage) PromoteMember(topicId domain.TopicId, userId domain.UserId) error {
	result, err := s.db.Exec(
		"UPDATE memberships SET status = $1 WHERE topic_id = $2 AND user_id = $3",
		domain.StatusAdmin, topicId, userId,
	)
	if err != nil {
		return fmt.Errorf("failed to update membership status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for promotion: %w", err)
	}
	if affected == 0 {
		return &internal_errors.ErrorWithStatusCode{
			Message:    "Membership not found",
			StatusCode: http.StatusNotFound,
		}
	}
	return nil
}

// GetTopicMembers lists a topic's members with their per-topic status.
func (s *Storage) GetTopicMembers(topicId domain.TopicId) ([]domain.Member, error) {
	rows, err := s.db.Query(`
        SELECT u.id, u.username, m.status
        FROM memberships m
        JOIN users u ON u.id = m.user_id
        WHERE m.topic_id = $1
        ORDER BY m.created
    `, topicId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch members: %w", err)
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.Id, &m.Username, &m.Status); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return members, nil
}

// IsMember reports whether the user holds any membership in the topic.
func (s *Storage) IsMember(topicId domain.TopicId, userId domain.UserId) (bool, error) {
	return s.membershipExists(topicId, userId, false)
}

// IsAdmin reports whether the user holds an admin membership in the topic.
func (s *Storage) IsAdmin(topicId domain.TopicId, userId domain.UserId) (bool, error) {
	return s.membershipExists(topicId, userId, true)
}

func (s *Storage) membershipExists(topicId domain.TopicId, userId domain.UserId, adminOnly bool) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`
        SELECT EXISTS(
            SELECT 1 FROM memberships
            WHERE topic_id = $1
              AND user_id = $2
              AND ($3 = false OR status = 'admin')
        )
    `, topicId, userId, adminOnly).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return exists, nil
}
