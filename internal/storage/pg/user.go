package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/parley-dev/parley/internal/domain"
	internal_errors "github.com/parley-dev/parley/internal/errors"
)

// SaveUser inserts a user record. Credentials live with the session layer;
// this store only knows ids and usernames.
func (s *Storage) SaveUser(username domain.Username) (domain.UserId, error) {
	var id domain.UserId
	err := s.db.QueryRow(
		"INSERT INTO users (username) VALUES ($1) RETURNING id",
		username,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return -1, &internal_errors.ErrorWithStatusCode{
				Message:    "Username already exists",
				StatusCode: http.StatusConflict,
			}
		}
		return -1, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

// User fetches a single user by id.
func (s *Storage) User(id domain.UserId) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(
		"SELECT id, username FROM users WHERE id = $1", id,
	).Scan(&user.Id, &user.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{
				Message:    "User not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}
