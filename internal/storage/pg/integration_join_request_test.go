package pg

import (
	"testing"

	"github.com/google/uuid"
	"github.com/parley-dev/parley/internal/domain"
	internal_errors "github.com/parley-dev/parley/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateJoinRequest verifies the one-pending-request-per-user rule.
func TestCreateJoinRequest(t *testing.T) {
	founderId := mustSaveUser(t)
	userId := mustSaveUser(t)
	topicId := mustCreateTopic(t, domain.Private, founderId)

	requestId, err := storage.CreateJoinRequest(topicId, userId)
	require.NoError(t, err)
	assert.NotEmpty(t, requestId)

	t.Run("duplicate request should fail", func(t *testing.T) {
		_, err := storage.CreateJoinRequest(topicId, userId)
		require.Error(t, err)
		var statusErr *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 409, statusErr.StatusCode)

		// exactly one pending request survives
		requests, err := storage.GetPendingRequests(topicId)
		require.NoError(t, err)
		require.Len(t, requests, 1)
		assert.Equal(t, requestId, requests[0].Id)
		assert.Equal(t, userId, requests[0].User.Id)
	})

	t.Run("same user may request a different topic", func(t *testing.T) {
		otherTopicId := mustCreateTopic(t, domain.Private, founderId)
		_, err := storage.CreateJoinRequest(otherTopicId, userId)
		require.NoError(t, err)
	})
}

// TestApproveJoinRequest verifies the request-to-membership transition.
func TestApproveJoinRequest(t *testing.T) {
	founderId := mustSaveUser(t)

	t.Run("approval grants membership and consumes the request", func(t *testing.T) {
		userId := mustSaveUser(t)
		topicId := mustCreateTopic(t, domain.Private, founderId)
		requestId, err := storage.CreateJoinRequest(topicId, userId)
		require.NoError(t, err)

		approved, err := storage.ApproveJoinRequest(requestId, topicId)
		require.NoError(t, err)
		assert.True(t, approved)

		isMember, err := storage.IsMember(topicId, userId)
		require.NoError(t, err)
		assert.True(t, isMember)

		requests, err := storage.GetPendingRequests(topicId)
		require.NoError(t, err)
		assert.Empty(t, requests)
	})

	t.Run("second approval is a soft no-op", func(t *testing.T) {
		userId := mustSaveUser(t)
		topicId := mustCreateTopic(t, domain.Private, founderId)
		requestId, err := storage.CreateJoinRequest(topicId, userId)
		require.NoError(t, err)

		approved, err := storage.ApproveJoinRequest(requestId, topicId)
		require.NoError(t, err)
		require.True(t, approved)

		approved, err = storage.ApproveJoinRequest(requestId, topicId)
		require.NoError(t, err)
		assert.False(t, approved)

		// only one membership row exists for the pair
		members, err := storage.GetTopicMembers(topicId)
		require.NoError(t, err)
		assert.Len(t, members, 2) // founder + approved user
	})

	t.Run("request survives when the user already joined another way", func(t *testing.T) {
		userId := mustSaveUser(t)
		topicId := mustCreateTopic(t, domain.Private, founderId)
		requestId, err := storage.CreateJoinRequest(topicId, userId)
		require.NoError(t, err)

		inserted, err := storage.AddMember(topicId, userId, domain.StatusMember)
		require.NoError(t, err)
		require.True(t, inserted)

		approved, err := storage.ApproveJoinRequest(requestId, topicId)
		require.NoError(t, err)
		assert.False(t, approved)

		// the request stays visible for an explicit admin decision
		requests, err := storage.GetPendingRequests(topicId)
		require.NoError(t, err)
		require.Len(t, requests, 1)
		assert.Equal(t, requestId, requests[0].Id)
	})

	t.Run("unknown request is a soft no-op", func(t *testing.T) {
		topicId := mustCreateTopic(t, domain.Private, founderId)
		approved, err := storage.ApproveJoinRequest(uuid.NewString(), topicId)
		require.NoError(t, err)
		assert.False(t, approved)
	})

	t.Run("request bound to another topic does not approve", func(t *testing.T) {
		userId := mustSaveUser(t)
		topicId := mustCreateTopic(t, domain.Private, founderId)
		otherTopicId := mustCreateTopic(t, domain.Private, founderId)
		requestId, err := storage.CreateJoinRequest(topicId, userId)
		require.NoError(t, err)

		approved, err := storage.ApproveJoinRequest(requestId, otherTopicId)
		require.NoError(t, err)
		assert.False(t, approved)

		isMember, err := storage.IsMember(otherTopicId, userId)
		require.NoError(t, err)
		assert.False(t, isMember)
	})
}

// TestDeleteJoinRequest verifies denial semantics.
func TestDeleteJoinRequest(t *testing.T) {
	founderId := mustSaveUser(t)
	userId := mustSaveUser(t)
	topicId := mustCreateTopic(t, domain.Private, founderId)

	requestId, err := storage.CreateJoinRequest(topicId, userId)
	require.NoError(t, err)

	t.Run("denial removes the request without granting membership", func(t *testing.T) {
		deleted, err := storage.DeleteJoinRequest(requestId)
		require.NoError(t, err)
		assert.True(t, deleted)

		isMember, err := storage.IsMember(topicId, userId)
		require.NoError(t, err)
		assert.False(t, isMember)
	})

	t.Run("second denial reports already resolved", func(t *testing.T) {
		deleted, err := storage.DeleteJoinRequest(requestId)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("denied user may request again", func(t *testing.T) {
		_, err := storage.CreateJoinRequest(topicId, userId)
		require.NoError(t, err)
	})
}
