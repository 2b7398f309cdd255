package pg

import (
	"testing"

	"github.com/parley-dev/parley/internal/domain"
	internal_errors "github.com/parley-dev/parley/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCreateTopic(t *testing.T, visibility domain.Visibility, founderId domain.UserId) domain.TopicId {
	t.Helper()
	topicId, err := storage.CreateTopic(domain.TopicCreationData{
		Name: generateString(t), Visibility: visibility, FounderId: founderId,
	})
	require.NoError(t, err)
	return topicId
}

// TestAddMember verifies the conflict-tolerant membership insert.
func TestAddMember(t *testing.T) {
	founderId := mustSaveUser(t)
	userId := mustSaveUser(t)
	topicId := mustCreateTopic(t, domain.Public, founderId)

	t.Run("first insert takes effect", func(t *testing.T) {
		inserted, err := storage.AddMember(topicId, userId, domain.StatusMember)
		require.NoError(t, err)
		assert.True(t, inserted)

		isMember, err := storage.IsMember(topicId, userId)
		require.NoError(t, err)
		assert.True(t, isMember)
	})

	t.Run("second insert is a no-op", func(t *testing.T) {
		inserted, err := storage.AddMember(topicId, userId, domain.StatusAdmin)
		require.NoError(t, err)
		assert.False(t, inserted)

		// the existing row keeps its original status
		isAdmin, err := storage.IsAdmin(topicId, userId)
		require.NoError(t, err)
		assert.False(t, isAdmin)
	})
}

// TestPromoteMember verifies raising a member to admin.
func TestPromoteMember(t *testing.T) {
	founderId := mustSaveUser(t)
	memberId := mustSaveUser(t)
	topicId := mustCreateTopic(t, domain.Public, founderId)

	inserted, err := storage.AddMember(topicId, memberId, domain.StatusMember)
	require.NoError(t, err)
	require.True(t, inserted)

	t.Run("member becomes admin", func(t *testing.T) {
		require.NoError(t, storage.PromoteMember(topicId, memberId))

		isAdmin, err := storage.IsAdmin(topicId, memberId)
		require.NoError(t, err)
		assert.True(t, isAdmin)
	})

	t.Run("promotion is idempotent", func(t *testing.T) {
		require.NoError(t, storage.PromoteMember(topicId, memberId))
	})

	t.Run("missing membership", func(t *testing.T) {
		outsiderId := mustSaveUser(t)
		err := storage.PromoteMember(topicId, outsiderId)
		require.Error(t, err)
		var statusErr *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 404, statusErr.StatusCode)
	})
}

// TestGetTopicMembers verifies the member roster and its ordering.
func TestGetTopicMembers(t *testing.T) {
	founderId := mustSaveUser(t)
	firstId := mustSaveUser(t)
	secondId := mustSaveUser(t)
	topicId := mustCreateTopic(t, domain.Private, founderId)

	for _, id := range []domain.UserId{firstId, secondId} {
		inserted, err := storage.AddMember(topicId, id, domain.StatusMember)
		require.NoError(t, err)
		require.True(t, inserted)
	}

	members, err := storage.GetTopicMembers(topicId)
	require.NoError(t, err)
	require.Len(t, members, 3)

	// oldest membership first, so the founder leads
	assert.Equal(t, founderId, members[0].Id)
	assert.Equal(t, domain.StatusAdmin, members[0].Status)
	for _, m := range members[1:] {
		assert.Equal(t, domain.StatusMember, m.Status)
		assert.NotEmpty(t, m.Username)
	}
}

// TestMembershipChecks verifies the IsMember/IsAdmin predicates.
func TestMembershipChecks(t *testing.T) {
	founderId := mustSaveUser(t)
	memberId := mustSaveUser(t)
	outsiderId := mustSaveUser(t)
	topicId := mustCreateTopic(t, domain.Private, founderId)

	inserted, err := storage.AddMember(topicId, memberId, domain.StatusMember)
	require.NoError(t, err)
	require.True(t, inserted)

	cases := []struct {
		name     string
		userId   domain.UserId
		isMember bool
		isAdmin  bool
	}{
		{"founder", founderId, true, true},
		{"plain member", memberId, true, false},
		{"outsider", outsiderId, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			isMember, err := storage.IsMember(topicId, tc.userId)
			require.NoError(t, err)
			assert.Equal(t, tc.isMember, isMember)

			isAdmin, err := storage.IsAdmin(topicId, tc.userId)
			require.NoError(t, err)
			assert.Equal(t, tc.isAdmin, isAdmin)
		})
	}
}
