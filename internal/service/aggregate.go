package service

import (
	"github.com/parley-dev/parley/internal/domain"
)

// groupPostsByTopic buckets posts per topic id, deduplicated by post id and
// keeping the incoming (newest-first) order. Every id in topicIds gets an
// entry, so topics without posts still appear with an empty group; posts for
// topics outside the id set are dropped.
func groupPostsByTopic(topicIds []domain.TopicId, posts []domain.Post) map[domain.TopicId][]domain.Post {
	grouped := make(map[domain.TopicId][]domain.Post, len(topicIds))
	for _, id := range topicIds {
		grouped[id] = []domain.Post{}
	}

	seen := make(map[domain.PostId]bool, len(posts))
	for _, post := range posts {
		group, ok := grouped[post.TopicId]
		if !ok || seen[post.Id] {
			continue
		}
		seen[post.Id] = true
		grouped[post.TopicId] = append(group, post)
	}
	return grouped
}
