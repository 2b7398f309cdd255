package service

import (
	"testing"

	"github.com/parley-dev/parley/internal/domain"
)

func TestGroupPostsByTopic(t *testing.T) {
	ids := []domain.TopicId{"t1", "t2"}
	posts := []domain.Post{
		{Id: "p3", TopicId: "t1"},
		{Id: "p2", TopicId: "t1"},
		{Id: "p2", TopicId: "t1"}, // duplicate row, must collapse
		{Id: "p1", TopicId: "t9"}, // outside the id set, must be dropped
	}

	grouped := groupPostsByTopic(ids, posts)

	if len(grouped) != 2 {
		t.Fatalf("got %d groups, want 2", len(grouped))
	}
	t1 := grouped["t1"]
	if len(t1) != 2 || t1[0].Id != "p3" || t1[1].Id != "p2" {
		t.Errorf("t1 group = %v, want [p3 p2] in incoming order", t1)
	}
	t2, ok := grouped["t2"]
	if !ok || t2 == nil || len(t2) != 0 {
		t.Errorf("t2 group = %v (present=%v), want empty non-nil group", t2, ok)
	}
	if _, ok := grouped["t9"]; ok {
		t.Error("t9 must not appear in the grouping")
	}
}

func TestGroupPostsByTopic_Empty(t *testing.T) {
	grouped := groupPostsByTopic(nil, nil)
	if len(grouped) != 0 {
		t.Errorf("got %d groups, want 0", len(grouped))
	}
}
