package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/parley-dev/parley/internal/service"
)

type Handler struct {
	topic      service.TopicService
	membership service.MembershipService
	post       service.PostService
}

func New(topic service.TopicService, membership service.MembershipService, post service.PostService) *Handler {
	return &Handler{topic, membership, post}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encoding failed", "error", err)
	}
}
