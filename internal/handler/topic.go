package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/parley-dev/parley/internal/api"
	"github.com/parley-dev/parley/internal/domain"
	mw "github.com/parley-dev/parley/internal/middleware"
	"github.com/parley-dev/parley/internal/utils"
)

func (h *Handler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	var body api.CreateTopicRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	id, err := h.topic.Create(domain.TopicCreationData{
		Name:       body.Name,
		Visibility: domain.Visibility(body.Visibility),
		FounderId:  user.Id,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, api.CreatedResponse{Id: id})
}

func (h *Handler) GetTopic(w http.ResponseWriter, r *http.Request) {
	topicId := chi.URLParam(r, "topic")

	var requesterId *domain.UserId
	if user := mw.GetUserFromContext(r); user != nil {
		requesterId = &user.Id
	}

	view, err := h.topic.View(topicId, requesterId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.TopicViewResponse{TopicView: view})
}

func (h *Handler) GetAdminTopic(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	view, err := h.topic.AdminView(chi.URLParam(r, "topic"), user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.AdminTopicViewResponse{AdminTopicView: view})
}

func (h *Handler) Browse(w http.ResponseWriter, r *http.Request) {
	page, err := h.topic.Browse()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.BrowseResponse{BrowsePage: page})
}

func (h *Handler) SearchTopics(w http.ResponseWriter, r *http.Request) {
	pattern := r.URL.Query().Get("q")
	visibility := r.URL.Query().Get("visibility")
	if visibility == "" {
		visibility = string(domain.Public)
	}

	topics, err := h.topic.Search(pattern, domain.Visibility(visibility))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.TopicListResponse{Topics: topics})
}

func (h *Handler) PromoteMember(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	var body api.PromoteMemberRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.topic.Promote(chi.URLParam(r, "topic"), body.UserId, user.Id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
