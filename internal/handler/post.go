package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/parley-dev/parley/internal/api"
	"github.com/parley-dev/parley/internal/domain"
	mw "github.com/parley-dev/parley/internal/middleware"
	"github.com/parley-dev/parley/internal/utils"
)

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	var body api.CreatePostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	id, err := h.post.Create(domain.PostCreationData{
		TopicId:  chi.URLParam(r, "topic"),
		AuthorId: user.Id,
		Title:    body.Title,
		Content:  body.Content,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, api.CreatedResponse{Id: id})
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	err := h.post.Delete(chi.URLParam(r, "post"), chi.URLParam(r, "topic"), user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
