package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/parley-dev/parley/internal/api"
	mw "github.com/parley-dev/parley/internal/middleware"
	"github.com/parley-dev/parley/internal/utils"
)

func (h *Handler) RequestJoin(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	id, err := h.membership.RequestJoin(chi.URLParam(r, "topic"), user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, api.CreatedResponse{Id: id})
}

func (h *Handler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	approved, err := h.membership.Approve(chi.URLParam(r, "request"), chi.URLParam(r, "topic"), user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	// approved == false renders as "already handled" on the caller's side
	writeJSON(w, api.ResolvedResponse{Resolved: approved})
}

func (h *Handler) DenyRequest(w http.ResponseWriter, r *http.Request) {
	denied, err := h.membership.Deny(chi.URLParam(r, "request"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ResolvedResponse{Resolved: denied})
}

func (h *Handler) JoinTopic(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	joined, err := h.membership.Join(chi.URLParam(r, "topic"), user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ResolvedResponse{Resolved: joined})
}
