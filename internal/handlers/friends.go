package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jwei/splitchat/internal/middleware"
	"github.com/jwei/splitchat/internal/models"
	"github.com/jwei/splitchat/internal/store"
)

type FriendHandler struct {
	Store store.Store
}

type AddFriendRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (h *FriendHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req AddFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Friend name is required", http.StatusBadRequest)
		return
	}

	friend := &models.Friend{
		UserID: userID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
	}
	if err := h.Store.CreateFriend(friend); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(friend)
}

func (h *FriendHandler) ListFriends(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	friends, err := h.Store.ListFriends(userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if friends == nil {
		friends = []models.Friend{}
	}
	json.NewEncoder(w).Encode(friends)
}

func (h *FriendHandler) DeleteFriend(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	friendID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid friend id", http.StatusBadRequest)
		return
	}

	if err := h.Store.DeleteFriend(friendID, userID); err != nil {
		writeError(w, err)
		return
	}

	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
