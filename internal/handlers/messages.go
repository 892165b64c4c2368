package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jwei/splitchat/internal/models"
	"github.com/jwei/splitchat/internal/store"
)

type MessageHandler struct {
	Store store.Store
}

// ListMessages returns chat history, newest last. Without a bill_id
// query parameter it serves the general room.
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	billID := 0
	if raw := r.URL.Query().Get("bill_id"); raw != "" {
		var err error
		billID, err = strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid bill id", http.StatusBadRequest)
			return
		}
	}

	messages, err := h.Store.ListMessages(billID)
	if err != nil {
		writeError(w, err)
		return
	}
	if messages == nil {
		messages = []models.ChatMessage{}
	}
	json.NewEncoder(w).Encode(messages)
}
