package ws

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jwei/splitchat/internal/assistant"
	"github.com/jwei/splitchat/internal/models"
	"github.com/jwei/splitchat/internal/store"
)

// Message is an inbound chat message from a client. BillID 0 targets
// the general room.
type Message struct {
	BillID  int    `json:"bill_id"`
	UserID  int    `json:"user_id"`
	Content string `json:"content"`
}

// Outbound is what the hub fans out to connected clients.
type Outbound struct {
	models.ChatMessage
	Kind string `json:"kind"` // "user" or "assistant"
}

type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Inbound messages from the clients.
	broadcast chan Message

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	store store.Store

	assistantID int
}

func NewHub(store store.Store) *Hub {
	return &Hub{
		broadcast:  make(chan Message),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		store:      store,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case message := <-h.broadcast:
			h.relay(message)
		}
	}
}

// relay persists the user's message, then the assistant's reply, and
// broadcasts them in that order so the reply is always observed after
// its trigger.
func (h *Hub) relay(message Message) {
	user, err := h.store.GetUserByID(message.UserID)
	if err != nil {
		slog.Error("Dropping message from unknown user", "user_id", message.UserID, "error", err)
		return
	}

	userMsg := &models.ChatMessage{
		BillID:  message.BillID,
		UserID:  message.UserID,
		Message: message.Content,
	}
	if err := h.store.SaveMessage(userMsg); err != nil {
		slog.Error("Error saving message", "error", err)
		return
	}
	userMsg.Username = user.Username
	userMsg.CreatedAt = time.Now()
	h.fanOut(Outbound{ChatMessage: *userMsg, Kind: "user"})

	reply := assistant.Respond(message.Content)
	assistantID, err := h.resolveAssistant()
	if err != nil {
		slog.Error("Assistant user missing", "error", err)
		return
	}
	replyMsg := &models.ChatMessage{
		BillID:  message.BillID,
		UserID:  assistantID,
		Message: reply,
	}
	if err := h.store.SaveMessage(replyMsg); err != nil {
		slog.Error("Error saving assistant reply", "error", err)
		return
	}
	replyMsg.Username = models.AssistantUsername
	replyMsg.CreatedAt = time.Now()
	h.fanOut(Outbound{ChatMessage: *replyMsg, Kind: "assistant"})
}

func (h *Hub) resolveAssistant() (int, error) {
	if h.assistantID != 0 {
		return h.assistantID, nil
	}
	user, err := h.store.GetUserByUsername(models.AssistantUsername)
	if err != nil {
		return 0, err
	}
	h.assistantID = user.ID
	return h.assistantID, nil
}

// fanOut delivers one message to every connected client. The chat is a
// single shared room. Clients that cannot keep up are dropped.
func (h *Hub) fanOut(out Outbound) {
	msgBytes, err := json.Marshal(out)
	if err != nil {
		slog.Error("Error marshaling outbound message", "error", err)
		return
	}
	for client := range h.clients {
		select {
		case client.send <- msgBytes:
		default:
			close(client.send)
			delete(h.clients, client)
		}
	}
}
