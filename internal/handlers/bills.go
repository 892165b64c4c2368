package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jwei/splitchat/internal/ledger"
	"github.com/jwei/splitchat/internal/middleware"
	"github.com/jwei/splitchat/internal/models"
	"github.com/jwei/splitchat/internal/store"
)

type BillHandler struct {
	Store  store.Store
	Ledger *ledger.Service
}

func (h *BillHandler) CreateBill(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var in ledger.CreateBillInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	billID, err := h.Ledger.CreateBill(userID, in)
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"bill_id": billID})
}

func (h *BillHandler) ListBills(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	bills, err := h.Store.ListBills(userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if bills == nil {
		bills = []models.Bill{}
	}
	json.NewEncoder(w).Encode(bills)
}

func (h *BillHandler) DeleteBill(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	billID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid bill id", http.StatusBadRequest)
		return
	}

	if err := h.Store.DeleteBill(billID, userID); err != nil {
		writeError(w, err)
		return
	}

	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func (h *BillHandler) GetBillParticipants(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	billID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid bill id", http.StatusBadRequest)
		return
	}

	// Ownership check before exposing participant rows
	if _, err := h.Store.GetBill(billID, userID); err != nil {
		writeError(w, err)
		return
	}

	participants, err := h.Store.ListBillParticipants(billID)
	if err != nil {
		writeError(w, err)
		return
	}
	if participants == nil {
		participants = []models.BillParticipant{}
	}
	json.NewEncoder(w).Encode(participants)
}
