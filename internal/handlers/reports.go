package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jwei/splitchat/internal/middleware"
	"github.com/jwei/splitchat/internal/report"
)

type ReportHandler struct {
	Reports *report.Generator
}

func (h *ReportHandler) OverallReport(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	data, err := h.Reports.Overall(userID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=bill_report.csv")
	w.Write(data)
}

func (h *ReportHandler) FriendReport(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	friendID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid friend id", http.StatusBadRequest)
		return
	}

	friend, data, err := h.Reports.Friend(userID, friendID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s_bill_report.csv", friend.Name))
	w.Write(data)
}
