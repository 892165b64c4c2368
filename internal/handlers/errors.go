package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jwei/splitchat/internal/ledger"
	"github.com/jwei/splitchat/internal/store"
)

// writeError maps domain errors onto HTTP status codes. Persistence
// failures are logged and reported as 500 without leaking internals.
func writeError(w http.ResponseWriter, err error) {
	var verr *ledger.ValidationError
	switch {
	case errors.As(err, &verr):
		http.Error(w, verr.Error(), http.StatusBadRequest)
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, store.ErrFriendInUse):
		http.Error(w, "Friend has bill participations", http.StatusConflict)
	default:
		slog.Error("Request failed", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
