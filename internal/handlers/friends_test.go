package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/jwei/splitchat/internal/auth"
	"github.com/jwei/splitchat/internal/middleware"
	"github.com/jwei/splitchat/internal/models"
	"github.com/jwei/splitchat/internal/store/sqlstore"
)

func newTestStore(t *testing.T) *sqlstore.SQLStore {
	t.Helper()
	store, err := sqlstore.New("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func newTestUser(t *testing.T, store *sqlstore.SQLStore, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "pass"}
	if err := store.CreateUser(user); err != nil {
		t.Fatal(err)
	}
	return user
}

func sessionCookie(userID int) *http.Cookie {
	return &http.Cookie{Name: "user_id", Value: auth.SignCookie(strconv.Itoa(userID))}
}

func TestAddFriend(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()
	user := newTestUser(t, store, "alice")

	handler := &FriendHandler{Store: store}

	reqBody := map[string]string{"name": "Bob", "email": "bob@example.com"}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest("POST", "/friends", bytes.NewBuffer(body))
	req.AddCookie(sessionCookie(user.ID))

	rr := httptest.NewRecorder()
	middleware.AuthMiddleware(http.HandlerFunc(handler.AddFriend)).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusCreated {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusCreated)
	}

	friends, _ := store.ListFriends(user.ID)
	if len(friends) != 1 {
		t.Fatalf("Expected 1 friend, got %d", len(friends))
	}
	if friends[0].Name != "Bob" {
		t.Errorf("Expected friend name 'Bob', got '%s'", friends[0].Name)
	}
}

func TestAddFriendRequiresName(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()
	user := newTestUser(t, store, "alice")

	handler := &FriendHandler{Store: store}

	body, _ := json.Marshal(map[string]string{"email": "nameless@example.com"})
	req, _ := http.NewRequest("POST", "/friends", bytes.NewBuffer(body))
	req.AddCookie(sessionCookie(user.ID))

	rr := httptest.NewRecorder()
	middleware.AuthMiddleware(http.HandlerFunc(handler.AddFriend)).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusBadRequest)
	}
}

func TestDeleteFriend(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()
	user := newTestUser(t, store, "alice")

	friend := &models.Friend{UserID: user.ID, Name: "Bob"}
	store.CreateFriend(friend)

	handler := &FriendHandler{Store: store}

	req, _ := http.NewRequest("DELETE", "/friends/"+strconv.Itoa(friend.ID), nil)
	req = mux.SetURLVars(req, map[string]string{"id": strconv.Itoa(friend.ID)})
	req.AddCookie(sessionCookie(user.ID))

	rr := httptest.NewRecorder()
	middleware.AuthMiddleware(http.HandlerFunc(handler.DeleteFriend)).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusOK)
	}

	friends, _ := store.ListFriends(user.ID)
	if len(friends) != 0 {
		t.Errorf("Expected 0 friends after delete, got %d", len(friends))
	}
}

func TestDeleteFriendInUse(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()
	user := newTestUser(t, store, "alice")

	friend := &models.Friend{UserID: user.ID, Name: "Bob"}
	store.CreateFriend(friend)
	bill := &models.Bill{
		Description: "Dinner",
		VisitDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		TotalAmount: 10, FinalAmount: 10,
		CreatedBy: user.ID,
	}
	store.CreateBill(bill, []models.BillParticipant{{FriendID: friend.ID, AmountOwed: 10}})

	handler := &FriendHandler{Store: store}

	req, _ := http.NewRequest("DELETE", "/friends/"+strconv.Itoa(friend.ID), nil)
	req = mux.SetURLVars(req, map[string]string{"id": strconv.Itoa(friend.ID)})
	req.AddCookie(sessionCookie(user.ID))

	rr := httptest.NewRecorder()
	middleware.AuthMiddleware(http.HandlerFunc(handler.DeleteFriend)).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusConflict {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusConflict)
	}
}

func TestDeleteFriendUnowned(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()
	alice := newTestUser(t, store, "alice")
	mallory := newTestUser(t, store, "mallory")

	friend := &models.Friend{UserID: alice.ID, Name: "Bob"}
	store.CreateFriend(friend)

	handler := &FriendHandler{Store: store}

	req, _ := http.NewRequest("DELETE", "/friends/"+strconv.Itoa(friend.ID), nil)
	req = mux.SetURLVars(req, map[string]string{"id": strconv.Itoa(friend.ID)})
	req.AddCookie(sessionCookie(mallory.ID))

	rr := httptest.NewRecorder()
	middleware.AuthMiddleware(http.HandlerFunc(handler.DeleteFriend)).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusNotFound {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusNotFound)
	}
}
