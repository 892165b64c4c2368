package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/jwei/splitchat/internal/middleware"
	"github.com/jwei/splitchat/internal/models"
	"github.com/jwei/splitchat/internal/report"
)

func TestOverallReportDownload(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()
	user := newTestUser(t, store, "alice")

	friend := &models.Friend{UserID: user.ID, Name: "Bob"}
	store.CreateFriend(friend)
	bill := &models.Bill{
		Description: "Dinner",
		VisitDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		TotalAmount: 20, FinalAmount: 20,
		CreatedBy: user.ID,
	}
	store.CreateBill(bill, []models.BillParticipant{{FriendID: friend.ID, AmountOwed: 20}})

	handler := &ReportHandler{Reports: report.NewGenerator(store)}

	req, _ := http.NewRequest("GET", "/reports/bills.csv", nil)
	req.AddCookie(sessionCookie(user.ID))

	rr := httptest.NewRecorder()
	middleware.AuthMiddleware(http.HandlerFunc(handler.OverallReport)).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Expected text/csv, got %s", ct)
	}
	if cd := rr.Header().Get("Content-Disposition"); cd != "attachment; filename=bill_report.csv" {
		t.Errorf("Unexpected Content-Disposition: %s", cd)
	}
	if !strings.Contains(rr.Body.String(), "OVERALL BILLS SUMMARY") {
		t.Error("Expected bills summary section in CSV body")
	}
	if !strings.Contains(rr.Body.String(), ",,,,,TOTAL:,$20.00") {
		t.Error("Expected trailing total in CSV body")
	}
}

func TestFriendReportDownload(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()
	user := newTestUser(t, store, "alice")

	friend := &models.Friend{UserID: user.ID, Name: "Bob"}
	store.CreateFriend(friend)

	handler := &ReportHandler{Reports: report.NewGenerator(store)}

	req, _ := http.NewRequest("GET", "/reports/friends/"+strconv.Itoa(friend.ID)+".csv", nil)
	req = mux.SetURLVars(req, map[string]string{"id": strconv.Itoa(friend.ID)})
	req.AddCookie(sessionCookie(user.ID))

	rr := httptest.NewRecorder()
	middleware.AuthMiddleware(http.HandlerFunc(handler.FriendReport)).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}
	if cd := rr.Header().Get("Content-Disposition"); cd != "attachment; filename=Bob_bill_report.csv" {
		t.Errorf("Unexpected Content-Disposition: %s", cd)
	}
	if !strings.Contains(rr.Body.String(), "FRIEND DETAILS") {
		t.Error("Expected friend details section in CSV body")
	}
}

func TestFriendReportUnowned(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()
	alice := newTestUser(t, store, "alice")
	mallory := newTestUser(t, store, "mallory")

	friend := &models.Friend{UserID: alice.ID, Name: "Bob"}
	store.CreateFriend(friend)

	handler := &ReportHandler{Reports: report.NewGenerator(store)}

	req, _ := http.NewRequest("GET", "/reports/friends/"+strconv.Itoa(friend.ID)+".csv", nil)
	req = mux.SetURLVars(req, map[string]string{"id": strconv.Itoa(friend.ID)})
	req.AddCookie(sessionCookie(mallory.ID))

	rr := httptest.NewRecorder()
	middleware.AuthMiddleware(http.HandlerFunc(handler.FriendReport)).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusNotFound {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusNotFound)
	}
	if strings.Contains(rr.Body.String(), "FRIEND DETAILS") {
		t.Error("Expected no CSV body on 404")
	}
}
