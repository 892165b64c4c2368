package main

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/jwei/splitchat/internal/auth"
	"github.com/jwei/splitchat/internal/config"
	"github.com/jwei/splitchat/internal/handlers"
	"github.com/jwei/splitchat/internal/ledger"
	"github.com/jwei/splitchat/internal/logging"
	"github.com/jwei/splitchat/internal/middleware"
	"github.com/jwei/splitchat/internal/report"
	"github.com/jwei/splitchat/internal/store/sqlstore"
	"github.com/jwei/splitchat/internal/ws"
)

func main() {
	logging.Setup()

	cfg := config.Load()
	auth.SetSecret(cfg.CookieSecret)

	driver, dsn := cfg.Driver()
	store, err := sqlstore.New(driver, dsn)
	if err != nil {
		slog.Error("Failed to initialize storage", "driver", driver, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "driver", driver)

	// Initialize WebSocket Hub
	hub := ws.NewHub(store)
	go hub.Run()

	// Initialize Handlers
	authHandler := &handlers.AuthHandler{Store: store}
	friendHandler := &handlers.FriendHandler{Store: store}
	billHandler := &handlers.BillHandler{Store: store, Ledger: ledger.NewService(store)}
	reportHandler := &handlers.ReportHandler{Reports: report.NewGenerator(store)}
	messageHandler := &handlers.MessageHandler{Store: store}

	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	// Public endpoints
	r.HandleFunc("/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	// Authenticated API
	api := r.NewRoute().Subrouter()
	api.Use(middleware.AuthMiddleware)
	api.HandleFunc("/friends", friendHandler.ListFriends).Methods("GET")
	api.HandleFunc("/friends", friendHandler.AddFriend).Methods("POST")
	api.HandleFunc("/friends/{id}", friendHandler.DeleteFriend).Methods("DELETE")
	api.HandleFunc("/bills", billHandler.ListBills).Methods("GET")
	api.HandleFunc("/bills", billHandler.CreateBill).Methods("POST")
	api.HandleFunc("/bills/{id}", billHandler.DeleteBill).Methods("DELETE")
	api.HandleFunc("/bills/{id}/participants", billHandler.GetBillParticipants).Methods("GET")
	api.HandleFunc("/reports/bills.csv", reportHandler.OverallReport).Methods("GET")
	api.HandleFunc("/reports/friends/{id}.csv", reportHandler.FriendReport).Methods("GET")
	api.HandleFunc("/messages", messageHandler.ListMessages).Methods("GET")

	// WebSocket Endpoint
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("user_id")
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		userIDStr, err := auth.VerifyCookie(cookie.Value)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		userID, err := strconv.Atoi(userIDStr)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ws.ServeWs(hub, w, r, userID)
	})

	// Serve the frontend
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, cfg.StaticDir+"/index.html")
	})
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: false,
	}).Handler(r)

	slog.Info("Starting server", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
