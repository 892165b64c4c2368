package sqlstore

import (
	"errors"
	"testing"

	"github.com/jwei/splitchat/internal/models"
	"github.com/jwei/splitchat/internal/store"
)

func TestCreateUser(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	user := &models.User{Username: "testuser", Password: "password123"}
	if err := testStore.CreateUser(user); err != nil {
		t.Errorf("Failed to create user: %v", err)
	}
	if user.ID == 0 {
		t.Error("Expected non-zero user ID")
	}

	// Test duplicate user
	err := testStore.CreateUser(&models.User{Username: "testuser", Password: "password123"})
	if err == nil {
		t.Error("Expected error when creating duplicate user, got nil")
	}
}

func TestGetUserByUsername(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	testStore.CreateUser(&models.User{Username: "testuser", Password: "password123"})

	user, err := testStore.GetUserByUsername("testuser")
	if err != nil {
		t.Errorf("Failed to get user: %v", err)
	}

	if user.Username != "testuser" {
		t.Errorf("Expected username 'testuser', got '%s'", user.Username)
	}

	_, err = testStore.GetUserByUsername("nonexistent")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for nonexistent user, got %v", err)
	}
}

func TestAssistantSeeded(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	assistant, err := testStore.GetUserByUsername(models.AssistantUsername)
	if err != nil {
		t.Fatalf("Expected assistant user to be seeded: %v", err)
	}
	if assistant.ID == 0 {
		t.Error("Expected non-zero assistant ID")
	}

	// Re-running setup against the same database must not duplicate it
	if err := testStore.seedAssistant(); err != nil {
		t.Errorf("seedAssistant on seeded store failed: %v", err)
	}
}
