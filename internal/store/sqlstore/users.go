package sqlstore

import (
	"database/sql"
	"fmt"

	"github.com/jwei/splitchat/internal/models"
	"github.com/jwei/splitchat/internal/store"
)

func (s *SQLStore) CreateUser(user *models.User) error {
	query := s.rebind("INSERT INTO users (username, password) VALUES (?, ?) RETURNING id")
	if err := s.db.QueryRow(query, user.Username, user.Password).Scan(&user.ID); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (s *SQLStore) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	query := s.rebind("SELECT id, username, password, created_at FROM users WHERE username = ?")
	err := s.db.QueryRow(query, username).Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %q: %w", username, store.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *SQLStore) GetUserByID(id int) (*models.User, error) {
	var user models.User
	query := s.rebind("SELECT id, username, password, created_at FROM users WHERE id = ?")
	err := s.db.QueryRow(query, id).Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
