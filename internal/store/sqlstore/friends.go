package sqlstore

import (
	"database/sql"
	"fmt"

	"github.com/jwei/splitchat/internal/models"
	"github.com/jwei/splitchat/internal/store"
)

func (s *SQLStore) CreateFriend(friend *models.Friend) error {
	query := s.rebind("INSERT INTO friends (user_id, name, email, phone) VALUES (?, ?, ?, ?) RETURNING id")
	err := s.db.QueryRow(query, friend.UserID, friend.Name, friend.Email, friend.Phone).Scan(&friend.ID)
	if err != nil {
		return fmt.Errorf("failed to insert friend: %w", err)
	}
	return nil
}

func (s *SQLStore) GetFriend(id, userID int) (*models.Friend, error) {
	var friend models.Friend
	query := s.rebind(`
		SELECT id, user_id, name, COALESCE(email, ''), COALESCE(phone, ''), created_at
		FROM friends WHERE id = ? AND user_id = ?
	`)
	err := s.db.QueryRow(query, id, userID).Scan(
		&friend.ID, &friend.UserID, &friend.Name, &friend.Email, &friend.Phone, &friend.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("friend %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &friend, nil
}

func (s *SQLStore) ListFriends(userID int) ([]models.Friend, error) {
	query := s.rebind(`
		SELECT id, user_id, name, COALESCE(email, ''), COALESCE(phone, ''), created_at
		FROM friends WHERE user_id = ? ORDER BY id
	`)
	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var friends []models.Friend
	for rows.Next() {
		var f models.Friend
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.Email, &f.Phone, &f.CreatedAt); err != nil {
			return nil, err
		}
		friends = append(friends, f)
	}
	return friends, rows.Err()
}

// DeleteFriend removes a friend owned by userID. Friends that still
// appear on bills are not deletable; the bill history keeps them alive.
func (s *SQLStore) DeleteFriend(id, userID int) error {
	if _, err := s.GetFriend(id, userID); err != nil {
		return err
	}

	var inUse bool
	query := s.rebind("SELECT EXISTS(SELECT 1 FROM bill_participants WHERE friend_id = ?)")
	if err := s.db.QueryRow(query, id).Scan(&inUse); err != nil {
		return err
	}
	if inUse {
		return fmt.Errorf("friend %d: %w", id, store.ErrFriendInUse)
	}

	query = s.rebind("DELETE FROM friends WHERE id = ? AND user_id = ?")
	_, err := s.db.Exec(query, id, userID)
	return err
}
