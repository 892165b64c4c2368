package sqlstore

import (
	"database/sql"
	"fmt"

	"github.com/jwei/splitchat/internal/models"
)

func (s *SQLStore) SaveMessage(msg *models.ChatMessage) error {
	// bill_id 0 means the general room, stored as NULL
	billID := sql.NullInt64{Int64: int64(msg.BillID), Valid: msg.BillID != 0}
	query := s.rebind("INSERT INTO chat_messages (bill_id, user_id, message) VALUES (?, ?, ?) RETURNING id")
	if err := s.db.QueryRow(query, billID, msg.UserID, msg.Message).Scan(&msg.ID); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (s *SQLStore) ListMessages(billID int) ([]models.ChatMessage, error) {
	query := `
		SELECT m.id, COALESCE(m.bill_id, 0), m.user_id, u.username, m.message, m.created_at
		FROM chat_messages m
		JOIN users u ON m.user_id = u.id
		WHERE m.bill_id IS NULL
		ORDER BY m.id ASC
	`
	args := []interface{}{}
	if billID != 0 {
		query = `
			SELECT m.id, COALESCE(m.bill_id, 0), m.user_id, u.username, m.message, m.created_at
			FROM chat_messages m
			JOIN users u ON m.user_id = u.id
			WHERE m.bill_id = ?
			ORDER BY m.id ASC
		`
		args = append(args, billID)
	}

	rows, err := s.db.Query(s.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.BillID, &m.UserID, &m.Username, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
