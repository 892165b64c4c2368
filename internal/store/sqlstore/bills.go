package sqlstore

import (
	"database/sql"
	"fmt"

	"github.com/jwei/splitchat/internal/models"
	"github.com/jwei/splitchat/internal/store"
)

// CreateBill writes the bill row and all participant rows in one
// transaction. On any failure nothing is persisted.
func (s *SQLStore) CreateBill(bill *models.Bill, participants []models.BillParticipant) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := s.rebind(`
		INSERT INTO bills (description, visit_details, visit_date, total_amount, tax_amount, discount_amount, final_amount, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING id
	`)
	err = tx.QueryRow(query,
		bill.Description, bill.VisitDetails, bill.VisitDate,
		bill.TotalAmount, bill.TaxAmount, bill.DiscountAmount, bill.FinalAmount,
		bill.CreatedBy,
	).Scan(&bill.ID)
	if err != nil {
		return fmt.Errorf("failed to insert bill: %w", err)
	}

	query = s.rebind("INSERT INTO bill_participants (bill_id, friend_id, amount_owed) VALUES (?, ?, ?)")
	for i := range participants {
		participants[i].BillID = bill.ID
		if _, err := tx.Exec(query, bill.ID, participants[i].FriendID, participants[i].AmountOwed); err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *SQLStore) GetBill(id, userID int) (*models.Bill, error) {
	var bill models.Bill
	query := s.rebind(`
		SELECT id, description, COALESCE(visit_details, ''), visit_date,
		       total_amount, tax_amount, discount_amount, final_amount, created_by, created_at
		FROM bills WHERE id = ? AND created_by = ?
	`)
	err := s.db.QueryRow(query, id, userID).Scan(
		&bill.ID, &bill.Description, &bill.VisitDetails, &bill.VisitDate,
		&bill.TotalAmount, &bill.TaxAmount, &bill.DiscountAmount, &bill.FinalAmount,
		&bill.CreatedBy, &bill.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("bill %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (s *SQLStore) ListBills(userID int) ([]models.Bill, error) {
	query := s.rebind(`
		SELECT id, description, COALESCE(visit_details, ''), visit_date,
		       total_amount, tax_amount, discount_amount, final_amount, created_by, created_at
		FROM bills WHERE created_by = ? ORDER BY id
	`)
	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []models.Bill
	for rows.Next() {
		var b models.Bill
		if err := rows.Scan(&b.ID, &b.Description, &b.VisitDetails, &b.VisitDate,
			&b.TotalAmount, &b.TaxAmount, &b.DiscountAmount, &b.FinalAmount,
			&b.CreatedBy, &b.CreatedAt); err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}

// DeleteBill removes a bill owned by userID. Participant rows cascade.
func (s *SQLStore) DeleteBill(id, userID int) error {
	if _, err := s.GetBill(id, userID); err != nil {
		return err
	}
	query := s.rebind("DELETE FROM bills WHERE id = ? AND created_by = ?")
	_, err := s.db.Exec(query, id, userID)
	return err
}

func (s *SQLStore) ListBillParticipants(billID int) ([]models.BillParticipant, error) {
	query := s.rebind("SELECT id, bill_id, friend_id, amount_owed FROM bill_participants WHERE bill_id = ? ORDER BY id")
	rows, err := s.db.Query(query, billID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []models.BillParticipant
	for rows.Next() {
		var p models.BillParticipant
		if err := rows.Scan(&p.ID, &p.BillID, &p.FriendID, &p.AmountOwed); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (s *SQLStore) ListBillShares(userID int) ([]models.Share, error) {
	query := s.rebind(`
		SELECT p.bill_id, b.description, b.visit_date, COALESCE(b.visit_details, ''), b.final_amount,
		       p.friend_id, f.name, p.amount_owed
		FROM bill_participants p
		JOIN bills b ON p.bill_id = b.id
		JOIN friends f ON p.friend_id = f.id
		WHERE b.created_by = ?
		ORDER BY b.id, p.id
	`)
	return s.queryShares(query, userID)
}

func (s *SQLStore) ListFriendShares(friendID, userID int) ([]models.Share, error) {
	query := s.rebind(`
		SELECT p.bill_id, b.description, b.visit_date, COALESCE(b.visit_details, ''), b.final_amount,
		       p.friend_id, f.name, p.amount_owed
		FROM bill_participants p
		JOIN bills b ON p.bill_id = b.id
		JOIN friends f ON p.friend_id = f.id
		WHERE p.friend_id = ? AND b.created_by = ?
		ORDER BY b.id, p.id
	`)
	return s.queryShares(query, friendID, userID)
}

func (s *SQLStore) queryShares(query string, args ...interface{}) ([]models.Share, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shares []models.Share
	for rows.Next() {
		var sh models.Share
		if err := rows.Scan(&sh.BillID, &sh.BillDescription, &sh.VisitDate, &sh.VisitDetails,
			&sh.FinalAmount, &sh.FriendID, &sh.FriendName, &sh.AmountOwed); err != nil {
			return nil, err
		}
		shares = append(shares, sh)
	}
	return shares, rows.Err()
}
