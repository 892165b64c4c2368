// Package ledger implements bill creation: input validation, ownership
// checks and derived-amount computation on top of the store.
package ledger

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jwei/splitchat/internal/models"
	"github.com/jwei/splitchat/internal/store"
)

const dateLayout = "2006-01-02"

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ParticipantInput is one caller-assigned share. AmountOwed is taken as
// given; shares are not required to sum to the bill's final amount.
type ParticipantInput struct {
	FriendID   int     `json:"friend_id"`
	AmountOwed float64 `json:"amount_owed"`
}

type CreateBillInput struct {
	Description    string             `json:"description"`
	VisitDetails   string             `json:"visit_details"`
	VisitDate      string             `json:"visit_date"`
	TotalAmount    *float64           `json:"total_amount"`
	TaxAmount      float64            `json:"tax_amount"`
	DiscountAmount float64            `json:"discount_amount"`
	Participants   []ParticipantInput `json:"participants"`
}

type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// CreateBill validates the input, verifies every participant friend is
// owned by userID, computes the final amount and persists the bill with
// its participant rows in one transaction. Nothing is written if any
// step fails.
func (s *Service) CreateBill(userID int, in CreateBillInput) (int, error) {
	if in.Description == "" {
		return 0, &ValidationError{Field: "description", Reason: "required"}
	}
	if in.VisitDate == "" {
		return 0, &ValidationError{Field: "visit_date", Reason: "required"}
	}
	visitDate, err := time.Parse(dateLayout, in.VisitDate)
	if err != nil {
		return 0, &ValidationError{Field: "visit_date", Reason: "must be YYYY-MM-DD"}
	}
	if in.TotalAmount == nil {
		return 0, &ValidationError{Field: "total_amount", Reason: "required"}
	}

	// Ownership check before any write
	for _, p := range in.Participants {
		if _, err := s.store.GetFriend(p.FriendID, userID); err != nil {
			slog.Warn("CreateBill rejected participant", "user_id", userID, "friend_id", p.FriendID, "error", err)
			return 0, err
		}
	}

	total := *in.TotalAmount
	bill := &models.Bill{
		Description:    in.Description,
		VisitDetails:   in.VisitDetails,
		VisitDate:      visitDate,
		TotalAmount:    total,
		TaxAmount:      in.TaxAmount,
		DiscountAmount: in.DiscountAmount,
		FinalAmount:    total + in.TaxAmount - in.DiscountAmount,
		CreatedBy:      userID,
	}

	participants := make([]models.BillParticipant, len(in.Participants))
	for i, p := range in.Participants {
		participants[i] = models.BillParticipant{FriendID: p.FriendID, AmountOwed: p.AmountOwed}
	}

	if err := s.store.CreateBill(bill, participants); err != nil {
		slog.Error("CreateBill failed", "user_id", userID, "error", err)
		return 0, err
	}

	slog.Info("Bill created",
		"bill_id", bill.ID,
		"user_id", userID,
		"final_amount", bill.FinalAmount,
		"participants", len(participants),
	)
	return bill.ID, nil
}
