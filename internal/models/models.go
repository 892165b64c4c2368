package models

import "time"

// AssistantUsername is the reserved account the chat responder posts as.
// It is seeded when the schema is created, never lazily.
const AssistantUsername = "assistant"

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type Friend struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Bill struct {
	ID             int       `json:"id"`
	Description    string    `json:"description"`
	VisitDetails   string    `json:"visit_details,omitempty"`
	VisitDate      time.Time `json:"visit_date"`
	TotalAmount    float64   `json:"total_amount"`
	TaxAmount      float64   `json:"tax_amount"`
	DiscountAmount float64   `json:"discount_amount"`
	FinalAmount    float64   `json:"final_amount"`
	CreatedBy      int       `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

type BillParticipant struct {
	ID         int     `json:"id"`
	BillID     int     `json:"bill_id"`
	FriendID   int     `json:"friend_id"`
	AmountOwed float64 `json:"amount_owed"`
}

// Share is the participant x bill join row the report aggregator reads:
// one friend's owed amount on one bill, with enough bill and friend
// context to render a report line without further lookups.
type Share struct {
	BillID          int       `json:"bill_id"`
	BillDescription string    `json:"bill_description"`
	VisitDate       time.Time `json:"visit_date"`
	VisitDetails    string    `json:"visit_details,omitempty"`
	FinalAmount     float64   `json:"final_amount"`
	FriendID        int       `json:"friend_id"`
	FriendName      string    `json:"friend_name"`
	AmountOwed      float64   `json:"amount_owed"`
}

type ChatMessage struct {
	ID        int       `json:"id"`
	BillID    int       `json:"bill_id,omitempty"` // 0 = the general room
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
