package store

import (
	"errors"

	"github.com/jwei/splitchat/internal/models"
)

// ErrNotFound is returned when an entity does not exist or is not owned
// by the requesting user. Callers should wrap it with context.
var ErrNotFound = errors.New("not found")

// ErrFriendInUse is returned when deleting a friend that still appears
// on bills. Bill history is append-only, so the delete is rejected
// rather than cascaded.
var ErrFriendInUse = errors.New("friend has bill participations")

type Store interface {
	// User operations
	CreateUser(user *models.User) error
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id int) (*models.User, error)

	// Friend operations, scoped by owning user
	CreateFriend(friend *models.Friend) error
	GetFriend(id, userID int) (*models.Friend, error)
	ListFriends(userID int) ([]models.Friend, error)
	DeleteFriend(id, userID int) error

	// Bill operations
	// CreateBill writes the bill and all participant rows atomically.
	CreateBill(bill *models.Bill, participants []models.BillParticipant) error
	GetBill(id, userID int) (*models.Bill, error)
	ListBills(userID int) ([]models.Bill, error)
	DeleteBill(id, userID int) error
	ListBillParticipants(billID int) ([]models.BillParticipant, error)
	// ListBillShares returns every (bill, participant) pair for bills
	// created by userID, ordered by bill.
	ListBillShares(userID int) ([]models.Share, error)
	// ListFriendShares returns the shares of one friend across bills
	// created by userID.
	ListFriendShares(friendID, userID int) ([]models.Share, error)

	// Chat operations
	SaveMessage(msg *models.ChatMessage) error
	// ListMessages returns messages for a bill's room, oldest first.
	// billID 0 means the general room.
	ListMessages(billID int) ([]models.ChatMessage, error)

	Close() error
}
