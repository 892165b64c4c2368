// Package report builds the CSV summaries derived from stored bills and
// participants. Generation is read-only; amounts are rounded to two
// decimals at render time only.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jwei/splitchat/internal/models"
	"github.com/jwei/splitchat/internal/store"
)

const (
	dateLayout  = "2006-01-02"
	stampLayout = "2006-01-02 15:04:05"
)

type Generator struct {
	Store store.Store
	// Now is the clock used for the header line, swappable in tests.
	Now func() time.Time
}

func NewGenerator(s store.Store) *Generator {
	return &Generator{Store: s, Now: time.Now}
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// Overall produces the three-section report over every bill created by
// userID: bills summary with a trailing total, per-friend totals, and
// the (bill, participant) breakdown.
func (g *Generator) Overall(userID int) ([]byte, error) {
	bills, err := g.Store.ListBills(userID)
	if err != nil {
		return nil, err
	}
	friends, err := g.Store.ListFriends(userID)
	if err != nil {
		return nil, err
	}
	shares, err := g.Store.ListBillShares(userID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	w.Write([]string{"Bill Report - Generated on", g.Now().Format(stampLayout)})
	w.Write(nil)

	w.Write([]string{"OVERALL BILLS SUMMARY"})
	w.Write([]string{"Description", "Visit Date", "Visit Details", "Total Amount", "Tax", "Discount", "Final Amount"})

	var totalOverall float64
	for _, bill := range bills {
		w.Write([]string{
			bill.Description,
			bill.VisitDate.Format(dateLayout),
			bill.VisitDetails,
			money(bill.TotalAmount),
			money(bill.TaxAmount),
			money(bill.DiscountAmount),
			money(bill.FinalAmount),
		})
		totalOverall += bill.FinalAmount
	}
	w.Write([]string{"", "", "", "", "", "TOTAL:", money(totalOverall)})
	w.Write(nil)

	w.Write([]string{"INDIVIDUAL FRIENDS SUMMARY"})
	w.Write([]string{"Friend Name", "Total Amount Owed", "Number of Bills", "Average per Bill"})

	type tally struct {
		owed  float64
		count int
	}
	byFriend := make(map[int]tally)
	for _, sh := range shares {
		t := byFriend[sh.FriendID]
		t.owed += sh.AmountOwed
		t.count++
		byFriend[sh.FriendID] = t
	}

	for _, friend := range friends {
		t := byFriend[friend.ID]
		avg := "$0.00"
		if t.count > 0 {
			avg = money(t.owed / float64(t.count))
		}
		w.Write([]string{friend.Name, money(t.owed), strconv.Itoa(t.count), avg})
	}
	w.Write(nil)

	w.Write([]string{"DETAILED BILL BREAKDOWN"})
	w.Write([]string{"Bill", "Visit Date", "Friend", "Amount Owed"})
	for _, sh := range shares {
		w.Write([]string{
			sh.BillDescription,
			sh.VisitDate.Format(dateLayout),
			sh.FriendName,
			money(sh.AmountOwed),
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Friend produces the per-friend report: identity block, the bills the
// friend participates in (restricted to bills created by userID) and a
// trailing total. The friend record is returned for filename use.
func (g *Generator) Friend(userID, friendID int) (*models.Friend, []byte, error) {
	friend, err := g.Store.GetFriend(friendID, userID)
	if err != nil {
		return nil, nil, err
	}
	shares, err := g.Store.ListFriendShares(friendID, userID)
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	w.Write([]string{fmt.Sprintf("Bill Report for %s - Generated on", friend.Name), g.Now().Format(stampLayout)})
	w.Write(nil)

	w.Write([]string{"FRIEND DETAILS"})
	w.Write([]string{"Name:", friend.Name})
	w.Write([]string{"Email:", orNA(friend.Email)})
	w.Write([]string{"Phone:", orNA(friend.Phone)})
	w.Write(nil)

	w.Write([]string{"BILLS INVOLVING THIS FRIEND"})
	w.Write([]string{"Description", "Visit Date", "Visit Details", "Total Bill Amount", "Amount Owed by Friend"})

	var totalOwed float64
	for _, sh := range shares {
		w.Write([]string{
			sh.BillDescription,
			sh.VisitDate.Format(dateLayout),
			sh.VisitDetails,
			money(sh.FinalAmount),
			money(sh.AmountOwed),
		})
		totalOwed += sh.AmountOwed
	}

	w.Write(nil)
	w.Write([]string{"TOTAL AMOUNT OWED:", "", "", "", money(totalOwed)})

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, nil, err
	}
	return friend, buf.Bytes(), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
