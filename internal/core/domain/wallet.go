package domain

import "time"

// Wallet is a vendor's prepaid balance. Balance never goes negative;
// TotalSpend is the cumulative amount ever debited for promotions.
type Wallet struct {
	VendorID   string
	Balance    int64
	TotalSpend int64
}

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TxPromotion  TransactionType = "promotion"
	TxAdjustment TransactionType = "adjustment"
)

// Transaction is an immutable record of a single balance movement.
// Entries are append-only; they are never edited or deleted.
type Transaction struct {
	ID          string
	UserID      string
	Type        TransactionType
	Amount      int64
	Status      string
	Description string
	CreatedAt   time.Time
}
