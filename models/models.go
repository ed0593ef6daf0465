package models

import "time"

// Transaction kinds.
const (
	TxKindPurchase = "purchase"
	TxKindRecycle  = "recycle"
)

type User struct {
	ID        int
	UserID    string
	Name      string
	Points    int
	CreatedAt time.Time
}

type Item struct {
	ID    int
	Name  string
	Price int
	Icon  string
}

// Transaction is one append-only ledger entry. ItemName holds a copy of the
// catalog name at purchase time and stays empty for recycle entries.
type Transaction struct {
	ID          int
	UserID      int
	Kind        string
	ItemName    string
	PointsDelta int
	CreatedAt   time.Time
}
