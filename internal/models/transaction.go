package models

import "time"

// Transaction is a completed sale. Transactions are immutable once created;
// the API surface has no update or delete for them.
type Transaction struct {
	ID         int64             `json:"id"`
	Code       string            `json:"code"`
	CustomerID *int64            `json:"customer_id"`
	Subtotal   int64             `json:"subtotal"`
	Tax        int64             `json:"tax"`
	Total      int64             `json:"total"`
	CreatedAt  time.Time         `json:"created_at"`
	Customer   *Customer         `json:"customer,omitempty"`
	Items      []TransactionItem `json:"items,omitempty"`
}

// TransactionItem is one sold line. ProductName and Price are snapshots
// taken at sale time so later catalog edits don't rewrite history.
type TransactionItem struct {
	ID            int64  `json:"id"`
	TransactionID int64  `json:"transaction_id"`
	ProductID     int64  `json:"product_id"`
	ProductName   string `json:"product_name"`
	Quantity      int64  `json:"quantity"`
	Price         int64  `json:"price"`
	Subtotal      int64  `json:"subtotal"`
}
