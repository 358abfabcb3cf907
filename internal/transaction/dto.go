package transaction

// CreateTransactionRequest represents the request to record a transaction
type CreateTransactionRequest struct {
	CategoryID  string   `json:"category_id" validate:"required"`
	Amount      float64  `json:"amount" validate:"required,gt=0"`
	Currency    string   `json:"currency,omitempty"`
	Description string   `json:"description,omitempty"`
	Date        string   `json:"date,omitempty"` // RFC 3339; defaults to now
	ReceiptURL  *string  `json:"receipt_url,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// ListTransactionsQuery carries the optional list filters
type ListTransactionsQuery struct {
	CategoryID string
	FromDate   string
	ToDate     string
}

// TransactionResponse represents the response for a transaction
type TransactionResponse struct {
	ID              string   `json:"id"`
	UserID          string   `json:"user_id"`
	CategoryID      string   `json:"category_id"`
	Amount          float64  `json:"amount"`
	Currency        string   `json:"currency"`
	Description     string   `json:"description"`
	Date            string   `json:"date"`
	ReceiptURL      *string  `json:"receipt_url,omitempty"`
	Tags            []string `json:"tags"`
	IsShared        bool     `json:"is_shared"`
	SharedExpenseID *string  `json:"shared_expense_id,omitempty"`
	CreatedAt       string   `json:"created_at"`
}

// ToResponse converts a Transaction model to a TransactionResponse DTO
func (t *Transaction) ToResponse() *TransactionResponse {
	return &TransactionResponse{
		ID:              t.ID,
		UserID:          t.UserID,
		CategoryID:      t.CategoryID,
		Amount:          t.Amount.Decimal(t.Currency),
		Currency:        t.Currency,
		Description:     t.Description,
		Date:            t.Date.Format("2006-01-02T15:04:05Z07:00"),
		ReceiptURL:      t.ReceiptURL,
		Tags:            t.Tags,
		IsShared:        t.IsShared,
		SharedExpenseID: t.SharedExpenseID,
		CreatedAt:       t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
